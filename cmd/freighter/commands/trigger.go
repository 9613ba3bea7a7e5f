package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/freighter/internal/app"
	"go.trai.ch/freighter/internal/core/domain"
	"go.trai.ch/freighter/internal/ui/style"
)

func (c *CLI) newTriggerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trigger <action> [body]",
		Short: "Execute an action on the remote worker",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var body []byte
			if len(args) == 2 {
				body = []byte(args[1])
			}
			projectPath, _ := cmd.Flags().GetString("project")
			metadata, _ := cmd.Flags().GetStringArray("metadata")

			outcome, err := c.app.Trigger(cmd.Context(), args[0], body, app.TriggerOptions{
				ProjectPath: projectPath,
				Metadata:    metadata,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if outcome.Problem != nil {
				p := outcome.Problem
				_, _ = fmt.Fprintf(out, "%s %s %s\n", style.Cross, style.Label("problem"), p.Type)
				if p.Detail != "" {
					_, _ = fmt.Fprintf(out, "  %s\n", p.Detail)
				}
				if p.Instance != "" {
					_, _ = fmt.Fprintf(out, "  %s %s\n", style.Muted("instance"), p.Instance)
				}
				for key, value := range p.Extensions {
					_, _ = fmt.Fprintf(out, "  %s %s\n", style.Muted(key), value)
				}
				return domain.Detail(domain.ErrActionFailed, "type", p.Type)
			}

			if len(outcome.Success.Body) > 0 {
				_, _ = fmt.Fprintf(out, "%s\n", outcome.Success.Body)
			}
			return nil
		},
	}
	cmd.Flags().StringP("project", "p", ".", "Path to the project supplying the worker endpoint")
	cmd.Flags().StringArrayP("metadata", "m", nil, "Metadata entry as key=value (repeatable)")
	return cmd
}
