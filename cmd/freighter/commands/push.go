package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/freighter/internal/app"
	"go.trai.ch/freighter/internal/ui/style"
)

func (c *CLI) newPushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push [path]",
		Short: "Build the project and publish its artifacts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := "."
			if len(args) == 1 {
				projectPath = args[0]
			}
			force, _ := cmd.Flags().GetBool("force")

			result, err := c.app.Push(cmd.Context(), projectPath, app.PushOptions{
				Force: force,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Reused {
				_, _ = fmt.Fprintf(out, "%s %s\n", style.Check, style.Muted("artifacts unchanged, digest reused"))
			}
			_, _ = fmt.Fprintf(out, "%s %s %s\n", style.Check, style.Label("digest"), result.Digest)
			_, _ = fmt.Fprintf(out, "%s %s %s %s %s\n", style.Check, style.Label("bound"), result.Name, style.Arrow, result.Digest)
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Bypass the push cache and push a fresh archive")
	return cmd
}
