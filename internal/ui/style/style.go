// Package style provides shared styling primitives, brand colors and icons
// for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Teal   = lipgloss.Color("#0D9488")
	Slate  = lipgloss.Color("#64748B")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0F172A")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Yellow = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
)

// Label renders a short highlighted label, used for result lines such as
// the digest and bound name after a push.
func Label(text string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(Teal).Render(text)
}

// Muted renders secondary text.
func Muted(text string) string {
	return lipgloss.NewStyle().Foreground(Slate).Render(text)
}
