// Package style provides shared UI styling primitives including brand colors
// and text styles for the stats report.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check = "✓"
	Dot   = "●"
)

// Report styles.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Label   = lipgloss.NewStyle().Foreground(Slate).Width(14)
	Value   = lipgloss.NewStyle().Bold(true)
	Count   = lipgloss.NewStyle().Foreground(Yellow).Width(8).Align(lipgloss.Right)
	Success = lipgloss.NewStyle().Foreground(Green)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
)
