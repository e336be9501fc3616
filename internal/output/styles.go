package output

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#1F4E79", Dark: "#7FB3E6"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#8A5A00", Dark: "#F2C94C"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#B00020", Dark: "#FF6B6B"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9A9A9A"}
	ColorBorder  = lipgloss.AdaptiveColor{Light: "#BFBFBF", Dark: "#4A4A4A"}
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			MarginTop(1)

	LabelStyle = lipgloss.NewStyle().
			Width(28).
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle()

	AbsentStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)
