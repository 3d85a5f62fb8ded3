package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0, 0, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	ProfileStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Timer styles
var (
	ClockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight).
			Padding(1, 0)

	StatusStyle = lipgloss.NewStyle().
			Italic(true)

	TimerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 4).
			Align(lipgloss.Center)
)

// ModeStyle returns the label style for a mode ("focus" or "break")
func ModeStyle(mode string) lipgloss.Style {
	c := ColorFocus
	if mode == "break" {
		c = ColorBreak
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

// RunStateStyle returns the status style for a run state
func RunStateStyle(run string) lipgloss.Style {
	switch run {
	case "running":
		return StatusStyle.Foreground(ColorRunning)
	case "paused":
		return StatusStyle.Foreground(ColorPaused)
	default:
		return StatusStyle.Foreground(ColorIdle)
	}
}

// Statistics styles
var (
	StatLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	StatValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	StreakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorStreak)
)

// History styles
var (
	HistoryDayStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	HistoryMetaStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	HistoryTotalStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)
)

// Message styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(12)
)
