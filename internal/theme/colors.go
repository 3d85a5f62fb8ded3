package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Mode colors
const (
	ColorBreak Color = "42"  // Green - break interval
	ColorFocus Color = "204" // Pink - focus interval
)

// Run state colors
const (
	ColorIdle    Color = "245" // Light gray - ready to start
	ColorPaused  Color = "3"   // Yellow - paused
	ColorRunning Color = "2"   // Green - in progress
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
	ColorWarning   Color = "214" // Orange - non-fatal warnings
)

// Accent colors
const (
	ColorGoal      Color = "141" // Purple - weekly goal bar
	ColorHelpGroup Color = "141" // Purple
	ColorStreak    Color = "208" // Orange - streak counter
)
