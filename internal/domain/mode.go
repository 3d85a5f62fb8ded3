package domain

// Mode is the kind of interval the timer is counting down
type Mode string

const (
	ModeBreak Mode = "break"
	ModeFocus Mode = "focus"
)

// Interval lengths in seconds
const (
	BreakDuration = 20 * 60
	FocusDuration = 60 * 60
)

// Duration returns the interval length for the mode in seconds
func (m Mode) Duration() int {
	if m == ModeBreak {
		return BreakDuration
	}
	return FocusDuration
}

// Label returns the display label shown above the countdown
func (m Mode) Label() string {
	if m == ModeBreak {
		return "Break Time"
	}
	return "Focus Time"
}

// Next returns the mode that follows a completed interval
func (m Mode) Next() Mode {
	if m == ModeFocus {
		return ModeBreak
	}
	return ModeFocus
}

// ParseMode converts a stored mode string; anything unknown is treated as focus
// because only focus sessions are ever recorded.
func ParseMode(s string) Mode {
	if Mode(s) == ModeBreak {
		return ModeBreak
	}
	return ModeFocus
}
