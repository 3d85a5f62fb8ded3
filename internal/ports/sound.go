package ports

// Sound events
const (
	SoundBreakComplete = "break-complete"
	SoundFocusComplete = "focus-complete"
)

// SoundPlayer plays audio cues
type SoundPlayer interface {
	// PlaySound plays the default cue
	PlaySound() error

	// PlaySoundForEvent plays the cue for a specific event
	PlaySoundForEvent(eventType string) error
}
