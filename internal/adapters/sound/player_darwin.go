//go:build darwin

package sound

import "github.com/renato0307/tempo/internal/ports"

// candidatesForEvent uses afplay with the bundled system sounds
func candidatesForEvent(eventType string) []command {
	var files []string
	switch eventType {
	case ports.SoundFocusComplete:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Tink.aiff"}
	case ports.SoundBreakComplete:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Ping.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	cmds := make([]command, 0, len(files))
	for _, f := range files {
		cmds = append(cmds, command{"afplay", []string{f}})
	}
	return cmds
}
