//go:build windows

package sound

import "github.com/renato0307/tempo/internal/ports"

// candidatesForEvent uses PowerShell system sounds
func candidatesForEvent(eventType string) []command {
	var scripts []string
	switch eventType {
	case ports.SoundFocusComplete:
		scripts = []string{"[System.Media.SystemSounds]::Asterisk.Play()", "[System.Media.SystemSounds]::Beep.Play()"}
	case ports.SoundBreakComplete:
		scripts = []string{"[System.Media.SystemSounds]::Exclamation.Play()", "[System.Media.SystemSounds]::Beep.Play()"}
	default:
		scripts = []string{"[System.Media.SystemSounds]::Beep.Play()"}
	}

	cmds := make([]command, 0, len(scripts))
	for _, s := range scripts {
		cmds = append(cmds, command{"powershell", []string{"-c", s}})
	}
	return cmds
}
