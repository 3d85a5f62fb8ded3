//go:build linux

package sound

import "github.com/renato0307/tempo/internal/ports"

// candidatesForEvent uses paplay (PulseAudio) or aplay (ALSA)
func candidatesForEvent(eventType string) []command {
	switch eventType {
	case ports.SoundFocusComplete:
		return []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/complete.wav"}},
		}
	case ports.SoundBreakComplete:
		return []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/message.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/message.wav"}},
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
		}
	default:
		return []command{
			{"paplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.oga"}},
			{"aplay", []string{"/usr/share/sounds/freedesktop/stereo/bell.wav"}},
		}
	}
}
