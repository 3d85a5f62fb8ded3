package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// Player implements ports.SoundPlayer. Cues are launched and left to play in
// the background; the caller never waits for playback.
type Player struct {
	bell   io.Writer
	exists func(path string) bool
	start  func(name string, args ...string) error
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a new sound player
func NewPlayer() *Player {
	return &Player{
		bell: os.Stdout,
		exists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// Reap in the background so the player never becomes a zombie
			go func() {
				if err := cmd.Wait(); err != nil {
					logging.Logger.Debug("Sound player exited with error", "cmd", name, "error", err)
				}
			}()
			return nil
		},
	}
}

// PlaySound plays the focus-complete sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(ports.SoundFocusComplete)
}

// PlaySoundForEvent plays different sounds based on the event type.
// Platform-specific candidates are in player_*.go files with build tags.
// Candidates whose sound file is missing are skipped.
func (p *Player) PlaySoundForEvent(eventType string) error {
	for _, c := range candidatesForEvent(eventType) {
		if file := c.soundFile(); file != "" && !p.exists(file) {
			continue
		}
		if err := p.start(c.cmd, c.args...); err == nil {
			return nil
		}
	}
	return p.terminalBell()
}

// command is one way of producing a sound on the current platform
type command struct {
	cmd  string
	args []string
}

// soundFile returns the file the command plays, if its last argument is one
func (c command) soundFile() string {
	if len(c.args) == 0 {
		return ""
	}
	if last := c.args[len(c.args)-1]; filepath.IsAbs(last) {
		return last
	}
	return ""
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}

// Disabled is a SoundPlayer that does nothing, used with --no-sound
type Disabled struct{}

var _ ports.SoundPlayer = Disabled{}

func (Disabled) PlaySound() error                 { return nil }
func (Disabled) PlaySoundForEvent(_ string) error { return nil }
