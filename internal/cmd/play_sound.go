package cmd

import "github.com/renato0307/tempo/internal/ports"

// PlaySoundCmd plays a notification sound
type PlaySoundCmd struct {
	Event string `help:"Which cue to play" default:"focus-complete" enum:"focus-complete,break-complete"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == ports.SoundFocusComplete {
		return cli.Container.Sound.PlaySound()
	}
	return cli.Container.Sound.PlaySoundForEvent(p.Event)
}
