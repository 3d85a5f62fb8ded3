package notify

import (
	"errors"
	"os/exec"

	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
)

// ErrNoNotifier is returned when no platform helper could be launched
var ErrNoNotifier = errors.New("no desktop notification helper available")

// Notifier implements ports.SystemNotifier using the platform's notification helper
type Notifier struct {
	start func(name string, args ...string) error
}

var _ ports.SystemNotifier = (*Notifier)(nil)

// NewNotifier creates a notifier that launches helpers without waiting for them
func NewNotifier() *Notifier {
	return &Notifier{
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// Reap in the background so the helper never becomes a zombie
			go func() { _ = cmd.Wait() }()
			return nil
		},
	}
}

// Notify shows title and body as a desktop notification
func (n *Notifier) Notify(title, body string) error {
	for _, c := range commandsFor(title, body) {
		if err := n.start(c.cmd, c.args...); err == nil {
			logging.Logger.Debug("Notification sent", "helper", c.cmd, "title", title)
			return nil
		}
	}
	return ErrNoNotifier
}

type command struct {
	cmd  string
	args []string
}

// Disabled is a SystemNotifier that does nothing, used with --no-notifications
type Disabled struct{}

var _ ports.SystemNotifier = Disabled{}

func (Disabled) Notify(string, string) error { return nil }
