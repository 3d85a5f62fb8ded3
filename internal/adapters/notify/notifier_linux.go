//go:build linux

package notify

// commandsFor uses notify-send from libnotify
func commandsFor(title, body string) []command {
	return []command{
		{"notify-send", []string{"--app-name=tempo", title, body}},
	}
}
