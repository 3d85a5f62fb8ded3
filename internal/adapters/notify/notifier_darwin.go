//go:build darwin

package notify

import "strconv"

// commandsFor uses osascript's display notification
func commandsFor(title, body string) []command {
	script := "display notification " + strconv.Quote(body) + " with title " + strconv.Quote(title)
	return []command{
		{"osascript", []string{"-e", script}},
	}
}
