package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/tempo/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by group
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

// renderShortcut renders a single shortcut line with key and description
func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

// renderBinding renders a single shortcut line from a key binding
func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

// buildHelpContent builds the complete help text content using key bindings
func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Timer") + "\n")
	b.WriteString(renderBinding(keys.Start))
	b.WriteString(renderBinding(keys.Pause))
	b.WriteString(renderBinding(keys.Reset))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Statistics") + "\n")
	b.WriteString(renderBinding(keys.History))
	b.WriteString(renderBinding(keys.ClearData))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Help))
	b.WriteString(renderBinding(keys.Quit))
	b.WriteString(renderBinding(keys.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Intervals") + "\n")
	b.WriteString(renderShortcut("Focus Time", "60 minutes, recorded in history"))
	b.WriteString(renderShortcut("Break Time", "20 minutes, not recorded"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

// Init implements tea.Model
func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

// SetSize sizes the scrollable area, leaving room for the footer
func (h *HelpScreen) SetSize(width, height int) {
	h.viewport.Width = width
	h.viewport.Height = max(height-3, 5)
	h.viewport.SetContent(h.content)
	h.initialized = true
}

// Update implements tea.Model
func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.SetSize(msg.Width, msg.Height)
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Quit, h.keys.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

// View implements tea.Model
func (h *HelpScreen) View() string {
	if !h.initialized {
		return h.content
	}

	footer := theme.HelpStyle.Render("Press esc, q or ? to close • ↑↓/jk to scroll")
	return h.viewport.View() + "\n" + footer
}
