package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/theme"
)

type uiState int

const (
	stateTimer uiState = iota
	stateConfirmingClear
	stateHelp
)

// historyDays is how many days the inline history shows
const historyDays = 7

// statsRefreshInterval re-derives the statistics while the timer sits idle,
// so day and week boundaries show up without any engine event
const statsRefreshInterval = time.Minute

// statsRefreshMsg triggers a periodic statistics refresh
type statsRefreshMsg struct{}

func scheduleStatsRefresh() tea.Cmd {
	return tea.Tick(statsRefreshInterval, func(time.Time) tea.Msg { return statsRefreshMsg{} })
}

// Model is the bubbletea model of the timer screen. Every engine call happens
// inside Update, so the engine is only ever touched from the update loop.
type Model struct {
	breakBar     progress.Model
	clearConfirm *bool
	clearForm    *huh.Form
	engine       *services.TimerEngine
	err          error
	focusBar     progress.Model
	goal         domain.WeeklyGoal
	goalBar      progress.Model
	help         help.Model
	helpScreen   *HelpScreen
	height       int
	keys         KeyMap
	profile      domain.Profile
	showHistory  bool
	snapshot     services.Statistics
	state        uiState
	stats        *services.StatisticsService
	unsubscribe  func()
	version      string
	warning      error
	width        int
}

// NewModel creates the timer screen. The engine must already be loaded.
func NewModel(
	engine *services.TimerEngine,
	stats *services.StatisticsService,
	profile domain.Profile,
	goal domain.WeeklyGoal,
	keysConfig config.KeyBindingsConfig,
	version string,
) *Model {
	m := &Model{
		breakBar: progress.New(progress.WithSolidFill(string(theme.ColorBreak)), progress.WithoutPercentage()),
		engine:   engine,
		focusBar: progress.New(progress.WithSolidFill(string(theme.ColorFocus)), progress.WithoutPercentage()),
		goal:     goal,
		goalBar:  progress.New(progress.WithSolidFill(string(theme.ColorGoal))),
		help:     help.New(),
		keys:     NewKeyMap(keysConfig),
		profile:  profile,
		state:    stateTimer,
		stats:    stats,
		version:  version,
	}
	m.refreshStatistics()
	m.unsubscribe = engine.Subscribe(m.onEngineEvent)
	return m
}

// onEngineEvent runs synchronously inside engine calls, hence on the update loop
func (m *Model) onEngineEvent(ev services.Event) {
	if ev.Type == services.EventPersistFailed {
		m.warning = fmt.Errorf("progress not saved: %w", ev.Err)
	}
	m.refreshStatistics()
}

func (m *Model) refreshStatistics() {
	m.snapshot = m.stats.Compute(m.engine.State().Persisted(), m.goal)
}

// SetWarning shows a non-fatal problem until the next start or reset
func (m *Model) SetWarning(err error) {
	m.warning = err
}

// Close detaches the model from the engine
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
		m.unsubscribe = nil
	}
}

func (m *Model) Init() tea.Cmd {
	return scheduleStatsRefresh()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DispatchMsg:
		if msg.Fn != nil {
			msg.Fn()
		}
		return m, nil
	case statsRefreshMsg:
		m.refreshStatistics()
		return m, scheduleStatsRefresh()
	case tea.WindowSizeMsg:
		m.setSize(msg.Width, msg.Height)
	}

	switch m.state {
	case stateConfirmingClear:
		return m.updateConfirmingClear(msg)
	case stateHelp:
		return m.updateHelp(msg)
	default:
		return m.updateTimer(msg)
	}
}

func (m *Model) setSize(width, height int) {
	m.width = width
	m.height = height
	barWidth := min(max(width-8, 10), 60)
	m.focusBar.Width = barWidth
	m.breakBar.Width = barWidth
	m.goalBar.Width = barWidth
	m.help.Width = width
	if m.helpScreen != nil {
		m.helpScreen.SetSize(width, height)
	}
}

func (m *Model) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.ForceQuit, m.keys.Quit):
		// Stop the ticker; an unfinished interval is never persisted
		m.engine.Pause()
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Start):
		m.err = nil
		m.warning = nil
		m.engine.Start()
	case key.Matches(keyMsg, m.keys.Pause):
		m.engine.Pause()
	case key.Matches(keyMsg, m.keys.Reset):
		m.err = nil
		m.warning = nil
		m.engine.Reset()
	case key.Matches(keyMsg, m.keys.History):
		m.showHistory = !m.showHistory
	case key.Matches(keyMsg, m.keys.Help):
		m.helpScreen = NewHelpScreen(&m.keys)
		m.helpScreen.Init()
		if m.width > 0 {
			m.helpScreen.SetSize(m.width, m.height)
		}
		m.state = stateHelp
	case key.Matches(keyMsg, m.keys.ClearData):
		m.state = stateConfirmingClear
		m.clearForm = m.createClearForm()
		return m, m.clearForm.Init()
	}
	return m, nil
}

func (m *Model) createClearForm() *huh.Form {
	confirm := false
	m.clearConfirm = &confirm
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Clear all session data?").
				Description("Totals, streak and history are removed. Profile and goal are kept.").
				Affirmative("Clear").
				Negative("Cancel").
				Value(m.clearConfirm),
		),
	).WithShowHelp(false)
}

func (m *Model) updateConfirmingClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && (keyMsg.String() == "esc" || key.Matches(keyMsg, m.keys.ForceQuit)) {
		m.closeClearForm()
		return m, nil
	}

	if m.clearForm == nil {
		m.state = stateTimer
		return m, nil
	}

	updated, cmd := m.clearForm.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.clearForm = form
	}

	switch m.clearForm.State {
	case huh.StateCompleted:
		confirmed := *m.clearConfirm
		m.closeClearForm()
		if confirmed {
			m.clearAllData()
		}
		return m, nil
	case huh.StateAborted:
		m.closeClearForm()
		return m, nil
	}
	return m, cmd
}

// clearAllData wipes the stored data. A failure is shown as an error rather
// than a warning: the history the user asked to remove is still stored.
func (m *Model) clearAllData() {
	logging.Logger.Info("Clearing all data from the TUI")
	err := m.engine.ClearAllData(context.Background())
	// ClearAllData also reports persist_failed; the error line replaces that warning
	m.warning = nil
	m.err = nil
	if err != nil {
		m.err = fmt.Errorf("could not clear stored data: %w", err)
	}
	m.refreshStatistics()
}

func (m *Model) closeClearForm() {
	m.state = stateTimer
	m.clearForm = nil
	m.clearConfirm = nil
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*HelpScreen)
	if m.helpScreen.Completed {
		m.state = stateTimer
		m.helpScreen = nil
		return m, nil
	}
	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateHelp:
		return m.helpScreen.View()
	case stateConfirmingClear:
		if m.clearForm != nil {
			return m.renderHeader() + "\n\n" + m.clearForm.View()
		}
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderTimer())
	b.WriteString("\n")
	b.WriteString(m.renderStatistics())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render(formatErrorForDisplay(m.err, max(m.width, 40))))
		b.WriteString("\n")
	}

	if m.warning != nil {
		b.WriteString("\n")
		b.WriteString(theme.WarningStyle.Render(formatWarningForDisplay(m.warning, max(m.width, 40))))
		b.WriteString("\n")
	}

	if m.showHistory {
		b.WriteString("\n")
		b.WriteString(theme.TitleStyle.Render("Session History"))
		b.WriteString("\n")
		b.WriteString(RenderHistory(m.snapshot.Days, m.stats, historyDays))
	}

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) renderHeader() string {
	header := theme.AppNameStyle.Render("tempo")
	if m.version != "" {
		header += " " + theme.VersionStyle.Render(m.version)
	}
	if !m.profile.IsEmpty() {
		who := m.profile.Name
		if who == "" {
			who = m.profile.Email
		}
		header += "  " + theme.ProfileStyle.Render(who)
	}
	return header
}

func (m *Model) renderTimer() string {
	state := m.engine.State()

	bar := m.focusBar
	if state.Mode == domain.ModeBreak {
		bar = m.breakBar
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.ModeStyle(string(state.Mode)).Render(state.Mode.Label()),
		theme.ClockStyle.Render(domain.FormatClock(state.TimeRemainingSeconds)),
		bar.ViewAs(state.Progress()),
		"",
		theme.RunStateStyle(string(state.Run)).Render(state.StatusText()),
	)
	return theme.TimerBoxStyle.Render(body)
}

func (m *Model) renderStatistics() string {
	// Counters come from the live state; derived values from the last snapshot
	state := m.engine.State()
	stat := func(label, value string) string {
		return theme.StatLabelStyle.Render(label+" ") + theme.StatValueStyle.Render(value)
	}

	line := strings.Join([]string{
		stat("Today", fmt.Sprint(state.SessionsCompletedToday)),
		stat("Total", fmt.Sprint(state.TotalSessionsCompleted)),
		stat("Focus", domain.FormatDurationShort(state.TotalFocusTimeSeconds)),
		theme.StatLabelStyle.Render("Streak ") + theme.StreakStyle.Render(fmt.Sprintf("%d days", m.snapshot.Streak)),
	}, "   ")

	goal := fmt.Sprintf("%s %d/%d this week",
		theme.StatLabelStyle.Render("Weekly goal"),
		m.snapshot.SessionsThisWeek,
		m.snapshot.WeeklyGoal.TargetSessions)

	return line + "\n" + goal + "\n" + m.goalBar.ViewAs(m.snapshot.WeeklyProgress/100) + "\n"
}
