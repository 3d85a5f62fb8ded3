package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/metrics"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	MetricsAddr     string `help:"Serve Prometheus metrics on this address (empty disables)" env:"TEMPO_METRICS_ADDR"`
	NoNotifications bool   `help:"Disable desktop notifications"`
	NoSound         bool   `help:"Disable audio cues"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	if r.MetricsAddr == "" && cli.settings != nil {
		if _, hasEnv := os.LookupEnv("TEMPO_METRICS_ADDR"); !hasEnv {
			r.MetricsAddr = cli.settings.MetricsAddr
		}
	}

	logging.Logger.Info("Starting tempo TUI")
	ctx := context.Background()
	container := cli.Container

	loadErr := container.Engine.Load(ctx)

	profile, err := container.ProfileService.GetProfile(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load profile", "error", err)
	}

	goal, err := container.ProfileService.GetWeeklyGoal(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load weekly goal, using default", "error", err)
		goal = domain.DefaultWeeklyGoal()
	}

	// Validate key bindings if configured
	var keysConfig config.KeyBindingsConfig
	if cli.settings != nil && cli.settings.Keys != nil {
		if err := cli.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
			return fmt.Errorf("invalid key bindings in settings.json: %w", err)
		}
		keysConfig = cli.settings.Keys
		logging.Logger.Debug("Custom key bindings loaded and validated")
	}

	model := ui.NewModel(
		container.Engine,
		container.StatisticsService,
		profile,
		goal,
		keysConfig,
		cli.version,
	)
	defer model.Close()
	if loadErr != nil {
		model.SetWarning(fmt.Errorf("stored progress could not be read, saving is paused: %w", loadErr))
	}

	logging.Logger.Debug("Initializing Bubble Tea program")
	p := tea.NewProgram(model, tea.WithAltScreen())
	container.Dispatcher.Bind(p)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	if r.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		collector := metrics.NewCollector(reg)
		collector.Observe(services.Event{Type: services.EventStateChanged, State: container.Engine.State()})
		unsubscribe := container.Engine.Subscribe(collector.Observe)
		defer unsubscribe()

		g.Go(func() error {
			// A metrics failure is logged and never takes the timer down
			if err := metrics.Serve(gctx, r.MetricsAddr, reg); err != nil {
				logging.Logger.Error("Metrics server error", "error", err, "addr", r.MetricsAddr)
			}
			return nil
		})
	}

	g.Go(func() error {
		defer cancel()
		logging.Logger.Info("Starting TUI program")
		if _, err := p.Run(); err != nil {
			logging.Logger.Error("TUI program error", "error", err)
			return fmt.Errorf("error running program: %w", err)
		}
		logging.Logger.Info("TUI program exited normally")
		return nil
	})

	return g.Wait()
}
