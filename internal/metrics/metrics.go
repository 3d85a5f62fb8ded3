// Package metrics exposes timer activity as Prometheus metrics.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/renato0307/tempo/internal/domain"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/services"
)

// Collector turns engine events into Prometheus metrics
type Collector struct {
	breaksCompleted   prometheus.Counter
	focusSeconds      prometheus.Counter
	persistFailures   prometheus.Counter
	runState          *prometheus.GaugeVec
	sessionsCompleted prometheus.Counter
	timeRemaining     prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		breaksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tempo_breaks_completed_total",
			Help: "Number of break intervals that ran to completion",
		}),
		focusSeconds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tempo_focus_seconds_total",
			Help: "Focus time recorded by completed sessions, in seconds",
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tempo_persist_failures_total",
			Help: "Number of failed writes to the state store",
		}),
		runState: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tempo_run_state",
			Help: "1 for the current run state and mode, 0 otherwise",
		}, []string{"state", "mode"}),
		sessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tempo_sessions_completed_total",
			Help: "Number of focus sessions completed",
		}),
		timeRemaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tempo_time_remaining_seconds",
			Help: "Seconds left in the current interval",
		}),
	}

	reg.MustRegister(
		c.breaksCompleted,
		c.focusSeconds,
		c.persistFailures,
		c.runState,
		c.sessionsCompleted,
		c.timeRemaining,
	)
	return c
}

// Observe is a services.Observer
func (c *Collector) Observe(ev services.Event) {
	switch ev.Type {
	case services.EventSessionCompleted:
		c.sessionsCompleted.Inc()
		if ev.Record != nil {
			c.focusSeconds.Add(float64(ev.Record.DurationSeconds))
		}
	case services.EventBreakCompleted:
		c.breaksCompleted.Inc()
	case services.EventPersistFailed:
		c.persistFailures.Inc()
	}
	c.setState(ev.State)
}

func (c *Collector) setState(state domain.TimerState) {
	c.timeRemaining.Set(float64(state.TimeRemainingSeconds))
	for _, run := range []domain.RunState{domain.RunIdle, domain.RunPaused, domain.RunRunning} {
		for _, mode := range []domain.Mode{domain.ModeBreak, domain.ModeFocus} {
			v := 0.0
			if run == state.Run && mode == state.Mode {
				v = 1
			}
			c.runState.WithLabelValues(string(run), string(mode)).Set(v)
		}
	}
}

// Handler returns the /metrics handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// SetupMetricsRoute mounts the handler under /metrics
func SetupMetricsRoute(gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", Handler(gatherer))
	return mux
}

// Serve runs the metrics endpoint on addr until ctx is done
func Serve(ctx context.Context, addr string, gatherer prometheus.Gatherer) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           SetupMetricsRoute(gatherer),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Metrics server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logging.Logger.Info("Metrics server stopped")
		return nil
	}
}
