package cmd

import (
	adapterclock "github.com/renato0307/tempo/internal/adapters/clock"
	adapterlocale "github.com/renato0307/tempo/internal/adapters/locale"
	adapternotify "github.com/renato0307/tempo/internal/adapters/notify"
	adaptersound "github.com/renato0307/tempo/internal/adapters/sound"
	adapterstorage "github.com/renato0307/tempo/internal/adapters/storage"
	"github.com/renato0307/tempo/internal/logging"
	"github.com/renato0307/tempo/internal/ports"
	"github.com/renato0307/tempo/internal/services"
	"github.com/renato0307/tempo/internal/ui"
)

// ContainerOptions selects the adapters wired into the container
type ContainerOptions struct {
	DBPath        string
	Locale        string
	Notifications bool
	Sound         bool
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	Engine            *services.TimerEngine
	ProfileService    *services.ProfileService
	StatisticsService *services.StatisticsService
	Store             *services.PersistedStore

	// Adapters
	Dispatcher *ui.ProgramDispatcher
	Sound      ports.SoundPlayer

	// StorageErr is set when the database could not be opened and an
	// in-memory store is used instead
	StorageErr error

	// Internal - for cleanup only
	kv ports.KeyValueStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	var (
		kv         ports.KeyValueStore
		storageErr error
	)
	sqliteStore, err := adapterstorage.NewSQLiteStore(opts.DBPath)
	if err != nil {
		logging.Logger.Error("Failed to open database, falling back to memory", "error", err, "path", opts.DBPath)
		kv = adapterstorage.NewMemoryStore(nil)
		storageErr = err
	} else {
		kv = sqliteStore
	}

	var soundPlayer ports.SoundPlayer = adaptersound.Disabled{}
	if opts.Sound {
		soundPlayer = adaptersound.NewPlayer()
	}

	var notifier ports.SystemNotifier = adapternotify.Disabled{}
	if opts.Notifications {
		notifier = adapternotify.NewNotifier()
	}

	formatter := adapterlocale.FromEnvironment()
	if opts.Locale != "" {
		formatter = adapterlocale.NewFormatter(opts.Locale)
	}
	logging.Logger.Debug("Date formatter selected", "locale", formatter.Tag().String())

	// Ticks are posted to the TUI update loop once the program is bound
	dispatcher := &ui.ProgramDispatcher{}
	scheduler := adapterclock.NewTickerScheduler(dispatcher.Dispatch)

	store := services.NewPersistedStore(kv)

	return &Container{
		Dispatcher:        dispatcher,
		Engine:            services.NewTimerEngine(store, scheduler, soundPlayer, notifier),
		ProfileService:    services.NewProfileService(store),
		Sound:             soundPlayer,
		StatisticsService: services.NewStatisticsService(store, formatter),
		StorageErr:        storageErr,
		Store:             store,
		kv:                kv,
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.kv != nil {
		return c.kv.Close()
	}
	return nil
}
