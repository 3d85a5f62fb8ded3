package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tempo/internal/config"
	"github.com/renato0307/tempo/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Run       RunCmd       `cmd:"" help:"Start the focus timer TUI (default)" default:"1"`
	Stats     StatsCmd     `cmd:"stats" help:"Show focus statistics and session history"`
	Profile   ProfileCmd   `cmd:"profile" help:"Show or update the user profile"`
	Goal      GoalCmd      `cmd:"goal" help:"Show or update the weekly session goal"`
	Clear     ClearCmd     `cmd:"clear" help:"Clear totals, streak and history"`
	PlaySound PlaySoundCmd `cmd:"play-sound" help:"Play notification sound (cross-platform)" hidden:""`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage settings (meta, keys)"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
	version   string           `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// SetVersion sets the version shown in the TUI header
func (c *CLI) SetVersion(version string) {
	c.version = version
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies when the flag is at its default and the env var is unset.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("TEMPO_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("TEMPO_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (sound and notification helpers) share the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TEMPO_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TEMPO_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TEMPO_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container logs through gorm, so it is created after logging
	container, err := NewContainer(c.containerOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	if container.StorageErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: storage unavailable, progress will not be kept: %v\n", container.StorageErr)
	}

	return nil
}

// containerOptions merges run flags with settings.json
func (c *CLI) containerOptions() ContainerOptions {
	opts := ContainerOptions{
		DBPath:        config.GetDBPath(),
		Notifications: !c.Run.NoNotifications,
		Sound:         !c.Run.NoSound,
	}
	if c.settings != nil {
		opts.Locale = c.settings.Locale
		opts.Notifications = opts.Notifications && c.settings.NotificationsEnabled()
		opts.Sound = opts.Sound && c.settings.SoundEnabled()
	}
	return opts
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
