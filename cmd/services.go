package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/xvierd/tempus-cli/internal/adapters/notification"
	"github.com/xvierd/tempus-cli/internal/config"
	"github.com/xvierd/tempus-cli/internal/domain"
	applog "github.com/xvierd/tempus-cli/internal/log"
	"github.com/xvierd/tempus-cli/internal/services"
)

// appDeps groups all dependencies initialized at startup.
type appDeps struct {
	config     *config.Config
	configPath string
	logger     zerolog.Logger
	logFile    *os.File
	notifier   *notification.Notifier
	timers     *services.TimerService
	runID      string
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the configuration and sets up logging and adapters.
func initializeServices() error {
	var (
		cfg     *config.Config
		loadErr error
	)
	path := configPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return err
		}
		cfg, loadErr = config.Load()
	} else {
		cfg, loadErr = config.LoadFrom(path)
	}
	app.configPath = path
	if loadErr != nil {
		// If config loading fails, use defaults
		cfg = config.DefaultConfig()
	}
	app.config = cfg

	level := cfg.Log.Level
	if logLevel != "" {
		level = logLevel
	}
	var sink io.Writer = os.Stderr
	var logFileErr error
	if cfg.Log.File != "" {
		f, err := applog.OpenFile(cfg.Log.File)
		if err != nil {
			logFileErr = err
		} else {
			app.logFile = f
			sink = f
		}
	}
	applog.Setup(level, sink)

	app.runID = domain.NewRunID()
	app.logger = applog.WithRun(applog.WithComponent("cmd"), app.runID)
	if loadErr != nil {
		app.logger.Warn().Err(loadErr).Str("path", path).Msg("config not loaded, using defaults")
	}
	if logFileErr != nil {
		app.logger.Warn().Err(logFileErr).Str("file", cfg.Log.File).Msg("log file unavailable, logging to stderr")
	}

	app.notifier = notification.New(&app.config.Notifications)
	app.timers = services.NewTimerService(app.config, app.notifier, applog.WithRun(*applog.Get(), app.runID))
	return nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	if app.logFile == nil {
		return nil
	}
	err := app.logFile.Close()
	app.logFile = nil
	return err
}
