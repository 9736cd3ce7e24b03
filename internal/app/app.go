package app

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/five82/swcrawl/internal/config"
	"github.com/five82/swcrawl/internal/logging"
	"github.com/five82/swcrawl/internal/prefs"
	"github.com/five82/swcrawl/internal/state"
	"github.com/five82/swcrawl/internal/swapi"
	"github.com/five82/swcrawl/internal/ui"
)

// Options configure a swcrawl run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/swcrawl/prefs.toml

	// Headless commands log to LogOutput (stderr when nil) in LogFormat.
	LogFormat string
	LogOutput io.Writer
}

// env is the wiring shared by the TUI and the headless commands.
type env struct {
	cfg      config.Config
	client   *swapi.Client
	logger   *log.Logger
	closeLog func() error
}

func setup(opts Options, interactive bool) (*env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logOpts := logging.Options{Level: cfg.LogLevel, Format: opts.LogFormat, Output: opts.LogOutput}
	if interactive {
		// The TUI owns the terminal.
		logOpts = logging.Options{Level: cfg.LogLevel, Path: cfg.LogPath}
	}
	logger, closeLog, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	client, err := swapi.NewClient(cfg.APIBase, cfg.RequestTimeout)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("init api client: %w", err)
	}

	logger.Debug("configuration loaded",
		"api_base", client.BaseURL(),
		"request_timeout", cfg.RequestTimeout,
		"concurrency", cfg.Concurrency)

	return &env{cfg: cfg, client: client, logger: logger, closeLog: closeLog}, nil
}

// Run boots the swcrawl TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	e, err := setup(opts, true)
	if err != nil {
		return err
	}
	defer func() { _ = e.closeLog() }()

	userPrefs := prefs.Load(opts.PrefsPath)
	e.logger.Info("starting tui", "api_base", e.client.BaseURL(), "theme", userPrefs.Theme)

	err = ui.Run(ui.Options{
		Context:   ctx,
		Client:    e.client,
		Store:     &state.Store{},
		Config:    e.cfg,
		Logger:    e.logger,
		ThemeName: userPrefs.Theme,
		SortName:  userPrefs.Sort,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		e.logger.Error("tui exited with error", "error", err)
		return err
	}
	e.logger.Info("tui closed")
	return nil
}
