package main

import (
	"io"

	"github.com/alexisbeaulieu97/lumen/internal/config"
	"github.com/alexisbeaulieu97/lumen/internal/lighting"
	"github.com/alexisbeaulieu97/lumen/internal/logger"
	"github.com/alexisbeaulieu97/lumen/internal/stylevars"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
	lumenerrors "github.com/alexisbeaulieu97/lumen/pkg/errors"
)

// AppContext bundles the services every command shares. It is filled in by
// the root command before any subcommand runs.
type AppContext struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logger.Logger
}

func loadAppContext(flags *rootFlags, stderr io.Writer) (*AppContext, error) {
	cfg, path, err := config.Load(flags.configPath)
	if err != nil {
		return nil, lumenerrors.NewCommandError("lumen", "loading configuration", err,
			"fix the reported field or pass --config with a valid file")
	}

	level := cfg.Logging.Level
	if flags.verbose {
		level = "debug"
	}
	logFile := cfg.Logging.File
	if flags.logFile != "" {
		logFile = flags.logFile
	}

	opts := logger.Options{
		Level:         level,
		HumanReadable: cfg.Logging.HumanReadable,
		Writer:        stderr,
	}
	if logFile != "" {
		opts.File = logger.DefaultFileOptions(logFile)
	}

	log, err := logger.New(opts)
	if err != nil {
		return nil, lumenerrors.NewCommandError("lumen", "creating logger", err,
			"logging.level must be one of debug, info, warn, error")
	}

	if path != "" {
		log.With("config", path).Debug("configuration loaded")
	}

	return &AppContext{Config: cfg, ConfigPath: path, Logger: log}, nil
}

// Brand resolves the configured brand, falling back to the default preset.
func (a *AppContext) Brand() theme.Brand {
	b, err := a.Config.Brand()
	if err != nil {
		return theme.Default()
	}
	return b
}

// EngineOptions maps the engine section of the config onto lighting options.
func (a *AppContext) EngineOptions(mirror *stylevars.Store) lighting.Options {
	opts := lighting.DefaultOptions()
	opts.InitialAngle = a.Config.Engine.InitialAngle
	opts.InitialAnimating = a.Config.Engine.InitialAnimating
	opts.InitialSpeed = a.Config.Engine.InitialSpeed
	opts.FrameRate = a.Config.Engine.FrameRate
	opts.Mirror = mirror
	opts.Logger = a.Logger
	return opts
}

// Close flushes the log file.
func (a *AppContext) Close() {
	if a == nil {
		return
	}
	_ = a.Logger.Close()
}
