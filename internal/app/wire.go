package app

import (
	"context"

	"filesort/internal/adapters/filesystem"
	"filesort/internal/adapters/terminal"
	"filesort/internal/commands"
	"filesort/internal/logging"
	"filesort/internal/processor"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	if err := cfg.Settings.Validate(); err != nil {
		return nil, err
	}

	// Create logger.
	level := cfg.Settings.LogLevel()
	if cfg.Verbose {
		level = logging.LevelDebug
	}
	logger := logging.NewLogger(logging.Config{
		Level:       level,
		Format:      cfg.Settings.Log.Format,
		Output:      cfg.LogOutput,
		Interactive: terminal.NewAdapter(cfg.LogOutput).IsInteractive,
	})
	logging.SetDefault(logger)

	// Create filesystem adapter.
	fs := cfg.FileSystem
	if fs == nil {
		fs = filesystem.New()
	}

	// Create command registry and processor.
	registry := commands.NewRegistry(fs, cfg.Settings.TrashDir, logger)
	proc := processor.New(fs, registry, cfg.Output, logger)

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing filesort with configuration",
		"logLevel", string(level),
		"logFormat", cfg.Settings.Log.Format,
		"verbose", cfg.Verbose,
		"trashDir", cfg.Settings.TrashDir)

	return &App{
		FileSystem: fs,
		Registry:   registry,
		Processor:  proc,
		Logger:     logger,
		Config:     cfg,
	}, nil
}
