package app

import (
	"context"
	"io"
	"os"

	"filesort/internal/commands"
	"filesort/internal/config"
	"filesort/internal/domain"
	"filesort/internal/logging"
	"filesort/internal/processor"
)

// App contains all application dependencies.
type App struct {
	// File operations shared by every command
	FileSystem domain.FileSystemAdapter

	// Command dispatch
	Registry  *commands.Registry
	Processor *processor.Processor

	// Logging
	Logger *logging.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	Settings *config.Config
	Verbose  bool

	// Output receives command results; LogOutput receives diagnostics.
	Output    io.Writer
	LogOutput io.Writer

	FileSystem domain.FileSystemAdapter
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithSettings replaces the loaded configuration.
func WithSettings(settings *config.Config) Option {
	return func(cfg *Config) {
		cfg.Settings = settings
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
	}
}

// WithOutput sets where command results are printed.
func WithOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.Output = w
	}
}

// WithLogOutput sets where diagnostics are written.
func WithLogOutput(w io.Writer) Option {
	return func(cfg *Config) {
		cfg.LogOutput = w
	}
}

// WithFileSystem replaces the filesystem adapter.
func WithFileSystem(fs domain.FileSystemAdapter) Option {
	return func(cfg *Config) {
		cfg.FileSystem = fs
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Settings:  config.Default(),
		Verbose:   false,
		Output:    os.Stdout,
		LogOutput: os.Stderr,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}

// Run executes the script at path.
func (a *App) Run(ctx context.Context, path string) (processor.Stats, error) {
	return a.Processor.Run(ctx, path)
}
