package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"filesort/internal/domain"
	ferrors "filesort/internal/errors"
	"filesort/internal/logging"
	"filesort/internal/services/trash"
)

// Keys shared by the config file, flags and FILESORT_* environment variables.
const (
	KeyTrashDir  = "trash-dir"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"

	EnvPrefix = "FILESORT"
)

// Config represents the main configuration structure.
type Config struct {
	TrashDir string    `yaml:"trashDir"`
	Log      LogConfig `yaml:"log"`
}

// LogConfig holds diagnostic logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		TrashDir: trash.DefaultDir,
		Log: LogConfig{
			Level:  string(logging.LevelWarn),
			Format: logging.FormatAuto,
		},
	}
}

// DefaultPath returns $HOME/.config/filesort/config.yaml.
func DefaultPath(fs domain.FileSystemAdapter) (string, error) {
	homeDir, err := fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "filesort", "config.yaml"), nil
}

// Load reads the YAML configuration at path. A missing or empty file yields
// the defaults; fields absent from the file keep their default values.
func Load(fs domain.FileSystemAdapter, path string) (*Config, error) {
	cfg := Default()

	data, err := fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, ferrors.NewConfigurationError("config_path", path, "failed to read config file", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, ferrors.NewConfigurationError("config_format", "yaml", "failed to unmarshal config", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Overrides is the read side of a viper instance.
type Overrides interface {
	IsSet(key string) bool
	GetString(key string) string
}

// ApplyOverrides copies values explicitly set through flags or environment
// variables in v over the file values.
func (c *Config) ApplyOverrides(v Overrides) error {
	if v.IsSet(KeyTrashDir) {
		c.TrashDir = v.GetString(KeyTrashDir)
	}
	if v.IsSet(KeyLogLevel) {
		c.Log.Level = v.GetString(KeyLogLevel)
	}
	if v.IsSet(KeyLogFormat) {
		c.Log.Format = v.GetString(KeyLogFormat)
	}
	return c.Validate()
}

// Validate checks every field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TrashDir) == "" {
		return ferrors.NewConfigurationError("trashDir", c.TrashDir, "trash directory must not be empty", nil)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return ferrors.NewConfigurationError("log.level", c.Log.Level, "must be one of: debug, info, warn, error", err)
	}
	if !logging.ValidFormat(c.Log.Format) {
		return ferrors.NewConfigurationError("log.format", c.Log.Format, "must be one of: text, json, auto", nil)
	}
	return nil
}

// LogLevel returns the parsed log level; Validate must have succeeded.
func (c *Config) LogLevel() logging.LogLevel {
	level, err := logging.ParseLevel(c.Log.Level)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, ferrors.NewConfigurationError("config_format", "yaml", "failed to marshal config", err)
	}
	return data, nil
}

// NewViper returns a viper instance reading FILESORT_* environment variables,
// e.g. FILESORT_TRASH_DIR.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}
