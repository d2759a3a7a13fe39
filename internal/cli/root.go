package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"filesort/internal/adapters/filesystem"
	"filesort/internal/app"
	"filesort/internal/config"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: filesort <input-file>"

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// rootOptions holds the values of the root command's flags.
type rootOptions struct {
	cfgFile    string
	verbose    bool
	showConfig bool
}

// NewRootCommand builds the filesort command. extra options are applied
// after the ones derived from flags and configuration.
func NewRootCommand(extra ...app.Option) *cobra.Command {
	opts := &rootOptions{}
	v := config.NewViper()

	cmd := &cobra.Command{
		Use:   "filesort <input-file>",
		Short: "Run a script of file inspection, sorting and delete commands",
		Long: `Filesort reads a script with one command per line and runs each in order.

Commands can report the size or type of a .txt, .json or .csv file, sort
2 to 10 such files by name, creation time or modification time, and move
a file into a trash directory (default bin/deleted) without overwriting.
Run a script containing the single line "help" for the full list.`,
		Version:       versionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(opts, v)
			if err != nil {
				return err
			}

			if opts.showConfig {
				data, err := settings.Marshal()
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if len(args) != 1 {
				fmt.Fprintln(cmd.OutOrStdout(), usageLine)
				return nil
			}

			appOpts := []app.Option{
				app.WithSettings(settings),
				app.WithVerbose(opts.verbose),
				app.WithOutput(cmd.OutOrStdout()),
				app.WithLogOutput(cmd.ErrOrStderr()),
			}
			appOpts = append(appOpts, extra...)

			application, err := app.NewApp(cmd.Context(), appOpts...)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			_, err = application.Run(cmd.Context(), args[0])
			return err
		},
	}

	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	flags := cmd.Flags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/filesort/config.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.BoolVar(&opts.showConfig, "show-config", false, "Print the effective configuration as YAML and exit")
	flags.String(config.KeyTrashDir, "", "Directory deleted files are moved into (default bin/deleted)")
	flags.String(config.KeyLogLevel, "", "Log level: debug, info, warn, error")
	flags.String(config.KeyLogFormat, "", "Log format: text, json, auto")

	for _, key := range []string{config.KeyTrashDir, config.KeyLogLevel, config.KeyLogFormat} {
		cobra.CheckErr(v.BindPFlag(key, flags.Lookup(key)))
	}

	return cmd
}

// loadSettings reads the config file and layers flags and environment on top.
func loadSettings(opts *rootOptions, v config.Overrides) (*config.Config, error) {
	fs := filesystem.New()

	path := opts.cfgFile
	if path == "" {
		var err error
		path, err = config.DefaultPath(fs)
		if err != nil {
			// Without a home directory only defaults and overrides apply.
			path = ""
		}
	}

	settings := config.Default()
	if path != "" {
		loaded, err := config.Load(fs, path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if err := settings.ApplyOverrides(v); err != nil {
		return nil, err
	}
	return settings, nil
}

func versionString() string {
	info := GetVersionInfo()
	return fmt.Sprintf("%s (commit %s, built %s by %s)", info.Version, info.Commit, info.Date, info.BuiltBy)
}

// Execute runs the root command, stopping at the next line boundary on interrupt.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
