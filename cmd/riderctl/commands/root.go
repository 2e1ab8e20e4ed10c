// Package commands implements the CLI commands for riderctl.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/riderctl/cmd"
	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/logging"
)

// debugEnv raises the log level when no -v flag is given.
const debugEnv = config.EnvPrefix + "_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// colorFlag holds the value of the --color flag.
var colorFlag string

// configFile holds the value of the --config flag.
var configFile string

// loadedConfig is the configuration read during initialization.
var loadedConfig *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format, including trace records")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: <config dir>/riderctl/config.yaml)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("riderctl version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	loadedConfig, configLoadErr = config.Load(configFile)
}

// currentConfig returns the loaded configuration, or the defaults when
// loading failed or never ran.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return config.Default()
}

var rootCmd = &cobra.Command{
	Use:   "riderctl",
	Short: "Find JetBrains Rider installations and open projects in them",
	Long: `riderctl discovers every JetBrains Rider installation on this machine,
ranks them by version, and opens solutions, Unreal projects, and source
files in the one you pick.

Installations are found through JetBrains Toolbox, well-known install
locations, the platform search utility (mdfind or locate), the Windows
uninstall registry, and a manual override list.`,
	Example: `  # List every Rider installation
  riderctl list

  # Open a file at a line in the newest Rider
  riderctl open Source/Game/Player.cpp --line 42

  # Check why an installation is not found
  riderctl doctor --verbose

  See Also: riderctl config show`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv(debugEnv); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	mode, err := logging.ParseColorMode(colorFlag)
	if err != nil {
		return errors.NewUserError(err, "use --color auto, always, or never")
	}
	logging.SetColorMode(mode, cmd.OutOrStdout())

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var console slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		console = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	case logging.FormatText:
		console = logging.NewHandler(cmd.ErrOrStderr(), opts)
	default:
		return errors.NewUserError(errors.Newf("unknown log format %q", logFormat), "use --log-format text or --log-format json")
	}

	handler := console
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// The file sink records down to trace regardless of -v.
		handler = logging.NewMultiHandler(
			logging.Sink{Handler: console, Level: level},
			logging.Sink{
				Handler: slog.NewJSONHandler(f, &slog.HandlerOptions{Level: logging.LevelTrace}),
				Level:   logging.LevelTrace,
			},
		)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a config load failure, except for commands that must
// work with a broken config.
func checkConfig(cmd *cobra.Command) error {
	switch cmd.Name() {
	case "help", "version", "doctor":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return errors.Wrap(rootCmd.Execute(), "executing root command")
}
