package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/paths"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect riderctl configuration",
	Long: `Inspect riderctl configuration stored in <config dir>/riderctl/config.yaml.

Every key can also be set through the environment with the RIDERCTL_
prefix, e.g. RIDERCTL_SEARCH_TIMEOUT=30s or RIDERCTL_ENGINE_ROOT.

Without a subcommand, shows the effective configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the effective configuration, after defaults and environment overrides, in YAML format.`,
	Example: `  # Show configuration
  riderctl config show

  # Show with an override applied
  RIDERCTL_SEARCH_TIMEOUT=30s riderctl config show

See Also: riderctl config path, riderctl doctor`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		writeConfigPath(cmd.OutOrStdout())
	},
}

// configView is the YAML rendering of Config, with durations as strings.
type configView struct {
	Version int `yaml:"version"`
	Search  struct {
		Timeout  string   `yaml:"timeout"`
		Disabled []string `yaml:"disabled"`
		Exclude  []string `yaml:"exclude"`
	} `yaml:"search"`
	Toolbox      config.ToolboxConfig `yaml:"toolbox"`
	CustomPaths  []string             `yaml:"custom_paths"`
	ResourcesDir string               `yaml:"resources_dir,omitempty"`
	EngineRoot   string               `yaml:"engine_root,omitempty"`
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	return writeConfig(os.Stdout, currentConfig())
}

func writeConfig(w io.Writer, cfg *config.Config) error {
	var view configView
	view.Version = cfg.Version
	view.Search.Timeout = cfg.Search.Timeout.String()
	view.Search.Disabled = nonNil(cfg.Search.Disabled)
	view.Search.Exclude = nonNil(cfg.Search.Exclude)
	view.Toolbox = cfg.Toolbox
	view.CustomPaths = nonNil(cfg.CustomPaths)
	view.ResourcesDir = cfg.ResourcesDir
	view.EngineRoot = cfg.EngineRoot

	data, err := yaml.Marshal(view)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	_, err = w.Write(data)
	return errors.Wrap(err, "writing config")
}

func writeConfigPath(w io.Writer) {
	if used := config.FileUsed(); used != "" {
		fmt.Fprintln(w, used)
		return
	}
	fmt.Fprintf(w, "%s (not created)\n", filepath.Join(paths.ConfigDir(), "config.yaml"))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
