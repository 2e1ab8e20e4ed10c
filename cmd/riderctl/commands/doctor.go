package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/doctor"
	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/locator"
	"github.com/thoreinstein/riderctl/internal/metadata"
)

var (
	doctorJSON    bool
	doctorVerbose bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.MarkFlagsMutuallyExclusive("json", "verbose")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose why Rider installations are or are not found",
	Long: `Run diagnostic checks on every input of Rider discovery.

Checks the platform layout, configuration, Toolbox data directories, the
search utility, the override list, and the discovered executables.

Output modes:
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --json      Machine-readable JSON output
  -q          No output, exit code only

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	return runDoctorWithWriter(cmd, os.Stdout)
}

// runDoctorWithWriter allows injecting a writer for testing.
func runDoctorWithWriter(cmd *cobra.Command, w io.Writer) error {
	report := buildDoctorRunner(currentConfig()).Run(cmd.Context())

	if err := outputDoctorReport(w, report); err != nil {
		return err
	}

	// Determine exit code based on results
	if report.HasErrors() {
		return errors.NewExitError(nil, errors.ExitSystem)
	}
	if report.HasWarnings() {
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}

func buildDoctorRunner(cfg *config.Config) *doctor.Runner {
	runner := doctor.NewRunner()
	runner.AddCheck(doctor.NewPlatformCheck(runtime.GOOS, locator.SystemEnv()))
	runner.AddCheck(doctor.NewConfigCheck(config.FileUsed(), configLoadErr))

	p, err := currentPlatform()
	if err != nil {
		return runner
	}

	opts := locatorOptions(cfg)
	toolbox := &locator.Toolbox{Platform: p, Location: opts.ToolboxLocation, Registry: opts.Registry}
	override := &locator.Override{Platform: p, Resources: opts.Resources, Paths: opts.CustomPaths}

	runner.AddCheck(doctor.NewStrategiesCheck(locator.ForPlatform(p, opts), cfg.Search.Disabled))
	runner.AddCheck(doctor.NewToolboxCheck(toolbox, cfg.Disabled(config.StrategyToolbox)))
	runner.AddCheck(doctor.NewSearchUtilityCheck(p, cfg.Disabled(config.StrategySearch)))
	runner.AddCheck(doctor.NewOverrideListCheck(override, cfg.Disabled(config.StrategyOverride)))
	runner.AddCheck(doctor.NewFileSyntaxCheck(syntaxTargets(p, cfg)...))

	collector, err := newCollector(cfg)
	if err != nil {
		return runner
	}
	installs := doctor.Once(collector)
	runner.AddCheck(doctor.NewInstallsCheck(installs))
	runner.AddCheck(doctor.NewExecutableCheck(installs))
	return runner
}

// syntaxTargets lists the structured files discovery reads.
func syntaxTargets(p locator.Platform, cfg *config.Config) []string {
	files := []string{config.FileUsed()}
	for _, base := range []string{cfg.Toolbox.Location, p.ToolboxBase} {
		if base != "" {
			files = append(files, filepath.Join(base, metadata.SettingsFile))
		}
	}
	return files
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if quiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	outputDoctorText(w, report)
	return nil
}

func outputDoctorText(w io.Writer, report *doctor.DoctorReport) {
	// In normal mode, show only errors and warnings
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, bold.Sprint(result.Name), result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  %s %s\n", gray.Sprint("hint:"), result.FixHint)
		}
		if showAll {
			writeInstallDetails(w, result)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

// writeInstallDetails lists each discovered install under the installs
// check in verbose mode.
func writeInstallDetails(w io.Writer, result *doctor.CheckResult) {
	installs, ok := result.Details["installs"].([]map[string]any)
	if !ok {
		return
	}
	for _, inst := range installs {
		fmt.Fprintf(w, "    %s %v (%v, %v) %s\n",
			cyan.Sprint("-"), inst["version"], inst["origin"], inst["support"], inst["path"])
	}
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return green.Sprint("✓")
	case doctor.SeverityInfo:
		return cyan.Sprint("ℹ")
	case doctor.SeverityWarning:
		return yellow.Sprint("⚠")
	case doctor.SeverityError:
		return red.Sprint("✗")
	default:
		return "?"
	}
}
