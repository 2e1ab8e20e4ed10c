package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/riderctl/internal/accessor"
	"github.com/thoreinstein/riderctl/internal/errors"
)

var (
	openLine    int
	openProject string
	openIDE     string
	openModel   string
	openPick    bool
)

func init() {
	openCmd.Flags().IntVarP(&openLine, "line", "l", 0,
		"line to jump to (requires exactly one file)")
	openCmd.Flags().StringVarP(&openProject, "project", "p", "",
		"solution or .uproject file (default: nearest one above the first file or the working directory)")
	openCmd.Flags().StringVar(&openIDE, "ide", "",
		`handle name to open with, as shown by "riderctl list"`)
	openCmd.Flags().StringVarP(&openModel, "model", "m", "",
		"project model: solution, uproject (default: from --project)")
	openCmd.Flags().BoolVar(&openPick, "pick", false,
		"choose the Rider installation interactively")
	openCmd.MarkFlagsMutuallyExclusive("ide", "pick")
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:   "open [FILE...]",
	Short: "Open a project or source files in Rider",
	Long: `Open the current project, or source files inside it, in Rider.

Without files, the project itself is opened. With one file and --line, Rider
jumps to that line. Files that do not exist as given but contain
/Engine/Source/ or /Engine/Plugins/ are looked up under engine_root.

The newest installation is used unless --ide or --pick selects another.`,
	Example: `  # Open the solution found above the working directory
  riderctl open

  # Jump to a line
  riderctl open Source/Game/Player.cpp --line 42

  # Open an Unreal project with a specific installation
  riderctl open --project Game.uproject --ide "Rider Uproject 232.8660.185 (toolbox)"

  # Pick the installation from a list
  riderctl open --pick Source/Game/Player.cpp`,
	RunE: runOpen,
}

// pickHandle asks the user to choose a handle. Tests replace it. A nil
// handle with a nil error means the user aborted.
var pickHandle = pickWithFinder

func runOpen(cmd *cobra.Command, args []string) error {
	if openLine < 0 || (openLine > 0 && len(args) != 1) {
		return errors.NewUserError(errors.New("--line needs exactly one file"), "riderctl open FILE --line N")
	}
	model, err := openModelFor(openModel, openProject)
	if err != nil {
		return err
	}

	cfg := currentConfig()
	s, err := startSession(cmd.Context(), cfg, accessor.NewSolutionCache(solutionFinder(openProject, args)))
	if err != nil {
		return err
	}
	defer s.close()

	a, err := chooseHandle(s.registry, model)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}

	switch {
	case len(args) == 0 && openProject != "":
		err = a.OpenSolutionAtPath(openProject)
	case len(args) == 0:
		err = a.OpenSolution()
	case openLine > 0:
		err = a.OpenFileAtLine(args[0], openLine)
	default:
		err = a.OpenSourceFiles(args)
	}
	if err != nil {
		return openError(err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Opened in %s\n", a.Name())
	}
	return nil
}

// openModelFor picks the project model from the flag, or from the project
// file extension.
func openModelFor(flag, project string) (accessor.ProjectModel, error) {
	if flag != "" {
		m, ok := accessor.ParseModel(flag)
		if !ok {
			return 0, errors.NewUserError(errors.Newf("unknown model %q", flag), "use solution or uproject")
		}
		return m, nil
	}
	if strings.EqualFold(filepath.Ext(project), accessor.ModelUproject.Extension()) {
		return accessor.ModelUproject, nil
	}
	return accessor.ModelSolution, nil
}

// solutionFinder returns the fixed project when one is given, otherwise a
// search upward from the first file's directory.
func solutionFinder(project string, files []string) accessor.Finder {
	if project != "" {
		return accessor.FinderFunc(func(m accessor.ProjectModel) (string, bool) {
			if filepath.Ext(project) == "" {
				return project + m.Extension(), true
			}
			return project, true
		})
	}
	if len(files) > 0 {
		if abs, err := filepath.Abs(files[0]); err == nil {
			if fi, err := os.Stat(abs); err == nil && fi.IsDir() {
				return accessor.DirFinder{Dir: abs}
			}
			return accessor.DirFinder{Dir: filepath.Dir(abs)}
		}
	}
	return accessor.DirFinder{}
}

func chooseHandle(registry *accessor.Registry, model accessor.ProjectModel) (*accessor.Accessor, error) {
	switch {
	case openIDE != "":
		a, ok := registry.Get(openIDE)
		if !ok {
			return nil, errors.NewUserError(errors.Newf("no Rider handle named %q", openIDE), "Run: riderctl list")
		}
		return a, nil
	case openPick:
		var candidates []*accessor.Accessor
		for _, a := range registry.Available() {
			if a.Model() == model {
				candidates = append(candidates, a)
			}
		}
		if len(candidates) == 0 {
			return nil, noHandleError(model)
		}
		return pickHandle(candidates)
	default:
		a, ok := registry.Default(model)
		if !ok {
			return nil, noHandleError(model)
		}
		return a, nil
	}
}

func noHandleError(model accessor.ProjectModel) error {
	return errors.NewUserError(
		errors.Newf("no installed Rider opens %s files", model.Extension()),
		"Run: riderctl list --model "+model.String(),
	)
}

// openError attaches an exit code and suggestion to a launch failure.
func openError(err error) error {
	switch {
	case errors.Is(err, errors.ErrNoSolution):
		return errors.NewUserError(err, "pass --project, or run from a directory below the project file")
	case errors.Is(err, errors.ErrNotFound):
		return errors.NewUserError(err, "check the path, or set engine_root for engine sources")
	case errors.Is(err, errors.ErrNotAvailable):
		return errors.NewSystemError(err, "the installation was removed; Run: riderctl list")
	default:
		return errors.NewSystemError(err, "Run: riderctl doctor")
	}
}
