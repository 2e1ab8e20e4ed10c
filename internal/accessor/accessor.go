package accessor

import (
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/thoreinstein/riderctl/internal/errors"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/process"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// Accessor is a named handle bound to one install and one project model.
type Accessor struct {
	name      string
	info      install.Info
	model     ProjectModel
	aggregate bool

	launcher   process.Launcher
	solutions  *SolutionCache
	engineRoot string
	logger     *slog.Logger

	available atomic.Bool
}

// Name is the handle's display name, unique within one Generate result.
func (a *Accessor) Name() string { return a.name }

// Info returns a copy of the install the handle launches.
func (a *Accessor) Info() install.Info { return a.info }

// ExecutablePath is the program the handle starts.
func (a *Accessor) ExecutablePath() string { return a.info.Path }

// Model is the project model the handle opens.
func (a *Accessor) Model() ProjectModel { return a.model }

// Aggregate reports whether this is the default handle of its model.
func (a *Accessor) Aggregate() bool { return a.aggregate }

// IsAvailable reports whether the executable exists right now.
func (a *Accessor) IsAvailable() bool {
	return a.RefreshAvailability()
}

// RefreshAvailability re-checks the executable and records the result for
// [Accessor.LastAvailable].
func (a *Accessor) RefreshAvailability() bool {
	ok := fileutil.FileExists(a.info.Path)
	if prev := a.available.Swap(ok); prev != ok {
		a.logger.Debug("availability changed", "handle", a.name, "available", ok)
	}
	return ok
}

// LastAvailable is the result of the most recent availability check.
func (a *Accessor) LastAvailable() bool { return a.available.Load() }

// OpenSolution opens the model's project file.
func (a *Accessor) OpenSolution() error {
	if err := a.ready(); err != nil {
		return err
	}
	sln, err := a.solution()
	if err != nil {
		return err
	}
	return a.launch(sln)
}

// OpenSolutionAtPath opens path, adding the model's extension when it is
// missing.
func (a *Accessor) OpenSolutionAtPath(path string) error {
	if err := a.ready(); err != nil {
		return err
	}
	if ext := a.model.Extension(); !strings.EqualFold(filepath.Ext(path), ext) {
		path += ext
	}
	return a.launch(path)
}

// OpenFileAtLine opens file at line inside the current project.
func (a *Accessor) OpenFileAtLine(file string, line int) error {
	if err := a.ready(); err != nil {
		return err
	}
	sln, err := a.solution()
	if err != nil {
		return err
	}
	resolved, ok := ResolveFile(file, a.engineRoot)
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "source file %s", file)
	}
	return a.launch(sln, "--line", strconv.Itoa(line), resolved)
}

// OpenSourceFiles opens several files inside the current project. Nothing
// is launched if any file cannot be resolved.
func (a *Accessor) OpenSourceFiles(files []string) error {
	if err := a.ready(); err != nil {
		return err
	}
	sln, err := a.solution()
	if err != nil {
		return err
	}
	args := make([]string, 0, len(files)+1)
	args = append(args, sln)
	for _, f := range files {
		resolved, ok := ResolveFile(f, a.engineRoot)
		if !ok {
			return errors.Wrapf(errors.ErrNotFound, "source file %s", f)
		}
		args = append(args, resolved)
	}
	return a.launch(args...)
}

func (a *Accessor) ready() error {
	if !a.IsAvailable() {
		return errors.Wrapf(errors.ErrNotAvailable, "%s: %s", a.name, a.info.Path)
	}
	if a.launcher == nil {
		return errors.Wrap(errors.ErrLaunchFailed, "no launcher configured")
	}
	return nil
}

func (a *Accessor) solution() (string, error) {
	if a.solutions != nil {
		if sln, ok := a.solutions.Get(a.model); ok {
			return sln, nil
		}
	}
	return "", errors.Wrapf(errors.ErrNoSolution, "no %s file", a.model.Extension())
}

func (a *Accessor) launch(args ...string) error {
	a.logger.Info("launching rider", "handle", a.name, "exe", a.info.Path, "args", args)
	if err := a.launcher.Start(a.info.Path, args...); err != nil {
		a.logger.Warn("launch failed", "handle", a.name, "error", err)
		return errors.Mark(errors.Wrapf(err, "launching %s", a.name), errors.ErrLaunchFailed)
	}
	return nil
}
