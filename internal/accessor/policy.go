package accessor

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/process"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// Aggregate handle names.
const (
	AggregateSolution = "Rider"
	AggregateUproject = "Rider Uproject"
)

const experimentalSuffix = " (experimental)"

// Options are shared by every generated handle.
type Options struct {
	Launcher   process.Launcher
	Solutions  *SolutionCache
	EngineRoot string
	Logger     *slog.Logger
}

// Generate builds handles for installs, which must be sorted ascending by
// version. Solution handles come first, one per install followed by the
// aggregate; project-file handles follow for installs with Support other
// than None. Empty groups produce no handles.
func Generate(sorted []install.Info, opts Options) []*Accessor {
	if opts.Logger == nil {
		opts.Logger = logging.NewDiscard()
	}

	uproject := make([]install.Info, 0, len(sorted))
	for _, info := range sorted {
		if info.Support != install.SupportNone {
			uproject = append(uproject, info)
		}
	}

	out := make([]*Accessor, 0, 2*len(sorted)+2)
	out = appendView(out, sorted, ModelSolution, opts)
	out = appendView(out, uproject, ModelUproject, opts)
	return out
}

func appendView(out []*Accessor, view []install.Info, model ProjectModel, opts Options) []*Accessor {
	if len(view) == 0 {
		return out
	}
	taken := make(map[string]bool, len(view))
	for _, info := range view {
		name := HandleName(info, model)
		if taken[name] {
			name = distinctName(name, info, taken)
			opts.Logger.Debug("handle renamed", "name", name, "path", info.Path)
		}
		taken[name] = true
		out = append(out, newAccessor(name, info, model, false, opts))
	}
	top := view[len(view)-1]
	return append(out, newAccessor(AggregateName(top, model), top, model, true, opts))
}

func newAccessor(name string, info install.Info, model ProjectModel, aggregate bool, opts Options) *Accessor {
	a := &Accessor{
		name:       name,
		info:       info,
		model:      model,
		aggregate:  aggregate,
		launcher:   opts.Launcher,
		solutions:  opts.Solutions,
		engineRoot: opts.EngineRoot,
		logger:     opts.Logger,
	}
	a.available.Store(fileutil.FileExists(info.Path))
	return a
}

// HandleName is the per-install handle name for model.
func HandleName(info install.Info, model ProjectModel) string {
	if model == ModelUproject {
		name := fmt.Sprintf("Rider Uproject %s (%s)", info.Version, info.Origin)
		if info.Support == install.SupportBeta {
			name += experimentalSuffix
		}
		return name
	}
	return fmt.Sprintf("Rider %s (%s)", info.Version, info.Origin)
}

// distinctName suffixes name with the install directory of info, or with
// the full path when that directory name is also taken.
func distinctName(name string, info install.Info, taken map[string]bool) string {
	if dir := installDirName(info.Path); dir != "" {
		if candidate := fmt.Sprintf("%s [%s]", name, dir); !taken[candidate] {
			return candidate
		}
	}
	return fmt.Sprintf("%s [%s]", name, install.NormalizePath(info.Path))
}

// installDirName is the install directory above the executable, skipping
// bin and Contents/MacOS: /opt/rider-2023/bin/rider.sh gives rider-2023.
func installDirName(exe string) string {
	dir := path.Dir(install.NormalizePath(exe))
	switch {
	case path.Base(dir) == "bin":
		dir = path.Dir(dir)
	case strings.HasSuffix(dir, "/Contents/MacOS"):
		dir = strings.TrimSuffix(dir, "/Contents/MacOS")
	}
	switch base := path.Base(dir); base {
	case ".", "/":
		return ""
	default:
		return base
	}
}

// AggregateName is the aggregate handle name for model when top is the
// newest install.
func AggregateName(top install.Info, model ProjectModel) string {
	if model == ModelUproject {
		if top.Support == install.SupportBeta {
			return AggregateUproject + experimentalSuffix
		}
		return AggregateUproject
	}
	return AggregateSolution
}
