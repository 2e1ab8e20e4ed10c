package locator

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/thoreinstein/riderctl/internal/config"
	"github.com/thoreinstein/riderctl/internal/install"
	"github.com/thoreinstein/riderctl/internal/logging"
	"github.com/thoreinstein/riderctl/internal/process"
	"github.com/thoreinstein/riderctl/pkg/fileutil"
)

// Search asks the platform search utility (mdfind, locate) for candidates.
type Search struct {
	Platform Platform
	Runner   process.Runner
	Timeout  time.Duration
	// Exclude drops output lines containing any of these substrings,
	// compared on slash-separated paths.
	Exclude []string
}

// Name implements Strategy.
func (s *Search) Name() string { return config.StrategySearch }

// Find implements Strategy.
func (s *Search) Find(ctx context.Context) []install.Info {
	cmd := s.Platform.Search
	if cmd == nil || s.Runner == nil {
		return nil
	}
	logger := logging.FromContext(ctx).With("strategy", s.Name(), "utility", cmd.Path)

	if filepath.IsAbs(cmd.Path) && !fileutil.FileExists(cmd.Path) {
		logger.Debug("search utility not installed")
		return nil
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = config.DefaultSearchTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := s.Runner.Run(runCtx, cmd.Path, cmd.Args...)
	if err != nil {
		logger.Debug("search utility failed", "error", err)
		return nil
	}
	if res.ExitCode != 0 {
		logger.Debug("search utility exited", "code", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
		return nil
	}

	var found []install.Info
	for _, line := range s.candidates(res.Stdout) {
		if info, ok := s.Platform.Admit(line, install.OriginInstalled); ok {
			found = append(found, info)
		} else {
			logger.Log(ctx, logging.LevelTrace, "rejected", "path", line)
		}
	}
	return found
}

// candidates filters the utility output down to paths worth admitting.
func (s *Search) candidates(output string) []string {
	var out []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, s.Platform.Search.Filter) {
			continue
		}
		if s.excluded(line) {
			continue
		}
		out = append(out, line)
	}
	return out
}

func (s *Search) excluded(line string) bool {
	normalized := filepath.ToSlash(line)
	for _, ex := range s.Exclude {
		if ex != "" && strings.Contains(normalized, ex) {
			return true
		}
	}
	return false
}
