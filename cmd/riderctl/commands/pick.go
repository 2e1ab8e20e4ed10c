package commands

import (
	"fmt"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/riderctl/internal/accessor"
	"github.com/thoreinstein/riderctl/internal/errors"
)

func pickWithFinder(handles []*accessor.Accessor) (*accessor.Accessor, error) {
	idx, err := fuzzyfinder.Find(
		handles,
		func(i int) string {
			return handles[i].Name()
		},
		fuzzyfinder.WithPromptString("rider> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			return handlePreview(handles[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}
	return handles[idx], nil
}

func handlePreview(a *accessor.Accessor) string {
	info := a.Info()
	build := info.Build
	if build == "" {
		build = "unknown"
	}
	return fmt.Sprintf("Version: %s\nBuild:   %s\nOrigin:  %s\nSupport: %s\nModel:   %s\n\nPath:\n%s",
		info.Version,
		build,
		info.Origin,
		info.Support,
		a.Model(),
		a.ExecutablePath(),
	)
}
