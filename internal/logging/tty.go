package logging

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/thoreinstein/riderctl/internal/errors"
)

// ColorMode selects when riderctl writes ANSI colour: log lines from
// Handler and the command output palette.
type ColorMode string

const (
	// ColorAuto colours terminals unless the environment opts out.
	ColorAuto ColorMode = "auto"
	// ColorAlways colours every writer.
	ColorAlways ColorMode = "always"
	// ColorNever disables colour.
	ColorNever ColorMode = "never"
)

// ParseColorMode parses a --color value. The empty string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", errors.Newf("unknown color mode %q", s)
	}
}

// Enabled reports whether output to w is coloured under m.
func (m ColorMode) Enabled(w io.Writer) bool {
	return m.enabled(IsTTY(w))
}

func (m ColorMode) enabled(isTTY bool) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	// https://no-color.org: present and non-empty disables colour.
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if v := os.Getenv("CLICOLOR_FORCE"); v != "" && v != "0" {
		return true
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return isTTY
}

var activeMode atomic.Value // ColorMode

// SetColorMode makes m the process-wide colour mode and applies it to the
// fatih/color palette, judged against w. It returns whether w is coloured.
func SetColorMode(m ColorMode, w io.Writer) bool {
	activeMode.Store(m)
	on := m.Enabled(w)
	color.NoColor = !on
	return on
}

func currentMode() ColorMode {
	if m, ok := activeMode.Load().(ColorMode); ok {
		return m
	}
	return ColorAuto
}

// IsTTY reports whether w is a terminal. Anything with an Fd method
// qualifies, which covers *os.File.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether w is coloured under the active colour mode.
func SupportsColor(w io.Writer) bool {
	return currentMode().Enabled(w)
}
