package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/thoreinstein/riderctl/internal/errors"
)

var (
	bold   = color.New(color.Bold)
	cyan   = color.New(color.FgCyan, color.Bold)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	gray   = color.New(color.FgHiBlack)
)

// ReportError prints err and any suggestion or hints to w and returns the
// process exit code.
func ReportError(w io.Writer, err error) int {
	if err == nil {
		return errors.ExitSuccess
	}

	code := errors.ExitUser
	msg := err.Error()
	var suggestion string

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		suggestion = exitErr.Suggestion
		if exitErr.Err == nil {
			// Exit status only; the command already reported.
			return code
		}
		msg = exitErr.Err.Error()
	}

	fmt.Fprintf(w, "%s %s\n", red.Sprint("Error:"), msg)
	if suggestion != "" {
		fmt.Fprintf(w, "  %s\n", suggestion)
	}
	if hints := errors.FlattenHints(err); hints != "" {
		fmt.Fprintf(w, "  %s %s\n", gray.Sprint("hint:"), hints)
	}
	return code
}
