package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thoreinstein/riderctl/internal/errors"
)

func TestReportError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  []string
	}{
		{
			name:     "nil",
			err:      nil,
			wantCode: errors.ExitSuccess,
		},
		{
			name:     "plain error",
			err:      errors.New("boom"),
			wantCode: errors.ExitUser,
			wantOut:  []string{"Error:", "boom"},
		},
		{
			name:     "user error with suggestion",
			err:      errors.Wrap(errors.NewUserError(errors.ErrNoInstalls, "Run: riderctl doctor"), "executing root command"),
			wantCode: errors.ExitUser,
			wantOut:  []string{"no Rider installations found", "Run: riderctl doctor"},
		},
		{
			name:     "system error",
			err:      errors.NewSystemError(errors.ErrLaunchFailed, ""),
			wantCode: errors.ExitSystem,
			wantOut:  []string{"launching rider failed"},
		},
		{
			name:     "hint",
			err:      errors.WithHint(errors.New("bad"), "try again"),
			wantCode: errors.ExitUser,
			wantOut:  []string{"hint:", "try again"},
		},
		{
			name:     "exit status only",
			err:      errors.NewExitError(nil, errors.ExitSystem),
			wantCode: errors.ExitSystem,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			assert.Equal(t, tt.wantCode, ReportError(&buf, tt.err))
			for _, want := range tt.wantOut {
				assert.Contains(t, buf.String(), want)
			}
			if len(tt.wantOut) == 0 {
				assert.Empty(t, buf.String())
			}
		})
	}
}
