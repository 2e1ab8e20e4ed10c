package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"always", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColorMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorMode_Enabled(t *testing.T) {
	tests := []struct {
		name  string
		mode  ColorMode
		env   map[string]string
		isTTY bool
		want  bool
	}{
		{"auto terminal", ColorAuto, nil, true, true},
		{"auto pipe", ColorAuto, nil, false, false},
		{"NO_COLOR disables", ColorAuto, map[string]string{"NO_COLOR": "1"}, true, false},
		{"empty NO_COLOR ignored", ColorAuto, map[string]string{"NO_COLOR": ""}, true, true},
		{"NO_COLOR beats CLICOLOR_FORCE", ColorAuto, map[string]string{"NO_COLOR": "1", "CLICOLOR_FORCE": "1"}, true, false},
		{"CLICOLOR_FORCE colours a pipe", ColorAuto, map[string]string{"CLICOLOR_FORCE": "1"}, false, true},
		{"CLICOLOR_FORCE=0 ignored", ColorAuto, map[string]string{"CLICOLOR_FORCE": "0"}, false, false},
		{"dumb terminal", ColorAuto, map[string]string{"TERM": "dumb"}, true, false},
		{"always overrides NO_COLOR", ColorAlways, map[string]string{"NO_COLOR": "1"}, false, true},
		{"never on a terminal", ColorNever, nil, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", "")
			t.Setenv("CLICOLOR_FORCE", "")
			t.Setenv("TERM", "xterm-256color")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Equal(t, tt.want, tt.mode.enabled(tt.isTTY))
		})
	}
}

func TestSetColorMode(t *testing.T) {
	origNoColor := color.NoColor
	t.Cleanup(func() {
		color.NoColor = origNoColor
		activeMode.Store(ColorAuto)
	})

	var buf bytes.Buffer

	assert.True(t, SetColorMode(ColorAlways, &buf))
	assert.False(t, color.NoColor)
	assert.True(t, SupportsColor(&buf))

	var out bytes.Buffer
	slog.New(NewHandler(&out, nil)).Warn("toolbox missing")
	assert.Contains(t, out.String(), "\x1b[")

	assert.False(t, SetColorMode(ColorNever, &buf))
	assert.True(t, color.NoColor)
	assert.False(t, SupportsColor(&buf))
}

func TestIsTTY_Buffer(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}
