package metadata

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstallLocation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantOK  bool
	}{
		{name: "set", content: `{"install_location": "/mnt/tools"}`, want: "/mnt/tools", wantOK: true},
		{name: "empty", content: `{"install_location": ""}`},
		{name: "absent", content: `{"autostart": true}`},
		{name: "wrong type", content: `{"install_location": 1}`},
		{name: "malformed", content: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, filepath.Join(t.TempDir(), SettingsFile), tt.content)
			got, ok := InstallLocation(path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := InstallLocation(filepath.Join(t.TempDir(), SettingsFile))
	assert.False(t, ok, "missing file")
}
