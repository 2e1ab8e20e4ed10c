package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/riderctl/internal/errors"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestInit(t *testing.T) {
	Init()

	assert.Equal(t, 1, viper.GetInt("version"))
	assert.Equal(t, DefaultSearchTimeout, viper.GetDuration("search.timeout"))
	assert.Equal(t, DefaultExcludes, viper.GetStringSlice("search.exclude"))
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv(envConfigDir, t.TempDir())
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, DefaultSearchTimeout, cfg.Search.Timeout)
	assert.Equal(t, DefaultExcludes, cfg.Search.Exclude)
	assert.Empty(t, cfg.Search.Disabled)
	assert.Empty(t, cfg.CustomPaths)
	assert.Empty(t, FileUsed())
}

func TestLoad_WithConfigFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `version: 1
search:
  timeout: 30s
  disabled: [search, registry]
toolbox:
  location: /mnt/Toolbox
custom_paths:
  - /opt/rider/bin/rider.sh
engine_root: /work/UE5
`)
	Init()

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Search.Timeout)
	assert.Equal(t, []string{"search", "registry"}, cfg.Search.Disabled)
	assert.Equal(t, "/mnt/Toolbox", cfg.Toolbox.Location)
	assert.Equal(t, []string{"/opt/rider/bin/rider.sh"}, cfg.CustomPaths)
	assert.Equal(t, "/work/UE5", cfg.EngineRoot)
	assert.Equal(t, DefaultExcludes, cfg.Search.Exclude, "unset keys keep defaults")
	assert.True(t, cfg.Disabled(StrategySearch))
	assert.False(t, cfg.Disabled(StrategyToolbox))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv(envConfigDir, t.TempDir())
	t.Setenv("RIDERCTL_SEARCH_TIMEOUT", "3s")
	t.Setenv("RIDERCTL_ENGINE_ROOT", "/env/engine")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, cfg.Search.Timeout)
	assert.Equal(t, "/env/engine", cfg.EngineRoot)
}

func TestLoad_DefaultSearchPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envConfigDir, dir)
	writeConfig(t, dir, "custom_paths: [/a/bin/rider.sh]\n")
	Init()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/bin/rider.sh"}, cfg.CustomPaths)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FileUsed())
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	Init()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "invalid version",
			content: "version: 2\n",
			wantErr: ErrUnsupportedVersion,
		},
		{
			name:    "unknown strategy",
			content: "search:\n  disabled: [spotlight]\n",
			wantErr: ErrInvalidStrategy,
		},
		{
			name:    "zero timeout",
			content: "search:\n  timeout: 0s\n",
			wantErr: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init()
			path := writeConfig(t, t.TempDir(), tt.content)

			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.True(t, errors.Is(err, errors.ErrInvalidConfig))
		})
	}
}

func TestInit_ClearsPreviousState(t *testing.T) {
	fileA := writeConfig(t, t.TempDir(), "engine_root: /from/a\n")

	Init()
	_, err := Load(fileA)
	require.NoError(t, err)

	dirB := t.TempDir()
	t.Setenv(envConfigDir, dirB)
	writeConfig(t, dirB, "engine_root: /from/b\n")

	Init()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/b", cfg.EngineRoot)
	assert.NotEqual(t, fileA, FileUsed())
}
