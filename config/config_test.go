package config

import (
	"devcalc/common"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), common.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPartial(t *testing.T) {
	path := writeConfig(t, `
[devcalc]
format = "plain"
workers = 8
prefix = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "plain", cfg.Format)
	assert.Equal(t, 8, cfg.Workers)
	assert.False(t, cfg.Prefix)

	// untouched keys keep their defaults
	assert.Equal(t, common.DefaultLogLevel, cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.Equal(t, common.DefaultHistorySize, cfg.HistorySize)
	assert.Equal(t, path, cfg.Path)
}

func TestLoadWithoutTable(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing here\n"))
	require.NoError(t, err)

	def := Default()
	def.Path = cfg.Path
	assert.Equal(t, def, cfg)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		content string
		msg     string
	}{
		{"[devcalc]\nloglevel = \"loud\"\n", "unknown log level `loud`"},
		{"[devcalc]\nformat = \"xml\"\n", "unknown output format `xml`"},
		{"[devcalc]\nworkers = 0\n", "workers must be at least 1"},
		{"[devcalc]\nhistory-size = -1\n", "history-size must be at least 1"},
	}

	for _, tt := range tests {
		_, err := Load(writeConfig(t, tt.content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), tt.msg)
	}

	_, err := Load(writeConfig(t, "[devcalc\n"))
	assert.ErrorContains(t, err, "error parsing config file")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	// an explicitly requested file must exist
	_, err = LoadDefault(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocate(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Setenv(common.ConfigEnvVar, "")

	path, required := Locate("")
	assert.Equal(t, filepath.Join(xdg, common.ConfigDirName, common.ConfigFileName), path)
	assert.False(t, required)

	// the default file may be missing
	cfg, err := LoadDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	t.Setenv(common.ConfigEnvVar, "/etc/devcalc.toml")
	path, required = Locate("")
	assert.Equal(t, "/etc/devcalc.toml", path)
	assert.True(t, required)

	path, required = Locate("mine.toml")
	assert.Equal(t, "mine.toml", path)
	assert.True(t, required)
}

func TestLoadDefaultFromEnv(t *testing.T) {
	t.Setenv(common.ConfigEnvVar, writeConfig(t, "[devcalc]\nloglevel = \"debug\"\n"))

	cfg, err := LoadDefault("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "devcalc")

	path, err := Init(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, common.ConfigFileName), path)

	cfg, err := Load(path)
	require.NoError(t, err)

	def := Default()
	def.Path = path
	assert.Equal(t, def, cfg)

	_, err = Init(dir)
	assert.EqualError(t, err, "config file already exists")
}

func TestInitEncodeFailure(t *testing.T) {
	dir := t.TempDir()

	prev := encodeConfig
	encodeConfig = func(io.Writer, *tomlConfigFile) error { return errors.New("disk full") }

	_, err := Init(dir)
	encodeConfig = prev

	assert.ErrorContains(t, err, "disk full")
	assert.NoFileExists(t, filepath.Join(dir, common.ConfigFileName))

	// nothing was left behind so a second attempt succeeds
	path, err := Init(dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}
