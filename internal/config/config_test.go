package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"vaultnotes"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	setArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "vaultnotes.db", cfg.DatabaseDSN)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Flags(t *testing.T) {
	setArgs(t, "-d", "/tmp/other.db", "-l", "debug")

	cfg := LoadConfig()
	assert.Equal(t, "/tmp/other.db", cfg.DatabaseDSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_JsonFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn":"from-json.db","log_level":"warn"}`), 0o600))

	setArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "from-json.db", cfg.DatabaseDSN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_FlagsOverrideJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"database_dsn":"from-json.db"}`), 0o600))

	setArgs(t, "-c", path, "-d", "from-flag.db")

	cfg := LoadConfig()
	assert.Equal(t, "from-flag.db", cfg.DatabaseDSN)
}

func TestLoadConfig_PartialJsonKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log_level":"error"}`), 0o600))

	setArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "vaultnotes.db", cfg.DatabaseDSN)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadConfig_MissingJsonFilePanics(t *testing.T) {
	setArgs(t, "-c", filepath.Join(t.TempDir(), "absent.json"))

	assert.Panics(t, func() { LoadConfig() })
}
