package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	isolateConfig(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.DefaultService)
	assert.Empty(t, cfg.DefaultOutput)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	isolateConfig(t)

	cfg := &Config{DefaultService: "github", DefaultOutput: "plain"}
	require.NoError(t, cfg.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAcceptsJSON5(t *testing.T) {
	isolateConfig(t)

	require.NoError(t, os.MkdirAll(ConfigDir(), 0700))
	// Comments and trailing commas are legal in the config file.
	content := "{\n  // preferred account\n  \"default_service\": \"github\",\n}\n"
	require.NoError(t, os.WriteFile(ConfigPath(), []byte(content), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "github", cfg.DefaultService)
}

func TestGetSetUnset(t *testing.T) {
	isolateConfig(t)

	cfg := &Config{}
	require.NoError(t, cfg.Set("default_service", "github"))

	value, err := cfg.Get("default_service")
	require.NoError(t, err)
	assert.Equal(t, "github", value)

	require.NoError(t, cfg.Unset("default_service"))
	value, err = cfg.Get("default_service")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestUnknownKey(t *testing.T) {
	isolateConfig(t)

	cfg := &Config{}
	_, err := cfg.Get("nope")
	assert.Error(t, err)
	assert.Error(t, cfg.Set("nope", "x"))
	assert.Error(t, cfg.Unset("nope"))
}

func TestKeys(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, []string{"default_service", "default_output"}, cfg.Keys())
}

func TestConfigPathUnderConfigDir(t *testing.T) {
	isolateConfig(t)
	assert.Equal(t, filepath.Join(ConfigDir(), "config.json5"), ConfigPath())
}
