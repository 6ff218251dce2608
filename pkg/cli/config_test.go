package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserConfig_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &UserConfig{
		CurrentProfile: "staging",
		Profiles: map[string]Profile{
			"staging": {Host: "https://staging.catalyst.internal", Token: "tok-1", Output: "json"},
			"prod":    {Host: "https://hr.catalyst.internal"},
		},
	}
	require.NoError(t, SaveUserConfig(cfg))

	loaded, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "staging", loaded.CurrentProfile)
	assert.Equal(t, cfg.Profiles["staging"], loaded.Profiles["staging"])
	assert.Equal(t, cfg.Profiles["prod"], loaded.Profiles["prod"])
}

func TestSaveUserConfig_Permissions(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, SaveUserConfig(&UserConfig{CurrentProfile: "default"}))

	info, err := os.Stat(ConfigPath())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(ConfigPath()))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestLoadUserConfig_Missing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadUserConfig()
	require.Error(t, err)
}

func TestActiveProfile(t *testing.T) {
	cfg := &UserConfig{
		CurrentProfile: "default",
		Profiles: map[string]Profile{
			"default": {Host: "http://localhost:8080"},
			"prod":    {Host: "https://hr.catalyst.internal", Token: "tok-prod"},
		},
	}

	assert.Equal(t, "http://localhost:8080", cfg.ActiveProfile("").Host)
	assert.Equal(t, "tok-prod", cfg.ActiveProfile("prod").Token)
	assert.Equal(t, Profile{}, cfg.ActiveProfile("missing"))
}

func TestSaveTokenToActiveProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, saveTokenToActiveProfile("tok-new", "http://localhost:9090"))

	cfg, err := LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.CurrentProfile)
	assert.Equal(t, "tok-new", cfg.Profiles["default"].Token)
	assert.Equal(t, "http://localhost:9090", cfg.Profiles["default"].Host)

	// A later login keeps the profile but replaces the token.
	require.NoError(t, saveTokenToActiveProfile("tok-rotated", ""))
	cfg, err = LoadUserConfig()
	require.NoError(t, err)
	assert.Equal(t, "tok-rotated", cfg.Profiles["default"].Token)
	assert.Equal(t, "http://localhost:9090", cfg.Profiles["default"].Host)
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("short"))
	assert.Equal(t, "eyJh****XVCJ", maskSecret("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ"))
}
