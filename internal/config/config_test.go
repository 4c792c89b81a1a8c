package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("RORICHAT_HOME", home)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "default", cfg.ActiveProfile)
	require.Equal(t, DefaultProfile(), cfg.Current())
	require.Equal(t, filepath.Join(home, ".rorichat", "config.json"), cfg.Path())

	info, err := os.Stat(cfg.Path())
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	remote := Profile{Provider: ProviderOpenAI, Model: "gpt-4o-mini", APIKey: "sk-test"}
	require.NoError(t, cfg.SetProfile("remote", remote))
	require.NoError(t, cfg.UseProfile("remote"))
	require.NoError(t, cfg.Save())

	reloaded, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, "remote", reloaded.ActiveProfile)
	require.Equal(t, remote, reloaded.Current())
	require.Equal(t, []string{"default", "remote"}, reloaded.ProfileNames())
}

func TestMissingActiveProfileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"profiles":{"b":{"provider":"ollama","model":"m2"},"a":{"provider":"ollama","model":"m1"}},"active_profile":"gone"}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)
	require.Equal(t, "a", cfg.ActiveProfile)
	require.Equal(t, "m1", cfg.Current().Model)
}

func TestEmptyProfilesIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profiles":{}}`), 0600))

	_, err := LoadConfigFrom(path)
	require.Error(t, err)
}

func TestDeleteActiveProfile(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	require.NoError(t, cfg.DeleteProfile("default"))
	require.Equal(t, "default", cfg.ActiveProfile)
	require.Equal(t, DefaultProfile(), cfg.Current())

	require.Error(t, cfg.DeleteProfile("missing"))
	require.Error(t, cfg.UseProfile("missing"))
}

func TestProfileValidate(t *testing.T) {
	require.NoError(t, DefaultProfile().Validate())
	require.NoError(t, Profile{Provider: ProviderOpenAI, APIKey: "k"}.Validate())
	require.Error(t, Profile{Provider: ProviderOpenAI}.Validate())
	require.Error(t, Profile{Provider: "carrier-pigeon"}.Validate())
}
