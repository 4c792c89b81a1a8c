package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Rorical/RoriChat/internal/config"
)

func TestLoadProfileUsesFlag(t *testing.T) {
	t.Setenv("RORICHAT_HOME", t.TempDir())

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.SetProfile("local-llama", config.Profile{Provider: config.ProviderOllama, Model: "llama3.2"}))
	require.NoError(t, cfg.Save())

	profileFlag = "local-llama"
	t.Cleanup(func() { profileFlag = "" })

	_, profile, err := loadProfile()
	require.NoError(t, err)
	require.Equal(t, "llama3.2", profile.Model)

	profileFlag = "missing"
	_, _, err = loadProfile()
	require.Error(t, err)
}

func TestCommandsAreRegistered(t *testing.T) {
	for _, name := range []string{"profile", "use", "tools"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}
}
