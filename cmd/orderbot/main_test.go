package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestGraphCommand(t *testing.T) {
	out := execute(t, "graph", "--flow", "order")
	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, "ask_quantity")
}

func TestValidateCommand_All(t *testing.T) {
	out := execute(t, "validate", "--all")
	assert.Contains(t, out, "Flow 'pizza' is valid!")
	assert.Contains(t, out, "Flow 'order' is valid!")
	assert.NotContains(t, out, "warning:")
}

func TestVersionCommand(t *testing.T) {
	assert.Contains(t, execute(t, "version"), "orderbot version ")
}

func TestLoadConfig_FlagsOverride(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", "", "")
	addFlowFlag(cmd)
	cmd.Flags().Duration("timeout", 0, "")
	cmd.Flags().Int("max-attempts", 0, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--flow", "order", "--timeout", "2s", "--max-attempts", "3"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "order", cfg.Flow)
	assert.Equal(t, 2*time.Second, cfg.Menu.Timeout)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.NotEmpty(t, cfg.Menu.URL, "unset flags keep the defaults")
}
