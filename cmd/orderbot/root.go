package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/orderbot/internal/cli"
	"github.com/aretw0/orderbot/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "orderbot",
	Short: "Orderbot takes pizza orders in a turn-based dialog",
	Long: `Orderbot asks for your name, greets you and takes your order,
checking every pizza against a menu service until it is valid.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and exits with the
// code that matches the failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Config file (default ./"+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().Bool("debug", false, "Log step transitions and validations to stderr")
}

func addFlowFlag(cmd *cobra.Command) {
	cmd.Flags().String("flow", "", "Dialog flow: pizza or order")
}

// loadConfig reads the config file and environment, then applies the flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("flow") {
		cfg.Flow, _ = flags.GetString("flow")
	}
	if flags.Changed("menu-url") {
		cfg.Menu.URL, _ = flags.GetString("menu-url")
	}
	if flags.Changed("menu-file") {
		cfg.Menu.File, _ = flags.GetString("menu-file")
	}
	if flags.Changed("timeout") {
		cfg.Menu.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("max-attempts") {
		cfg.MaxAttempts, _ = flags.GetInt("max-attempts")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("json") {
		cfg.JSON, _ = flags.GetBool("json")
	}
	return cfg, nil
}
