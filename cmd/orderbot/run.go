package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/orderbot/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Take an order interactively",
	Long:  `Starts the dialog on the console. With --json it speaks NDJSON on stdin/stdout for automation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		debug, _ := cmd.Flags().GetBool("debug")
		offline, _ := cmd.Flags().GetBool("offline")
		name, _ := cmd.Flags().GetString("name")

		return cli.Execute(cmd.Context(), cli.RunOptions{
			Config:  cfg,
			Debug:   debug,
			Offline: offline,
			Name:    name,
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addFlowFlag(runCmd)
	runCmd.Flags().String("menu-url", "", "Menu API endpoint")
	runCmd.Flags().String("menu-file", "", "Validate against a YAML menu file instead of the API")
	runCmd.Flags().Bool("offline", false, "Validate against the built-in menu")
	runCmd.Flags().Duration("timeout", 0, "Menu request timeout")
	runCmd.Flags().Int("max-attempts", 0, "Give up after this many rejected answers per field (0 retries forever)")
	runCmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
	runCmd.Flags().String("name", "", "Preset the user name and skip the name question")
	runCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address during the run")

	// 'run' is the default when no command is provided.
	rootCmd.RunE = runCmd.RunE
}
