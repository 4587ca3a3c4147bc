package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/orderbot/internal/cli"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Work with the menu service",
}

var menuServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start a local menu API",
	Long:  `Serves a menu in the shape of the public pizza API (GET /menu, /pizza), plus /health and /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		file, _ := cmd.Flags().GetString("file")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.ServeMenu(cmd.Context(), cli.MenuServeOptions{
			Port:   port,
			File:   file,
			Debug:  debug,
			Stdout: cmd.OutOrStdout(),
			Stderr: cmd.ErrOrStderr(),
		})
	},
}

func init() {
	rootCmd.AddCommand(menuCmd)
	menuCmd.AddCommand(menuServeCmd)
	menuServeCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	menuServeCmd.Flags().String("file", "", "YAML menu to serve (default: built-in menu)")
}
