package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/orderbot"
	"github.com/aretw0/orderbot/internal/presentation/graph"
	"github.com/aretw0/orderbot/pkg/adapters/memory"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the flow graph visualization",
	Long:  `Compiles the selected flow and outputs a Mermaid diagram (graph TD) of its steps and transitions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		engine, err := orderbot.New(
			orderbot.WithFlow(cfg.Flow),
			orderbot.WithMenu(memory.DefaultMenu()),
		)
		if err != nil {
			return err
		}

		var overlay *graph.GraphOverlay
		if history, _ := cmd.Flags().GetStringSlice("history"); len(history) > 0 {
			overlay = &graph.GraphOverlay{
				VisitedNodes: history,
				CurrentNode:  history[len(history)-1],
			}
		}

		fmt.Fprint(cmd.OutOrStdout(), graph.GenerateMermaid(engine.Inspect(), overlay))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	addFlowFlag(graphCmd)
	graphCmd.Flags().StringSlice("history", nil, "Highlight visited steps (comma-separated, last one is current)")
}
