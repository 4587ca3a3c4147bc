package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/orderbot"
	"github.com/aretw0/orderbot/internal/flow"
	"github.com/aretw0/orderbot/pkg/adapters/memory"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the flow graph for consistency",
	Long:  `Compiles the flow and reports dangling steps, dead links and unreachable steps.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		names := []string{cfg.Flow}
		if all, _ := cmd.Flags().GetBool("all"); all {
			names = names[:0]
			for _, v := range flow.Variants() {
				names = append(names, string(v))
			}
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			eng, err := orderbot.New(
				orderbot.WithFlow(name),
				orderbot.WithMenu(memory.DefaultMenu()),
			)
			if err != nil {
				return fmt.Errorf("validation failed for %s flow: %w", name, err)
			}
			for _, w := range eng.Warnings() {
				fmt.Fprintf(out, "warning: %s flow: %s\n", eng.Flow(), w)
			}
			fmt.Fprintf(out, "Flow '%s' is valid! ✅\n", eng.Flow())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	addFlowFlag(validateCmd)
	validateCmd.Flags().Bool("all", false, "Validate every built-in flow")
}
