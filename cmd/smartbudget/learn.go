package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func learnCmd() *cobra.Command {
	var (
		merchant string
		amount   float64
		previous string
	)

	cmd := &cobra.Command{
		Use:   "learn <description> <category>",
		Short: "Teach the engine a correction",
		Long: `Record the correct category for a transaction. The engine retrains
from the full accumulated log at its cadence, so a freshly taught
correction may not affect predictions until the next retrain fires.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer cleanup()

			userID := viper.GetString("user.id")
			if err := eng.LearnFromCorrection(cmd.Context(), args[0], merchant, amount, previous, args[1], userID); err != nil {
				return err
			}

			stats := eng.GetStats()
			fmt.Println(successStyle.Render("Correction recorded"))
			fmt.Println(subtleStyle.Render(fmt.Sprintf("examples: %d, model: %s v%d",
				stats.ExampleCount, stats.ModelSource, stats.Version)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "merchant name")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "transaction amount")
	cmd.Flags().StringVarP(&previous, "previous", "p", "", "previously predicted category")
	return cmd
}
