package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func trainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Force a full retrain from the accumulated log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.Retrain(cmd.Context()); err != nil {
				return err
			}

			stats := eng.GetStats()
			fmt.Println(successStyle.Render("Retrain complete"))
			fmt.Println(subtleStyle.Render(fmt.Sprintf("model v%d, %d examples, %d tokens",
				stats.Version, stats.ExampleCount, stats.VocabularySize)))
			return nil
		},
	}
}
