package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show model statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			stats := eng.GetStats()
			fmt.Println(boldStyle.Render("Model"))
			fmt.Printf("  provenance:  %s\n", stats.ModelSource)
			fmt.Printf("  version:     %d\n", stats.Version)
			fmt.Printf("  vocabulary:  %d tokens\n", stats.VocabularySize)
			fmt.Printf("  examples:    %d\n", stats.ExampleCount)
			fmt.Printf("  foreign:     %v\n", stats.IsForeignModel)
			if !stats.LastTrained.IsZero() {
				fmt.Printf("  trained:     %s\n", stats.LastTrained.Format("2006-01-02 15:04:05"))
			}
			if len(stats.Categories) > 0 {
				fmt.Println(boldStyle.Render("Categories"))
				fmt.Println(infoStyle.Render("  " + strings.Join(stats.Categories, ", ")))
			}
			return nil
		},
	}
}

func featuresCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "features <category>",
		Short: "Show the top-weighted features for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			features := eng.GetFeatureImportance(args[0], count)
			if len(features) == 0 {
				fmt.Println(warningStyle.Render("no features - unknown category or untrained model"))
				return nil
			}
			for _, f := range features {
				fmt.Printf("  %-24s %+.4f\n", f.Feature, f.Weight)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of features to show")
	return cmd
}
