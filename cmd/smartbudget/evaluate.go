package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func evaluateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate the model against its own training log",
		Long: `Re-predict every stored training example and report accuracy.
Diagnostics only: training-set accuracy flatters the model and is never
used to choose between models.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			eng, cleanup, err := openEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			eval := eng.EvaluateModel()
			fmt.Printf("%s %.1f%% (%d/%d, %s model)\n",
				boldStyle.Render("Accuracy:"),
				eval.Accuracy*100, eval.Correct, eval.Total, eval.ModelSource)

			categories := make([]string, 0, len(eval.PerCategory))
			for cat := range eval.PerCategory {
				categories = append(categories, cat)
			}
			sort.Strings(categories)
			for _, cat := range categories {
				m := eval.PerCategory[cat]
				fmt.Printf("  %-20s %d/%d\n", cat, m.Correct, m.Total)
			}
			return nil
		},
	}
}
