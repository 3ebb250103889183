package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func predictCmd() *cobra.Command {
	var (
		merchant string
		amount   float64
	)

	cmd := &cobra.Command{
		Use:   "predict <description>",
		Short: "Categorize a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, cleanup, err := openEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			prediction := eng.Predict(args[0], merchant, amount)

			style := successStyle
			if prediction.Confidence < 0.5 {
				style = warningStyle
			}
			fmt.Printf("%s %s\n", style.Render(prediction.Category),
				subtleStyle.Render(fmt.Sprintf("(%.0f%% via %s)", prediction.Confidence*100, prediction.Method)))
			if prediction.Explanation != "" {
				fmt.Println(subtleStyle.Render(prediction.Explanation))
			}
			for _, alt := range prediction.Alternatives {
				fmt.Printf("  %s %.0f%%\n", alt.Category, alt.Probability*100)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&merchant, "merchant", "m", "", "merchant name")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "transaction amount")
	return cmd
}
