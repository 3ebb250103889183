package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartbudget/categorizer/internal/common"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <model.json>",
		Short: "Import a pretrained model",
		Long: `Import a model exported by the external training pipeline. The
imported model answers predictions immediately; once corrections are
taught, retrains fold local examples in and provenance becomes hybrid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blob, err := os.ReadFile(args[0])
			if err != nil {
				return common.NewUserError("could not read model file", err)
			}

			eng, cleanup, err := openEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.ImportForeignModel(cmd.Context(), blob); err != nil {
				return common.NewUserError("model import rejected", err)
			}

			stats := eng.GetStats()
			fmt.Println(successStyle.Render("Model imported"))
			fmt.Println(subtleStyle.Render(fmt.Sprintf("vocabulary: %d tokens, categories: %d, provenance: %s",
				stats.VocabularySize, len(stats.Categories), stats.ModelSource)))
			if stats.ForeignMetadata != nil {
				fmt.Println(subtleStyle.Render(fmt.Sprintf("reported accuracy: %.1f%% on %d samples (v%s)",
					stats.ForeignMetadata.Accuracy*100,
					stats.ForeignMetadata.TrainingSamples,
					stats.ForeignMetadata.Version)))
			}
			return nil
		},
	}
}
