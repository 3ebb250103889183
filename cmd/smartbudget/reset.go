package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Destroy the model and training log",
		Long: `Clear the trained model, the accumulated corrections, and both
persisted snapshots. Predictions keep working through the keyword
fallback until a new model is trained or imported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				fmt.Print(warningStyle.Render("This destroys the model and all learned corrections.") + " Continue? [y/N] ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("aborted")
					return nil
				}
			}

			eng, cleanup, err := openEngine(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := eng.ResetModel(cmd.Context()); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("Model reset"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("smartbudget %s\n", version)
		},
	}
}
