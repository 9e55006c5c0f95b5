package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openlabels/oli-cli/internal/cli/render"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	var skipValidation bool

	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Merge rows from a CSV file into the queue",
		Long: `Import rows from a CSV file. Recognized columns are chain_id, address,
contract_name, owner_project and usage_category; anything else is
ignored. Duplicate rows keep the version already queued. The queue is
validated once after a successful import.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := app.ImportQueue.Run(cmd.Context(), usecase.ImportQueueParams{
				Input:          f,
				SkipValidation: skipValidation,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d rows. Queue has %d rows.\n", result.Imported, result.QueueSize)

			renderer := render.NewValidateRenderer(cmd.OutOrStdout(), app.Config.JSON)
			if result.ValidationErr != nil {
				renderer.RenderError(result.ValidationErr)
				return nil
			}
			if result.Validation != nil {
				return renderer.Render(result.Validation)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipValidation, "skip-validation", false, "Do not validate after importing")
	return cmd
}
