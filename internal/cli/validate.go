package cli

import (
	"github.com/spf13/cobra"

	"github.com/openlabels/oli-cli/internal/cli/render"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the queued rows against the project directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewValidateRenderer(cmd.OutOrStdout(), app.Config.JSON)

			result, err := app.ValidateQueue.Run(cmd.Context())
			if err != nil {
				renderer.RenderError(err)
				return errSilent
			}

			return renderer.Render(result)
		},
	}
}
