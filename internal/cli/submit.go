package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openlabels/oli-cli/internal/cli/render"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// NewSubmitCmd creates the submit command
func NewSubmitCmd() *cobra.Command {
	var (
		yes         bool
		previewOnly bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Validate, preview and submit the queue on-chain",
		Long: `Validate the queued rows, build a signable preview and, after
confirmation, submit the attestations through the connected wallet.
A single queued row is sent as one attestation; multiple rows are
batched into one transaction.`,
		Example: `  # Review and submit the queue
  oli submit

  # Build the preview without signing
  oli submit --preview

  # Skip the confirmation prompt
  oli submit --yes`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			validateRenderer := render.NewValidateRenderer(cmd.OutOrStdout(), app.Config.JSON)

			prepared, err := app.PrepareSubmission.Run(cmd.Context())
			if err != nil {
				var verr *domain.ValidationError
				if errors.As(err, &verr) {
					validateRenderer.RenderError(verr)
					return errSilent
				}
				return err
			}

			if err := render.NewPreviewRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(prepared); err != nil {
				return err
			}

			if previewOnly {
				fmt.Fprintln(cmd.OutOrStdout(), "\nPreview saved. Run 'oli submit' to sign.")
				return nil
			}

			result, err := app.SubmitAttestations.Run(cmd.Context(), usecase.SubmitAttestationsParams{
				SkipConfirm: yes,
			})
			if err != nil {
				if errors.Is(err, context.Canceled) {
					fmt.Fprintln(cmd.OutOrStdout(), "Submission cancelled.")
					return errSilent
				}
				return err
			}

			return render.NewSubmitRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&previewOnly, "preview", false, "Prepare and show the preview without submitting")
	return cmd
}
