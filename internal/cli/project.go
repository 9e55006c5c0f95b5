package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/openlabels/oli-cli/internal/cli/render"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// NewProjectCmd creates the project command group
func NewProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage project metadata contributions",
		Long:  "Commands for drafting and contributing project directory entries.",
	}

	cmd.AddCommand(newProjectShowCmd())
	cmd.AddCommand(newProjectProfileCmd())
	cmd.AddCommand(newProjectContributeCmd())

	return cmd
}

func newProjectShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the working project form",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			form, err := app.ShowForm.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewFormRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(form)
		},
	}
}

func newProjectProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile <prompt...>",
		Short: "Prefill the project form from the AI profiler",
		Long: `Send a free-text description to the platform profiler and merge its
draft into the working form. Fields you already filled in are kept.`,
		Example: `  oli project profile "Uniswap, the decentralized exchange, uniswap.org"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			form, err := app.ProfileProject.Run(cmd.Context(), usecase.ProfileProjectParams{
				Prompt: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}

			return render.NewFormRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(form)
		},
	}

	return cmd
}

func newProjectContributeCmd() *cobra.Command {
	var (
		overrides domain.ProjectForm
		logoPath  string
	)

	cmd := &cobra.Command{
		Use:   "contribute",
		Short: "Submit the project form to the directory",
		Long: `Normalize, validate and submit the working project form. The platform
opens the pull requests server-side; flags override stored form fields
for this submission.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			receipt, err := app.SubmitContribution.Run(cmd.Context(), usecase.SubmitContributionParams{
				Overrides: overrides,
				LogoPath:  logoPath,
			})
			if err != nil {
				return err
			}

			return render.NewReceiptRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(receipt)
		},
	}

	cmd.Flags().StringVar(&overrides.OwnerProject, "name", "", "Project slug")
	cmd.Flags().StringVar(&overrides.DisplayName, "display-name", "", "Human-readable name")
	cmd.Flags().StringVar(&overrides.Description, "description", "", "Short description")
	cmd.Flags().StringVar(&overrides.Website, "website", "", "Project website")
	cmd.Flags().StringVar(&overrides.MainGithub, "github", "", "Main GitHub organization or repository")
	cmd.Flags().StringVar(&overrides.Twitter, "twitter", "", "Twitter/X handle or URL")
	cmd.Flags().StringVar(&overrides.Telegram, "telegram", "", "Telegram handle or URL")
	cmd.Flags().StringVar(&logoPath, "logo", "", "Path to a logo image")

	return cmd
}
