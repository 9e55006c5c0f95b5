package cli

import (
	"github.com/spf13/cobra"

	"github.com/openlabels/oli-cli/internal/cli/render"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <name|website|github>",
		Short: "Check whether a project already exists in the directory",
		Long: `Rank directory entries against a project name, website or GitHub URL.
Exact matches mean the project is already listed; similar matches are
likely duplicates worth reviewing before contributing a new entry.`,
		Example: `  oli check uniswap
  oli check https://uniswap.org
  oli check https://github.com/Uniswap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.MatchProjects.Run(cmd.Context(), usecase.MatchProjectsParams{Value: args[0]})
			if err != nil {
				return err
			}

			return render.NewMatchesRenderer(cmd.OutOrStdout(), app.Config.JSON).Render(result)
		},
	}
}
