package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/openlabels/oli-cli/internal/adapters/progress"
	"github.com/openlabels/oli-cli/internal/app"
	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// errSilent signals a non-zero exit for an error the command already
// rendered itself.
var errSilent = errors.New("silent error")

// IsSilent reports whether the command already printed the error.
func IsSilent(err error) bool {
	return errors.Is(err, errSilent)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "oli",
		Short: "Open Labels attestation queue manager",
		Long: `oli manages a queue of contract labels, validates them against the
project directory and submits them as on-chain attestations through a
connected wallet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)
			bindGlobalFlags(v, cmd)

			sink := newSink(v)

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "queue",
		Title: "Queue Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "submission",
		Title: "Submission Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "project",
		Title: "Project Commands",
	})

	queueCmd := NewQueueCmd()
	queueCmd.GroupID = "queue"
	rootCmd.AddCommand(queueCmd)

	importCmd := NewImportCmd()
	importCmd.GroupID = "queue"
	rootCmd.AddCommand(importCmd)

	exportCmd := NewExportCmd()
	exportCmd.GroupID = "queue"
	rootCmd.AddCommand(exportCmd)

	validateCmd := NewValidateCmd()
	validateCmd.GroupID = "submission"
	rootCmd.AddCommand(validateCmd)

	submitCmd := NewSubmitCmd()
	submitCmd.GroupID = "submission"
	rootCmd.AddCommand(submitCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "project"
	rootCmd.AddCommand(checkCmd)

	projectCmd := NewProjectCmd()
	projectCmd.GroupID = "project"
	rootCmd.AddCommand(projectCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// newSink picks the progress reporter for this invocation.
func newSink(v *viper.Viper) usecase.ProgressSink {
	if v.GetBool("json") || v.GetBool("non_interactive") {
		return progress.NewNopSink()
	}
	return progress.NewWorkflowProgress(os.Stderr, true)
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
