//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/openlabels/oli-cli/internal/adapters"
	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/logging"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration and logging
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowQueue,
		usecase.NewShowForm,
		usecase.NewEditQueue,
		usecase.NewValidateQueue,
		usecase.NewImportQueue,
		usecase.NewExportQueue,
		usecase.NewPrepareSubmission,
		usecase.NewSubmitAttestations,
		usecase.NewMatchProjects,
		usecase.NewProfileProject,
		usecase.NewSubmitContribution,

		// App
		NewApp,
	)
	return nil, nil
}
