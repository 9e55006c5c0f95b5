package app

import (
	"log/slog"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	ShowQueue          *usecase.ShowQueue
	ShowForm           *usecase.ShowForm
	EditQueue          *usecase.EditQueue
	ValidateQueue      *usecase.ValidateQueue
	ImportQueue        *usecase.ImportQueue
	ExportQueue        *usecase.ExportQueue
	PrepareSubmission  *usecase.PrepareSubmission
	SubmitAttestations *usecase.SubmitAttestations
	MatchProjects      *usecase.MatchProjects
	ProfileProject     *usecase.ProfileProject
	SubmitContribution *usecase.SubmitContribution
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	showQueue *usecase.ShowQueue,
	showForm *usecase.ShowForm,
	editQueue *usecase.EditQueue,
	validateQueue *usecase.ValidateQueue,
	importQueue *usecase.ImportQueue,
	exportQueue *usecase.ExportQueue,
	prepareSubmission *usecase.PrepareSubmission,
	submitAttestations *usecase.SubmitAttestations,
	matchProjects *usecase.MatchProjects,
	profileProject *usecase.ProfileProject,
	submitContribution *usecase.SubmitContribution,
) (*App, error) {
	return &App{
		Config:             cfg,
		Logger:             logger,
		ShowQueue:          showQueue,
		ShowForm:           showForm,
		EditQueue:          editQueue,
		ValidateQueue:      validateQueue,
		ImportQueue:        importQueue,
		ExportQueue:        exportQueue,
		PrepareSubmission:  prepareSubmission,
		SubmitAttestations: submitAttestations,
		MatchProjects:      matchProjects,
		ProfileProject:     profileProject,
		SubmitContribution: submitContribution,
	}, nil
}
