package usecase

import (
	"context"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// SubmitContributionParams contains parameters for the contribution call
type SubmitContributionParams struct {
	// Overrides are applied on top of the stored form before submission
	Overrides domain.ProjectForm
	// LogoPath optionally attaches a logo file
	LogoPath string
}

// SubmitContribution is the use case for sending project metadata to the
// contribution API, which opens the pull requests server-side. The form is
// kept on failure so the user can retry.
type SubmitContribution struct {
	config *config.RuntimeConfig
	repo   QueueRepository
	client ContributionClient
	sink   ProgressSink
}

// NewSubmitContribution creates a new SubmitContribution use case
func NewSubmitContribution(cfg *config.RuntimeConfig, repo QueueRepository, client ContributionClient, sink ProgressSink) *SubmitContribution {
	return &SubmitContribution{config: cfg, repo: repo, client: client, sink: sink}
}

// Run normalizes, validates and submits the project form.
func (uc *SubmitContribution) Run(ctx context.Context, params SubmitContributionParams) (*ContributionReceipt, error) {
	form, err := uc.repo.LoadForm(ctx)
	if err != nil {
		return nil, err
	}
	if form == nil {
		form = &domain.ProjectForm{}
	}

	merged := fillBlanks(params.Overrides, *form).Normalize()
	if merged.DisplayName == "" && merged.OwnerProject != "" {
		merged.DisplayName = domain.DisplayNameFromSlug(merged.OwnerProject)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveForm(ctx, &merged); err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Message: "Submitting contribution",
		Spinner: true,
	})

	receipt, err := uc.client.SubmitContribution(ctx, merged, params.LogoPath)
	if err != nil {
		return nil, err
	}
	return receipt, nil
}
