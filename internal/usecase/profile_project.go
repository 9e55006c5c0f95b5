package usecase

import (
	"context"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// ProfileProjectParams contains parameters for the profiler call
type ProfileProjectParams struct {
	Prompt string
}

// ProfileProject is the use case for prefilling the project form from the
// platform's AI profiler. Returned fields only fill blanks; values the
// user already entered are kept.
type ProfileProject struct {
	config *config.RuntimeConfig
	repo   QueueRepository
	client ContributionClient
}

// NewProfileProject creates a new ProfileProject use case
func NewProfileProject(cfg *config.RuntimeConfig, repo QueueRepository, client ContributionClient) *ProfileProject {
	return &ProfileProject{config: cfg, repo: repo, client: client}
}

// Run asks the profiler for a draft and merges it into the stored form.
func (uc *ProfileProject) Run(ctx context.Context, params ProfileProjectParams) (*domain.ProjectForm, error) {
	draft, err := uc.client.Profile(ctx, params.Prompt)
	if err != nil {
		return nil, err
	}

	form, err := uc.repo.LoadForm(ctx)
	if err != nil {
		return nil, err
	}
	if form == nil {
		form = &domain.ProjectForm{}
	}

	merged := fillBlanks(*form, *draft).Normalize()
	if err := uc.repo.SaveForm(ctx, &merged); err != nil {
		return nil, err
	}
	return &merged, nil
}

func fillBlanks(base, draft domain.ProjectForm) domain.ProjectForm {
	pick := func(current, suggested string) string {
		if current != "" {
			return current
		}
		return suggested
	}
	return domain.ProjectForm{
		OwnerProject: pick(base.OwnerProject, draft.OwnerProject),
		DisplayName:  pick(base.DisplayName, draft.DisplayName),
		Description:  pick(base.Description, draft.Description),
		Website:      pick(base.Website, draft.Website),
		MainGithub:   pick(base.MainGithub, draft.MainGithub),
		Twitter:      pick(base.Twitter, draft.Twitter),
		Telegram:     pick(base.Telegram, draft.Telegram),
	}
}
