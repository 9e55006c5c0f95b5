package usecase

import (
	"context"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// ShowForm is the use case for inspecting the working project form
type ShowForm struct {
	config *config.RuntimeConfig
	repo   QueueRepository
}

// NewShowForm creates a new ShowForm use case
func NewShowForm(cfg *config.RuntimeConfig, repo QueueRepository) *ShowForm {
	return &ShowForm{config: cfg, repo: repo}
}

// Run loads the stored form, returning an empty one when nothing is saved.
func (uc *ShowForm) Run(ctx context.Context) (*domain.ProjectForm, error) {
	form, err := uc.repo.LoadForm(ctx)
	if err != nil {
		return nil, err
	}
	if form == nil {
		form = &domain.ProjectForm{}
	}
	return form, nil
}
