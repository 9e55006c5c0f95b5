package usecase

import (
	"context"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// QueueStatus is the loaded queue plus its live signature and any preview.
type QueueStatus struct {
	Queue        *domain.Queue
	Preview      *domain.SubmitPreview
	Signature    string
	PreviewStale bool
}

// ShowQueue is the use case for inspecting the working queue
type ShowQueue struct {
	config *config.RuntimeConfig
	repo   QueueRepository
}

// NewShowQueue creates a new ShowQueue use case
func NewShowQueue(cfg *config.RuntimeConfig, repo QueueRepository) *ShowQueue {
	return &ShowQueue{config: cfg, repo: repo}
}

// Run loads the queue and reports whether a stored preview still matches it.
func (uc *ShowQueue) Run(ctx context.Context) (*QueueStatus, error) {
	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}

	preview, err := uc.repo.LoadPreview(ctx)
	if err != nil {
		return nil, err
	}

	status := &QueueStatus{
		Queue:     queue,
		Preview:   preview,
		Signature: queue.Signature(),
	}
	if preview != nil && !preview.Matches(queue) {
		status.PreviewStale = true
	}
	return status, nil
}
