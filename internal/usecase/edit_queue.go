package usecase

import (
	"context"
	"fmt"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// EditQueue is the use case for row-level queue mutations. Every mutation
// discards a stored preview: a preview must never outlive the rows it was
// built from.
type EditQueue struct {
	config *config.RuntimeConfig
	repo   QueueRepository
}

// NewEditQueue creates a new EditQueue use case
func NewEditQueue(cfg *config.RuntimeConfig, repo QueueRepository) *EditQueue {
	return &EditQueue{config: cfg, repo: repo}
}

// Add appends one row, normalized and deduplicated against the queue.
func (uc *EditQueue) Add(ctx context.Context, row domain.QueueRow) (*domain.Queue, error) {
	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}

	merged := domain.MergeRowsIntoQueue(queue, []domain.QueueRow{row}, uc.config.DefaultChainID, uc.fallbackOwner(ctx))
	if err := uc.saveAndInvalidate(ctx, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// Set replaces the row at index (1-based, as displayed) with its
// normalized form.
func (uc *EditQueue) Set(ctx context.Context, index int, row domain.QueueRow) (*domain.Queue, error) {
	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}

	i := index - 1
	if i < 0 || i >= len(queue.Rows) {
		return nil, fmt.Errorf("row %d out of range (queue has %d rows)", index, len(queue.Rows))
	}

	queue.Rows[i] = domain.PrepareRowForQueue(row, uc.config.DefaultChainID, uc.fallbackOwner(ctx))
	if err := uc.saveAndInvalidate(ctx, queue); err != nil {
		return nil, err
	}
	return queue, nil
}

// Remove deletes the rows at the given 1-based indices. An empty result is
// reset to a single templated row.
func (uc *EditQueue) Remove(ctx context.Context, indices []int) (*domain.Queue, error) {
	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}

	drop := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		i := idx - 1
		if i < 0 || i >= len(queue.Rows) {
			return nil, fmt.Errorf("row %d out of range (queue has %d rows)", idx, len(queue.Rows))
		}
		drop[i] = struct{}{}
	}

	kept := make([]domain.QueueRow, 0, len(queue.Rows))
	for i, r := range queue.Rows {
		if _, gone := drop[i]; !gone {
			kept = append(kept, r)
		}
	}

	result := domain.MergeRowsIntoQueue(&domain.Queue{Rows: kept}, nil, uc.config.DefaultChainID, uc.fallbackOwner(ctx))
	if err := uc.saveAndInvalidate(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// Clear resets the queue to a single templated row.
func (uc *EditQueue) Clear(ctx context.Context) (*domain.Queue, error) {
	result := domain.MergeRowsIntoQueue(&domain.Queue{}, nil, uc.config.DefaultChainID, uc.fallbackOwner(ctx))
	if err := uc.saveAndInvalidate(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *EditQueue) saveAndInvalidate(ctx context.Context, queue *domain.Queue) error {
	if err := uc.repo.SaveQueue(ctx, queue); err != nil {
		return err
	}
	return uc.repo.ClearPreview(ctx)
}

func (uc *EditQueue) fallbackOwner(ctx context.Context) string {
	if form, err := uc.repo.LoadForm(ctx); err == nil && form != nil && form.OwnerProject != "" {
		return form.OwnerProject
	}
	return uc.config.OwnerProject
}
