package usecase

import (
	"context"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// MaxBulkRows caps how many rows a single bulk validation call accepts.
const MaxBulkRows = domain.MaxQueueRows

// ValidateQueue is the use case for checking queue rows against the
// project directory and field constraints.
type ValidateQueue struct {
	config    *config.RuntimeConfig
	repo      QueueRepository
	directory DirectoryClient
	validator RowValidator
	sink      ProgressSink
}

// NewValidateQueue creates a new ValidateQueue use case
func NewValidateQueue(
	cfg *config.RuntimeConfig,
	repo QueueRepository,
	directory DirectoryClient,
	validator RowValidator,
	sink ProgressSink,
) *ValidateQueue {
	return &ValidateQueue{
		config:    cfg,
		repo:      repo,
		directory: directory,
		validator: validator,
		sink:      sink,
	}
}

// Run validates the meaningful rows. A single meaningful row goes through
// the per-row validator; two or more go through the batch validator.
func (uc *ValidateQueue) Run(ctx context.Context) (*ValidateResult, error) {
	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}
	return uc.ValidateRows(ctx, queue.MeaningfulRows())
}

// ValidateRows runs flow selection and validation over the given rows.
// Exposed separately so import and preparation can validate without
// re-reading the store.
func (uc *ValidateQueue) ValidateRows(ctx context.Context, rows []domain.QueueRow) (*ValidateResult, error) {
	if len(rows) == 0 {
		return nil, domain.ErrQueueEmpty
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "directory",
		Message: "Loading project directory",
		Spinner: true,
	})

	records, err := uc.directory.FetchProjects(ctx)
	if err != nil {
		return nil, err
	}

	flow := domain.FlowForRowCount(len(rows))

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "validating",
		Total:   len(rows),
		Message: "Validating rows",
		Spinner: true,
	})

	switch flow {
	case domain.FlowSingle:
		if err := uc.validator.ValidateRow(ctx, rows[0], records); err != nil {
			return nil, err
		}
	case domain.FlowBulk:
		if len(rows) > MaxBulkRows {
			return nil, &domain.ValidationError{Message: "too many rows for bulk validation"}
		}
		if err := uc.validator.ValidateRows(ctx, rows, records); err != nil {
			return nil, err
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(rows),
		Total:   len(rows),
		Message: "Rows validated",
	})

	return &ValidateResult{Flow: flow, Rows: rows}, nil
}
