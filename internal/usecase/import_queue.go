package usecase

import (
	"context"
	"io"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// ImportQueueParams contains parameters for a CSV import
type ImportQueueParams struct {
	Input io.Reader
	// SkipValidation suppresses the automatic post-import validation
	SkipValidation bool
}

// ImportQueue is the use case for merging CSV rows into the queue.
// Validation runs once, automatically, after a successful import; a parse
// failure leaves the queue untouched.
type ImportQueue struct {
	config   *config.RuntimeConfig
	repo     QueueRepository
	codec    CSVCodec
	validate *ValidateQueue
	sink     ProgressSink
}

// NewImportQueue creates a new ImportQueue use case
func NewImportQueue(
	cfg *config.RuntimeConfig,
	repo QueueRepository,
	codec CSVCodec,
	validate *ValidateQueue,
	sink ProgressSink,
) *ImportQueue {
	return &ImportQueue{
		config:   cfg,
		repo:     repo,
		codec:    codec,
		validate: validate,
		sink:     sink,
	}
}

// Run parses, merges, persists and then validates the imported rows.
func (uc *ImportQueue) Run(ctx context.Context, params ImportQueueParams) (*ImportResult, error) {
	rows, err := uc.codec.Decode(params.Input)
	if err != nil {
		return nil, &domain.CSVParseError{Err: err}
	}

	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}

	owner := uc.config.OwnerProject
	if form, ferr := uc.repo.LoadForm(ctx); ferr == nil && form != nil && form.OwnerProject != "" {
		owner = form.OwnerProject
	}

	merged := domain.MergeRowsIntoQueue(queue, rows, uc.config.DefaultChainID, owner)
	if err := uc.repo.SaveQueue(ctx, merged); err != nil {
		return nil, err
	}
	if err := uc.repo.ClearPreview(ctx); err != nil {
		return nil, err
	}

	result := &ImportResult{
		Imported:  len(rows),
		QueueSize: len(merged.Rows),
	}

	if params.SkipValidation {
		return result, nil
	}

	// Validation errors don't undo the import; they are reported so the
	// user can fix rows and re-validate.
	validation, vErr := uc.validate.ValidateRows(ctx, merged.MeaningfulRows())
	result.Validation = validation
	result.ValidationErr = vErr

	return result, nil
}
