package usecase

import (
	"context"
	"io"

	"github.com/openlabels/oli-cli/internal/config"
)

// ExportQueue is the use case for writing the queue back out as CSV.
type ExportQueue struct {
	config *config.RuntimeConfig
	repo   QueueRepository
	codec  CSVCodec
}

// NewExportQueue creates a new ExportQueue use case
func NewExportQueue(cfg *config.RuntimeConfig, repo QueueRepository, codec CSVCodec) *ExportQueue {
	return &ExportQueue{config: cfg, repo: repo, codec: codec}
}

// Run writes the meaningful rows to the given writer. Returns the count.
func (uc *ExportQueue) Run(ctx context.Context, out io.Writer) (int, error) {
	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return 0, err
	}

	rows := queue.MeaningfulRows()
	if err := uc.codec.Encode(out, rows); err != nil {
		return 0, err
	}
	return len(rows), nil
}
