package usecase

import (
	"context"
	"time"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// PrepareSubmission is the use case for building a signable preview from
// the validated queue. The preview carries the queue signature captured
// before validation started, so results landing after a later edit can
// never be signed.
type PrepareSubmission struct {
	config   *config.RuntimeConfig
	repo     QueueRepository
	validate *ValidateQueue
	preparer TransactionPreparer
	wallet   WalletBridge
	sink     ProgressSink
}

// NewPrepareSubmission creates a new PrepareSubmission use case
func NewPrepareSubmission(
	cfg *config.RuntimeConfig,
	repo QueueRepository,
	validate *ValidateQueue,
	preparer TransactionPreparer,
	wallet WalletBridge,
	sink ProgressSink,
) *PrepareSubmission {
	return &PrepareSubmission{
		config:   cfg,
		repo:     repo,
		validate: validate,
		preparer: preparer,
		wallet:   wallet,
		sink:     sink,
	}
}

// Run validates the queue and prepares one signable payload per row.
func (uc *PrepareSubmission) Run(ctx context.Context) (*PrepareResult, error) {
	// A connected wallet is required before any preparation work starts.
	from, err := uc.wallet.Account(ctx)
	if err != nil {
		return nil, err
	}

	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}
	signature := queue.Signature()

	rows := queue.MeaningfulRows()
	validation, err := uc.validate.ValidateRows(ctx, rows)
	if err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "preparing",
		Total:   len(validation.Rows),
		Message: "Preparing transaction preview",
		Spinner: true,
	})

	prepared, err := uc.preparer.Prepare(ctx, validation.Rows)
	if err != nil {
		return nil, err
	}
	if len(prepared) == 0 {
		return nil, domain.ErrNoValidRows
	}

	preview := &domain.SubmitPreview{
		Flow:          validation.Flow,
		Prepared:      prepared,
		RowsSignature: signature,
		CreatedAt:     time.Now().UTC(),
	}

	// The queue may have been edited while validation was in flight;
	// persisting a preview for rows that no longer exist would let a stale
	// snapshot reach the signing step.
	current, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}
	if !preview.Matches(current) {
		return nil, domain.ErrStalePreview
	}

	if err := uc.repo.SavePreview(ctx, preview); err != nil {
		return nil, err
	}

	return &PrepareResult{Preview: preview, From: from}, nil
}
