package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// SubmitAttestationsParams contains parameters for submission
type SubmitAttestationsParams struct {
	// SkipConfirm bypasses the interactive confirmation (used by --yes)
	SkipConfirm bool
}

// SubmitAttestations is the use case for signing and sending the prepared
// preview. The preview is cleared on success only; a failed submission
// keeps both queue and preview so the user can retry.
type SubmitAttestations struct {
	config    *config.RuntimeConfig
	repo      QueueRepository
	wallet    WalletBridge
	submitter AttestationSubmitter
	confirmer Confirmer
	sink      ProgressSink
}

// NewSubmitAttestations creates a new SubmitAttestations use case
func NewSubmitAttestations(
	cfg *config.RuntimeConfig,
	repo QueueRepository,
	wallet WalletBridge,
	submitter AttestationSubmitter,
	confirmer Confirmer,
	sink ProgressSink,
) *SubmitAttestations {
	return &SubmitAttestations{
		config:    cfg,
		repo:      repo,
		wallet:    wallet,
		submitter: submitter,
		confirmer: confirmer,
		sink:      sink,
	}
}

// Run submits the stored preview through the connected wallet.
func (uc *SubmitAttestations) Run(ctx context.Context, params SubmitAttestationsParams) (*domain.SubmitResult, error) {
	preview, err := uc.repo.LoadPreview(ctx)
	if err != nil {
		return nil, err
	}
	if preview == nil {
		return nil, domain.ErrNoPreview
	}

	queue, err := uc.repo.LoadQueue(ctx)
	if err != nil {
		return nil, err
	}

	// Never sign a preview that no longer matches what the user sees.
	if !preview.Matches(queue) {
		if cErr := uc.repo.ClearPreview(ctx); cErr != nil {
			return nil, cErr
		}
		return nil, domain.ErrStalePreview
	}

	from, err := uc.wallet.Account(ctx)
	if err != nil {
		return nil, err
	}

	if !params.SkipConfirm {
		ok, err := uc.confirmer.Confirm(ctx, confirmPrompt(preview))
		if err != nil {
			return nil, err
		}
		if !ok {
			// Explicit cancel discards the preview; the queue stays.
			if err := uc.repo.ClearPreview(ctx); err != nil {
				return nil, err
			}
			return nil, context.Canceled
		}
	}

	if err := uc.wallet.SwitchChain(ctx, preview.Prepared[0].ChainID); err != nil {
		return nil, err
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "submitting",
		Total:   len(preview.Prepared),
		Message: "Submitting attestations",
		Spinner: true,
	})

	var txHash string
	switch preview.Flow {
	case domain.FlowSingle:
		txHash, err = uc.submitter.SubmitSingle(ctx, from, preview.Prepared[0])
	case domain.FlowBulk:
		txHash, err = uc.submitter.SubmitBulk(ctx, from, preview.Prepared)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.ClearPreview(ctx); err != nil {
		return nil, err
	}

	return &domain.SubmitResult{
		Status:      domain.SubmitStatusSuccess,
		Flow:        preview.Flow,
		TxHash:      txHash,
		RowCount:    len(preview.Prepared),
		SubmittedAt: time.Now().UTC(),
	}, nil
}

func confirmPrompt(p *domain.SubmitPreview) string {
	if p.Flow == domain.FlowSingle {
		return "Sign and submit 1 attestation?"
	}
	return fmt.Sprintf("Sign and submit %d attestations in one transaction?", len(p.Prepared))
}
