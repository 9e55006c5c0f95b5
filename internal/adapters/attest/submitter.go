package attest

import (
	"context"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Submitter implements usecase.AttestationSubmitter. Single submissions
// send one attest() call; bulk submissions batch every row into one
// multiAttest() transaction.
type Submitter struct {
	encoder *Encoder
	wallet  usecase.WalletBridge
}

// NewSubmitter creates a new attestation submitter
func NewSubmitter(encoder *Encoder, wallet usecase.WalletBridge) *Submitter {
	return &Submitter{
		encoder: encoder,
		wallet:  wallet,
	}
}

// SubmitSingle sends one attestation through the wallet.
func (s *Submitter) SubmitSingle(ctx context.Context, from string, att domain.PreparedAttestation) (string, error) {
	calldata, err := s.encoder.AttestCalldata(att)
	if err != nil {
		return "", err
	}
	return s.wallet.SendTransaction(ctx, from, att.To, calldata)
}

// SubmitBulk sends all attestations in a single transaction. Preparation
// guarantees the rows share one chain and contract.
func (s *Submitter) SubmitBulk(ctx context.Context, from string, atts []domain.PreparedAttestation) (string, error) {
	if len(atts) == 0 {
		return "", domain.ErrNoValidRows
	}
	calldata, err := s.encoder.MultiAttestCalldata(atts)
	if err != nil {
		return "", err
	}
	return s.wallet.SendTransaction(ctx, from, atts[0].To, calldata)
}

var _ usecase.AttestationSubmitter = (*Submitter)(nil)
