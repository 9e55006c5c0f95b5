package attest

import (
	"context"
	"fmt"
	"strings"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Preparer implements usecase.TransactionPreparer. Each validated row
// becomes one signable payload addressed at the chain's attestation
// contract.
type Preparer struct {
	contracts map[string]string
	encoder   *Encoder
}

// NewPreparer creates a new transaction preparer
func NewPreparer(cfg *config.RuntimeConfig, encoder *Encoder) *Preparer {
	return &Preparer{
		contracts: cfg.Attest.Contracts,
		encoder:   encoder,
	}
}

// Prepare converts rows into prepared attestations. All rows must target
// the same chain; the wallet signs one transaction against one network.
func (p *Preparer) Prepare(ctx context.Context, rows []domain.QueueRow) ([]domain.PreparedAttestation, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	chainID := rows[0].ChainID
	for i, row := range rows {
		if row.ChainID != chainID {
			return nil, &domain.ValidationError{
				RowIndex: i,
				Field:    "chain_id",
				Message:  fmt.Sprintf("all rows must target one chain per submission, found %q and %q", chainID, row.ChainID),
			}
		}
	}

	contract, ok := p.contracts[chainID]
	if !ok {
		return nil, fmt.Errorf("no attestation contract configured for chain %s", chainID)
	}

	prepared := make([]domain.PreparedAttestation, 0, len(rows))
	for _, row := range rows {
		data, err := p.encoder.EncodeLabel(row)
		if err != nil {
			return nil, err
		}
		prepared = append(prepared, domain.PreparedAttestation{
			ChainID: chainID,
			To:      contract,
			Subject: strings.ToLower(row.Address),
			Data:    data,
		})
	}
	return prepared, nil
}

var _ usecase.TransactionPreparer = (*Preparer)(nil)
