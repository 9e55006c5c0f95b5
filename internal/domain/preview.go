package domain

import "time"

// SubmitFlow distinguishes single-row from batched submission.
type SubmitFlow string

const (
	FlowSingle SubmitFlow = "single"
	FlowBulk   SubmitFlow = "bulk"
)

// FlowForRowCount resolves the submission flow. Exactly one meaningful row
// is always single; two or more is bulk.
func FlowForRowCount(n int) SubmitFlow {
	if n <= 1 {
		return FlowSingle
	}
	return FlowBulk
}

// PreparedAttestation is one signable payload built from a validated row.
type PreparedAttestation struct {
	ChainID string `json:"chainId"`
	To      string `json:"to"`      // attestation contract address
	Subject string `json:"subject"` // the labeled contract
	Data    []byte `json:"data"`    // ABI-encoded label payload
}

// SubmitPreview is a frozen snapshot of prepared rows shown before signing.
// RowsSignature pins the queue content the preview was built from; the
// preview must be discarded when the live queue no longer matches.
type SubmitPreview struct {
	Flow          SubmitFlow            `json:"flow"`
	Prepared      []PreparedAttestation `json:"prepared"`
	RowsSignature string                `json:"rowsSignature"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// Matches reports whether the preview still corresponds to the queue.
func (p *SubmitPreview) Matches(q *Queue) bool {
	return p != nil && p.RowsSignature == q.Signature()
}

// SubmitStatus is the terminal state of a submission attempt.
type SubmitStatus string

const (
	SubmitStatusSuccess SubmitStatus = "success"
	SubmitStatusFailed  SubmitStatus = "failed"
)

// SubmitResult records the outcome of an on-chain submission.
type SubmitResult struct {
	Status      SubmitStatus `json:"status"`
	Flow        SubmitFlow   `json:"flow"`
	TxHash      string       `json:"txHash,omitempty"`
	RowCount    int          `json:"rowCount"`
	SubmittedAt time.Time    `json:"submittedAt"`
}
