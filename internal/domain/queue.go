package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/samber/lo"
)

// Queue is the ordered list of candidate attestation rows. Insertion order
// matters for display and submission.
type Queue struct {
	Rows []QueueRow `json:"rows"`
}

// MeaningfulRows returns the rows that would survive validation/submission,
// preserving order.
func (q *Queue) MeaningfulRows() []QueueRow {
	return lo.Filter(q.Rows, func(r QueueRow, _ int) bool {
		return r.IsMeaningful()
	})
}

// Signature is a content hash over the meaningful rows. A preview built
// against one signature must never be signed against another.
func (q *Queue) Signature() string {
	h := sha256.New()
	for _, r := range q.MeaningfulRows() {
		h.Write([]byte(strings.Join([]string{
			r.ChainID,
			strings.ToLower(r.Address),
			r.ContractName,
			r.OwnerProject,
			r.UsageCategory,
		}, "\x1f")))
		h.Write([]byte{'\x1e'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// MergeRowsIntoQueue combines the existing meaningful rows with newly
// imported or edited rows. First occurrence wins: existing queue rows take
// precedence over duplicates from an import. The result is truncated to
// MaxQueueRows. A merge that produces zero rows resets the queue to a single
// templated row so there is always something to edit.
func MergeRowsIntoQueue(existing *Queue, incoming []QueueRow, defaultChainID, fallbackOwner string) *Queue {
	seen := make(map[string]struct{})
	merged := make([]QueueRow, 0, len(existing.Rows)+len(incoming))

	appendRow := func(r QueueRow) {
		if !r.IsMeaningful() {
			return
		}
		key := r.Key()
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		merged = append(merged, r)
	}

	for _, r := range existing.MeaningfulRows() {
		appendRow(r)
	}
	for _, r := range incoming {
		appendRow(PrepareRowForQueue(r, defaultChainID, fallbackOwner))
	}

	if len(merged) > MaxQueueRows {
		merged = merged[:MaxQueueRows]
	}
	if len(merged) == 0 {
		merged = []QueueRow{TemplateRow(defaultChainID, fallbackOwner)}
	}

	return &Queue{Rows: merged}
}
