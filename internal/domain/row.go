package domain

import (
	"fmt"
	"strings"
)

// MaxQueueRows caps how many attestation rows the queue will hold.
const MaxQueueRows = 500

// DefaultChainID is substituted when a row is added without a chain.
const DefaultChainID = "eip155:8453"

// QueueRow is one candidate attestation awaiting validation and submission.
type QueueRow struct {
	ChainID       string `json:"chainId" csv:"chain_id"`
	Address       string `json:"address" csv:"address"`
	ContractName  string `json:"contractName" csv:"contract_name"`
	OwnerProject  string `json:"ownerProject" csv:"owner_project"`
	UsageCategory string `json:"usageCategory" csv:"usage_category"`
}

// Key returns the identity key used for deduplication when merging rows.
// Address comparison is case-insensitive.
func (r QueueRow) Key() string {
	return fmt.Sprintf("%s|%s|%s", r.ChainID, strings.ToLower(r.Address), r.OwnerProject)
}

// IsMeaningful reports whether the row carries at least one distinguishing
// field. A row holding only a chain id counts as empty: chain ids are
// defaulted on entry, so they don't distinguish a user-authored row from a
// placeholder.
func (r QueueRow) IsMeaningful() bool {
	return strings.TrimSpace(r.Address) != "" ||
		strings.TrimSpace(r.ContractName) != "" ||
		strings.TrimSpace(r.OwnerProject) != "" ||
		strings.TrimSpace(r.UsageCategory) != ""
}

// PrepareRowForQueue maps raw input into canonical form: strings trimmed,
// address lowercased, chain id and owner project defaulted when blank.
func PrepareRowForQueue(row QueueRow, defaultChainID, fallbackOwner string) QueueRow {
	out := QueueRow{
		ChainID:       strings.TrimSpace(row.ChainID),
		Address:       strings.ToLower(strings.TrimSpace(row.Address)),
		ContractName:  strings.TrimSpace(row.ContractName),
		OwnerProject:  strings.TrimSpace(row.OwnerProject),
		UsageCategory: strings.TrimSpace(row.UsageCategory),
	}
	if out.ChainID == "" {
		out.ChainID = defaultChainID
	}
	if out.OwnerProject == "" {
		out.OwnerProject = strings.TrimSpace(fallbackOwner)
	}
	return out
}

// TemplateRow is the editable placeholder a reset queue starts from.
func TemplateRow(defaultChainID, owner string) QueueRow {
	return QueueRow{ChainID: defaultChainID, OwnerProject: strings.TrimSpace(owner)}
}
