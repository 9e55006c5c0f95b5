// Package attest validates queue rows and builds the attestation
// transactions that record them on-chain.
package attest

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// usageCategories is the accepted value set for the usage_category field.
var usageCategories = map[string]struct{}{
	"dex":                 {},
	"cex":                 {},
	"lending":             {},
	"staking":             {},
	"bridge":              {},
	"nft_marketplace":     {},
	"gaming":              {},
	"gambling":            {},
	"dao":                 {},
	"erc20":               {},
	"erc721":              {},
	"erc1155":             {},
	"stablecoin":          {},
	"oracle":              {},
	"identity":            {},
	"privacy":             {},
	"insurance":           {},
	"payments":            {},
	"mev":                 {},
	"middleware":          {},
	"erc4337":             {},
	"airdrop":             {},
	"derivative":          {},
	"index":               {},
	"launchpad":           {},
	"custody":             {},
	"yield_vaults":        {},
	"smart_account":       {},
	"depin":               {},
	"developer_tools":     {},
	"rwa":                 {},
	"community":           {},
	"donation":            {},
	"contract_deployment": {},
	"other":               {},
}

// Validator implements usecase.RowValidator with field constraints plus
// directory membership for owner_project.
type Validator struct{}

// NewValidator creates a new row validator
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRow checks a single row. The directory may be empty, in which
// case owner membership is not checked.
func (v *Validator) ValidateRow(ctx context.Context, row domain.QueueRow, directory []domain.ProjectRecord) error {
	return v.validateAt(0, row, ownerSet(directory))
}

// ValidateRows checks a batch, reporting the first failing row.
func (v *Validator) ValidateRows(ctx context.Context, rows []domain.QueueRow, directory []domain.ProjectRecord) error {
	owners := ownerSet(directory)
	for i, row := range rows {
		if err := v.validateAt(i, row, owners); err != nil {
			return err
		}
	}
	return nil
}

func (v *Validator) validateAt(index int, row domain.QueueRow, owners map[string]struct{}) error {
	fail := func(field, format string, args ...any) error {
		return &domain.ValidationError{
			RowIndex:      index,
			Field:         field,
			Message:       fmt.Sprintf(format, args...),
			FromValidator: true,
		}
	}

	if _, err := domain.ParseEIP155(row.ChainID); err != nil {
		return fail("chain_id", "%q is not a supported chain id", row.ChainID)
	}

	if row.Address == "" {
		return fail("address", "address is required")
	}
	if !common.IsHexAddress(row.Address) {
		return fail("address", "%q is not a valid address", row.Address)
	}

	if row.ContractName == "" && row.OwnerProject == "" && row.UsageCategory == "" {
		return fail("", "row has no label content")
	}

	if row.OwnerProject != "" {
		if !domain.OwnerProjectPattern.MatchString(row.OwnerProject) {
			return fail("owner_project", "%q is not a valid project slug", row.OwnerProject)
		}
		if owners != nil {
			if _, ok := owners[row.OwnerProject]; !ok {
				return fail("owner_project", "%q is not a known project", row.OwnerProject)
			}
		}
	}

	if row.UsageCategory != "" {
		if _, ok := usageCategories[row.UsageCategory]; !ok {
			return fail("usage_category", "%q is not a known usage category", row.UsageCategory)
		}
	}

	return nil
}

func ownerSet(directory []domain.ProjectRecord) map[string]struct{} {
	if len(directory) == 0 {
		return nil
	}
	owners := make(map[string]struct{}, len(directory))
	for _, rec := range directory {
		owners[rec.OwnerProject] = struct{}{}
	}
	return owners
}

var _ usecase.RowValidator = (*Validator)(nil)
