package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for workflow operations
var (
	// ErrQueueEmpty is returned when an operation needs at least one meaningful row
	ErrQueueEmpty = errors.New("queue has no meaningful rows")

	// ErrNoValidRows is returned when preparation yields nothing signable
	ErrNoValidRows = errors.New("no valid rows to prepare")

	// ErrNoWalletProvider is returned when no wallet RPC endpoint is configured
	ErrNoWalletProvider = errors.New("no wallet provider configured")

	// ErrNoAccount is returned when the wallet reports no connected account
	ErrNoAccount = errors.New("wallet has no connected account")

	// ErrStalePreview is returned when the queue changed after the preview was built
	ErrStalePreview = errors.New("preview no longer matches queue contents")

	// ErrNoPreview is returned when submission is attempted without a prepared preview
	ErrNoPreview = errors.New("no prepared preview")

	// ErrMissingOwnerProject is returned when a contribution lacks its slug
	ErrMissingOwnerProject = errors.New("owner project is required")

	// ErrDirectoryUnavailable marks a failed directory load; duplicate
	// detection degrades but nothing else stops working
	ErrDirectoryUnavailable = errors.New("project directory unavailable")

	// ErrInvalidChainID is returned for chain identifiers outside the
	// eip155 namespace
	ErrInvalidChainID = errors.New("invalid chain id")
)

// ValidationError is a per-row diagnostic. FromValidator distinguishes
// messages produced by the validation step from generic queue errors so
// callers can prefix them accordingly.
type ValidationError struct {
	RowIndex      int
	Field         string
	Message       string
	FromValidator bool
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("row %d: %s: %s", e.RowIndex+1, e.Field, e.Message)
	}
	return fmt.Sprintf("row %d: %s", e.RowIndex+1, e.Message)
}

// CSVParseError wraps import parse failures. Kept distinct from validation
// errors: a failed parse leaves the queue unchanged.
type CSVParseError struct {
	Err error
}

func (e *CSVParseError) Error() string {
	return fmt.Sprintf("CSV parsing failed: %v", e.Err)
}

func (e *CSVParseError) Unwrap() error { return e.Err }

// WalletError wraps provider/account/RPC failures so the caller can guide
// the user to reconnect without re-running validation.
type WalletError struct {
	Op  string
	Err error
}

func (e *WalletError) Error() string {
	return fmt.Sprintf("wallet %s: %v", e.Op, e.Err)
}

func (e *WalletError) Unwrap() error { return e.Err }
