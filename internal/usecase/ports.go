package usecase

import (
	"context"
	"io"

	"github.com/openlabels/oli-cli/internal/domain"
)

// QueueRepository persists the working queue, the current preview, and the
// project form between invocations.
type QueueRepository interface {
	LoadQueue(ctx context.Context) (*domain.Queue, error)
	SaveQueue(ctx context.Context, queue *domain.Queue) error
	LoadPreview(ctx context.Context) (*domain.SubmitPreview, error)
	SavePreview(ctx context.Context, preview *domain.SubmitPreview) error
	ClearPreview(ctx context.Context) error
	LoadForm(ctx context.Context) (*domain.ProjectForm, error)
	SaveForm(ctx context.Context, form *domain.ProjectForm) error
}

// DirectoryClient fetches the project directory. The result is treated as
// an immutable snapshot for the lifetime of the process.
type DirectoryClient interface {
	FetchProjects(ctx context.Context) ([]domain.ProjectRecord, error)
}

// RowValidator checks queue rows against the directory and field
// constraints. ValidateRow serves the single-row flow, ValidateRows the
// bulk flow (callers cap the batch at MaxBulkRows).
type RowValidator interface {
	ValidateRow(ctx context.Context, row domain.QueueRow, directory []domain.ProjectRecord) error
	ValidateRows(ctx context.Context, rows []domain.QueueRow, directory []domain.ProjectRecord) error
}

// TransactionPreparer converts validated rows into signable payloads.
type TransactionPreparer interface {
	Prepare(ctx context.Context, rows []domain.QueueRow) ([]domain.PreparedAttestation, error)
}

// WalletBridge talks to the connected wallet over JSON-RPC. Account must
// fail fast when no provider or account is available; submission is never
// attempted without a working bridge.
type WalletBridge interface {
	Account(ctx context.Context) (string, error)
	SwitchChain(ctx context.Context, chainID string) error
	SendTransaction(ctx context.Context, from, to string, data []byte) (string, error)
}

// AttestationSubmitter sends prepared payloads through the wallet.
type AttestationSubmitter interface {
	SubmitSingle(ctx context.Context, from string, att domain.PreparedAttestation) (string, error)
	SubmitBulk(ctx context.Context, from string, atts []domain.PreparedAttestation) (string, error)
}

// CSVCodec parses and renders queue rows with the editable-field
// allow-list applied.
type CSVCodec interface {
	Decode(r io.Reader) ([]domain.QueueRow, error)
	Encode(w io.Writer, rows []domain.QueueRow) error
}

// ProjectMatcher ranks directory entries against free-text input.
type ProjectMatcher interface {
	Match(value string, directory []domain.ProjectRecord) []domain.ProjectMatch
}

// ContributionClient calls the platform's profiler and contribution APIs.
type ContributionClient interface {
	Profile(ctx context.Context, prompt string) (*domain.ProjectForm, error)
	SubmitContribution(ctx context.Context, form domain.ProjectForm, logoPath string) (*ContributionReceipt, error)
}

// ContributionReceipt reports the pull requests opened server-side.
type ContributionReceipt struct {
	YamlPullRequestURL string
	LogoPullRequestURL string
	YamlBranchName     string
	LogoBranchName     string
}

// Confirmer asks the user to approve signing. Implementations must refuse
// in non-interactive mode rather than assume consent.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// ValidateResult reports which flow validated and the normalized rows.
type ValidateResult struct {
	Flow domain.SubmitFlow
	Rows []domain.QueueRow
}

// ImportResult reports a merge outcome plus the post-import validation.
type ImportResult struct {
	Imported   int
	QueueSize  int
	Validation *ValidateResult
	// ValidationErr carries a post-import validation failure. Import
	// itself succeeded; the rows just need fixing.
	ValidationErr error
}

// PrepareResult carries the preview for rendering.
type PrepareResult struct {
	Preview *domain.SubmitPreview
	From    string
}

// MatchResult carries ranked duplicate-detection output. Degraded is set
// when the directory could not be loaded.
type MatchResult struct {
	Matches  []domain.ProjectMatch
	Degraded bool
}
