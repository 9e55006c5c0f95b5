package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
)

// fakeRepo is an in-memory QueueRepository.
type fakeRepo struct {
	queue   *domain.Queue
	preview *domain.SubmitPreview
	form    *domain.ProjectForm
}

func newFakeRepo(rows ...domain.QueueRow) *fakeRepo {
	return &fakeRepo{queue: &domain.Queue{Rows: rows}}
}

func (f *fakeRepo) LoadQueue(context.Context) (*domain.Queue, error) {
	if f.queue == nil {
		return &domain.Queue{}, nil
	}
	return f.queue, nil
}

func (f *fakeRepo) SaveQueue(_ context.Context, q *domain.Queue) error {
	f.queue = q
	return nil
}

func (f *fakeRepo) LoadPreview(context.Context) (*domain.SubmitPreview, error) {
	return f.preview, nil
}

func (f *fakeRepo) SavePreview(_ context.Context, p *domain.SubmitPreview) error {
	f.preview = p
	return nil
}

func (f *fakeRepo) ClearPreview(context.Context) error {
	f.preview = nil
	return nil
}

func (f *fakeRepo) LoadForm(context.Context) (*domain.ProjectForm, error) {
	return f.form, nil
}

func (f *fakeRepo) SaveForm(_ context.Context, form *domain.ProjectForm) error {
	f.form = form
	return nil
}

// fakeDirectory serves a fixed record set.
type fakeDirectory struct {
	records []domain.ProjectRecord
	err     error
}

func (f *fakeDirectory) FetchProjects(context.Context) ([]domain.ProjectRecord, error) {
	return f.records, f.err
}

// fakeValidator records which path was taken.
type fakeValidator struct {
	singleCalls int
	bulkCalls   int
	rowErr      error
	rowsErr     error
}

func (f *fakeValidator) ValidateRow(context.Context, domain.QueueRow, []domain.ProjectRecord) error {
	f.singleCalls++
	return f.rowErr
}

func (f *fakeValidator) ValidateRows(context.Context, []domain.QueueRow, []domain.ProjectRecord) error {
	f.bulkCalls++
	return f.rowsErr
}

// fakePreparer turns rows into trivially prepared payloads.
type fakePreparer struct {
	err error
	// mutate lets tests edit the queue mid-preparation to exercise the
	// stale-result guard
	mutate func()
}

func (f *fakePreparer) Prepare(_ context.Context, rows []domain.QueueRow) ([]domain.PreparedAttestation, error) {
	if f.mutate != nil {
		f.mutate()
	}
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.PreparedAttestation, len(rows))
	for i, r := range rows {
		out[i] = domain.PreparedAttestation{
			ChainID: r.ChainID,
			To:      "0x4200000000000000000000000000000000000021",
			Subject: r.Address,
			Data:    []byte{0xde, 0xad},
		}
	}
	return out, nil
}

// fakeWallet simulates the JSON-RPC bridge.
type fakeWallet struct {
	account    string
	accountErr error
	switched   []string
	sendErr    error
	sent       int
}

func (f *fakeWallet) Account(context.Context) (string, error) {
	if f.accountErr != nil {
		return "", f.accountErr
	}
	return f.account, nil
}

func (f *fakeWallet) SwitchChain(_ context.Context, chainID string) error {
	f.switched = append(f.switched, chainID)
	return nil
}

func (f *fakeWallet) SendTransaction(context.Context, string, string, []byte) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sent++
	return fmt.Sprintf("0xhash%d", f.sent), nil
}

// fakeSubmitter counts single vs bulk submissions.
type fakeSubmitter struct {
	singleCalls int
	bulkCalls   int
	err         error
}

func (f *fakeSubmitter) SubmitSingle(context.Context, string, domain.PreparedAttestation) (string, error) {
	f.singleCalls++
	if f.err != nil {
		return "", f.err
	}
	return "0xaaa111", nil
}

func (f *fakeSubmitter) SubmitBulk(context.Context, string, []domain.PreparedAttestation) (string, error) {
	f.bulkCalls++
	if f.err != nil {
		return "", f.err
	}
	return "0xbbb222", nil
}

// fakeConfirmer answers without prompting.
type fakeConfirmer struct {
	answer bool
	err    error
	asked  int
}

func (f *fakeConfirmer) Confirm(context.Context, string) (bool, error) {
	f.asked++
	return f.answer, f.err
}

// fakeCodec is a minimal CSV codec for import tests.
type fakeCodec struct{}

func (fakeCodec) Decode(r io.Reader) ([]domain.QueueRow, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	var rows []domain.QueueRow
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 5 {
			return nil, fmt.Errorf("record %d has %d fields", i, len(rec))
		}
		rows = append(rows, domain.QueueRow{
			ChainID:       rec[0],
			Address:       rec[1],
			ContractName:  rec[2],
			OwnerProject:  rec[3],
			UsageCategory: rec[4],
		})
	}
	return rows, nil
}

func (fakeCodec) Encode(io.Writer, []domain.QueueRow) error { return nil }

func testConfig() *config.RuntimeConfig {
	return &config.RuntimeConfig{
		DefaultChainID: "eip155:8453",
		OwnerProject:   "uniswap",
	}
}

func nopSink() ProgressSink { return NopProgress{} }
