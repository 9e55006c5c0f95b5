// Package queue persists the working queue, preview and project form as
// JSON files under the data directory.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// FileStore implements usecase.QueueRepository using the file system.
type FileStore struct {
	queuePath   string
	previewPath string
	formPath    string

	defaultChainID string
	defaultOwner   string
}

// NewFileStore creates a new file-backed queue repository
func NewFileStore(cfg *config.RuntimeConfig) *FileStore {
	return &FileStore{
		queuePath:      filepath.Join(cfg.DataDir, "queue.json"),
		previewPath:    filepath.Join(cfg.DataDir, "preview.json"),
		formPath:       filepath.Join(cfg.DataDir, "project.json"),
		defaultChainID: cfg.DefaultChainID,
		defaultOwner:   cfg.OwnerProject,
	}
}

// LoadQueue reads the queue, seeding a fresh one with a single templated
// row when no file exists yet.
func (s *FileStore) LoadQueue(ctx context.Context) (*domain.Queue, error) {
	var queue domain.Queue
	ok, err := s.readJSON(s.queuePath, &queue)
	if err != nil {
		return nil, err
	}
	if !ok || len(queue.Rows) == 0 {
		return &domain.Queue{Rows: []domain.QueueRow{domain.TemplateRow(s.defaultChainID, s.defaultOwner)}}, nil
	}
	return &queue, nil
}

// SaveQueue writes the queue.
func (s *FileStore) SaveQueue(ctx context.Context, queue *domain.Queue) error {
	return s.writeJSON(s.queuePath, queue)
}

// LoadPreview reads the stored preview, returning nil when none exists.
func (s *FileStore) LoadPreview(ctx context.Context) (*domain.SubmitPreview, error) {
	var preview domain.SubmitPreview
	ok, err := s.readJSON(s.previewPath, &preview)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &preview, nil
}

// SavePreview writes the preview.
func (s *FileStore) SavePreview(ctx context.Context, preview *domain.SubmitPreview) error {
	return s.writeJSON(s.previewPath, preview)
}

// ClearPreview removes the stored preview. Clearing an absent preview is
// not an error.
func (s *FileStore) ClearPreview(ctx context.Context) error {
	if err := os.Remove(s.previewPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear preview: %w", err)
	}
	return nil
}

// LoadForm reads the project form, returning nil when none exists.
func (s *FileStore) LoadForm(ctx context.Context) (*domain.ProjectForm, error) {
	var form domain.ProjectForm
	ok, err := s.readJSON(s.formPath, &form)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &form, nil
}

// SaveForm writes the project form.
func (s *FileStore) SaveForm(ctx context.Context, form *domain.ProjectForm) error {
	return s.writeJSON(s.formPath, form)
}

func (s *FileStore) readJSON(path string, v any) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}

func (s *FileStore) writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}

var _ usecase.QueueRepository = (*FileStore)(nil)
