// Package directory fetches the platform's project directory.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Client implements usecase.DirectoryClient over the platform API. The
// first successful fetch is cached for the lifetime of the process; the
// directory is an immutable reference set per run.
type Client struct {
	baseURL string
	http    *http.Client

	mu       sync.Mutex
	snapshot []domain.ProjectRecord
	loaded   bool
}

// NewClient creates a new directory client
func NewClient(cfg *config.RuntimeConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type projectsResponse struct {
	Projects []domain.ProjectRecord `json:"projects"`
	Error    string                 `json:"error,omitempty"`
}

// FetchProjects returns the directory snapshot, fetching it on first use.
func (c *Client) FetchProjects(ctx context.Context) ([]domain.ProjectRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return c.snapshot, nil
	}

	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: no API base URL configured", domain.ErrDirectoryUnavailable)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/labels/projects", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", domain.ErrDirectoryUnavailable, resp.StatusCode)
	}

	var body projectsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDirectoryUnavailable, err)
	}
	if body.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryUnavailable, body.Error)
	}

	c.snapshot = body.Projects
	c.loaded = true
	return c.snapshot, nil
}

var _ usecase.DirectoryClient = (*Client)(nil)
