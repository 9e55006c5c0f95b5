// Package contribution calls the platform's profiler and project
// contribution endpoints.
package contribution

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/openlabels/oli-cli/internal/config"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Client implements usecase.ContributionClient over the platform API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new contribution client
func NewClient(cfg *config.RuntimeConfig) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type profilerResponse struct {
	YAML  string `json:"yaml"`
	Error string `json:"error,omitempty"`
}

// Profile asks the server-side profiler to draft a project form from a
// free-text prompt. The profiler answers with project YAML.
func (c *Client) Profile(ctx context.Context, prompt string) (*domain.ProjectForm, error) {
	var body profilerResponse
	err := c.post(ctx, "/api/labels/project-profiler", map[string]string{"prompt": prompt}, &body)
	if err != nil {
		return nil, err
	}
	if body.Error != "" {
		return nil, fmt.Errorf("profiler: %s", body.Error)
	}

	var form domain.ProjectForm
	if err := yaml.Unmarshal([]byte(body.YAML), &form); err != nil {
		return nil, fmt.Errorf("profiler returned unparseable YAML: %w", err)
	}
	return &form, nil
}

type contributionRequest struct {
	Project string `json:"project"`
	Logo    string `json:"logo,omitempty"`
}

type contributionResponse struct {
	YamlPullRequestURL string `json:"yamlPullRequestUrl"`
	LogoPullRequestURL string `json:"logoPullRequestUrl"`
	YamlBranchName     string `json:"yamlBranchName"`
	LogoBranchName     string `json:"logoBranchName"`
	Error              string `json:"error,omitempty"`
}

// SubmitContribution sends the project form, and optionally a logo file,
// to the contribution endpoint. The server opens the pull requests.
func (c *Client) SubmitContribution(ctx context.Context, form domain.ProjectForm, logoPath string) (*usecase.ContributionReceipt, error) {
	projectYAML, err := yaml.Marshal(form)
	if err != nil {
		return nil, err
	}

	req := contributionRequest{Project: string(projectYAML)}
	if logoPath != "" {
		logo, err := encodeLogo(logoPath)
		if err != nil {
			return nil, err
		}
		req.Logo = logo
	}

	var body contributionResponse
	if err := c.post(ctx, "/api/labels/project-contribution", req, &body); err != nil {
		return nil, err
	}
	if body.Error != "" {
		return nil, fmt.Errorf("contribution: %s", body.Error)
	}

	return &usecase.ContributionReceipt{
		YamlPullRequestURL: body.YamlPullRequestURL,
		LogoPullRequestURL: body.LogoPullRequestURL,
		YamlBranchName:     body.YamlBranchName,
		LogoBranchName:     body.LogoBranchName,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	if c.baseURL == "" {
		return fmt.Errorf("no API base URL configured")
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// encodeLogo reads the logo file into a data URL the endpoint accepts.
func encodeLogo(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read logo: %w", err)
	}

	mime := "image/png"
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		mime = "image/svg+xml"
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	case ".webp":
		mime = "image/webp"
	}
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(raw)), nil
}

var _ usecase.ContributionClient = (*Client)(nil)
