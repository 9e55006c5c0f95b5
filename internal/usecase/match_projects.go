package usecase

import (
	"context"
	"log/slog"

	"github.com/openlabels/oli-cli/internal/config"
)

// MatchProjectsParams contains parameters for duplicate detection
type MatchProjectsParams struct {
	// Value is an owner key, website or GitHub URL to check
	Value string
}

// MatchProjects is the read-path use case for existing-project detection.
// Matches only inform the user; they never block submission. A failed
// directory load degrades the feature instead of failing the command.
type MatchProjects struct {
	config    *config.RuntimeConfig
	directory DirectoryClient
	matcher   ProjectMatcher
	log       *slog.Logger
}

// NewMatchProjects creates a new MatchProjects use case
func NewMatchProjects(cfg *config.RuntimeConfig, directory DirectoryClient, matcher ProjectMatcher, log *slog.Logger) *MatchProjects {
	return &MatchProjects{config: cfg, directory: directory, matcher: matcher, log: log}
}

// Run ranks directory entries against the given value.
func (uc *MatchProjects) Run(ctx context.Context, params MatchProjectsParams) (*MatchResult, error) {
	records, err := uc.directory.FetchProjects(ctx)
	if err != nil {
		uc.log.Warn("project directory unavailable, duplicate detection degraded", "error", err)
		return &MatchResult{Degraded: true}, nil
	}

	return &MatchResult{Matches: uc.matcher.Match(params.Value, records)}, nil
}
