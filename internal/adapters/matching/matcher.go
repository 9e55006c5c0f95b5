// Package matching ranks project-directory entries against free text for
// duplicate detection.
package matching

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// Matcher implements usecase.ProjectMatcher with sahilm/fuzzy.
type Matcher struct{}

// NewMatcher creates a new project matcher
func NewMatcher() *Matcher {
	return &Matcher{}
}

// directorySource adapts records to fuzzy.Source over "owner display" text.
type directorySource []domain.ProjectRecord

func (s directorySource) String(i int) string {
	return s[i].OwnerProject + " " + strings.ToLower(s[i].DisplayName)
}

func (s directorySource) Len() int { return len(s) }

// Match returns up to MaxProjectMatches ranked entries, exact matches
// before similar ones. Ties within a confidence class keep directory
// order; no further ordering is defined.
func (m *Matcher) Match(value string, directory []domain.ProjectRecord) []domain.ProjectMatch {
	value = strings.TrimSpace(value)
	if value == "" || len(directory) == 0 {
		return nil
	}

	slug := domain.NormalizeOwnerProject(value)
	canonical := domain.CanonicalURL(value)

	var exact []domain.ProjectMatch
	exactSeen := make(map[string]struct{})

	addExact := func(rec domain.ProjectRecord, field domain.MatchField) {
		if _, dup := exactSeen[rec.OwnerProject]; dup {
			return
		}
		exactSeen[rec.OwnerProject] = struct{}{}
		exact = append(exact, domain.ProjectMatch{Record: rec, Confidence: domain.MatchExact, Field: field})
	}

	for _, rec := range directory {
		switch {
		case slug != "" && rec.OwnerProject == slug:
			addExact(rec, domain.MatchFieldOwner)
		case rec.Website != "" && domain.CanonicalURL(rec.Website) == canonical:
			addExact(rec, domain.MatchFieldWebsite)
		case rec.MainGithub != "" && domain.CanonicalURL(rec.MainGithub) == canonical:
			addExact(rec, domain.MatchFieldGithub)
		}
	}

	similar := m.similarMatches(value, slug, canonical, directory, exactSeen)

	out := append(exact, similar...)
	if len(out) > domain.MaxProjectMatches {
		out = out[:domain.MaxProjectMatches]
	}
	return out
}

func (m *Matcher) similarMatches(
	value, slug, canonical string,
	directory []domain.ProjectRecord,
	exclude map[string]struct{},
) []domain.ProjectMatch {
	var similar []domain.ProjectMatch
	seen := make(map[string]struct{})

	add := func(rec domain.ProjectRecord, field domain.MatchField) {
		if _, dup := exclude[rec.OwnerProject]; dup {
			return
		}
		if _, dup := seen[rec.OwnerProject]; dup {
			return
		}
		seen[rec.OwnerProject] = struct{}{}
		similar = append(similar, domain.ProjectMatch{Record: rec, Confidence: domain.MatchSimilar, Field: field})
	}

	// Fuzzy over owner keys and display names, highest score first.
	query := slug
	if query == "" {
		query = strings.ToLower(value)
	}
	results := fuzzy.FindFrom(query, directorySource(directory))
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	for _, r := range results {
		add(directory[r.Index], domain.MatchFieldOwner)
	}

	// Substring containment on canonical URLs catches subdomain and path
	// variants the fuzzy pass misses.
	if canonical != "" && strings.Contains(canonical, ".") {
		for _, rec := range directory {
			for field, raw := range map[domain.MatchField]string{
				domain.MatchFieldWebsite: rec.Website,
				domain.MatchFieldGithub:  rec.MainGithub,
			} {
				if raw == "" {
					continue
				}
				c := domain.CanonicalURL(raw)
				if strings.Contains(c, canonical) || strings.Contains(canonical, c) {
					add(rec, field)
				}
			}
		}
	}

	return similar
}

var _ usecase.ProjectMatcher = (*Matcher)(nil)
