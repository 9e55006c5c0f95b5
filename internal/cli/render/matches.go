package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// MatchesRenderer displays duplicate-detection results.
type MatchesRenderer struct {
	out  io.Writer
	json bool
}

// NewMatchesRenderer creates a new matches renderer
func NewMatchesRenderer(out io.Writer, json bool) *MatchesRenderer {
	return &MatchesRenderer{out: out, json: json}
}

// Render displays ranked project matches
func (r *MatchesRenderer) Render(result *usecase.MatchResult) error {
	if r.json {
		return renderJSON(r.out, result)
	}

	if result.Degraded {
		color.New(color.FgYellow).Fprintln(r.out, "⚠ project directory unavailable, duplicate detection skipped")
		return nil
	}

	if len(result.Matches) == 0 {
		fmt.Fprintln(r.out, "No existing projects matched.")
		return nil
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"Confidence", "Project", "Display Name", "Matched On", "Website"})
	for _, m := range result.Matches {
		confidence := string(m.Confidence)
		if m.Confidence == domain.MatchExact {
			confidence = color.New(color.FgRed, color.Bold).Sprint(confidence)
		}
		t.AppendRow(table.Row{
			confidence,
			m.Record.OwnerProject,
			m.Record.DisplayName,
			string(m.Field),
			m.Record.Website,
		})
	}
	t.Render()

	return nil
}

var _ Renderer[*usecase.MatchResult] = (*MatchesRenderer)(nil)
