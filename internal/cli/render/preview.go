package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openlabels/oli-cli/internal/usecase"
)

// PreviewRenderer displays the prepared submission preview.
type PreviewRenderer struct {
	out  io.Writer
	json bool
}

// NewPreviewRenderer creates a new preview renderer
func NewPreviewRenderer(out io.Writer, json bool) *PreviewRenderer {
	return &PreviewRenderer{out: out, json: json}
}

// Render displays the preview before signing
func (r *PreviewRenderer) Render(result *usecase.PrepareResult) error {
	if r.json {
		return renderJSON(r.out, result)
	}

	preview := result.Preview
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Submission preview (%s flow)\n\n", preview.Flow)

	t := newTable(r.out)
	t.AppendHeader(table.Row{"#", "Chain", "Contract", "Data"})
	for i, att := range preview.Prepared {
		t.AppendRow(table.Row{
			i + 1,
			att.ChainID,
			att.Subject,
			truncateHex(att.Data, 40),
		})
	}
	t.Render()

	fmt.Fprintf(r.out, "\nSigner:  %s\n", result.From)
	fmt.Fprintf(r.out, "Service: %s\n", preview.Prepared[0].To)
	return nil
}

var _ Renderer[*usecase.PrepareResult] = (*PreviewRenderer)(nil)
