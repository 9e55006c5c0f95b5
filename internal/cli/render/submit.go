package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/openlabels/oli-cli/internal/domain"
)

// SubmitRenderer displays submission results.
type SubmitRenderer struct {
	out  io.Writer
	json bool
}

// NewSubmitRenderer creates a new submit renderer
func NewSubmitRenderer(out io.Writer, json bool) *SubmitRenderer {
	return &SubmitRenderer{out: out, json: json}
}

// Render displays the outcome of a submission
func (r *SubmitRenderer) Render(result *domain.SubmitResult) error {
	if r.json {
		return renderJSON(r.out, result)
	}

	noun := "attestations"
	if result.RowCount == 1 {
		noun = "attestation"
	}
	color.New(color.FgGreen, color.Bold).Fprintf(r.out, "✅ Submitted %d %s\n", result.RowCount, noun)
	fmt.Fprintf(r.out, "Transaction: %s\n", result.TxHash)
	return nil
}

var _ Renderer[*domain.SubmitResult] = (*SubmitRenderer)(nil)
