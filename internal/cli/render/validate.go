package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// ValidateRenderer displays validation results.
type ValidateRenderer struct {
	out  io.Writer
	json bool
}

// NewValidateRenderer creates a new validation renderer
func NewValidateRenderer(out io.Writer, json bool) *ValidateRenderer {
	return &ValidateRenderer{out: out, json: json}
}

// Render displays a successful validation
func (r *ValidateRenderer) Render(result *usecase.ValidateResult) error {
	if r.json {
		return renderJSON(r.out, result)
	}

	noun := "rows"
	if len(result.Rows) == 1 {
		noun = "row"
	}
	color.New(color.FgGreen).Fprintf(r.out, "✓ %d %s valid (%s flow)\n", len(result.Rows), noun, result.Flow)
	return nil
}

// RenderError displays a validation failure, prefixing validator-sourced
// diagnostics so they read differently from generic queue errors.
func (r *ValidateRenderer) RenderError(err error) {
	if verr, ok := err.(*domain.ValidationError); ok && verr.FromValidator {
		color.New(color.FgRed).Fprintf(r.out, "Validation: %s\n", verr.Error())
		return
	}
	fmt.Fprintf(r.out, "Error: %v\n", err)
}

var _ Renderer[*usecase.ValidateResult] = (*ValidateRenderer)(nil)
