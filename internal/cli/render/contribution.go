package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// FormRenderer displays the working project form.
type FormRenderer struct {
	out  io.Writer
	json bool
}

// NewFormRenderer creates a new form renderer
func NewFormRenderer(out io.Writer, json bool) *FormRenderer {
	return &FormRenderer{out: out, json: json}
}

// Render displays the project form
func (r *FormRenderer) Render(form *domain.ProjectForm) error {
	if r.json {
		return renderJSON(r.out, form)
	}

	write := func(label, value string) {
		if value != "" {
			fmt.Fprintf(r.out, "  %-13s %s\n", label+":", value)
		}
	}

	color.New(color.FgCyan, color.Bold).Fprintln(r.out, "Project form")
	write("name", form.OwnerProject)
	write("display name", form.DisplayName)
	write("description", form.Description)
	write("website", form.Website)
	write("github", form.MainGithub)
	write("twitter", form.Twitter)
	write("telegram", form.Telegram)
	return nil
}

// ReceiptRenderer displays contribution receipts.
type ReceiptRenderer struct {
	out  io.Writer
	json bool
}

// NewReceiptRenderer creates a new receipt renderer
func NewReceiptRenderer(out io.Writer, json bool) *ReceiptRenderer {
	return &ReceiptRenderer{out: out, json: json}
}

// Render displays the pull requests opened for a contribution
func (r *ReceiptRenderer) Render(receipt *usecase.ContributionReceipt) error {
	if r.json {
		return renderJSON(r.out, receipt)
	}

	color.New(color.FgGreen, color.Bold).Fprintln(r.out, "✅ Contribution submitted")
	if receipt.YamlPullRequestURL != "" {
		fmt.Fprintf(r.out, "Project PR: %s\n", receipt.YamlPullRequestURL)
	}
	if receipt.LogoPullRequestURL != "" {
		fmt.Fprintf(r.out, "Logo PR:    %s\n", receipt.LogoPullRequestURL)
	}
	return nil
}

var (
	_ Renderer[*domain.ProjectForm]          = (*FormRenderer)(nil)
	_ Renderer[*usecase.ContributionReceipt] = (*ReceiptRenderer)(nil)
)
