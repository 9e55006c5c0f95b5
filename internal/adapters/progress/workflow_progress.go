// Package progress reports workflow progress on the terminal.
package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/openlabels/oli-cli/internal/usecase"
)

// WorkflowProgress implements progress reporting for queue validation and
// submission. Spinner stages animate in interactive mode and print plain
// lines otherwise.
type WorkflowProgress struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
}

// NewWorkflowProgress creates a new workflow progress reporter
func NewWorkflowProgress(out io.Writer, interactive bool) *WorkflowProgress {
	return &WorkflowProgress{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles a progress event
func (p *WorkflowProgress) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	if !p.interactive {
		if event.Message != "" {
			fmt.Fprintln(p.out, event.Message)
		}
		return
	}

	if event.Spinner {
		if p.spinner == nil {
			p.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			p.spinner.Writer = p.out
			_ = p.spinner.Color("cyan", "bold")
		}

		p.spinner.Suffix = " " + event.Message
		if event.Total > 0 && event.Current > 0 {
			p.spinner.Suffix = fmt.Sprintf(" %s (%d/%d)", event.Message, event.Current, event.Total)
		}

		if !p.spinner.Active() {
			p.spinner.Start()
		}
		return
	}

	if p.spinner != nil && p.spinner.Active() {
		p.spinner.Stop()
	}

	if event.Stage == "complete" && event.Message != "" {
		color.New(color.FgGreen).Fprintf(p.out, "✅ %s\n", event.Message)
	}
}

// Info prints an info message
func (p *WorkflowProgress) Info(message string) {
	p.aroundSpinner(func() {
		color.New(color.FgCyan).Fprintln(p.out, "ℹ️  "+message)
	})
}

// Error prints an error message
func (p *WorkflowProgress) Error(message string) {
	p.aroundSpinner(func() {
		color.New(color.FgRed).Fprintln(p.out, "❌ "+message)
	})
}

// aroundSpinner pauses an active spinner while printing.
func (p *WorkflowProgress) aroundSpinner(print func()) {
	wasActive := p.spinner != nil && p.spinner.Active()
	if wasActive {
		p.spinner.Stop()
	}

	print()

	if wasActive {
		p.spinner.Start()
	}
}

// Ensure it implements the interface
var _ usecase.ProgressSink = (*WorkflowProgress)(nil)
