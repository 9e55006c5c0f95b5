package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/openlabels/oli-cli/internal/usecase"
)

// QueueRenderer displays the working queue.
type QueueRenderer struct {
	out  io.Writer
	json bool
}

// NewQueueRenderer creates a new queue renderer
func NewQueueRenderer(out io.Writer, json bool) *QueueRenderer {
	return &QueueRenderer{out: out, json: json}
}

// Render displays the queue status
func (r *QueueRenderer) Render(result *usecase.QueueStatus) error {
	if r.json {
		return renderJSON(r.out, result)
	}

	t := newTable(r.out)
	t.AppendHeader(table.Row{"#", "Chain", "Address", "Contract", "Owner Project", "Category"})
	for i, row := range result.Queue.Rows {
		t.AppendRow(table.Row{
			i + 1,
			row.ChainID,
			shortenAddress(row.Address),
			row.ContractName,
			row.OwnerProject,
			row.UsageCategory,
		})
	}
	t.Render()

	meaningful := len(result.Queue.MeaningfulRows())
	fmt.Fprintf(r.out, "\n%d rows (%d ready for submission)\n", len(result.Queue.Rows), meaningful)

	switch {
	case result.Preview == nil:
		// nothing prepared yet
	case result.PreviewStale:
		color.New(color.FgYellow).Fprintln(r.out, "⚠ prepared preview is stale and will be discarded")
	default:
		color.New(color.FgGreen).Fprintf(r.out, "✓ preview prepared (%s flow, %d rows), run 'oli submit' to sign\n",
			result.Preview.Flow, len(result.Preview.Prepared))
	}

	return nil
}

var _ Renderer[*usecase.QueueStatus] = (*QueueRenderer)(nil)
