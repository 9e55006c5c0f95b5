package render

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// truncateHex renders data as 0x-prefixed hex, eliding the middle of
// long payloads for preview display.
func truncateHex(data []byte, max int) string {
	h := "0x" + hex.EncodeToString(data)
	if len(h) <= max || max < 10 {
		return h
	}
	keep := (max - 3) / 2
	return h[:keep] + "..." + h[len(h)-keep:]
}

// shortenAddress elides the middle of a hex address.
func shortenAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:8] + "…" + addr[len(addr)-4:]
}

// newTable creates a table writer in the house style.
func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	return t
}

// renderJSON writes the result as indented JSON.
func renderJSON(out io.Writer, result any) error {
	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
