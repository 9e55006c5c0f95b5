// Package csvio reads and writes queue rows as CSV. The QueueRow csv tags
// are the allow-list of editable fields; any other column in an import is
// ignored rather than rejected.
package csvio

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/openlabels/oli-cli/internal/domain"
	"github.com/openlabels/oli-cli/internal/usecase"
)

// EditableFields lists the columns an import may set.
var EditableFields = []string{"chain_id", "address", "contract_name", "owner_project", "usage_category"}

// Codec implements usecase.CSVCodec with gocsv.
type Codec struct{}

// NewCodec creates a new CSV codec
func NewCodec() *Codec {
	return &Codec{}
}

// Decode parses CSV input into queue rows. Rows are returned raw; the
// caller normalizes and merges them.
func (c *Codec) Decode(r io.Reader) ([]domain.QueueRow, error) {
	var rows []domain.QueueRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// Encode writes rows with the allow-listed columns as header.
func (c *Codec) Encode(w io.Writer, rows []domain.QueueRow) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

var _ usecase.CSVCodec = (*Codec)(nil)
