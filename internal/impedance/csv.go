package impedance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformed is returned for a ragged row, non-integer relation id, or
// non-numeric cell in the impedance CSV.
var ErrMalformed = errors.New("impedance: malformed table")

// LoadCSV parses the impedance table format: a header row of integer
// relation ids (column labels), then one row per relation id followed by
// float entries indexed by the header.
//
// Every cell must parse; a malformed impedance table is always reported as
// an error here — whether that is fatal or skippable is the caller's policy
// decision, not this loader's.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row length is checked against the header below, with a descriptive error

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrMalformed, err)
	}
	if len(header) < 1 {
		return nil, fmt.Errorf("%w: empty header", ErrMalformed)
	}
	// header[0] is the corner placeholder above the row labels; the relation
	// id columns start at header[1].
	cols := make([]int, len(header)-1)
	for i, h := range header[1:] {
		rel, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil {
			return nil, fmt.Errorf("%w: header column %d (%q): %v", ErrMalformed, i, h, err)
		}
		cols[i] = rel
	}

	t := NewTable()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading row: %v", ErrMalformed, err)
		}
		if len(row) == 0 {
			continue
		}
		relIn, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: row label %q: %v", ErrMalformed, row[0], err)
		}
		if len(row)-1 != len(cols) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformed, relIn, len(row)-1, len(cols))
		}
		for i, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: cell (%d,%d) %q: %v", ErrMalformed, relIn, cols[i], cell, err)
			}
			t.Set(relIn, cols[i], v)
		}
	}
	return t, nil
}

