package wordnet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrMalformed is returned for a synset-length table row that doesn't parse
// as "synset_id,length". As with internal/impedance, there is no
// CSV-to-struct mapping library anywhere in the retrieved corpus, so the
// stdlib encoding/csv reader is the direct fit (see DESIGN.md).
var ErrMalformed = errors.New("wordnet: malformed synset-length table")

// LoadCSV reads a two-column "synset_id,length" table (no header) into a
// StaticOracle.
func LoadCSV(r io.Reader) (StaticOracle, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	oracle := make(StaticOracle)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		sid, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("%w: synset id %q: %v", ErrMalformed, record[0], err)
		}
		length, err := strconv.Atoi(record[1])
		if err != nil {
			return nil, fmt.Errorf("%w: length %q: %v", ErrMalformed, record[1], err)
		}
		oracle[sid] = length
	}
	return oracle, nil
}
