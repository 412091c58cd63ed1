// Package impedance implements the impedance oracle: a two-dimensional
// (rel_in, rel_out) → float mapping consulted during spreading whenever
// activation switches from an incoming relation to an outgoing one at a node.
package impedance

// Table holds impedance[rel_in][rel_out] factors. Missing rows, columns, or
// cells default to 1.0.
type Table struct {
	rows map[int]map[int]float64
}

// NewTable returns an empty Table; every lookup defaults to 1.0 until rows are set.
func NewTable() *Table {
	return &Table{rows: make(map[int]map[int]float64)}
}

// Set records impedance[relIn][relOut] = value.
func (t *Table) Set(relIn, relOut int, value float64) {
	if t.rows[relIn] == nil {
		t.rows[relIn] = make(map[int]float64)
	}
	t.rows[relIn][relOut] = value
}

// Impedance returns impedance[relIn][relOut], defaulting to 1.0 when the row,
// column, or cell is absent.
func (t *Table) Impedance(relIn, relOut int) float64 {
	row, ok := t.rows[relIn]
	if !ok {
		return 1.0
	}
	v, ok := row[relOut]
	if !ok {
		return 1.0
	}
	return v
}
