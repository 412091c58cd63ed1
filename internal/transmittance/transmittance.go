// Package transmittance implements the transmittance oracle: a rel_id →
// float mapping consulted once per edge at engine-construction time to set
// the edge's transmittance weight.
package transmittance

// Relation ids named for readability.
const (
	RelHypernymy     = 11
	RelHyponymy      = 10
	RelAntonymy      = 12
	RelMeronymy      = 14
	RelHolonymy      = 15
	RelConverse      = 13
	RelFeminity      = 53
	RelYoungBeing    = 55
	RelAugmentativity = 57
	RelSynonymy      = 888
	RelSynonymyBis   = 777
)

// Table maps rel_id to a transmittance factor in [0,1]. A rel_id absent from
// the table has transmittance 0.0, which acts as a hard cut on that edge.
type Table map[int]float64

// Weight returns the transmittance factor for relID, defaulting to 0.0.
func (t Table) Weight(relID int) float64 {
	if w, ok := t[relID]; ok {
		return w
	}
	return 0.0
}

// DefaultTable returns the built-in transmittance defaults.
func DefaultTable() Table {
	return Table{
		RelHypernymy:      1.0,
		RelHyponymy:       0.7,
		RelAntonymy:       0.4,
		RelMeronymy:       0.6,
		RelHolonymy:       0.6,
		RelConverse:       1.0,
		RelFeminity:       0.7,
		RelYoungBeing:     0.7,
		RelAugmentativity: 0.7,
		RelSynonymy:       1.0,
		RelSynonymyBis:    1.0,
	}
}
