package paintballengine

import (
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
	"github.com/lkopocinski/paintball-go/internal/wordnet"
)

// SynsetActivation is the per-synset activation map Q_syn, keyed by
// synset_id.
type SynsetActivation map[int]float64

// delta is the promotion density predicate:
//
//	δ(h, n, s) = (n ≥ N1·h ∧ s ≤ 2) ∨ (n ≥ N2·h ∧ s > 2)
//
// h is fixed at 1 for this engine. N1/N2 default to 1.5/2.0 but are
// configurable.
func delta(h, n, s, n1, n2 float64) bool {
	if s <= 2 {
		return n >= n1*h
	}
	return n >= n2*h
}

// PromoteToSynsets sums Q by synset_id, skipping degraded/synset-less nodes
// (synset_id == NoSynset), then keeps only the synsets passing δ. oracle
// supplies |S|, the synset's lexical-unit count.
func PromoteToSynsets(q Activation, lg *lexgraph.Graph, oracle wordnet.Oracle, n1, n2 float64) SynsetActivation {
	sums := make(map[int]float64)
	for nodeID, a := range q {
		n, ok := lg.Node(nodeID)
		if !ok || !n.HasSynset || n.SynsetID == lexgraph.NoSynset {
			continue
		}
		sums[n.SynsetID] += a
	}

	out := make(SynsetActivation, len(sums))
	for sid, sum := range sums {
		s := float64(oracle.SynsetLen(sid))
		if delta(1, sum, s, n1, n2) {
			out[sid] = sum
		}
	}
	return out
}
