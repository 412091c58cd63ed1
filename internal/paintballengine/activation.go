package paintballengine

import (
	"sort"

	"github.com/lkopocinski/paintball-go/internal/lexgraph"
)

// LemmaActivation resolves one target lemma to every node bearing it,
// carrying the support score to pool into those nodes' initial activation.
type LemmaActivation struct {
	Lemma      string
	Nodes      []lexgraph.Node
	Activation float64
}

// SeedActivation pairs a node with its pooled initial activation; T is an
// ordered slice of these.
type SeedActivation struct {
	Node       lexgraph.Node
	Activation float64
}

// Activation is the per-node activation map Q, keyed by node ID.
type Activation map[string]float64

// BuildInitialActivation assembles T from a list of LemmaActivations:
//  1. Pool Q0, accumulating activation additively per node.
//  2. Filter to Q0(n) > tau0 (strict).
//  3. Sort descending by activation, tie-broken by ascending LUID for
//     determinism.
func BuildInitialActivation(las []LemmaActivation, tau0 float64) []SeedActivation {
	pooled := make(map[string]float64)
	byID := make(map[string]lexgraph.Node)
	for _, la := range las {
		for _, n := range la.Nodes {
			pooled[n.ID] += la.Activation
			byID[n.ID] = n
		}
	}

	seeds := make([]SeedActivation, 0, len(pooled))
	for id, a := range pooled {
		if a > tau0 {
			seeds = append(seeds, SeedActivation{Node: byID[id], Activation: a})
		}
	}

	sort.Slice(seeds, func(i, j int) bool {
		if seeds[i].Activation != seeds[j].Activation {
			return seeds[i].Activation > seeds[j].Activation
		}
		return seeds[i].Node.LUID < seeds[j].Node.LUID
	})
	return seeds
}
