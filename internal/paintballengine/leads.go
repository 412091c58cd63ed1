package paintballengine

import (
	"sort"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
)

// Lead is one lead synset surfaced for a source lemma.
type Lead struct {
	SynsetID   int
	NodeID     string
	Activation float64
	Lemmas     []string
}

// ExtractLeads thresholds SynsetActivation by tau3 (strict >), resolves each
// surviving synset to its node in synGraph (skipping any synset absent from
// the synset graph — a LookupMiss), induces the subgraph on the surviving
// node set, decomposes it into connected components, and picks one lead per
// component: the node with the highest activation, ties broken by the
// smallest synset_id. The returned leads are ordered largest-component-first;
// within equal-size components, by descending activation then ascending
// synset_id.
func ExtractLeads(qSyn SynsetActivation, synGraph *lexgraph.Graph, tau3 float64) ([]Lead, error) {
	keep := make(map[string]bool)
	bySynset := make(map[string]lexgraph.Node)
	for sid, a := range qSyn {
		if a <= tau3 {
			continue
		}
		n, ok := synGraph.NodeForSynset(sid)
		if !ok {
			continue
		}
		keep[n.ID] = true
		bySynset[n.ID] = n
	}
	if len(keep) == 0 {
		return nil, nil
	}

	induced := core.InducedSubgraph(synGraph.Core(), keep)
	components, err := connectedComponents(induced)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		lead    Lead
		compLen int
	}
	candidates := make([]ranked, 0, len(components))
	for _, comp := range components {
		var best *Lead
		for _, nodeID := range comp {
			n := bySynset[nodeID]
			a := qSyn[n.SynsetID]
			if best == nil || a > best.Activation || (a == best.Activation && n.SynsetID < best.SynsetID) {
				best = &Lead{SynsetID: n.SynsetID, NodeID: n.ID, Activation: a, Lemmas: n.LUSet}
			}
		}
		candidates = append(candidates, ranked{lead: *best, compLen: len(comp)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].compLen != candidates[j].compLen {
			return candidates[i].compLen > candidates[j].compLen
		}
		if candidates[i].lead.Activation != candidates[j].lead.Activation {
			return candidates[i].lead.Activation > candidates[j].lead.Activation
		}
		return candidates[i].lead.SynsetID < candidates[j].lead.SynsetID
	})

	leads := make([]Lead, len(candidates))
	for i, c := range candidates {
		leads[i] = c.lead
	}
	return leads, nil
}

// connectedComponents decomposes g into its connected components using
// repeated bfs.BFS calls, smallest-unvisited-vertex-first seeding for a
// deterministic traversal order (final lead ordering is resolved by the
// caller against activation, not vertex ID).
func connectedComponents(g *core.Graph) ([][]string, error) {
	remaining := g.Vertices()
	sort.Strings(remaining)
	unvisited := make(map[string]bool, len(remaining))
	for _, v := range remaining {
		unvisited[v] = true
	}

	var components [][]string
	for len(unvisited) > 0 {
		var start string
		for _, v := range remaining {
			if unvisited[v] {
				start = v
				break
			}
		}
		res, err := bfs.BFS(g, start)
		if err != nil {
			return nil, err
		}
		for _, id := range res.Order {
			delete(unvisited, id)
		}
		components = append(components, res.Order)
	}
	return components, nil
}
