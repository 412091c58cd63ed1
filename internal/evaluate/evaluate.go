// Package evaluate scores how close a source lemma's attached synsets land
// to a set of gold-standard targets: for a source lemma's resolved
// synset-graph nodes, compute the shortest undirected distance (capped at 6
// hops) to each gold target synset, and histogram the resulting minimum
// distances.
package evaluate

import (
	"github.com/katalvlaran/lvlath/bfs"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
)

// maxDist bounds the shortest-path search to 6 hops.
const maxDist = 6

// unreached is returned for a gold target with no path within maxDist hops.
const unreached = -1

// Distances computes, for every node in synGraph bearing sourceLemma, the
// bounded shortest distance to every resolved gold target node, and returns
// the minimum distance to each gold target across all of the source's nodes.
// A target that does not resolve to a node, or is unreached within maxDist
// hops from every source node, is reported as -1.
func Distances(synGraph *lexgraph.Graph, sourceLemma string, goldSynsetIDs []int) ([]int, error) {
	sourceNodes := synGraph.NodesForLemma(sourceLemma)

	targetNodeIDs := make([]string, len(goldSynsetIDs))
	for i, sid := range goldSynsetIDs {
		if n, ok := synGraph.NodeForSynset(sid); ok {
			targetNodeIDs[i] = n.ID
		}
	}

	best := make([]int, len(goldSynsetIDs))
	for i := range best {
		best[i] = unreached
	}

	for _, src := range sourceNodes {
		res, err := bfs.BFS(synGraph.Core(), src.ID, bfs.WithMaxDepth(maxDist))
		if err != nil {
			return nil, err
		}
		for i, targetID := range targetNodeIDs {
			if targetID == "" {
				continue
			}
			d, ok := res.Depth[targetID]
			if !ok {
				continue
			}
			if best[i] == unreached || d < best[i] {
				best[i] = d
			}
		}
	}
	return best, nil
}

// Histogram counts non-negative distances grouped by value.
func Histogram(distances []int) map[int]int {
	hist := make(map[int]int)
	for _, d := range distances {
		if d < 0 {
			continue
		}
		hist[d]++
	}
	return hist
}
