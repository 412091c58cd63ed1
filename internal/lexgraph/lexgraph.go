// Package lexgraph is the graph adapter between the lexical-semantic network
// (nodes = lexical units, or synsets in the separate synset graph) and the
// generic core.Graph it is stored in.
//
// It keeps per-node and per-edge domain attributes (lemma, lu_id, synset_id,
// rel_id, transmittance weight) in side maps next to a *core.Graph, so the
// activation engine never touches core.Graph directly and core.Graph stays a
// plain, reusable topology store.
package lexgraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvlath/core"
)

// ErrEmptyID is returned when a node or edge ID is empty.
var ErrEmptyID = errors.New("lexgraph: empty id")

// ErrNodeNotFound is returned when a referenced node ID is not on the graph.
var ErrNodeNotFound = errors.New("lexgraph: node not found")

// NoSynset is the sentinel synset_id meaning "no synset, ignore at promotion".
const NoSynset = -1

// Node is a lexical unit (or, in the synset graph, a synset) attached to a core.Vertex.
type Node struct {
	ID        string
	LUID      int
	Lemma     string
	SynsetID  int
	HasLU     bool // false ⇒ degraded node for lu.* fields
	HasSynset bool // false ⇒ degraded node for synset.* fields
	// LUSet holds synset.lu_set's lemmas; populated only on synset-graph nodes,
	// as the lead-synset output's "[{lemma1},{lemma2},…]" lemma list.
	LUSet []string
}

// Edge is a relation arc attached to a core.Edge.
type Edge struct {
	ID     string
	From   string
	To     string
	RelID  int
	Weight float64 // set by Seal; 0 until sealed
}

// Graph wraps a *core.Graph with the domain attributes the engine needs:
// per-node lu/synset metadata, per-edge rel_id/weight, and the lemma→nodes
// and synset_id→node indices.
type Graph struct {
	g *core.Graph

	luID      map[string]int
	lemma     map[string]string
	synsetID  map[string]int
	hasLU     map[string]bool
	hasSynset map[string]bool

	relID  map[string]int
	weight map[string]float64

	lemmaToNodes map[string][]string
	luSet        map[string][]string
	incident     map[string][]string // nodeID -> edge IDs touching it, either end

	synsetToNode map[int]string // lazily built (GetNodeForSynsetID-style cache)
}

// NewGraph constructs an empty lexical graph. The underlying store's own
// directed/undirected flag is whatever the caller passes (a pre-existing
// wordnet export may come either way); it does not by itself determine
// spreading behavior. Level 1 dispatches every edge touching a node
// regardless of which end recorded it — all_edges, not out-edges — so
// AllEdgesOf tracks incidence itself rather than leaning on
// core.Graph.Neighbors, whose directed-mode filtering would silently drop
// half the edges of a node on a directed store.
func NewGraph(directed bool) *Graph {
	return &Graph{
		g: core.NewGraph(
			core.WithDirected(directed),
			core.WithMultiEdges(),
			core.WithLoops(),
		),
		luID:         make(map[string]int),
		lemma:        make(map[string]string),
		synsetID:     make(map[string]int),
		hasLU:        make(map[string]bool),
		hasSynset:    make(map[string]bool),
		relID:        make(map[string]int),
		weight:       make(map[string]float64),
		lemmaToNodes: make(map[string][]string),
		luSet:        make(map[string][]string),
		incident:     make(map[string][]string),
	}
}

// Core exposes the underlying core.Graph for operations the adapter doesn't
// wrap (InducedSubgraph, bfs.BFS). Callers outside this package must treat it
// as read-only once the graph has been loaded.
func (lg *Graph) Core() *core.Graph { return lg.g }

// AddNode registers a fully-described lexical-unit node: lu.lemma (lower-cased),
// lu.lu_id, and synset_id (NoSynset if the LU belongs to no synset).
func (lg *Graph) AddNode(id string, luID int, lemma string, synsetID int) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := lg.g.AddVertex(id); err != nil {
		return err
	}
	lowered := strings.ToLower(lemma)
	lg.luID[id] = luID
	lg.lemma[id] = lowered
	lg.synsetID[id] = synsetID
	lg.hasLU[id] = true
	lg.hasSynset[id] = synsetID != NoSynset
	if lowered != "" {
		lg.lemmaToNodes[lowered] = append(lg.lemmaToNodes[lowered], id)
	}
	lg.synsetToNode = nil // invalidate lazy index
	return nil
}

// AddSynsetNode registers a node of the separate synset graph: synsets are
// not first-class nodes in the lexical graph, so this constructor is
// distinct from AddNode. lemmas is the synset's lu_set, carried both for the
// output format's lead-synset lemma list and as the index NodesForLemma
// searches (a source lemma resolves to every synset whose lu_set contains
// it, not to a single owning node the way a lexical-graph lemma does).
func (lg *Graph) AddSynsetNode(id string, synsetID int, lemmas []string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := lg.g.AddVertex(id); err != nil {
		return err
	}
	lg.synsetID[id] = synsetID
	lg.hasLU[id] = false
	lg.hasSynset[id] = true
	lg.luSet[id] = lemmas
	for _, lemma := range lemmas {
		lowered := strings.ToLower(lemma)
		if lowered == "" {
			continue
		}
		lg.lemmaToNodes[lowered] = append(lg.lemmaToNodes[lowered], id)
	}
	lg.synsetToNode = nil
	return nil
}

// AddDegradedNode registers a node carrying no lu/synset metadata: the node
// exists on the graph, but every operation that reads lu.*/synset.* fields
// must skip it rather than fail the run.
func (lg *Graph) AddDegradedNode(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if err := lg.g.AddVertex(id); err != nil {
		return err
	}
	lg.synsetID[id] = NoSynset
	lg.hasLU[id] = false
	lg.hasSynset[id] = false
	return nil
}

// AddEdge adds a relation edge of the given rel_id between from and to, and
// returns the generated edge ID. Weight is left at 0 until Seal runs.
func (lg *Graph) AddEdge(from, to string, relID int) (string, error) {
	eid, err := lg.g.AddEdge(from, to, 0)
	if err != nil {
		return "", err
	}
	lg.relID[eid] = relID
	lg.incident[from] = append(lg.incident[from], eid)
	if to != from {
		lg.incident[to] = append(lg.incident[to], eid)
	}
	return eid, nil
}

// Node returns the domain view of a node, and whether it exists.
func (lg *Graph) Node(id string) (Node, bool) {
	if !lg.g.HasVertex(id) {
		return Node{}, false
	}
	return Node{
		ID:        id,
		LUID:      lg.luID[id],
		Lemma:     lg.lemma[id],
		SynsetID:  lg.synsetIDOf(id),
		HasLU:     lg.hasLU[id],
		HasSynset: lg.hasSynset[id],
		LUSet:     lg.luSet[id],
	}, true
}

func (lg *Graph) synsetIDOf(id string) int {
	if sid, ok := lg.synsetID[id]; ok {
		return sid
	}
	return NoSynset
}

// Edge returns the domain view of an edge (rel_id, sealed weight), and whether it exists.
func (lg *Graph) Edge(id string) (Edge, bool) {
	ce, err := lg.g.GetEdge(id)
	if err != nil {
		return Edge{}, false
	}
	return Edge{
		ID:     id,
		From:   ce.From,
		To:     ce.To,
		RelID:  lg.relID[id],
		Weight: lg.weight[id],
	}, true
}

// NodesForLemma returns every node bearing lemma (already lower-cased
// lookup), in the order the nodes were added.
func (lg *Graph) NodesForLemma(lemma string) []Node {
	ids := lg.lemmaToNodes[strings.ToLower(lemma)]
	if len(ids) == 0 {
		return nil
	}
	out := make([]Node, 0, len(ids))
	for _, id := range ids {
		if n, ok := lg.Node(id); ok {
			out = append(out, n)
		}
	}
	return out
}

// NodeForSynset resolves a synset_id to its node in this graph. When several
// nodes carry the same synset_id, the one with the smallest node ID wins. The
// index is built lazily on first use and cached.
func (lg *Graph) NodeForSynset(synsetID int) (Node, bool) {
	if lg.synsetToNode == nil {
		lg.synsetToNode = make(map[int]string, len(lg.synsetID))
		for id, sid := range lg.synsetID {
			if sid == NoSynset || !lg.hasSynset[id] {
				continue
			}
			if cur, exists := lg.synsetToNode[sid]; !exists || id < cur {
				lg.synsetToNode[sid] = id
			}
		}
	}
	id, ok := lg.synsetToNode[synsetID]
	if !ok {
		return Node{}, false
	}
	return lg.Node(id)
}

// AllEdgesOf returns every edge touching nodeID at either end, irrespective
// of the underlying store's directedness ("all_edges" — the graph is walked
// as effectively undirected during spreading), sorted by edge ID for
// determinism.
func (lg *Graph) AllEdgesOf(nodeID string) ([]Edge, error) {
	if !lg.g.HasVertex(nodeID) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, nodeID)
	}
	ids := lg.incident[nodeID]
	out := make([]Edge, 0, len(ids))
	for _, eid := range ids {
		ce, err := lg.g.GetEdge(eid)
		if err != nil {
			return nil, err
		}
		out = append(out, Edge{
			ID:     eid,
			From:   ce.From,
			To:     ce.To,
			RelID:  lg.relID[eid],
			Weight: lg.weight[eid],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// SealedGraph is the read-only handle produced by Seal: the transmittance
// mutation has already happened, and nothing further mutates the graph for
// the rest of the run.
type SealedGraph struct {
	lg *Graph
}

// Graph returns the underlying (now read-only-by-convention) lexical graph.
func (s SealedGraph) Graph() *Graph { return s.lg }

// RelWeight is the per-edge-relation weighting function consulted during
// sealing; transmittance.Table satisfies it.
type RelWeight interface {
	Weight(relID int) float64
}

// Seal performs the one-shot transmittance mutation: every edge's weight is
// set from the transmittance table (missing rel_id ⇒ 0.0), then returns a
// SealedGraph.
// Callers MUST NOT call AddNode/AddEdge on lg after Seal.
func Seal(lg *Graph, t RelWeight) SealedGraph {
	for _, e := range lg.g.Edges() {
		lg.weight[e.ID] = t.Weight(lg.relID[e.ID])
	}
	return SealedGraph{lg: lg}
}
