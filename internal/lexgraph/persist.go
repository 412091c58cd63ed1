package lexgraph

import (
	"encoding/gob"
	"fmt"
	"io"
)

// header carries the graph-level flags needed to reconstruct core.Graph with
// the same mode.
type header struct {
	Directed   bool
	NodeCount  int
	EdgeCount  int
}

type nodeRecord struct {
	ID        string
	LUID      int
	Lemma     string
	SynsetID  int
	HasLU     bool
	HasSynset bool
	LUSet     []string
}

type edgeRecord struct {
	ID    string
	From  string
	To    string
	RelID int
}

// Save persists lg to w using encoding/gob. No third-party serialization
// library appears anywhere in the retrieved corpus, and the format only ever
// needs to round-trip through this module's own Load, so gob — the stdlib's
// native binary codec — is the direct, dependency-free fit (see DESIGN.md).
func Save(lg *Graph, w io.Writer) error {
	nodes := make([]nodeRecord, 0, len(lg.g.Vertices()))
	for _, id := range lg.g.Vertices() {
		nodes = append(nodes, nodeRecord{
			ID:        id,
			LUID:      lg.luID[id],
			Lemma:     lg.lemma[id],
			SynsetID:  lg.synsetIDOf(id),
			HasLU:     lg.hasLU[id],
			HasSynset: lg.hasSynset[id],
			LUSet:     lg.luSet[id],
		})
	}
	edges := make([]edgeRecord, 0, len(lg.g.Edges()))
	for _, e := range lg.g.Edges() {
		edges = append(edges, edgeRecord{ID: e.ID, From: e.From, To: e.To, RelID: lg.relID[e.ID]})
	}

	enc := gob.NewEncoder(w)
	if err := enc.Encode(header{Directed: lg.g.Directed(), NodeCount: len(nodes), EdgeCount: len(edges)}); err != nil {
		return fmt.Errorf("lexgraph: encode header: %w", err)
	}
	if err := enc.Encode(nodes); err != nil {
		return fmt.Errorf("lexgraph: encode nodes: %w", err)
	}
	if err := enc.Encode(edges); err != nil {
		return fmt.Errorf("lexgraph: encode edges: %w", err)
	}
	return nil
}

// Load rebuilds a Graph (core.Graph plus every adapter index) from a stream
// written by Save.
func Load(r io.Reader) (*Graph, error) {
	dec := gob.NewDecoder(r)

	var h header
	if err := dec.Decode(&h); err != nil {
		return nil, fmt.Errorf("lexgraph: decode header: %w", err)
	}
	var nodes []nodeRecord
	if err := dec.Decode(&nodes); err != nil {
		return nil, fmt.Errorf("lexgraph: decode nodes: %w", err)
	}
	var edges []edgeRecord
	if err := dec.Decode(&edges); err != nil {
		return nil, fmt.Errorf("lexgraph: decode edges: %w", err)
	}

	lg := NewGraph(h.Directed)
	for _, n := range nodes {
		switch {
		case n.HasLU:
			if err := lg.AddNode(n.ID, n.LUID, n.Lemma, n.SynsetID); err != nil {
				return nil, fmt.Errorf("lexgraph: add node %q: %w", n.ID, err)
			}
		case n.HasSynset:
			if err := lg.AddSynsetNode(n.ID, n.SynsetID, n.LUSet); err != nil {
				return nil, fmt.Errorf("lexgraph: add synset node %q: %w", n.ID, err)
			}
		default:
			if err := lg.AddDegradedNode(n.ID); err != nil {
				return nil, fmt.Errorf("lexgraph: add degraded node %q: %w", n.ID, err)
			}
		}
	}
	for _, e := range edges {
		if _, err := lg.AddEdge(e.From, e.To, e.RelID); err != nil {
			return nil, fmt.Errorf("lexgraph: add edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return lg, nil
}
