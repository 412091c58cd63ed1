// Package paintballgo attaches new lexical items to synsets in a
// pre-existing lexical-semantic network via activation spreading.
//
// Given a source lemma and a handful of target lemmas with numeric support
// scores, paintball-go pools an initial activation across every node those
// targets resolve to, spreads it outward through the network with per-hop
// decay and per-relation transmittance/impedance, accumulates the result
// per node, promotes it to the synsets those nodes belong to, and — for the
// synsets that clear threshold — extracts one lead synset per connected
// component of the surviving set.
//
// The graph primitives themselves — thread-safe vertices/edges/views
// (core), breadth-first traversal (bfs), and deterministic graph-fixture
// constructors used by this module's tests (builder) — come from
// github.com/katalvlaran/lvlath rather than living in this tree.
//
// The module is organized as:
//
//	internal/lexgraph/          — the domain graph adapter: lu/synset/rel_id/weight metadata over lvlath/core.Graph
//	internal/transmittance/     — per-relation edge weighting
//	internal/impedance/         — relation-switch impedance lookup
//	internal/wordnet/           — synset-size oracle
//	internal/knowledgesource/   — knowledge-source file loading
//	internal/paintballengine/   — initial activation, spreading, promotion, lead extraction
//	internal/config/            — YAML + environment configuration
//	internal/emit/              — result formatting
//	internal/orchestrator/      — drives the engine across a knowledge source
//	internal/evaluate/          — shortest-distance evaluation against gold synsets
//	cmd/paintball/              — the CLI
//
//	go get github.com/lkopocinski/paintball-go
package paintballgo
