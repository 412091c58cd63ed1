package paintballengine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lkopocinski/paintball-go/internal/impedance"
	"github.com/lkopocinski/paintball-go/internal/lexgraph"
	"github.com/lkopocinski/paintball-go/internal/paintballengine"
	"github.com/lkopocinski/paintball-go/internal/transmittance"
)

func TestSpreadSingleSeedNoNeighbors(t *testing.T) {
	// Scenario 2: n_B has no edges; spreading loops over zero edges; Q is
	// empty, including the seed itself.
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_B", 1, "B", lexgraph.NoSynset))
	sealed := lexgraph.Seal(lg, transmittance.DefaultTable())

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_B"), Activation: 1.0}}
	q, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.95, 0.125, seeds)
	require.NoError(t, err)
	require.Empty(t, q)
}

func TestSpreadTwoHopHypernymy(t *testing.T) {
	// Scenario 3: n_B -[11,1.0]-> n_C -[11,1.0]-> n_D; support 1.0 on B.
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_B", 1, "B", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_C", 2, "C", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_D", 3, "D", lexgraph.NoSynset))
	_, err := lg.AddEdge("n_B", "n_C", transmittance.RelHypernymy)
	require.NoError(t, err)
	_, err = lg.AddEdge("n_C", "n_D", transmittance.RelHypernymy)
	require.NoError(t, err)
	sealed := lexgraph.Seal(lg, transmittance.DefaultTable())

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_B"), Activation: 1.0}}
	q, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.95, 0.125, seeds)
	require.NoError(t, err)

	require.Len(t, q, 2)
	require.InDelta(t, 0.95, q["n_C"], 1e-9)
	require.InDelta(t, 0.9025, q["n_D"], 1e-9)
}

func TestSpreadImpedanceBrake(t *testing.T) {
	// Scenario 4: same topology, but the outgoing edge from n_C carries
	// rel_id 10 (hyponymy); impedance(11,10)=0.5 halves onward flow.
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_B", 1, "B", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_C", 2, "C", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_D", 3, "D", lexgraph.NoSynset))
	_, err := lg.AddEdge("n_B", "n_C", transmittance.RelHypernymy)
	require.NoError(t, err)
	_, err = lg.AddEdge("n_C", "n_D", transmittance.RelHyponymy)
	require.NoError(t, err)
	sealed := lexgraph.Seal(lg, transmittance.DefaultTable())

	imp := impedance.NewTable()
	imp.Set(transmittance.RelHypernymy, transmittance.RelHyponymy, 0.5)

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_B"), Activation: 1.0}}
	q, err := paintballengine.Spread(sealed.Graph(), imp, 0.95, 0.125, seeds)
	require.NoError(t, err)
	require.InDelta(t, 0.315875, q["n_D"], 1e-9)
}

func TestSpreadSelfLoopContributesNothing(t *testing.T) {
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_A", 1, "A", lexgraph.NoSynset))
	_, err := lg.AddEdge("n_A", "n_A", transmittance.RelSynonymy)
	require.NoError(t, err)
	sealed := lexgraph.Seal(lg, transmittance.DefaultTable())

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_A"), Activation: 1.0}}
	q, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.95, 0.125, seeds)
	require.NoError(t, err)
	require.Empty(t, q)
}

func TestSpreadEarlyStopWhenEpsilonExceedsSeed(t *testing.T) {
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_B", 1, "B", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_C", 2, "C", lexgraph.NoSynset))
	_, err := lg.AddEdge("n_B", "n_C", transmittance.RelHypernymy)
	require.NoError(t, err)
	sealed := lexgraph.Seal(lg, transmittance.DefaultTable())

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_B"), Activation: 0.1}}
	q, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.95, 1.0, seeds)
	require.NoError(t, err)
	require.Empty(t, q)
}

func TestSpreadMonotonicInMu(t *testing.T) {
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_B", 1, "B", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_C", 2, "C", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_D", 3, "D", lexgraph.NoSynset))
	_, err := lg.AddEdge("n_B", "n_C", transmittance.RelHypernymy)
	require.NoError(t, err)
	_, err = lg.AddEdge("n_C", "n_D", transmittance.RelHypernymy)
	require.NoError(t, err)
	sealed := lexgraph.Seal(lg, transmittance.DefaultTable())

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_B"), Activation: 1.0}}
	qLow, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.5, 0.01, seeds)
	require.NoError(t, err)
	qHigh, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.9, 0.01, seeds)
	require.NoError(t, err)

	for n, aLow := range qLow {
		require.GreaterOrEqual(t, qHigh[n], aLow)
	}
}

func TestSpreadAllZeroTransmittanceYieldsEmptyQ(t *testing.T) {
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n_B", 1, "B", lexgraph.NoSynset))
	require.NoError(t, lg.AddNode("n_C", 2, "C", lexgraph.NoSynset))
	_, err := lg.AddEdge("n_B", "n_C", transmittance.RelHypernymy)
	require.NoError(t, err)
	sealed := lexgraph.Seal(lg, transmittance.Table{})

	seeds := []paintballengine.SeedActivation{{Node: mustNode(t, sealed.Graph(), "n_B"), Activation: 1.0}}
	q, err := paintballengine.Spread(sealed.Graph(), impedance.NewTable(), 0.95, 0.01, seeds)
	require.NoError(t, err)
	require.Empty(t, q)
}

func mustNode(t *testing.T, lg *lexgraph.Graph, id string) lexgraph.Node {
	t.Helper()
	n, ok := lg.Node(id)
	require.True(t, ok)
	return n
}
