package lexgraph_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lkopocinski/paintball-go/internal/lexgraph"
	"github.com/lkopocinski/paintball-go/internal/transmittance"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	lg := lexgraph.NewGraph(true)
	require.NoError(t, lg.AddNode("n1", 1, "kot", 100))
	require.NoError(t, lg.AddDegradedNode("ghost"))
	_, err := lg.AddEdge("n1", "ghost", transmittance.RelMeronymy)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, lexgraph.Save(lg, &buf))

	loaded, err := lexgraph.Load(&buf)
	require.NoError(t, err)

	n, ok := loaded.Node("n1")
	require.True(t, ok)
	require.Equal(t, "kot", n.Lemma)
	require.Equal(t, 100, n.SynsetID)

	ghost, ok := loaded.Node("ghost")
	require.True(t, ok)
	require.False(t, ghost.HasLU)

	edges, err := loaded.AllEdgesOf("n1")
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, transmittance.RelMeronymy, edges[0].RelID)
}

func TestSaveLoadPreservesSynsetNodeLemmas(t *testing.T) {
	syn := lexgraph.NewGraph(true)
	require.NoError(t, syn.AddSynsetNode("s100", 100, []string{"kot", "kotek"}))

	var buf bytes.Buffer
	require.NoError(t, lexgraph.Save(syn, &buf))

	loaded, err := lexgraph.Load(&buf)
	require.NoError(t, err)

	n, ok := loaded.Node("s100")
	require.True(t, ok)
	require.True(t, n.HasSynset)
	require.False(t, n.HasLU)
	require.Equal(t, []string{"kot", "kotek"}, n.LUSet)
}
