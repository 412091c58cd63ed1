package transmittance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lkopocinski/paintball-go/internal/transmittance"
)

func TestDefaultTableKnownRelations(t *testing.T) {
	tbl := transmittance.DefaultTable()
	require.Equal(t, 1.0, tbl.Weight(transmittance.RelHypernymy))
	require.Equal(t, 0.7, tbl.Weight(transmittance.RelHyponymy))
	require.Equal(t, 1.0, tbl.Weight(transmittance.RelSynonymy))
}

func TestWeightUnknownRelationDefaultsZero(t *testing.T) {
	tbl := transmittance.DefaultTable()
	require.Equal(t, 0.0, tbl.Weight(999999))
}
