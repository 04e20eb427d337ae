package processor

import (
	"testing"

	"github.com/woozymasta/geodots/internal/geo"

	"github.com/stretchr/testify/require"
)

func TestGroupByContinent(t *testing.T) {
	idx := GroupByContinent([]geo.Feature{
		feature("France", geo.Europe, 2, 48),
		feature("Japan", geo.Asia, 138, 37),
		feature("Germany", geo.Europe, 10, 51),
		feature("Brazil", geo.Americas, -56, -15),
		feature("Spain", geo.Europe, -3, 40),
	})

	require.Equal(t, 3, idx.Len())
	require.Equal(t, []geo.Continent{geo.Americas, geo.Asia, geo.Europe}, idx.Continents())
	require.Equal(t, []string{"France", "Germany", "Spain"}, idx.Countries(geo.Europe))
	require.Equal(t, []string{"Japan"}, idx.Countries(geo.Asia))
	require.Equal(t, []string{"Brazil"}, idx.Countries(geo.Americas))
	require.Nil(t, idx.Countries(geo.Antarctica))
}

func TestGroupByContinentListsAreIndependent(t *testing.T) {
	idx := GroupByContinent([]geo.Feature{
		feature("France", geo.Europe, 2, 48),
		feature("Japan", geo.Asia, 138, 37),
	})

	idx.add(geo.Europe, "Italy")
	require.Equal(t, []string{"France", "Italy"}, idx.Countries(geo.Europe))
	require.Equal(t, []string{"Japan"}, idx.Countries(geo.Asia))

	// callers get copies
	asia := idx.Countries(geo.Asia)
	asia[0] = "Mutated"
	require.Equal(t, []string{"Japan"}, idx.Countries(geo.Asia))
}

func TestGroupByContinentEmpty(t *testing.T) {
	idx := GroupByContinent(nil)
	require.Zero(t, idx.Len())
	require.Empty(t, idx.Continents())
	require.Empty(t, idx.Map())
}

func TestGroupByContinentSkipsIncomplete(t *testing.T) {
	f := feature("France", geo.Europe, 2, 48)
	f.Properties.Name = nil

	idx := GroupByContinent([]geo.Feature{f, feature("Japan", geo.Asia, 138, 37)})
	require.Equal(t, []string{}, idx.Countries(geo.Europe))
	require.Equal(t, []string{"Japan"}, idx.Countries(geo.Asia))
}
