package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogue_Shape(t *testing.T) {
	cat := Catalogue()
	require.Len(t, cat, 14)

	var names []string
	for _, c := range cat {
		require.NotNil(t, c.Build, c.Name)
		for _, f := range c.Build(sampleRecords()) {
			names = append(names, f.Name)
		}
	}
	assert.Len(t, names, 15)

	seen := make(map[string]bool)
	for _, n := range names {
		assert.False(t, seen[n], "duplicate figure %s", n)
		seen[n] = true
	}
}

func figureByName(t *testing.T, name string) Figure {
	t.Helper()
	for _, c := range Catalogue() {
		for _, f := range c.Build(sampleRecords()) {
			if f.Name == name {
				return f
			}
		}
	}
	t.Fatalf("figure %s not in catalogue", name)
	return Figure{}
}

func TestCatalogue_RiceTopStates(t *testing.T) {
	f := figureByName(t, "rice_top_states")
	assert.Equal(t, KindHBar, f.Kind)
	assert.Equal(t, "Top 7 Rice Producing States", f.Title)
	require.Len(t, f.Series, 1)
	assert.Equal(t, []string{"West Bengal", "Chhattisgarh", "Uttar Pradesh"}, f.Series[0].Labels)
	assert.Equal(t, []float64{1500, 750, 10}, f.Series[0].Y)
}

func TestCatalogue_WheatBarAndPie(t *testing.T) {
	var wheat Chart
	for _, c := range Catalogue() {
		if c.Name == "wheat_top_states" {
			wheat = c
		}
	}
	figs := wheat.Build(sampleRecords())
	require.Len(t, figs, 2)
	assert.Equal(t, KindHBar, figs[0].Kind)
	assert.Equal(t, KindPie, figs[1].Kind)
	assert.Equal(t, figs[0].Series[0].Y, figs[1].Series[0].Y)
	assert.Equal(t, "Uttar Pradesh", figs[0].Series[0].Labels[0])
}

func TestCatalogue_WestBengalDistricts(t *testing.T) {
	f := figureByName(t, "west_bengal_rice_districts")
	assert.Equal(t, []string{"Bankura", "Birbhum"}, f.Series[0].Labels)
}

func TestCatalogue_UttarPradeshWheatYears(t *testing.T) {
	f := figureByName(t, "uttar_pradesh_wheat_years")
	assert.Equal(t, []string{"1991", "1990"}, f.Series[0].Labels)
	assert.Equal(t, []float64{1000, 900}, f.Series[0].Y)
}

func TestCatalogue_SoybeanBubble(t *testing.T) {
	f := figureByName(t, "soybean_yield_vs_production")
	assert.Equal(t, KindBubble, f.Kind)
	s := f.Series[0]
	assert.Equal(t, []string{"Uttar Pradesh", "Chhattisgarh"}, s.Labels[:2])
	assert.Equal(t, []float64{1300, 800}, s.X[:2])
	assert.Equal(t, []float64{20, 5}, s.Y[:2])
	assert.Equal(t, s.Y, s.Size)
}

func TestCatalogue_AreaVsProductionSeries(t *testing.T) {
	f := figureByName(t, "area_vs_production")
	require.Len(t, f.Series, 3)
	assert.Equal(t, "Rice", f.Series[0].Name)
	assert.Equal(t, "Wheat", f.Series[1].Name)
	assert.Equal(t, "Maize", f.Series[2].Name)
	for _, s := range f.Series {
		assert.Len(t, s.X, len(sampleRecords()))
	}
}

func TestCatalogue_RiceVsWheatTrend(t *testing.T) {
	f := figureByName(t, "rice_vs_wheat_trend")
	require.Len(t, f.Series, 2)
	assert.Equal(t, []float64{1990, 1991}, f.Series[0].X)
	assert.Equal(t, []float64{1550, 710}, f.Series[0].Y)
	assert.Equal(t, []float64{942, 1025}, f.Series[1].Y)
}

func TestFigure_Empty(t *testing.T) {
	assert.True(t, Figure{}.Empty())
	assert.True(t, Figure{Series: []Series{{Name: "x"}}}.Empty())
	assert.False(t, Figure{Series: []Series{{Y: []float64{0}}}}.Empty())

	assert.True(t, Figure{Kind: KindPie, Series: []Series{{Labels: []string{"a", "b"}, Y: []float64{0, 0}}}}.Empty())
	assert.False(t, Figure{Kind: KindPie, Series: []Series{{Labels: []string{"a", "b"}, Y: []float64{0, 3}}}}.Empty())
}
