package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveCrops(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cols []string
		want []string
	}{
		{
			name: "suffixes stripped and deduplicated",
			cols: []string{"dist_code", "year", "rice_area", "rice_production", "rice_yield", "wheat_yield"},
			want: []string{"rice", "wheat"},
		},
		{
			name: "combined horticulture column skipped",
			cols: []string{"fruits_area", "vegetables_area", "fruits_vegetables_area"},
			want: []string{"fruits", "vegetables"},
		},
		{
			name: "unknown unsuffixed column ignored",
			cols: []string{"state_name", "onion_area"},
			want: []string{"onion"},
		},
		{
			name: "bare suffix yields nothing",
			cols: []string{"_area"},
			want: []string{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, DeriveCrops(tc.cols))
		})
	}
}

func TestDeriveCropsFromFactColumns(t *testing.T) {
	t.Parallel()

	got := DeriveCrops(FactColumns)
	assert.Len(t, got, 26)
	assert.IsIncreasing(t, got)
	for _, c := range []string{"rice", "oilseeds", "sugarcane", "fodder", "potatoes"} {
		assert.Contains(t, got, c)
	}
	assert.NotContains(t, got, "fruits_vegetables")
	assert.NotContains(t, got, "dist_code")
}
