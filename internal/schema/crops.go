package schema

import (
	"sort"
	"strings"
)

// CropSuffixes are stripped from fact columns to obtain a crop name. Order
// matters: the first matching suffix wins.
var CropSuffixes = []string{"_area", "_production", "_yield"}

// CropLookup names the crop for columns that carry no measure suffix. The
// source schema is inconsistent about horticulture and aggregate columns, so
// these are listed explicitly rather than inferred.
var CropLookup = map[string]string{
	"fruits_area":     "fruits",
	"vegetables_area": "vegetables",
	"potatoes_area":   "potatoes",
	"onion_area":      "onion",
	"fodder_area":     "fodder",
	"oilseeds_area":   "oilseeds",
	"sugarcane_area":  "sugarcane",
}

// cropExcluded are fact columns that do not name a crop.
var cropExcluded = map[string]struct{}{
	ColDistCode:              {},
	ColYear:                  {},
	"fruits_vegetables_area": {},
}

// DeriveCrops returns the sorted, de-duplicated crop names implied by
// columns. Identifier columns and the combined fruits-and-vegetables column
// are skipped.
func DeriveCrops(columns []string) []string {
	set := make(map[string]struct{})
	for _, col := range columns {
		if _, skip := cropExcluded[col]; skip {
			continue
		}
		if name, ok := cropName(col); ok {
			set[name] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func cropName(col string) (string, bool) {
	for _, suffix := range CropSuffixes {
		if strings.HasSuffix(col, suffix) {
			name := strings.TrimSuffix(col, suffix)
			return name, name != ""
		}
	}
	name, ok := CropLookup[col]
	return name, ok
}
