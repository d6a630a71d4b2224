// Package schema holds the canonical column contract for the district-level
// crop statistics file and the tables it is loaded into.
//
// The source file names its columns "<CROP> <MEASURE> (<unit>)", e.g.
// "RICE AREA (1000 ha)". HeaderMap renames those to snake_case keys, and
// FactColumns fixes the positional order used by the agri_production insert.
package schema

// Destination tables. Their DDL is owned by the provisioning script; this
// module only inserts into them.
const (
	TableStates    = "state_master"
	TableDistricts = "district_master"
	TableCrops     = "crops"
	TableYears     = "years"
	TableFacts     = "agri_production"
)

// Identity and reference column names.
const (
	ColDistCode  = "dist_code"
	ColYear      = "year"
	ColStateCode = "state_code"
	ColStateName = "state_name"
	ColDistName  = "dist_name"
	ColCropName  = "crop_name"
)

// ReferenceColumns are carried alongside the fact columns. They feed the
// state and district master tables and the per-state reports but are not
// part of agri_production.
var ReferenceColumns = []string{ColStateCode, ColStateName, ColDistName}

// FactColumns is the agri_production column list in insert order.
var FactColumns = []string{
	"dist_code", "year",
	"rice_area", "rice_production", "rice_yield",
	"wheat_area", "wheat_production", "wheat_yield",
	"sorghum_area", "sorghum_production", "sorghum_yield",
	"pearlmillet_area", "pearlmillet_production", "pearlmillet_yield",
	"maize_area", "maize_production", "maize_yield",
	"fingermillet_area", "fingermillet_production", "fingermillet_yield",
	"barley_area", "barley_production", "barley_yield",
	"chickpea_area", "chickpea_production", "chickpea_yield",
	"pigeonpea_area", "pigeonpea_production", "pigeonpea_yield",
	"groundnut_area", "groundnut_production", "groundnut_yield",
	"sesamum_area", "sesamum_production", "sesamum_yield",
	"rapeseed_area", "rapeseed_production", "rapeseed_yield",
	"mustard_area", "mustard_production", "mustard_yield",
	"safflower_area", "safflower_production", "safflower_yield",
	"castor_area", "castor_production", "castor_yield",
	"linseed_area", "linseed_production", "linseed_yield",
	"sunflower_area", "sunflower_production", "sunflower_yield",
	"soybean_area", "soybean_production", "soybean_yield",
	"cotton_area", "cotton_production", "cotton_yield",
	"oilseeds_area", "oilseeds_production", "oilseeds_yield",
	"sugarcane_area", "sugarcane_production", "sugarcane_yield",
	"fruits_area", "vegetables_area", "fruits_vegetables_area",
	"potatoes_area", "onion_area", "fodder_area",
}

// FactKeyColumns is the natural key of agri_production.
var FactKeyColumns = []string{ColDistCode, ColYear}

// HeaderMap renames source headers to canonical column names.
var HeaderMap = map[string]string{
	"Dist Code":  "dist_code",
	"Year":       "year",
	"State Code": "state_code",
	"State Name": "state_name",
	"Dist Name":  "dist_name",

	"RICE AREA (1000 ha)":                   "rice_area",
	"RICE PRODUCTION (1000 tons)":           "rice_production",
	"RICE YIELD (Kg per ha)":                "rice_yield",
	"WHEAT AREA (1000 ha)":                  "wheat_area",
	"WHEAT PRODUCTION (1000 tons)":          "wheat_production",
	"WHEAT YIELD (Kg per ha)":               "wheat_yield",
	"SORGHUM AREA (1000 ha)":                "sorghum_area",
	"SORGHUM PRODUCTION (1000 tons)":        "sorghum_production",
	"SORGHUM YIELD (Kg per ha)":             "sorghum_yield",
	"PEARLMILLET AREA (1000 ha)":            "pearlmillet_area",
	"PEARLMILLET PRODUCTION (1000 tons)":    "pearlmillet_production",
	"PEARLMILLET YIELD (Kg per ha)":         "pearlmillet_yield",
	"MAIZE AREA (1000 ha)":                  "maize_area",
	"MAIZE PRODUCTION (1000 tons)":          "maize_production",
	"MAIZE YIELD (Kg per ha)":               "maize_yield",
	"FINGERMILLET AREA (1000 ha)":           "fingermillet_area",
	"FINGERMILLET PRODUCTION (1000 tons)":   "fingermillet_production",
	"FINGERMILLET YIELD (Kg per ha)":        "fingermillet_yield",
	"BARLEY AREA (1000 ha)":                 "barley_area",
	"BARLEY PRODUCTION (1000 tons)":         "barley_production",
	"BARLEY YIELD (Kg per ha)":              "barley_yield",
	"CHICKPEA AREA (1000 ha)":               "chickpea_area",
	"CHICKPEA PRODUCTION (1000 tons)":       "chickpea_production",
	"CHICKPEA YIELD (Kg per ha)":            "chickpea_yield",
	"PIGEONPEA AREA (1000 ha)":              "pigeonpea_area",
	"PIGEONPEA PRODUCTION (1000 tons)":      "pigeonpea_production",
	"PIGEONPEA YIELD (Kg per ha)":           "pigeonpea_yield",
	"GROUNDNUT AREA (1000 ha)":              "groundnut_area",
	"GROUNDNUT PRODUCTION (1000 tons)":      "groundnut_production",
	"GROUNDNUT YIELD (Kg per ha)":           "groundnut_yield",
	"SESAMUM AREA (1000 ha)":                "sesamum_area",
	"SESAMUM PRODUCTION (1000 tons)":        "sesamum_production",
	"SESAMUM YIELD (Kg per ha)":             "sesamum_yield",
	"RAPESEED AREA (1000 ha)":               "rapeseed_area",
	"RAPESEED PRODUCTION (1000 tons)":       "rapeseed_production",
	"RAPESEED YIELD (Kg per ha)":            "rapeseed_yield",
	"MUSTARD AREA (1000 ha)":                "mustard_area",
	"MUSTARD PRODUCTION (1000 tons)":        "mustard_production",
	"MUSTARD YIELD (Kg per ha)":             "mustard_yield",
	"SAFFLOWER AREA (1000 ha)":              "safflower_area",
	"SAFFLOWER PRODUCTION (1000 tons)":      "safflower_production",
	"SAFFLOWER YIELD (Kg per ha)":           "safflower_yield",
	"CASTOR AREA (1000 ha)":                 "castor_area",
	"CASTOR PRODUCTION (1000 tons)":         "castor_production",
	"CASTOR YIELD (Kg per ha)":              "castor_yield",
	"LINSEED AREA (1000 ha)":                "linseed_area",
	"LINSEED PRODUCTION (1000 tons)":        "linseed_production",
	"LINSEED YIELD (Kg per ha)":             "linseed_yield",
	"SUNFLOWER AREA (1000 ha)":              "sunflower_area",
	"SUNFLOWER PRODUCTION (1000 tons)":      "sunflower_production",
	"SUNFLOWER YIELD (Kg per ha)":           "sunflower_yield",
	"SOYBEAN AREA (1000 ha)":                "soybean_area",
	"SOYBEAN PRODUCTION (1000 tons)":        "soybean_production",
	"SOYBEAN YIELD (Kg per ha)":             "soybean_yield",
	"COTTON AREA (1000 ha)":                 "cotton_area",
	"COTTON PRODUCTION (1000 tons)":         "cotton_production",
	"COTTON YIELD (Kg per ha)":              "cotton_yield",
	"TOTAL OILSEEDS AREA (1000 ha)":         "oilseeds_area",
	"TOTAL OILSEEDS PRODUCTION (1000 tons)": "oilseeds_production",
	"TOTAL OILSEEDS YIELD (Kg per ha)":      "oilseeds_yield",
	"SUGARCANE AREA (1000 ha)":              "sugarcane_area",
	"SUGARCANE PRODUCTION (1000 tons)":      "sugarcane_production",
	"SUGARCANE YIELD (Kg per ha)":           "sugarcane_yield",
	"FRUITS AREA (1000 ha)":                 "fruits_area",
	"VEGETABLES AREA (1000 ha)":             "vegetables_area",
	"FRUITS AND VEGETABLES AREA (1000 ha)":  "fruits_vegetables_area",
	"POTATOES AREA (1000 ha)":               "potatoes_area",
	"ONION AREA (1000 ha)":                  "onion_area",
	"FODDER AREA (1000 ha)":                 "fodder_area",
}

// ExpectedColumns returns the full canonical column list of a mapped table:
// reference columns first, then FactColumns in insert order.
func ExpectedColumns() []string {
	out := make([]string, 0, len(ReferenceColumns)+len(FactColumns))
	out = append(out, ReferenceColumns...)
	out = append(out, FactColumns...)
	return out
}
