package report

import (
	"agrietl/internal/records"
)

// Field accessors used by the catalogue.
var (
	riceArea               Measure = func(r records.Record) float64 { return float64(r.RiceArea) }
	riceProduction         Measure = func(r records.Record) float64 { return float64(r.RiceProduction) }
	riceYield              Measure = func(r records.Record) float64 { return float64(r.RiceYield) }
	wheatArea              Measure = func(r records.Record) float64 { return float64(r.WheatArea) }
	wheatProduction        Measure = func(r records.Record) float64 { return float64(r.WheatProduction) }
	maizeArea              Measure = func(r records.Record) float64 { return float64(r.MaizeArea) }
	maizeProduction        Measure = func(r records.Record) float64 { return float64(r.MaizeProduction) }
	oilseedsProduction     Measure = func(r records.Record) float64 { return float64(r.OilseedsProduction) }
	sunflowerProduction    Measure = func(r records.Record) float64 { return float64(r.SunflowerProduction) }
	sugarcaneProduction    Measure = func(r records.Record) float64 { return float64(r.SugarcaneProduction) }
	fingermilletProduction Measure = func(r records.Record) float64 { return float64(r.FingermilletProduction) }
	sorghumProduction      Measure = func(r records.Record) float64 { return float64(r.SorghumProduction) }
	groundnutProduction    Measure = func(r records.Record) float64 { return float64(r.GroundnutProduction) }
	soybeanProduction      Measure = func(r records.Record) float64 { return float64(r.SoybeanProduction) }
	soybeanYield           Measure = func(r records.Record) float64 { return float64(r.SoybeanYield) }
)

const (
	prodTons  = "Production (1000 tons)"
	stateName = "State Name"
	distName  = "District Name"
)

// topStates is the common "top n states by summed measure" entry.
func topStates(name, title, xl string, kind Kind, n int, m Measure) Chart {
	return Chart{
		Name:  name,
		Title: title,
		Build: func(recs []records.Record) []Figure {
			ps := TopN(GroupSum(recs, ByState, m), n)
			if kind == KindBar {
				return []Figure{categorical(name, title, stateName, xl, kind, ps)}
			}
			return []Figure{categorical(name, title, xl, stateName, kind, ps)}
		},
	}
}

// Catalogue returns the fixed set of report charts in presentation order.
func Catalogue() []Chart {
	return []Chart{
		topStates("rice_top_states", "Top 7 Rice Producing States", "Rice Production (1000 tons)", KindHBar, 7, riceProduction),
		{
			Name:  "wheat_top_states",
			Title: "Top 5 Wheat Producing States",
			Build: func(recs []records.Record) []Figure {
				ps := TopN(GroupSum(recs, ByState, wheatProduction), 5)
				return []Figure{
					categorical("wheat_top_states", "Top 5 Wheat Producing States", "Wheat Production (1000 tons)", stateName, KindHBar, ps),
					categorical("wheat_share", "Wheat Production Share (%)", "", "", KindPie, ps),
				}
			},
		},
		topStates("oilseed_top_states", "Top 5 Oilseed Producing States", prodTons, KindHBar, 5, oilseedsProduction),
		topStates("sunflower_top_states", "Top 7 Sunflower Producing States", "Sunflower Production (1000 tons)", KindHBar, 7, sunflowerProduction),
		{
			Name:  "sugarcane_trend",
			Title: "Sugarcane Production Trend Over Time",
			Build: func(recs []records.Record) []Figure {
				return []Figure{{
					Name: "sugarcane_trend", Title: "Sugarcane Production Trend Over Time",
					XLabel: "Year", YLabel: "Sugarcane Production (1000 tons)", Kind: KindLine,
					Series: []Series{yearSeries("Sugarcane", SeriesByYear(recs, sugarcaneProduction))},
				}}
			},
		},
		{
			Name:  "rice_vs_wheat_trend",
			Title: "Rice vs Wheat Production Trend",
			Build: func(recs []records.Record) []Figure {
				return []Figure{{
					Name: "rice_vs_wheat_trend", Title: "Rice vs Wheat Production Trend",
					XLabel: "Year", YLabel: prodTons, Kind: KindLine,
					Series: []Series{
						yearSeries("Rice", SeriesByYear(recs, riceProduction)),
						yearSeries("Wheat", SeriesByYear(recs, wheatProduction)),
					},
				}}
			},
		},
		{
			Name:  "west_bengal_rice_districts",
			Title: "Rice Production: Top Districts (West Bengal)",
			Build: func(recs []records.Record) []Figure {
				ps := TopN(GroupSum(FilterState(recs, "West Bengal"), ByDistrict, riceProduction), 10)
				return []Figure{categorical("west_bengal_rice_districts", "Rice Production: Top Districts (West Bengal)",
					"Rice Production (1000 tons)", distName, KindHBar, ps)}
			},
		},
		{
			Name:  "uttar_pradesh_wheat_years",
			Title: "Top 10 Wheat Production Years: Uttar Pradesh",
			Build: func(recs []records.Record) []Figure {
				ps := TopN(GroupSum(FilterState(recs, "Uttar Pradesh"), ByYear, wheatProduction), 10)
				return []Figure{categorical("uttar_pradesh_wheat_years", "Top 10 Wheat Production Years: Uttar Pradesh",
					"Wheat Production (1000 tons)", "Year", KindHBar, ps)}
			},
		},
		{
			Name:  "fingermillet_trend",
			Title: "Finger Millet Production Trend Over Time",
			Build: func(recs []records.Record) []Figure {
				return []Figure{{
					Name: "fingermillet_trend", Title: "Finger Millet Production Trend Over Time",
					XLabel: "Year", YLabel: "Finger Millet Production (1000 tons)", Kind: KindLine,
					Series: []Series{yearSeries("Finger Millet", SeriesByYear(recs, fingermilletProduction))},
				}}
			},
		},
		topStates("sorghum_top_states", "Top 7 Sorghum Producing States", "Sorghum Production (1000 tons)", KindBar, 7, sorghumProduction),
		topStates("groundnut_top_states", "Top 7 Groundnut Producing States", "Groundnut Production (1000 tons)", KindHBar, 7, groundnutProduction),
		{
			Name:  "soybean_yield_vs_production",
			Title: "Top 5 Soybean States: Yield vs Production",
			Build: func(recs []records.Record) []Figure {
				yields := make(map[string]float64)
				for _, p := range GroupSum(recs, ByState, soybeanYield) {
					yields[p.Key] = p.Value
				}
				top := TopN(GroupSum(recs, ByState, soybeanProduction), 5)
				s := Series{Name: "Soybean"}
				for _, p := range top {
					s.Labels = append(s.Labels, p.Key)
					s.X = append(s.X, yields[p.Key])
					s.Y = append(s.Y, p.Value)
					s.Size = append(s.Size, p.Value)
				}
				return []Figure{{
					Name: "soybean_yield_vs_production", Title: "Top 5 Soybean States: Yield vs Production",
					XLabel: "Soybean Yield (Kg per ha)", YLabel: "Soybean Production (1000 tons)", Kind: KindBubble,
					Series: []Series{s},
				}}
			},
		},
		{
			Name:  "area_vs_production",
			Title: "Area vs Production: Rice, Wheat, Maize",
			Build: func(recs []records.Record) []Figure {
				return []Figure{{
					Name: "area_vs_production", Title: "Area vs Production: Rice, Wheat, Maize",
					XLabel: "Area (1000 ha)", YLabel: prodTons, Kind: KindScatter,
					Series: []Series{
						pointSeries("Rice", recs, riceArea, riceProduction),
						pointSeries("Wheat", recs, wheatArea, wheatProduction),
						pointSeries("Maize", recs, maizeArea, maizeProduction),
					},
				}}
			},
		},
		{
			Name:  "rice_yield_top_districts",
			Title: "Top 10 Districts by Rice Yield",
			Build: func(recs []records.Record) []Figure {
				ps := TopN(GroupMax(recs, ByDistrict, riceYield), 10)
				return []Figure{categorical("rice_yield_top_districts", "Top 10 Districts by Rice Yield",
					"Rice Yield (Kg per ha)", distName, KindHBar, ps)}
			},
		},
	}
}

func pointSeries(name string, recs []records.Record, x, y Measure) Series {
	s := Series{Name: name, X: make([]float64, len(recs)), Y: make([]float64, len(recs))}
	for i, r := range recs {
		s.X[i] = x(r)
		s.Y[i] = y(r)
	}
	return s
}
