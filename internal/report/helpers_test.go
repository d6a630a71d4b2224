package report

import "agrietl/internal/records"

func rec(state, dist string, year int64, set func(*records.Record)) records.Record {
	r := records.Record{StateName: state, DistName: dist, Year: records.Code(year)}
	if set != nil {
		set(&r)
	}
	return r
}

// sampleRecords covers three states, five districts, and two years.
func sampleRecords() []records.Record {
	return []records.Record{
		rec("Chhattisgarh", "Durg", 1990, func(r *records.Record) {
			r.RiceArea, r.RiceProduction, r.RiceYield = 300, 450, 1500
			r.WheatArea, r.WheatProduction = 10, 12
			r.SoybeanProduction, r.SoybeanYield = 5, 800
			r.SugarcaneProduction = 2
		}),
		rec("Chhattisgarh", "Bastar", 1990, func(r *records.Record) {
			r.RiceArea, r.RiceProduction, r.RiceYield = 250, 300, 1200
			r.SorghumProduction = 4
		}),
		rec("West Bengal", "Bankura", 1990, func(r *records.Record) {
			r.RiceArea, r.RiceProduction, r.RiceYield = 400, 800, 2000
			r.WheatProduction = 30
			r.SunflowerProduction = 1
		}),
		rec("West Bengal", "Birbhum", 1991, func(r *records.Record) {
			r.RiceArea, r.RiceProduction, r.RiceYield = 380, 700, 1842
			r.WheatProduction = 25
			r.GroundnutProduction = 3
		}),
		rec("Uttar Pradesh", "Agra", 1990, func(r *records.Record) {
			r.WheatArea, r.WheatProduction, r.WheatYield = 500, 900, 1800
			r.MaizeArea, r.MaizeProduction = 20, 30
			r.SoybeanProduction, r.SoybeanYield = 9, 600
			r.SugarcaneProduction = 50
			r.OilseedsProduction = 6
			r.FingermilletProduction = 1
		}),
		rec("Uttar Pradesh", "Agra", 1991, func(r *records.Record) {
			r.WheatArea, r.WheatProduction, r.WheatYield = 520, 1000, 1923
			r.RiceProduction, r.RiceYield = 10, 900
			r.SoybeanProduction, r.SoybeanYield = 11, 700
			r.SugarcaneProduction = 55
			r.FingermilletProduction = 2
		}),
	}
}
