package records

// Record is one (district, year) observation after schema mapping. Field
// order after the reference block follows schema.FactColumns.
type Record struct {
	StateCode Code   `csv:"state_code"`
	StateName string `csv:"state_name"`
	DistName  string `csv:"dist_name"`
	DistCode  Code   `csv:"dist_code"`
	Year      Code   `csv:"year"`

	RiceArea               Quantity `csv:"rice_area"`
	RiceProduction         Quantity `csv:"rice_production"`
	RiceYield              Quantity `csv:"rice_yield"`
	WheatArea              Quantity `csv:"wheat_area"`
	WheatProduction        Quantity `csv:"wheat_production"`
	WheatYield             Quantity `csv:"wheat_yield"`
	SorghumArea            Quantity `csv:"sorghum_area"`
	SorghumProduction      Quantity `csv:"sorghum_production"`
	SorghumYield           Quantity `csv:"sorghum_yield"`
	PearlmilletArea        Quantity `csv:"pearlmillet_area"`
	PearlmilletProduction  Quantity `csv:"pearlmillet_production"`
	PearlmilletYield       Quantity `csv:"pearlmillet_yield"`
	MaizeArea              Quantity `csv:"maize_area"`
	MaizeProduction        Quantity `csv:"maize_production"`
	MaizeYield             Quantity `csv:"maize_yield"`
	FingermilletArea       Quantity `csv:"fingermillet_area"`
	FingermilletProduction Quantity `csv:"fingermillet_production"`
	FingermilletYield      Quantity `csv:"fingermillet_yield"`
	BarleyArea             Quantity `csv:"barley_area"`
	BarleyProduction       Quantity `csv:"barley_production"`
	BarleyYield            Quantity `csv:"barley_yield"`
	ChickpeaArea           Quantity `csv:"chickpea_area"`
	ChickpeaProduction     Quantity `csv:"chickpea_production"`
	ChickpeaYield          Quantity `csv:"chickpea_yield"`
	PigeonpeaArea          Quantity `csv:"pigeonpea_area"`
	PigeonpeaProduction    Quantity `csv:"pigeonpea_production"`
	PigeonpeaYield         Quantity `csv:"pigeonpea_yield"`
	GroundnutArea          Quantity `csv:"groundnut_area"`
	GroundnutProduction    Quantity `csv:"groundnut_production"`
	GroundnutYield         Quantity `csv:"groundnut_yield"`
	SesamumArea            Quantity `csv:"sesamum_area"`
	SesamumProduction      Quantity `csv:"sesamum_production"`
	SesamumYield           Quantity `csv:"sesamum_yield"`
	RapeseedArea           Quantity `csv:"rapeseed_area"`
	RapeseedProduction     Quantity `csv:"rapeseed_production"`
	RapeseedYield          Quantity `csv:"rapeseed_yield"`
	MustardArea            Quantity `csv:"mustard_area"`
	MustardProduction      Quantity `csv:"mustard_production"`
	MustardYield           Quantity `csv:"mustard_yield"`
	SafflowerArea          Quantity `csv:"safflower_area"`
	SafflowerProduction    Quantity `csv:"safflower_production"`
	SafflowerYield         Quantity `csv:"safflower_yield"`
	CastorArea             Quantity `csv:"castor_area"`
	CastorProduction       Quantity `csv:"castor_production"`
	CastorYield            Quantity `csv:"castor_yield"`
	LinseedArea            Quantity `csv:"linseed_area"`
	LinseedProduction      Quantity `csv:"linseed_production"`
	LinseedYield           Quantity `csv:"linseed_yield"`
	SunflowerArea          Quantity `csv:"sunflower_area"`
	SunflowerProduction    Quantity `csv:"sunflower_production"`
	SunflowerYield         Quantity `csv:"sunflower_yield"`
	SoybeanArea            Quantity `csv:"soybean_area"`
	SoybeanProduction      Quantity `csv:"soybean_production"`
	SoybeanYield           Quantity `csv:"soybean_yield"`
	CottonArea             Quantity `csv:"cotton_area"`
	CottonProduction       Quantity `csv:"cotton_production"`
	CottonYield            Quantity `csv:"cotton_yield"`
	OilseedsArea           Quantity `csv:"oilseeds_area"`
	OilseedsProduction     Quantity `csv:"oilseeds_production"`
	OilseedsYield          Quantity `csv:"oilseeds_yield"`
	SugarcaneArea          Quantity `csv:"sugarcane_area"`
	SugarcaneProduction    Quantity `csv:"sugarcane_production"`
	SugarcaneYield         Quantity `csv:"sugarcane_yield"`
	FruitsArea             Quantity `csv:"fruits_area"`
	VegetablesArea         Quantity `csv:"vegetables_area"`
	FruitsVegetablesArea   Quantity `csv:"fruits_vegetables_area"`
	PotatoesArea           Quantity `csv:"potatoes_area"`
	OnionArea              Quantity `csv:"onion_area"`
	FodderArea             Quantity `csv:"fodder_area"`
}

// FactValues returns the agri_production values aligned with
// schema.FactColumns.
func (r Record) FactValues() []any {
	return []any{
		int64(r.DistCode),
		int64(r.Year),
		float64(r.RiceArea),
		float64(r.RiceProduction),
		float64(r.RiceYield),
		float64(r.WheatArea),
		float64(r.WheatProduction),
		float64(r.WheatYield),
		float64(r.SorghumArea),
		float64(r.SorghumProduction),
		float64(r.SorghumYield),
		float64(r.PearlmilletArea),
		float64(r.PearlmilletProduction),
		float64(r.PearlmilletYield),
		float64(r.MaizeArea),
		float64(r.MaizeProduction),
		float64(r.MaizeYield),
		float64(r.FingermilletArea),
		float64(r.FingermilletProduction),
		float64(r.FingermilletYield),
		float64(r.BarleyArea),
		float64(r.BarleyProduction),
		float64(r.BarleyYield),
		float64(r.ChickpeaArea),
		float64(r.ChickpeaProduction),
		float64(r.ChickpeaYield),
		float64(r.PigeonpeaArea),
		float64(r.PigeonpeaProduction),
		float64(r.PigeonpeaYield),
		float64(r.GroundnutArea),
		float64(r.GroundnutProduction),
		float64(r.GroundnutYield),
		float64(r.SesamumArea),
		float64(r.SesamumProduction),
		float64(r.SesamumYield),
		float64(r.RapeseedArea),
		float64(r.RapeseedProduction),
		float64(r.RapeseedYield),
		float64(r.MustardArea),
		float64(r.MustardProduction),
		float64(r.MustardYield),
		float64(r.SafflowerArea),
		float64(r.SafflowerProduction),
		float64(r.SafflowerYield),
		float64(r.CastorArea),
		float64(r.CastorProduction),
		float64(r.CastorYield),
		float64(r.LinseedArea),
		float64(r.LinseedProduction),
		float64(r.LinseedYield),
		float64(r.SunflowerArea),
		float64(r.SunflowerProduction),
		float64(r.SunflowerYield),
		float64(r.SoybeanArea),
		float64(r.SoybeanProduction),
		float64(r.SoybeanYield),
		float64(r.CottonArea),
		float64(r.CottonProduction),
		float64(r.CottonYield),
		float64(r.OilseedsArea),
		float64(r.OilseedsProduction),
		float64(r.OilseedsYield),
		float64(r.SugarcaneArea),
		float64(r.SugarcaneProduction),
		float64(r.SugarcaneYield),
		float64(r.FruitsArea),
		float64(r.VegetablesArea),
		float64(r.FruitsVegetablesArea),
		float64(r.PotatoesArea),
		float64(r.OnionArea),
		float64(r.FodderArea),
	}
}
