package models

// Output sheet names, in the order they are written.
const (
	SheetPowerSums = "SE ir VE sumos"
	SheetRouting   = "Dokumentų įrankis"
	SheetData      = "Duomenys"
)

// PowerSums is the single-row power summary.
type PowerSums struct {
	// HybridVE is the PowerVE sum over hybrid-type rows.
	HybridVE float64 `json:"hybrid_ve" yaml:"hybrid_ve"`
	// ConditionsSE is the PowerSE sum over condition documents, rounded to 2 decimals.
	ConditionsSE float64 `json:"conditions_se" yaml:"conditions_se"`
}

// Headers returns the sheet header row.
func (PowerSums) Headers() []interface{} {
	return []interface{}{"Galia VE suma", "Galia SE suma"}
}

// Values returns the sheet data row.
func (p PowerSums) Values() []interface{} {
	return []interface{}{p.HybridVE, p.ConditionsSE}
}

// WeeklyRouting counts unrouted documents received in one ISO week.
type WeeklyRouting struct {
	Week          int `json:"week" yaml:"week"`
	Route1Missing int `json:"route1_missing" yaml:"route1_missing"`
	Route2Missing int `json:"route2_missing" yaml:"route2_missing"`
	BothMissing   int `json:"both_missing" yaml:"both_missing"`
}

// WeeklyRoutingHeaders is the header row of the routing sheet.
var WeeklyRoutingHeaders = []interface{}{"Gavimo savaitė", "1 Skyrius", "2 Skyrius", "Abu skyriai"}

// Values returns the sheet data row.
func (w WeeklyRouting) Values() []interface{} {
	return []interface{}{w.Week, w.Route1Missing, w.Route2Missing, w.BothMissing}
}

// WeeklyVolume counts documents received and answered in one ISO week.
type WeeklyVolume struct {
	Week     int `json:"week" yaml:"week"`
	Received int `json:"received" yaml:"received"`
	Answered int `json:"answered" yaml:"answered"`
}
