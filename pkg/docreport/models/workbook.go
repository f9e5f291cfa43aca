package models

// Report holds every table produced by one run.
type Report struct {
	// Data is the normalized input table.
	Data *Dataset
	// Sums is the power summary.
	Sums PowerSums
	// Routing is the weekly routing table in first-appearance order.
	Routing []WeeklyRouting
	// Volume is the weekly received/answered table in ascending week order.
	Volume []WeeklyVolume
}
