// Package aggregate computes the summary tables of a normalized dataset.
package aggregate

import (
	"math"

	"github.com/samber/lo"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
)

// DefaultHybridTypes are the classifications summed into PowerSums.HybridVE.
var DefaultHybridTypes = []string{"Hibridas", "Hibridas+EEKĮ"}

// DefaultConditionDocuments are the document kinds summed into PowerSums.ConditionsSE.
var DefaultConditionDocuments = []string{"Sąlygos", "Preliminarios sąlygos"}

// Params selects the category sets used by PowerSums.
type Params struct {
	HybridTypes        []string
	ConditionDocuments []string
}

// DefaultParams returns the source locale category sets.
func DefaultParams() Params {
	return Params{
		HybridTypes:        DefaultHybridTypes,
		ConditionDocuments: DefaultConditionDocuments,
	}
}

// PowerSums sums PowerVE over hybrid rows and PowerSE over condition
// documents. The second sum is rounded to 2 decimals.
func PowerSums(records []models.DocumentRecord, params Params) models.PowerSums {
	hybrid := lo.Filter(records, func(r models.DocumentRecord, _ int) bool {
		return lo.Contains(params.HybridTypes, r.Type)
	})
	conditions := lo.Filter(records, func(r models.DocumentRecord, _ int) bool {
		return lo.Contains(params.ConditionDocuments, r.Document)
	})

	return models.PowerSums{
		HybridVE: lo.SumBy(hybrid, func(r models.DocumentRecord) float64 {
			return r.PowerVE
		}),
		ConditionsSE: Round2(lo.SumBy(conditions, func(r models.DocumentRecord) float64 {
			return r.PowerSE
		})),
	}
}

// Round2 rounds half away from zero to 2 decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// WeeklyRouting counts, per received week, the rows missing routing code 1,
// code 2, and both. Weeks keep their first-appearance order.
func WeeklyRouting(records []models.DocumentRecord) []models.WeeklyRouting {
	weeks := lo.Uniq(lo.Map(records, func(r models.DocumentRecord, _ int) int {
		return r.ReceivedWeek
	}))
	byWeek := lo.GroupBy(records, func(r models.DocumentRecord) int {
		return r.ReceivedWeek
	})

	return lo.Map(weeks, func(week int, _ int) models.WeeklyRouting {
		rows := byWeek[week]
		return models.WeeklyRouting{
			Week: week,
			Route1Missing: lo.CountBy(rows, func(r models.DocumentRecord) bool {
				return r.Route1 == models.Missing
			}),
			Route2Missing: lo.CountBy(rows, func(r models.DocumentRecord) bool {
				return r.Route2 == models.Missing
			}),
			BothMissing: lo.CountBy(rows, func(r models.DocumentRecord) bool {
				return r.Route1 == models.Missing && r.Route2 == models.Missing
			}),
		}
	})
}
