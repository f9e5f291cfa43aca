// Package chart renders the weekly document volume as a stacked bar chart.
package chart

import (
	"sort"

	"github.com/samber/lo"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
)

// WeeklyVolume counts received documents per received week and answered
// documents per answered week over the union of both week domains. Rows
// without a date do not count toward that date's week. Weeks are ascending.
func WeeklyVolume(records []models.DocumentRecord) []models.WeeklyVolume {
	received := lo.CountValuesBy(lo.Filter(records, func(r models.DocumentRecord, _ int) bool {
		return r.ReceivedWeek != 0
	}), func(r models.DocumentRecord) int {
		return r.ReceivedWeek
	})
	answered := lo.CountValuesBy(lo.Filter(records, func(r models.DocumentRecord, _ int) bool {
		return r.Answered() && r.AnsweredWeek != 0
	}), func(r models.DocumentRecord) int {
		return r.AnsweredWeek
	})

	weeks := lo.Union(lo.Keys(received), lo.Keys(answered))
	sort.Ints(weeks)

	return lo.Map(weeks, func(week int, _ int) models.WeeklyVolume {
		return models.WeeklyVolume{
			Week:     week,
			Received: received[week],
			Answered: answered[week],
		}
	})
}
