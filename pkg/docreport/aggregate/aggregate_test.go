package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
)

func TestPowerSums(t *testing.T) {
	t.Run("no matching rows", func(t *testing.T) {
		records := []models.DocumentRecord{
			{Type: "VE", Document: "Leidimas", PowerVE: 5, PowerSE: 7},
		}
		got := PowerSums(records, DefaultParams())
		assert.Equal(t, models.PowerSums{}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, models.PowerSums{}, PowerSums(nil, DefaultParams()))
	})

	t.Run("exact sums", func(t *testing.T) {
		records := []models.DocumentRecord{
			{Type: "Hibridas", PowerVE: 1.5},
			{Type: "Hibridas+EEKĮ", PowerVE: 2.25},
			{Type: "VE", PowerVE: 100},
			{Document: "Sąlygos", PowerSE: 10},
			{Document: "Preliminarios sąlygos", PowerSE: 0.5},
			{Document: "Leidimas", PowerSE: 1000},
		}
		got := PowerSums(records, DefaultParams())
		assert.Equal(t, 3.75, got.HybridVE)
		assert.Equal(t, 10.5, got.ConditionsSE)
	})

	t.Run("second sum rounded to two decimals", func(t *testing.T) {
		records := []models.DocumentRecord{
			{Document: "Sąlygos", PowerSE: 1.234},
			{Document: "Sąlygos", PowerSE: 2.345},
			{Type: "Hibridas", PowerVE: 1.001},
			{Type: "Hibridas", PowerVE: 1.002},
		}
		got := PowerSums(records, DefaultParams())
		assert.Equal(t, 3.58, got.ConditionsSE)
		assert.InDelta(t, 2.003, got.HybridVE, 1e-12)
	})

	t.Run("custom categories", func(t *testing.T) {
		records := []models.DocumentRecord{
			{Type: "X", Document: "Y", PowerVE: 1, PowerSE: 2},
		}
		got := PowerSums(records, Params{HybridTypes: []string{"X"}, ConditionDocuments: []string{"Y"}})
		assert.Equal(t, models.PowerSums{HybridVE: 1, ConditionsSE: 2}, got)
	})
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{3.579, 3.58},
		{3.574, 3.57},
		{2.0, 2.0},
		{-1.236, -1.24},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round2(tt.in), "Round2(%v)", tt.in)
	}
}

func TestWeeklyRouting(t *testing.T) {
	records := []models.DocumentRecord{
		{ReceivedWeek: 5, Route1: models.Missing, Route2: models.Missing},
		{ReceivedWeek: 3, Route1: "S1", Route2: models.Missing},
		{ReceivedWeek: 5, Route1: models.Missing, Route2: "S2"},
		{ReceivedWeek: 5, Route1: "S1", Route2: "S2"},
		{ReceivedWeek: 3, Route1: models.Missing, Route2: models.Missing},
		{ReceivedWeek: 3, Route1: "S1", Route2: "S2"},
	}

	got := WeeklyRouting(records)

	// Weeks keep first-appearance order.
	assert.Equal(t, []models.WeeklyRouting{
		{Week: 5, Route1Missing: 2, Route2Missing: 1, BothMissing: 1},
		{Week: 3, Route1Missing: 1, Route2Missing: 2, BothMissing: 1},
	}, got)
}

func TestWeeklyRoutingEmpty(t *testing.T) {
	assert.Empty(t, WeeklyRouting(nil))
}
