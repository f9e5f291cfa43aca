package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/ukaji3/docreport-go/pkg/docreport/models"
)

func answeredOn(week int) models.DocumentRecord {
	return models.DocumentRecord{
		Response:     time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		AnsweredWeek: week,
	}
}

func TestWeeklyVolume(t *testing.T) {
	t.Run("aligned weeks", func(t *testing.T) {
		a := answeredOn(3)
		a.ReceivedWeek = 3
		records := []models.DocumentRecord{a, {ReceivedWeek: 3}, {ReceivedWeek: 4}}

		assert.Equal(t, []models.WeeklyVolume{
			{Week: 3, Received: 2, Answered: 1},
			{Week: 4, Received: 1, Answered: 0},
		}, WeeklyVolume(records))
	})

	t.Run("answer lands in a week without receipts", func(t *testing.T) {
		a := answeredOn(7)
		a.ReceivedWeek = 4
		records := []models.DocumentRecord{{ReceivedWeek: 4}, a}

		assert.Equal(t, []models.WeeklyVolume{
			{Week: 4, Received: 2, Answered: 0},
			{Week: 7, Received: 0, Answered: 1},
		}, WeeklyVolume(records))
	})

	t.Run("unanswered rows do not count", func(t *testing.T) {
		records := []models.DocumentRecord{
			{ReceivedWeek: 10},
			{ReceivedWeek: 10},
		}

		assert.Equal(t, []models.WeeklyVolume{
			{Week: 10, Received: 2, Answered: 0},
		}, WeeklyVolume(records))
	})

	t.Run("weeks ascending", func(t *testing.T) {
		records := []models.DocumentRecord{{ReceivedWeek: 12}, {ReceivedWeek: 2}, {ReceivedWeek: 8}}
		got := WeeklyVolume(records)
		weeks := []int{got[0].Week, got[1].Week, got[2].Week}
		assert.Equal(t, []int{2, 8, 12}, weeks)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, WeeklyVolume(nil))
	})
}
