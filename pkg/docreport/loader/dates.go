package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// dateLayouts are the text date formats accepted besides Excel serial numbers.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05Z07:00",
	"2006/01/02",
	"2006.01.02",
	"01-02-06",
}

// AddBusinessDays returns d moved forward by n weekdays. Saturdays and Sundays
// are skipped; no holiday calendar applies. A weekend start counts the
// following Monday as the first business day.
func AddBusinessDays(d time.Time, n int) time.Time {
	for n > 0 {
		d = d.AddDate(0, 0, 1)
		if isWeekend(d) {
			continue
		}
		n--
	}
	return d
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ISOWeek returns the ISO 8601 week number of d, or 0 for the zero time.
func ISOWeek(d time.Time) int {
	if d.IsZero() {
		return 0
	}
	_, week := d.ISOWeek()
	return week
}

// parseDate parses a raw date cell and truncates it to midnight UTC. Serial
// numbers follow the workbook's date system. Blank cells yield the zero time.
func parseDate(s string, date1904 bool) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return time.Time{}, err
		}
		return truncateDay(t), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("no date layout matched %q", s)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
