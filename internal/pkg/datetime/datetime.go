// Package datetime holds calendar-date helpers. A calendar date is a
// time.Time at midnight UTC carrying the local year, month and day, which
// is also how pgx returns DATE columns.
package datetime

import (
	"fmt"
	"math"
	"time"
)

const DateLayout = "2006-01-02"

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// MonthBounds returns the first and last calendar dates of month in year.
func MonthBounds(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, -1)
	return start, end
}

// DaysInclusive counts calendar days in [start, end]; 0 when end < start.
func DaysInclusive(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// WeekdaysInclusive counts Monday-Friday dates in [start, end].
func WeekdaysInclusive(start, end time.Time) int {
	start, end = DateOf(start), DateOf(end)
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

// MinDate returns the earlier of a and b.
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// Hours returns end-start in hours.
func Hours(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
