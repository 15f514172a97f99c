package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-day format used for sample dates and storage keys.
const DateLayout = "2006-01-02"

// Sample is one hourly visit-count observation for a restaurant.
//
// Example JSON:
//
//	{"date": "2025-12-28", "hour": 18, "count": 42, "dayOfWeek": "Sunday"}
type Sample struct {
	Date      string `json:"date"`
	Hour      int    `json:"hour"`
	Count     int64  `json:"count"`
	DayOfWeek string `json:"dayOfWeek"`
}

// NewSample builds a Sample and derives its weekday from date.
func NewSample(date string, hour int, count int64) (Sample, error) {
	day, err := ParseDate(date)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Date:      date,
		Hour:      hour,
		Count:     count,
		DayOfWeek: day.Weekday().String(),
	}, nil
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: must be YYYY-MM-DD", date)
	}
	return t, nil
}

// FormatDate renders the UTC calendar day of t.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// TruncateDay returns midnight UTC of t's calendar day.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
