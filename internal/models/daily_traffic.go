package models

import (
	"slices"
	"sort"
	"time"
)

// DailyTraffic is the rolled-up record of one restaurant's visits on one date.
// SamplesByHour counts the raw samples merged into each hour, so the record can
// be expanded back into samples that average the same as the ingested ones.
// AppliedBatchIDs lists the batches already merged.
type DailyTraffic struct {
	RestaurantID    string       `json:"restaurantId"`
	Date            string       `json:"date"`
	CountsByHour    HourlyCounts `json:"countsByHour"`
	SamplesByHour   HourlyCounts `json:"samplesByHour,omitempty"`
	AppliedBatchIDs []string     `json:"appliedBatchIds,omitempty"`
}

func NewEmptyDailyTraffic(restaurantID, date string) *DailyTraffic {
	return &DailyTraffic{
		RestaurantID: restaurantID,
		Date:         date,
		CountsByHour: make(HourlyCounts),
	}
}

func (d *DailyTraffic) IsNew() bool {
	return len(d.CountsByHour) == 0 && len(d.AppliedBatchIDs) == 0
}

// HasBatch reports whether batchID was already merged into the record.
// The empty ID is never tracked.
func (d *DailyTraffic) HasBatch(batchID string) bool {
	return batchID != "" && slices.Contains(d.AppliedBatchIDs, batchID)
}

// Weekday is the day of week of Date, or "" when Date does not parse.
func (d *DailyTraffic) Weekday() string {
	day, err := ParseDate(d.Date)
	if err != nil {
		return ""
	}
	return day.Weekday().String()
}

// Samples expands the record into samples ordered by hour. An hour merged from
// n raw samples comes back as n samples whose counts differ by at most one and
// sum to the hour's count. Hours with no sample tally come back as one sample.
func (d *DailyTraffic) Samples() []Sample {
	hours := make([]int, 0, len(d.CountsByHour))
	for hour := range d.CountsByHour {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	weekday := d.Weekday()
	samples := make([]Sample, 0, len(hours))
	for _, hour := range hours {
		n := d.SamplesByHour[hour]
		if n < 1 {
			n = 1
		}
		count := d.CountsByHour[hour]
		share, remainder := count/n, count%n
		for i := int64(0); i < n; i++ {
			piece := share
			if i < remainder {
				piece++
			}
			samples = append(samples, Sample{
				Date:      d.Date,
				Hour:      hour,
				Count:     piece,
				DayOfWeek: weekday,
			})
		}
	}
	return samples
}

// WithinRange reports whether Date falls in [from, to] by calendar day.
func (d *DailyTraffic) WithinRange(from, to time.Time) bool {
	day, err := ParseDate(d.Date)
	if err != nil {
		return false
	}
	return !day.Before(TruncateDay(from)) && !day.After(TruncateDay(to))
}
