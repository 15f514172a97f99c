package models

import "time"

// DailyPoint is one bar of the daily traffic chart.
type DailyPoint struct {
	Date       string `json:"date"`
	TotalCount int64  `json:"totalCount"`
	DayOfWeek  string `json:"dayOfWeek"`
}

// HourlyPoint is one bar of the average-by-hour chart.
type HourlyPoint struct {
	Hour         int     `json:"hour"`
	AverageCount float64 `json:"averageCount"`
	Label        string  `json:"label"`
}

// WeekOverWeekStatus tells whether a week-over-week percentage could be computed.
type WeekOverWeekStatus string

const (
	WeekOverWeekOK                  WeekOverWeekStatus = "ok"
	WeekOverWeekInsufficientHistory WeekOverWeekStatus = "insufficient_history"
	WeekOverWeekZeroBaseline        WeekOverWeekStatus = "zero_baseline"
)

// TrafficSummary holds the scalar statistics of a sample set.
// WeekOverWeekChangePercent is nil unless WeekOverWeekStatus is "ok".
type TrafficSummary struct {
	TotalVisitors             int64              `json:"totalVisitors"`
	AverageDaily              float64            `json:"averageDaily"`
	DistinctDays              int                `json:"distinctDays"`
	PeakDay                   string             `json:"peakDay"`
	PeakHour                  int                `json:"peakHour"`
	PeakHourLabel             string             `json:"peakHourLabel"`
	SlowestDay                string             `json:"slowestDay"`
	WeekOverWeekChangePercent *float64           `json:"weekOverWeekChangePercent"`
	WeekOverWeekStatus        WeekOverWeekStatus `json:"weekOverWeekStatus"`
}

// TrafficReport is everything the foot-traffic screen renders for one restaurant.
type TrafficReport struct {
	RestaurantID string          `json:"restaurantId"`
	Timeframe    Timeframe       `json:"timeframe"`
	From         string          `json:"from"`
	To           string          `json:"to"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	Summary      *TrafficSummary `json:"summary"`
	Daily        []DailyPoint    `json:"daily"`
	Hourly       []HourlyPoint   `json:"hourly"`
}
