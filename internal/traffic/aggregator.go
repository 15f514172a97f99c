// Package traffic turns raw hourly foot-traffic samples into the series and
// statistics shown on the foot-traffic screen.
//
// All functions are pure: they never mutate their input, keep no state and
// take the evaluation time as a parameter, so they can be called
// concurrently from any goroutine.
package traffic

import (
	"errors"
	"sort"
	"strconv"
	"time"

	"restaurant-insights/internal/models"
)

const (
	// WeekLength is the number of leading dates that make up "week 1" in the
	// week-over-week comparison.
	WeekLength = 7
	// DailySeriesLength is the number of most recent dates in the daily series.
	DailySeriesLength = 7
	// HourlyWindowDays is the trailing window, in calendar days ending at now,
	// averaged by the hourly series. Averages always divide by this value.
	HourlyWindowDays = 7
)

type Aggregator interface {
	// Summarize computes the scalar statistics of samples. It fails with
	// ErrEmptyInput when samples is empty; a missing week-over-week figure is
	// reported through the summary's WeekOverWeekStatus.
	Summarize(samples []models.Sample) (*models.TrafficSummary, error)
	// DailySeries returns per-date totals of the most recent dates, ascending.
	DailySeries(samples []models.Sample) []models.DailyPoint
	// HourlySeries returns one point per operating hour, averaged over the
	// HourlyWindowDays calendar days ending at now.
	HourlySeries(samples []models.Sample, now time.Time) []models.HourlyPoint
}

// Hours outside the operating window are kept in totals, the daily series and
// the peak hour, and left out of the hourly series.
type aggregator struct {
	hours models.OperatingHours
}

func NewAggregator(hours models.OperatingHours) Aggregator {
	return &aggregator{hours: hours}
}

func (a *aggregator) Summarize(samples []models.Sample) (*models.TrafficSummary, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	dailyTotals := totalsByDate(samples)

	var totalVisitors int64
	for _, total := range dailyTotals {
		totalVisitors += total
	}

	peakDay, slowestDay := peakAndSlowestWeekday(samples)
	peakHour := peakHour(samples)

	summary := &models.TrafficSummary{
		TotalVisitors: totalVisitors,
		AverageDaily:  float64(totalVisitors) / float64(len(dailyTotals)),
		DistinctDays:  len(dailyTotals),
		PeakDay:       peakDay,
		PeakHour:      peakHour,
		PeakHourLabel: HourLabel(peakHour),
		SlowestDay:    slowestDay,
	}

	change, err := WeekOverWeekChange(dailyTotals)
	switch {
	case err == nil:
		summary.WeekOverWeekChangePercent = &change
		summary.WeekOverWeekStatus = models.WeekOverWeekOK
	case errors.Is(err, ErrZeroBaseline):
		summary.WeekOverWeekStatus = models.WeekOverWeekZeroBaseline
	default:
		summary.WeekOverWeekStatus = models.WeekOverWeekInsufficientHistory
	}

	return summary, nil
}

func (a *aggregator) DailySeries(samples []models.Sample) []models.DailyPoint {
	dailyTotals := totalsByDate(samples)
	dates := sortedDates(dailyTotals)
	if len(dates) > DailySeriesLength {
		dates = dates[len(dates)-DailySeriesLength:]
	}

	weekdays := make(map[string]string, len(dates))
	for _, s := range samples {
		if _, ok := weekdays[s.Date]; !ok {
			weekdays[s.Date] = s.DayOfWeek
		}
	}

	points := make([]models.DailyPoint, 0, len(dates))
	for _, date := range dates {
		points = append(points, models.DailyPoint{
			Date:       date,
			TotalCount: dailyTotals[date],
			DayOfWeek:  shortWeekday(date, weekdays[date]),
		})
	}
	return points
}

func (a *aggregator) HourlySeries(samples []models.Sample, now time.Time) []models.HourlyPoint {
	last := models.TruncateDay(now)
	first := last.AddDate(0, 0, -(HourlyWindowDays - 1))

	sums := make(map[int]int64, a.hours.Close-a.hours.Open+1)
	for _, s := range samples {
		if !a.hours.Contains(s.Hour) {
			continue
		}
		day, err := models.ParseDate(s.Date)
		if err != nil || day.Before(first) || day.After(last) {
			continue
		}
		sums[s.Hour] += s.Count
	}

	points := make([]models.HourlyPoint, 0, a.hours.Close-a.hours.Open+1)
	for _, hour := range a.hours.Hours() {
		points = append(points, models.HourlyPoint{
			Hour:         hour,
			AverageCount: float64(sums[hour]) / HourlyWindowDays,
			Label:        HourLabel(hour),
		})
	}
	return points
}

// WeekOverWeekChange compares the first WeekLength chronological dates of
// dailyTotals with all remaining dates, as a percentage of the first block.
func WeekOverWeekChange(dailyTotals map[string]int64) (float64, error) {
	dates := sortedDates(dailyTotals)
	if len(dates) <= WeekLength {
		return 0, ErrInsufficientHistory
	}

	var week1, week2 int64
	for i, date := range dates {
		if i < WeekLength {
			week1 += dailyTotals[date]
		} else {
			week2 += dailyTotals[date]
		}
	}
	if week1 == 0 {
		return 0, ErrZeroBaseline
	}
	return float64(week2-week1) / float64(week1) * 100, nil
}

// HourLabel renders an hour of day on a 12-hour clock: 0 is "12 AM", 12 is "12 PM".
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour == 12:
		return "12 PM"
	case hour < 12:
		return strconv.Itoa(hour) + " AM"
	default:
		return strconv.Itoa(hour-12) + " PM"
	}
}

func totalsByDate(samples []models.Sample) map[string]int64 {
	totals := make(map[string]int64)
	for _, s := range samples {
		totals[s.Date] += s.Count
	}
	return totals
}

func sortedDates(dailyTotals map[string]int64) []string {
	dates := make([]string, 0, len(dailyTotals))
	for date := range dailyTotals {
		dates = append(dates, date)
	}
	// lexical order is chronological for YYYY-MM-DD
	sort.Strings(dates)
	return dates
}
