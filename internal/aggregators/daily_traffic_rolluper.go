package aggregators

import (
	"errors"
	"fmt"

	"restaurant-insights/internal/events"
	"restaurant-insights/internal/models"
)

// ErrBatchAlreadyApplied is returned by Rollup when the record already holds
// the partial's batch. The record is left untouched.
var ErrBatchAlreadyApplied = errors.New("batch already applied to daily traffic")

//go:generate mockgen -source=daily_traffic_rolluper.go -destination=./mocks/daily_traffic_rolluper_mock.go -package=mocks
type DailyTrafficRolluper interface {
	// Rollup mutates record by adding the hourly counts of partial. A partial
	// whose batch the record already holds yields ErrBatchAlreadyApplied.
	Rollup(record *models.DailyTraffic, partial *events.TrafficPartialEvent) error
}

type dailyTrafficRolluper struct{}

func NewDailyTrafficRolluper() DailyTrafficRolluper {
	return &dailyTrafficRolluper{}
}

func (r *dailyTrafficRolluper) Rollup(record *models.DailyTraffic, partial *events.TrafficPartialEvent) error {
	if record.RestaurantID != partial.RestaurantID {
		return fmt.Errorf("restaurantID mismatch: record=%q, partial=%q", record.RestaurantID, partial.RestaurantID)
	}
	if record.Date != partial.Date {
		return fmt.Errorf("date mismatch: record=%q, partial=%q", record.Date, partial.Date)
	}
	for hour := range partial.CountsByHour {
		if hour < 0 || hour > 23 {
			return fmt.Errorf("hour out of range: %d", hour)
		}
	}
	if record.HasBatch(partial.BatchID) {
		return fmt.Errorf("%w: %s", ErrBatchAlreadyApplied, partial.BatchID)
	}

	if record.CountsByHour == nil {
		record.CountsByHour = make(models.HourlyCounts, len(partial.CountsByHour))
	}
	if record.SamplesByHour == nil {
		record.SamplesByHour = make(models.HourlyCounts, len(partial.CountsByHour))
	}
	for hour, count := range partial.CountsByHour {
		record.CountsByHour[hour] += count
		// partials without a tally stand for one sample per hour
		samples := partial.SamplesByHour[hour]
		if samples < 1 {
			samples = 1
		}
		record.SamplesByHour[hour] += samples
	}
	if partial.BatchID != "" {
		record.AppliedBatchIDs = append(record.AppliedBatchIDs, partial.BatchID)
	}
	return nil
}
