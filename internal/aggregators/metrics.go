package aggregators

import (
	"restaurant-insights/internal/shared/metrics"
)

var (
	// metricDailyTrafficCreatedTotal counts daily records created by their
	// first event. Later events for the same restaurant and date update the
	// record and are not counted here.
	metricDailyTrafficCreatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "daily_traffic_created_total",
		},
		[]string{"weekday"},
	)

	// metricVisitsAggregatedTotal sums the visits rolled up, by weekday of the record.
	metricVisitsAggregatedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "visits_aggregated_total",
		},
		[]string{"weekday"},
	)
)
