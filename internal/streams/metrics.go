package streams

import (
	"restaurant-insights/internal/shared/metrics"
)

var (
	streamTrafficPartial            = "traffic_partial"
	metricTrafficEventProducedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_published_total",
		},
		[]string{"stream_id"},
	)

	metricTrafficEventConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "event_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
