package ingestors

import (
	"restaurant-insights/internal/shared/metrics"
)

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricSamplesIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "samples_ingested_total",
		},
		[]string{},
	)

	// metricOutOfWindowSamplesTotal counts accepted samples whose hour falls
	// outside the configured operating hours.
	metricOutOfWindowSamplesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "out_of_window_samples_total",
		},
		[]string{"hour"},
	)
)
