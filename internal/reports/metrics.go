package reports

import (
	"restaurant-insights/internal/shared/metrics"
)

var (
	metricReportBuiltTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_built_total",
		},
		[]string{"timeframe", metrics.FieldErrorCode},
	)

	metricReportSamples = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "report_samples",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500},
		},
		[]string{"timeframe"},
	)
)
