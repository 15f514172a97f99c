package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"restaurant-insights/internal/models"
	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/shared/metrics"
	"restaurant-insights/internal/shared/svcerrors"
	"restaurant-insights/internal/shared/validators"
	"restaurant-insights/internal/sources"
	"restaurant-insights/internal/traffic"
)

// Clock returns the current time. Reports are evaluated against it so tests
// can pin "today".
type Clock func() time.Time

//go:generate mockgen -source=report_service.go -destination=./mocks/report_service_mock.go -package=mocks
type ReportService interface {
	// BuildReport computes the foot-traffic report of restaurantID over the
	// named timeframe ending today. An empty timeframe selects the default.
	BuildReport(ctx context.Context, restaurantID string, timeframe string) (*models.TrafficReport, error)
}

type reportService struct {
	aggregator       traffic.Aggregator
	sampleSource     sources.SampleSource
	defaultTimeframe models.Timeframe
	clock            Clock
	validate         *validators.Validate
}

func NewReportService(aggregator traffic.Aggregator, sampleSource sources.SampleSource, defaultTimeframe models.Timeframe, clock Clock) ReportService {
	if clock == nil {
		clock = time.Now
	}
	return &reportService{
		aggregator:       aggregator,
		sampleSource:     sampleSource,
		defaultTimeframe: defaultTimeframe,
		clock:            clock,
		validate:         validators.New(),
	}
}

func (s *reportService) BuildReport(ctx context.Context, restaurantID string, timeframe string) (*models.TrafficReport, error) {
	logger := loggers.Ctx(ctx)

	tf := s.defaultTimeframe
	if raw := strings.TrimSpace(timeframe); raw != "" {
		parsed, err := models.ParseTimeframe(raw)
		if err != nil {
			svcErr := errInvalidTimeframe(raw, err)
			metricReportBuiltTotal.WithLabelValues("invalid", svcErr.Code).Inc()
			return nil, svcErr
		}
		tf = parsed
	}

	report, svcErr := s.buildReport(ctx, restaurantID, tf)
	if svcErr != nil {
		metricReportBuiltTotal.WithLabelValues(string(tf), svcErr.Code).Inc()
		return nil, svcErr
	}
	metricReportBuiltTotal.WithLabelValues(string(tf), metrics.ValueNoError).Inc()

	logger.Debug().
		Str(loggers.FieldRestaurantID, restaurantID).
		Str(loggers.FieldTimeframe, string(tf)).
		Int64("total_visitors", report.Summary.TotalVisitors).
		Msg("traffic report built")
	return report, nil
}

func (s *reportService) buildReport(ctx context.Context, restaurantID string, tf models.Timeframe) (*models.TrafficReport, *svcerrors.ServiceError) {
	if err := s.validate.Var(restaurantID, "required,"+validators.TagResourceID); err != nil {
		return nil, errInvalidRestaurantID(err)
	}

	now := s.clock().UTC()
	from, to := tf.Range(now)

	samples, err := s.sampleSource.Samples(ctx, restaurantID, from, to)
	if err != nil {
		return nil, errInternalSampleSourceFailed(err)
	}
	metricReportSamples.WithLabelValues(string(tf)).Observe(float64(len(samples)))

	summary, err := s.aggregator.Summarize(samples)
	if err != nil {
		if errors.Is(err, traffic.ErrEmptyInput) {
			return nil, errNoTrafficData(err)
		}
		return nil, svcerrors.NewInternalErrorUndefined(err)
	}

	return &models.TrafficReport{
		RestaurantID: restaurantID,
		Timeframe:    tf,
		From:         models.FormatDate(from),
		To:           models.FormatDate(to),
		GeneratedAt:  now,
		Summary:      summary,
		Daily:        s.aggregator.DailySeries(samples),
		Hourly:       s.aggregator.HourlySeries(samples, now),
	}, nil
}
