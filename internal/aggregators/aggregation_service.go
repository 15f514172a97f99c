package aggregators

import (
	"context"
	"errors"

	"restaurant-insights/internal/events"
	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/shared/svcerrors"
	"restaurant-insights/internal/stores"
)

// AggregationService folds TrafficPartialEvents into the stored DailyTraffic
// records. It is not safe to call concurrently for the same restaurant and
// date; the partitioned queue guarantees a single caller per record.
//
//go:generate mockgen -source=aggregation_service.go -destination=./mocks/aggregation_service_mock.go -package=mocks
type AggregationService interface {
	Aggregate(ctx context.Context, event *events.TrafficPartialEvent) *svcerrors.ServiceError
}

type aggregationService struct {
	rolluper          DailyTrafficRolluper
	dailyTrafficStore stores.DailyTrafficStore
}

func NewAggregationService(rolluper DailyTrafficRolluper, dailyTrafficStore stores.DailyTrafficStore) AggregationService {
	return &aggregationService{rolluper: rolluper, dailyTrafficStore: dailyTrafficStore}
}

func (s *aggregationService) Aggregate(ctx context.Context, event *events.TrafficPartialEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldBatchID, event.BatchID).
		Msgf("started aggregating traffic event for restaurant ID: %s and date: %s", event.RestaurantID, event.Date)

	record, err := s.dailyTrafficStore.Get(ctx, event.RestaurantID, event.Date)
	if err != nil {
		return errInternalDailyTrafficStoreFailed(err)
	}
	isNewRecord := record.IsNew()

	if err := s.rolluper.Rollup(record, event); err != nil {
		if errors.Is(err, ErrBatchAlreadyApplied) {
			// redelivery after a retried ingest
			logger.Info().
				Str(loggers.FieldBatchID, event.BatchID).
				Str(loggers.FieldDate, event.Date).
				Msg("skipped traffic event already applied")
			return nil
		}
		return errInternalDailyTrafficRollupFailed(err)
	}
	if err := s.dailyTrafficStore.Upsert(ctx, record); err != nil {
		return errInternalDailyTrafficStoreFailed(err)
	}

	metricVisitsAggregatedTotal.WithLabelValues(record.Weekday()).Add(float64(event.CountsByHour.Total()))
	if isNewRecord {
		metricDailyTrafficCreatedTotal.WithLabelValues(record.Weekday()).Inc()
	}
	return nil
}
