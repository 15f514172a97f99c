package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"sync"

	"restaurant-insights/internal/aggregators"
	"restaurant-insights/internal/events"
	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/shared/metrics"
	"restaurant-insights/internal/shared/svcerrors"
	"restaurant-insights/internal/shared/ulid"
)

//go:generate mockgen -source=traffic_event_consumer.go -destination=./mocks/traffic_event_consumer_mock.go -package=mocks
type TrafficEventConsumer interface {
	Start(ctx context.Context)
	Drain(ctx context.Context) error
	Stop()
}

type trafficEventConsumer struct {
	queue              *PartitionedQueue[events.TrafficPartialEvent]
	aggregationService aggregators.AggregationService

	wg sync.WaitGroup

	stopOnce sync.Once
	stopCh   chan struct{}

	logger loggers.Logger
}

func NewTrafficEventConsumer(queue *PartitionedQueue[events.TrafficPartialEvent], aggregationService aggregators.AggregationService, logger loggers.Logger) TrafficEventConsumer {
	return &trafficEventConsumer{
		queue:              queue,
		aggregationService: aggregationService,
		stopCh:             make(chan struct{}),
		logger:             logger,
	}
}

// Start spawns one worker per partition. A worker exits when ctx is done,
// Stop is called, or its partition is closed and drained.
func (consumer *trafficEventConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		ch := consumer.queue.Partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

// Drain waits for the workers to empty their partitions. The queue must be
// closed first, otherwise Drain only returns when ctx is done. Events still
// buffered when ctx expires are dropped by the following Stop.
func (consumer *trafficEventConsumer) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		consumer.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop signals the workers and waits for them to return.
func (consumer *trafficEventConsumer) Stop() {
	consumer.stopOnce.Do(func() { close(consumer.stopCh) })
	consumer.wg.Wait()
}

func (consumer *trafficEventConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan events.TrafficPartialEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-consumer.stopCh:
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(ctx, partitionIndex, &event)
		}
	}
}

func (consumer *trafficEventConsumer) handle(ctx context.Context, partitionIndex int, event *events.TrafficPartialEvent) {
	ctx = consumer.logger.With().
		Str(loggers.FieldPartitionId, strconv.Itoa(partitionIndex)).
		Str(loggers.FieldRequestID, ulid.NewULID()).
		Str(loggers.FieldRestaurantID, event.RestaurantID).
		Str(loggers.FieldDate, event.Date).
		Logger().WithContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			loggers.Ctx(ctx).Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msg("consumer panic recovered")

			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			metricTrafficEventConsumedTotal.WithLabelValues(streamTrafficPartial, svcErr.Code).Inc()
		}
	}()

	if svcErr := consumer.aggregationService.Aggregate(ctx, event); svcErr != nil {
		metricTrafficEventConsumedTotal.WithLabelValues(streamTrafficPartial, svcErr.Code).Inc()
		return
	}
	metricTrafficEventConsumedTotal.WithLabelValues(streamTrafficPartial, metrics.ValueNoError).Inc()
}
