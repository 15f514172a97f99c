package streams

import (
	"context"
	"sort"

	"restaurant-insights/internal/events"
	"restaurant-insights/internal/models"
)

// TrafficEventProducer splits a BatchSummary into one TrafficPartialEvent per
// date and publishes them to the partitioned queue.
//
// The partition key is the identity of the daily record an event updates,
// "<restaurantID>/<date>". Every event for one record therefore reaches the
// same partition worker, which applies them one at a time; different records
// spread over the partitions and roll up in parallel. No locking is needed
// around the read-merge-write of a record.
//
//go:generate mockgen -source=traffic_event_producer.go -destination=./mocks/traffic_event_producer_mock.go -package=mocks
type TrafficEventProducer interface {
	Produce(ctx context.Context, summary *models.BatchSummary) error
}

type trafficEventProducer struct {
	queue *PartitionedQueue[events.TrafficPartialEvent]
}

func NewTrafficEventProducer(queue *PartitionedQueue[events.TrafficPartialEvent]) TrafficEventProducer {
	return &trafficEventProducer{queue: queue}
}

func (producer *trafficEventProducer) Produce(ctx context.Context, summary *models.BatchSummary) error {
	dates := make([]string, 0, len(summary.ByDate))
	for date := range summary.ByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	for _, date := range dates {
		event := events.TrafficPartialEvent{
			RestaurantID:  summary.RestaurantID,
			BatchID:       summary.BatchID,
			Date:          date,
			CountsByHour:  summary.ByDate[date],
			SamplesByHour: summary.SamplesByDate[date],
		}
		if err := producer.queue.Publish(ctx, event.PartitionKey(), event); err != nil {
			return err
		}
		metricTrafficEventProducedTotal.WithLabelValues(streamTrafficPartial).Inc()
	}
	return nil
}
