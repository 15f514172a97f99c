// Package sources provides the samples a traffic report is computed from.
package sources

import (
	"context"
	"fmt"
	"time"

	"restaurant-insights/internal/models"
	"restaurant-insights/internal/stores"
)

const (
	KindStore     = "store"
	KindSynthetic = "synthetic"
)

//go:generate mockgen -source=sample_source.go -destination=./mocks/sample_source_mock.go -package=mocks
type SampleSource interface {
	// Samples returns every sample of restaurantID dated within [from, to]
	// by calendar day. An empty result is not an error.
	Samples(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Sample, error)
}

// New picks the SampleSource named by kind.
func New(kind string, hours models.OperatingHours, dailyTrafficStore stores.DailyTrafficStore) (SampleSource, error) {
	switch kind {
	case KindStore:
		return NewStoreSource(dailyTrafficStore), nil
	case KindSynthetic:
		return NewSyntheticSource(hours), nil
	default:
		return nil, fmt.Errorf("unknown sample source: %q", kind)
	}
}

type storeSource struct {
	dailyTrafficStore stores.DailyTrafficStore
}

// NewStoreSource reads samples back from the rolled-up daily records.
func NewStoreSource(dailyTrafficStore stores.DailyTrafficStore) SampleSource {
	return &storeSource{dailyTrafficStore: dailyTrafficStore}
}

func (s *storeSource) Samples(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Sample, error) {
	records, err := s.dailyTrafficStore.ListRange(ctx, restaurantID, from, to)
	if err != nil {
		return nil, err
	}

	var samples []models.Sample
	for _, record := range records {
		samples = append(samples, record.Samples()...)
	}
	return samples, nil
}
