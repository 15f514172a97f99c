package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"restaurant-insights/internal/models"
	"restaurant-insights/internal/shared/filestorages"
)

//go:generate mockgen -source=daily_traffic_store.go -destination=./mocks/daily_traffic_store_mock.go -package=mocks
type DailyTrafficStore interface {
	Upsert(ctx context.Context, record *models.DailyTraffic) error
	// Get returns an empty record when none is stored yet.
	Get(ctx context.Context, restaurantID, date string) (*models.DailyTraffic, error)
	// ListRange returns the stored records of restaurantID whose date falls in
	// [from, to], ascending by date. Days without a record are skipped.
	ListRange(ctx context.Context, restaurantID string, from, to time.Time) ([]*models.DailyTraffic, error)
}

type dailyTrafficStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewDailyTrafficStore(fileStorage filestorages.FileStorage) DailyTrafficStore {
	return &dailyTrafficStore{fileStorage: fileStorage, dir: "daily-traffic"}
}

func (s *dailyTrafficStore) Upsert(ctx context.Context, record *models.DailyTraffic) error {
	jsonData, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal daily traffic: %w", err)
	}
	key := s.getKey(record.RestaurantID, record.Date)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put daily traffic: %w", err)
	}
	return nil
}

func (s *dailyTrafficStore) Get(ctx context.Context, restaurantID, date string) (*models.DailyTraffic, error) {
	record, err := s.read(ctx, s.getKey(restaurantID, date))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return models.NewEmptyDailyTraffic(restaurantID, date), nil
		}
		return nil, err
	}
	return record, nil
}

func (s *dailyTrafficStore) ListRange(ctx context.Context, restaurantID string, from, to time.Time) ([]*models.DailyTraffic, error) {
	keys, err := s.fileStorage.List(ctx, path.Join(s.dir, restaurantID))
	if err != nil {
		return nil, fmt.Errorf("failed to list daily traffic: %w", err)
	}

	records := make([]*models.DailyTraffic, 0, len(keys))
	for _, key := range keys {
		date := strings.TrimSuffix(path.Base(key), ".json")
		if !models.NewEmptyDailyTraffic(restaurantID, date).WithinRange(from, to) {
			continue
		}
		record, err := s.read(ctx, key)
		if err != nil {
			// deleted between List and Get
			if errors.Is(err, filestorages.ErrFileNotFound) {
				continue
			}
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *dailyTrafficStore) read(ctx context.Context, key string) (*models.DailyTraffic, error) {
	readCloser, err := s.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily traffic: %w", err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, fmt.Errorf("failed to read daily traffic: %w", err)
	}
	var record models.DailyTraffic
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal daily traffic: %w", err)
	}
	if record.CountsByHour == nil {
		record.CountsByHour = make(models.HourlyCounts)
	}
	return &record, nil
}

func (s *dailyTrafficStore) getKey(restaurantID, date string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, restaurantID, date)
}
