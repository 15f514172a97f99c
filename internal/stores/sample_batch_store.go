package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"restaurant-insights/internal/models"
	"restaurant-insights/internal/shared/filestorages"
)

var (
	ErrSampleBatchAlreadyExist = errors.New("sample batch already exists")
)

// SampleBatchStore keeps every accepted batch verbatim. Put is a
// create-if-not-exists, so two requests racing with the same batch ID see
// exactly one success and one ErrSampleBatchAlreadyExist. Delete releases
// the batch ID again, for a batch whose events never made it to the queue.
//
//go:generate mockgen -source=sample_batch_store.go -destination=./mocks/sample_batch_store_mock.go -package=mocks
type SampleBatchStore interface {
	Put(ctx context.Context, batch *models.SampleBatch) error
	Delete(ctx context.Context, restaurantID, batchID string) error
}

type sampleBatchStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewSampleBatchStore(fileStorage filestorages.FileStorage) SampleBatchStore {
	return &sampleBatchStore{fileStorage: fileStorage, dir: "raw-batches"}
}

func (s *sampleBatchStore) Put(ctx context.Context, batch *models.SampleBatch) error {
	jsonData, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("failed to marshal sample batch: %w", err)
	}

	key := s.key(batch.RestaurantID, batch.BatchID)
	_, err = s.fileStorage.Put(ctx, key, bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrSampleBatchAlreadyExist
		}
		return fmt.Errorf("failed to put sample batch: %w", err)
	}
	return nil
}

func (s *sampleBatchStore) Delete(ctx context.Context, restaurantID, batchID string) error {
	if err := s.fileStorage.Delete(ctx, s.key(restaurantID, batchID)); err != nil {
		return fmt.Errorf("failed to delete sample batch: %w", err)
	}
	return nil
}

func (s *sampleBatchStore) key(restaurantID, batchID string) string {
	return fmt.Sprintf("%s/%s/%s.json", s.dir, restaurantID, batchID)
}
