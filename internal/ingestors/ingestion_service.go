package ingestors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"restaurant-insights/internal/models"
	"restaurant-insights/internal/shared/loggers"
	"restaurant-insights/internal/shared/metrics"
	"restaurant-insights/internal/shared/svcerrors"
	"restaurant-insights/internal/shared/ulid"
	"restaurant-insights/internal/shared/validators"
	"restaurant-insights/internal/stores"
	"restaurant-insights/internal/streams"
)

const (
	maxBatchBytes   = 2 * 1024 * 1024
	maxBatchSamples = 10000
)

const (
	FormatJSON = "json"
)

// IngestResult represents the result of a batch ingestion operation.
type IngestResult struct {
	BatchID     string   `json:"batchId"`
	SampleCount int      `json:"sampleCount"`
	Dates       []string `json:"dates"`
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch validates and stores a batch of hourly samples for one
	// restaurant, then hands it to the rollup stream. The idempotency key
	// becomes the batch ID; a ULID is generated when it is empty.
	IngestBatch(ctx context.Context, restaurantID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error)
}

type sampleRequest struct {
	Date  string `json:"date" validate:"required,datetime=2006-01-02"`
	Hour  *int   `json:"hour" validate:"required,min=0,max=23"`
	Count *int64 `json:"count" validate:"required,min=0"`
}

type batchRequest struct {
	Samples []sampleRequest `json:"samples" validate:"dive"`
}

type ingestionService struct {
	hours           models.OperatingHours
	validate        *validators.Validate
	batchSummarizer BatchSummarizer
	batchStore      stores.SampleBatchStore
	eventProducer   streams.TrafficEventProducer
}

func NewIngestionService(hours models.OperatingHours, batchSummarizer BatchSummarizer, batchStore stores.SampleBatchStore, eventProducer streams.TrafficEventProducer) IngestionService {
	validate := validators.New()
	validate.RegisterTagNameFunc(jsonFieldName)

	return &ingestionService{
		hours:           hours,
		validate:        validate,
		batchSummarizer: batchSummarizer,
		batchStore:      batchStore,
		eventProducer:   eventProducer,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, restaurantID string, idempotencyKey string, format string, r io.Reader) (*IngestResult, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started ingesting batch with restaurant ID: %s, idempotency key: %s, format: %s", restaurantID, idempotencyKey, format)

	batchID := strings.TrimSpace(idempotencyKey)
	if batchID == "" {
		batchID = ulid.NewULID()
	}

	samples, err := s.validateSampleBatch(restaurantID, batchID, format, r)
	if err != nil {
		metricBatchIngestedTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}

	batch := &models.SampleBatch{
		BatchID:      batchID,
		RestaurantID: restaurantID,
		Samples:      samples,
	}

	if err := s.batchStore.Put(ctx, batch); err != nil {
		if errors.Is(err, stores.ErrSampleBatchAlreadyExist) {
			svcError := errSampleBatchAlreadyProcessed(err)
			metricBatchIngestedTotal.WithLabelValues(svcError.Code).Inc()
			return nil, svcError
		}
		return nil, errInternalSampleBatchStoreFailed(err)
	}

	summary := s.batchSummarizer.Summarize(batch)

	if err := s.eventProducer.Produce(ctx, summary); err != nil {
		s.releaseBatch(ctx, batch)
		return nil, errInternalTrafficPublisherFailed(err)
	}

	s.recordSamples(samples)
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()

	dates := make([]string, 0, len(summary.ByDate))
	for date := range summary.ByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	logger.Info().
		Str(loggers.FieldRestaurantID, restaurantID).
		Str(loggers.FieldBatchID, batchID).
		Int("sample_count", len(samples)).
		Msg("sample batch accepted")

	return &IngestResult{
		BatchID:     batchID,
		SampleCount: len(samples),
		Dates:       dates,
	}, nil
}

// releaseBatch deletes a stored batch whose events did not all reach the
// queue, so a retry with the same idempotency key is accepted instead of
// answered with a conflict. Dates that were already published are skipped by
// the rollup when the retry republishes them.
func (s *ingestionService) releaseBatch(ctx context.Context, batch *models.SampleBatch) {
	// the request ctx is usually the reason publishing failed
	if err := s.batchStore.Delete(context.WithoutCancel(ctx), batch.RestaurantID, batch.BatchID); err != nil {
		loggers.Ctx(ctx).Error().
			Err(err).
			Str(loggers.FieldRestaurantID, batch.RestaurantID).
			Str(loggers.FieldBatchID, batch.BatchID).
			Msg("failed to release sample batch after publish failure")
	}
}

func (s *ingestionService) recordSamples(samples []models.Sample) {
	metricSamplesIngestedTotal.WithLabelValues().Add(float64(len(samples)))
	for _, sample := range samples {
		if !s.hours.Contains(sample.Hour) {
			metricOutOfWindowSamplesTotal.WithLabelValues(strconv.Itoa(sample.Hour)).Inc()
		}
	}
}

func (s *ingestionService) validateSampleBatch(restaurantID, batchID, format string, r io.Reader) ([]models.Sample, *svcerrors.ServiceError) {
	if err := s.validate.Var(restaurantID, "required,"+validators.TagResourceID); err != nil {
		return nil, errValidationFailed("restaurantID is required and must match [A-Za-z0-9_-]{1,64}", nil)
	}
	if err := s.validate.Var(batchID, validators.TagResourceID); err != nil {
		return nil, errValidationFailed("idempotency key must match [A-Za-z0-9_-]{1,64}", nil)
	}

	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}

	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errValidationFailed("batch too large: must be <= 2MB", nil)
	}

	var req batchRequest
	if err := json.Unmarshal(buf, &req.Samples); err != nil {
		return nil, errValidationFailed("invalid json: expected an array of {date, hour, count}", err)
	}
	if len(req.Samples) == 0 {
		return nil, errValidationFailed("samples cannot be empty", nil)
	}
	if len(req.Samples) > maxBatchSamples {
		return nil, errValidationFailed(fmt.Sprintf("too many samples: must be <= %d", maxBatchSamples), nil)
	}

	if err := s.validate.Struct(&req); err != nil {
		return nil, errValidationFailed("invalid samples: "+validators.Describe(err, samplePath), err)
	}

	samples := make([]models.Sample, 0, len(req.Samples))
	for i, item := range req.Samples {
		sample, err := models.NewSample(item.Date, *item.Hour, *item.Count)
		if err != nil {
			return nil, errValidationFailed(fmt.Sprintf("samples[%d].date: %s", i, err.Error()), err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// samplePath turns "batchRequest.samples[3].hour" into "samples[3].hour".
func samplePath(e validators.FieldError) string {
	ns := e.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
