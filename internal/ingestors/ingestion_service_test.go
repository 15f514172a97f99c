package ingestors_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"restaurant-insights/internal/ingestors"
	ingestormocks "restaurant-insights/internal/ingestors/mocks"
	"restaurant-insights/internal/models"
	"restaurant-insights/internal/shared/svcerrors"
	"restaurant-insights/internal/shared/ulid"
	"restaurant-insights/internal/stores"
	storemocks "restaurant-insights/internal/stores/mocks"
	streammocks "restaurant-insights/internal/streams/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const validJSON = `[{"date":"2025-12-28","hour":12,"count":40},{"date":"2025-12-27","hour":18,"count":0}]`

type testDeps struct {
	batchSummarizer *ingestormocks.MockBatchSummarizer
	batchStore      *storemocks.MockSampleBatchStore
	eventProducer   *streammocks.MockTrafficEventProducer
	service         ingestors.IngestionService
}

func newTestDeps(t *testing.T) *testDeps {
	ctrl := gomock.NewController(t)
	d := &testDeps{
		batchSummarizer: ingestormocks.NewMockBatchSummarizer(ctrl),
		batchStore:      storemocks.NewMockSampleBatchStore(ctrl),
		eventProducer:   streammocks.NewMockTrafficEventProducer(ctrl),
	}
	d.service = ingestors.NewIngestionService(models.DefaultOperatingHours, d.batchSummarizer, d.batchStore, d.eventProducer)
	return d
}

func requireServiceError(t *testing.T, err error, code, category string) *svcerrors.ServiceError {
	t.Helper()
	require.Error(t, err, "expected error")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, code, svcErr.Code)
	assert.Equal(t, category, svcErr.Category)
	return svcErr
}

func TestIngestBatch_ErrValidationFailed_InvalidFormat(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	result, err := d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/xml", strings.NewReader(validJSON))

	requireServiceError(t, err, "ING_1000", "invalid_argument")
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_ErrValidationFailed_InvalidRestaurantID(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	for _, restaurantID := range []string{"", "../etc", "bistro 12", strings.Repeat("a", 65)} {
		_, err := d.service.IngestBatch(context.Background(), restaurantID, "key1", "application/json", strings.NewReader(validJSON))
		requireServiceError(t, err, "ING_1000", "invalid_argument")
	}
}

func TestIngestBatch_ErrValidationFailed_InvalidIdempotencyKey(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	_, err := d.service.IngestBatch(context.Background(), "bistro-12", "../../x", "application/json", strings.NewReader(validJSON))
	requireServiceError(t, err, "ING_1000", "invalid_argument")
}

func TestIngestBatch_ErrValidationFailed_BatchTooLarge(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	body := bytes.NewReader(make([]byte, 2*1024*1024+1))

	_, err := d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", body)

	svcErr := requireServiceError(t, err, "ING_1000", "invalid_argument")
	assert.Equal(t, "batch too large: must be <= 2MB", svcErr.Message)
}

func TestIngestBatch_ErrValidationFailed_TooManySamples(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	items := make([]string, 10001)
	for i := range items {
		items[i] = `{"date":"2025-12-28","hour":12,"count":1}`
	}
	body := strings.NewReader("[" + strings.Join(items, ",") + "]")

	_, err := d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", body)

	svcErr := requireServiceError(t, err, "ING_1000", "invalid_argument")
	assert.Equal(t, "too many samples: must be <= 10000", svcErr.Message)
}

func TestIngestBatch_ErrValidationFailed_SampleValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		json    string
		message string
	}{
		{name: "nil body"},
		{name: "not json", json: `{invalid json}`},
		{name: "object instead of array", json: `{"date":"2025-12-28","hour":12,"count":1}`},
		{name: "empty array", json: `[]`, message: "samples cannot be empty"},
		{name: "missing date", json: `[{"hour":12,"count":1}]`, message: "invalid samples: samples[0].date (required)"},
		{name: "bad date", json: `[{"date":"28/12/2025","hour":12,"count":1}]`, message: "invalid samples: samples[0].date (datetime=2006-01-02)"},
		{name: "missing hour", json: `[{"date":"2025-12-28","count":1}]`, message: "invalid samples: samples[0].hour (required)"},
		{name: "hour too large", json: `[{"date":"2025-12-28","hour":12,"count":1},{"date":"2025-12-28","hour":24,"count":1}]`, message: "invalid samples: samples[1].hour (max=23)"},
		{name: "negative hour", json: `[{"date":"2025-12-28","hour":-1,"count":1}]`, message: "invalid samples: samples[0].hour (min=0)"},
		{name: "missing count", json: `[{"date":"2025-12-28","hour":12}]`, message: "invalid samples: samples[0].count (required)"},
		{name: "negative count", json: `[{"date":"2025-12-28","hour":12,"count":-3}]`, message: "invalid samples: samples[0].count (min=0)"},
		{name: "fractional count", json: `[{"date":"2025-12-28","hour":12,"count":1.5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDeps(t)
			var result *ingestors.IngestResult
			var err error
			if tt.json == "" {
				result, err = d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", nil)
			} else {
				result, err = d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", strings.NewReader(tt.json))
			}

			svcErr := requireServiceError(t, err, "ING_1000", "invalid_argument")
			if tt.message != "" {
				assert.Equal(t, tt.message, svcErr.Message)
			}
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestBatch_ErrBatchPutFailed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		putError         error
		expectedCode     string
		expectedCategory string
	}{
		{
			name:             "sample batch already exists",
			putError:         stores.ErrSampleBatchAlreadyExist,
			expectedCode:     "ING_1001",
			expectedCategory: "resource_conflict",
		},
		{
			name:             "sample batch put failed",
			putError:         assert.AnError,
			expectedCode:     "ING_9000",
			expectedCategory: "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newTestDeps(t)
			d.batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(tt.putError)

			result, err := d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", strings.NewReader(validJSON))

			requireServiceError(t, err, tt.expectedCode, tt.expectedCategory)
			assert.Nil(t, result, "expected nil result on error")
		})
	}
}

func TestIngestBatch_ErrTrafficPublishFailed(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	d.batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	d.batchSummarizer.EXPECT().Summarize(gomock.Any()).Return(&models.BatchSummary{})
	d.eventProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(assert.AnError)
	d.batchStore.EXPECT().Delete(gomock.Any(), "bistro-12", "key1").Return(nil)

	result, err := d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", strings.NewReader(validJSON))

	requireServiceError(t, err, "ING_9001", "internal")
	assert.Nil(t, result, "expected nil result on error")
}

func TestIngestBatch_ErrTrafficPublishFailed_ReleaseUsesLiveContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())

	d := newTestDeps(t)
	d.batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	d.batchSummarizer.EXPECT().Summarize(gomock.Any()).Return(&models.BatchSummary{})
	d.eventProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, summary *models.BatchSummary) error {
			cancel()
			return ctx.Err()
		})
	d.batchStore.EXPECT().Delete(gomock.Any(), "bistro-12", "key1").
		DoAndReturn(func(ctx context.Context, restaurantID, batchID string) error {
			assert.NoError(t, ctx.Err(), "release must not inherit the cancelled request")
			return errors.New("read-only filesystem")
		})

	result, err := d.service.IngestBatch(ctx, "bistro-12", "key1", "application/json", strings.NewReader(validJSON))

	// a failed release is logged, the publish error is what the caller sees
	svcErr := requireServiceError(t, err, "ING_9001", "internal")
	assert.ErrorIs(t, svcErr, context.Canceled)
	assert.Nil(t, result)
}

func TestIngestBatch_Success(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)

	var storedBatch *models.SampleBatch
	var publishedSummary *models.BatchSummary

	d.batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, batch *models.SampleBatch) { storedBatch = batch }).
		Return(nil)
	d.batchSummarizer.EXPECT().Summarize(gomock.Any()).
		DoAndReturn(ingestors.NewBatchSummarizer().Summarize)
	d.eventProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		Do(func(ctx context.Context, summary *models.BatchSummary) { publishedSummary = summary }).
		Return(nil)

	result, err := d.service.IngestBatch(context.Background(), "bistro-12", " key1 ", "application/json; charset=utf-8", strings.NewReader(validJSON))

	require.NoError(t, err)
	assert.Equal(t, &ingestors.IngestResult{
		BatchID:     "key1",
		SampleCount: 2,
		Dates:       []string{"2025-12-27", "2025-12-28"},
	}, result)

	require.NotNil(t, storedBatch)
	assert.Equal(t, "key1", storedBatch.BatchID)
	assert.Equal(t, "bistro-12", storedBatch.RestaurantID)
	assert.Equal(t, []models.Sample{
		{Date: "2025-12-28", Hour: 12, Count: 40, DayOfWeek: "Sunday"},
		{Date: "2025-12-27", Hour: 18, Count: 0, DayOfWeek: "Saturday"},
	}, storedBatch.Samples)

	require.NotNil(t, publishedSummary)
	assert.Equal(t, "bistro-12", publishedSummary.RestaurantID)
	assert.Equal(t, models.HourlyCounts{12: 40}, publishedSummary.ByDate["2025-12-28"])
}

func TestIngestBatch_Success_GeneratesBatchID(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	d.batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	d.batchSummarizer.EXPECT().Summarize(gomock.Any()).Return(&models.BatchSummary{})
	d.eventProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	result, err := d.service.IngestBatch(context.Background(), "bistro-12", "", "application/json", strings.NewReader(validJSON))

	require.NoError(t, err)
	assert.True(t, ulid.IsULID(result.BatchID), "generated batch ID should be a ULID")
}

func TestIngestBatch_Success_AcceptsOutOfWindowHours(t *testing.T) {
	t.Parallel()

	d := newTestDeps(t)
	d.batchStore.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)
	d.batchSummarizer.EXPECT().Summarize(gomock.Any()).Return(&models.BatchSummary{})
	d.eventProducer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

	body := fmt.Sprintf(`[{"date":"2025-12-28","hour":%d,"count":3},{"date":"2025-12-28","hour":%d,"count":4}]`, 0, 23)
	result, err := d.service.IngestBatch(context.Background(), "bistro-12", "key1", "application/json", strings.NewReader(body))

	require.NoError(t, err)
	assert.Equal(t, 2, result.SampleCount)
}
