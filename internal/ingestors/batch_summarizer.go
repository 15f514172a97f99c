package ingestors

import (
	"restaurant-insights/internal/models"
)

//go:generate mockgen -source=batch_summarizer.go -destination=./mocks/batch_summarizer_mock.go -package=mocks
type BatchSummarizer interface {
	Summarize(batch *models.SampleBatch) *models.BatchSummary
}

type batchSummarizer struct{}

func NewBatchSummarizer() BatchSummarizer {
	return &batchSummarizer{}
}

// Summarize groups the samples of batch by date and sums counts per hour.
func (s *batchSummarizer) Summarize(batch *models.SampleBatch) *models.BatchSummary {
	byDate := make(map[string]models.HourlyCounts)
	samplesByDate := make(map[string]models.HourlyCounts)
	for _, sample := range batch.Samples {
		counts, exists := byDate[sample.Date]
		if !exists {
			counts = make(models.HourlyCounts)
			byDate[sample.Date] = counts
			samplesByDate[sample.Date] = make(models.HourlyCounts)
		}
		counts[sample.Hour] += sample.Count
		samplesByDate[sample.Date][sample.Hour]++
	}

	return &models.BatchSummary{
		BatchID:       batch.BatchID,
		RestaurantID:  batch.RestaurantID,
		ByDate:        byDate,
		SamplesByDate: samplesByDate,
	}
}
