package models

// SampleBatch is one ingestion request, stored verbatim for idempotency.
type SampleBatch struct {
	BatchID      string   `json:"batchId"`
	RestaurantID string   `json:"restaurantId"`
	Samples      []Sample `json:"samples"`
}
