package events

import "restaurant-insights/internal/models"

// TrafficPartialEvent carries the hourly counts one ingested batch contributed
// to a single restaurant and date. Events are produced after the raw batch is
// stored and are merged by the aggregation service into the DailyTraffic
// record for the same restaurant and date.
//
// Example JSON:
//
//	{
//	  "restaurantId": "bistro-12",
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "date": "2025-12-28",
//	  "countsByHour": {"12": 40, "13": 38, "18": 55},
//	  "samplesByHour": {"12": 1, "13": 1, "18": 2}
//	}
//
// A batch covering three dates fans out into three events, one per date.
// BatchID is what makes redelivery of the same event a no-op on the record.
type TrafficPartialEvent struct {
	RestaurantID  string              `json:"restaurantId"`
	BatchID       string              `json:"batchId"`
	Date          string              `json:"date"`
	CountsByHour  models.HourlyCounts `json:"countsByHour"`
	SamplesByHour models.HourlyCounts `json:"samplesByHour"`
}

// PartitionKey routes every event of one daily record to the same partition,
// so a record only ever has one writer.
func (e *TrafficPartialEvent) PartitionKey() string {
	return e.RestaurantID + "/" + e.Date
}
