package models

// HourlyCounts maps an hour of day to the visits counted in it.
type HourlyCounts map[int]int64

// Total sums every hour.
func (c HourlyCounts) Total() int64 {
	var total int64
	for _, v := range c {
		total += v
	}
	return total
}

// BatchSummary reduces a SampleBatch to per-date hourly counts, so a batch
// spanning many days fans out into one partial per date. Duplicate
// (date, hour) pairs inside a batch are summed; SamplesByDate keeps how many
// samples went into each sum.
//
// Example JSON:
//
//	{
//	  "batchId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "restaurantId": "bistro-12",
//	  "byDate": {
//	    "2025-12-27": {"12": 40, "13": 38},
//	    "2025-12-28": {"18": 55}
//	  },
//	  "samplesByDate": {
//	    "2025-12-27": {"12": 1, "13": 1},
//	    "2025-12-28": {"18": 2}
//	  }
//	}
type BatchSummary struct {
	BatchID       string                  `json:"batchId"`
	RestaurantID  string                  `json:"restaurantId"`
	ByDate        map[string]HourlyCounts `json:"byDate"`
	SamplesByDate map[string]HourlyCounts `json:"samplesByDate"`
}
