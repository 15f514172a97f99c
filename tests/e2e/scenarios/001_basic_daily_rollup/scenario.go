package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	days        = 14 // Days of history ending today (UTC)
	openHour    = 10
	closeHour   = 22
	hourlyCount = 10 // Visitors per hour per day
)

// ### End - fixed configs

type sample struct {
	Date  string `json:"date"`
	Hour  int    `json:"hour"`
	Count int64  `json:"count"`
}

type batchToSend struct {
	batchIndex int
	jsonData   []byte
	isOriginal bool
}

type report struct {
	Summary struct {
		TotalVisitors             int64    `json:"totalVisitors"`
		AverageDaily              float64  `json:"averageDaily"`
		WeekOverWeekChangePercent *float64 `json:"weekOverWeekChangePercent"`
		WeekOverWeekStatus        string   `json:"weekOverWeekStatus"`
	} `json:"summary"`
	Daily  []json.RawMessage `json:"daily"`
	Hourly []struct {
		Hour         int     `json:"hour"`
		AverageCount float64 `json:"averageCount"`
	} `json:"hourly"`
}

// main runs the e2e scenario: 001_basic_daily_rollup
//
// Sends a uniform two-week history as one batch per (day, half of the day),
// each hour split across two batches so concurrent rollups hit the same daily
// record. Every batch is then replayed to exercise idempotency.
//
// Expected results:
//   - Original batches return 202, replays return 409
//   - The last_14_days report totals days*13*hourlyCount visitors
//   - Average daily is 13*hourlyCount, week-over-week change is 0%
//   - Every hourly point averages hourlyCount
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the restaurant-insights API server
	restaurantID := "bistro-e2e"       // Restaurant to ingest into, use a fresh one per run
	parallel := 4                      // Number of concurrent batch requests to send
	settle := 2 * time.Second          // Time for the consumer to roll up queued events

	today := time.Now().UTC()
	batchesToSend := make([]batchToSend, 0, days*4)
	batchIndex := 0
	for d := days - 1; d >= 0; d-- {
		date := today.AddDate(0, 0, -d).Format("2006-01-02")
		for half := 0; half < 2; half++ {
			samples := make([]sample, 0, closeHour-openHour+1)
			for hour := openHour; hour <= closeHour; hour++ {
				// the two halves sum to hourlyCount
				count := int64(hourlyCount / 2)
				if half == 1 {
					count = hourlyCount - count
				}
				samples = append(samples, sample{Date: date, Hour: hour, Count: count})
			}
			jsonData, err := json.Marshal(samples)
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: Failed to encode batch: %v\n", err)
				os.Exit(1)
			}
			batchIndex++
			batchesToSend = append(batchesToSend,
				batchToSend{batchIndex: batchIndex, jsonData: jsonData, isOriginal: true},
				batchToSend{batchIndex: batchIndex, jsonData: jsonData, isOriginal: false})
		}
	}

	// originals go first so every replay meets an existing batch
	sort.SliceStable(batchesToSend, func(i, j int) bool {
		return batchesToSend[i].isOriginal && !batchesToSend[j].isOriginal
	})

	fmt.Println("Starting e2e scenario: 001_basic_daily_rollup")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("RESTAURANT_ID: %s\n", restaurantID)
	fmt.Printf("BATCHES: %d (%d original)\n", len(batchesToSend), batchIndex)
	fmt.Println()

	var acceptedRequest, conflictedRequest, failedRequest int64
	send := func(batches []batchToSend) {
		workerChan := make(chan struct{}, parallel)
		var wg sync.WaitGroup
		for _, batch := range batches {
			wg.Add(1)
			workerChan <- struct{}{}
			go func(b batchToSend) {
				defer wg.Done()
				defer func() { <-workerChan }()

				statusCode, err := sendBatch(baseURL, restaurantID, b)
				switch {
				case err != nil:
					atomic.AddInt64(&failedRequest, 1)
					fmt.Fprintf(os.Stderr, "ERROR: Batch %d failed: %v\n", b.batchIndex, err)
				case statusCode == http.StatusAccepted:
					atomic.AddInt64(&acceptedRequest, 1)
				case statusCode == http.StatusConflict:
					atomic.AddInt64(&conflictedRequest, 1)
				}
			}(batch)
		}
		wg.Wait()
	}
	send(batchesToSend[:batchIndex])
	send(batchesToSend[batchIndex:])

	fmt.Println("=== Statistics ===")
	fmt.Printf("Accepted request: %d\n", acceptedRequest)
	fmt.Printf("Conflicted request: %d\n", conflictedRequest)
	fmt.Printf("Failed request: %d\n", failedRequest)
	if failedRequest > 0 || acceptedRequest != int64(batchIndex) || conflictedRequest != int64(batchIndex) {
		fmt.Fprintln(os.Stderr, "ERROR: unexpected ingestion outcome")
		os.Exit(1)
	}

	time.Sleep(settle)

	got, err := fetchReport(baseURL, restaurantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}

	hoursPerDay := closeHour - openHour + 1
	var failures []string
	if want := int64(days * hoursPerDay * hourlyCount); got.Summary.TotalVisitors != want {
		failures = append(failures, fmt.Sprintf("totalVisitors=%d, want %d", got.Summary.TotalVisitors, want))
	}
	if want := float64(hoursPerDay * hourlyCount); got.Summary.AverageDaily != want {
		failures = append(failures, fmt.Sprintf("averageDaily=%v, want %v", got.Summary.AverageDaily, want))
	}
	if got.Summary.WeekOverWeekChangePercent == nil || *got.Summary.WeekOverWeekChangePercent != 0 {
		failures = append(failures, fmt.Sprintf("weekOverWeek status=%s, want 0%%", got.Summary.WeekOverWeekStatus))
	}
	if len(got.Daily) != 7 {
		failures = append(failures, fmt.Sprintf("daily points=%d, want 7", len(got.Daily)))
	}
	for _, point := range got.Hourly {
		if point.AverageCount != hourlyCount {
			failures = append(failures, fmt.Sprintf("hour %d average=%v, want %d", point.Hour, point.AverageCount, hourlyCount))
		}
	}

	if len(failures) > 0 {
		for _, f := range failures {
			fmt.Fprintf(os.Stderr, "FAIL: %s\n", f)
		}
		os.Exit(1)
	}
	fmt.Println("Scenario completed successfully")
}

func sendBatch(baseURL, restaurantID string, batch batchToSend) (int, error) {
	// Same key for the original and its replay
	idempotencyKey := fmt.Sprintf("batch-%06d", batch.batchIndex)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/restaurants/"+restaurantID+"/traffic", bytes.NewReader(batch.jsonData))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("idempotency-key", idempotencyKey)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusConflict {
		return resp.StatusCode, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return resp.StatusCode, nil
}

func fetchReport(baseURL, restaurantID string) (*report, error) {
	resp, err := http.Get(baseURL + "/restaurants/" + restaurantID + "/traffic/report?timeframe=last_14_days")
	if err != nil {
		return nil, fmt.Errorf("report request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("report HTTP %d: %s", resp.StatusCode, body)
	}

	var r report
	if err := json.Unmarshal(body, &r); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}
	return &r, nil
}
