package sources

import (
	"context"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"restaurant-insights/internal/models"
)

// Demo traffic profile: a base rate per hour lifted on weekends and around
// lunch and dinner, with +/-30% jitter.
const (
	syntheticBase       = 15
	syntheticFriSat     = 10
	syntheticSunday     = 5
	syntheticLunch      = 20
	syntheticDinner     = 25
	syntheticJitterMin  = 0.7
	syntheticJitterSpan = 0.6
)

type syntheticSource struct {
	hours models.OperatingHours
}

// NewSyntheticSource generates demo traffic for every operating hour of
// every day in range. Output is a pure function of restaurant and date, so a
// report over the same range is stable across calls and processes.
func NewSyntheticSource(hours models.OperatingHours) SampleSource {
	return &syntheticSource{hours: hours}
}

func (s *syntheticSource) Samples(ctx context.Context, restaurantID string, from, to time.Time) ([]models.Sample, error) {
	first := models.TruncateDay(from)
	last := models.TruncateDay(to)

	var samples []models.Sample
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		date := models.FormatDate(day)
		rng := rand.New(rand.NewPCG(seed(restaurantID, date)))
		for _, hour := range s.hours.Hours() {
			samples = append(samples, models.Sample{
				Date:      date,
				Hour:      hour,
				Count:     syntheticCount(rng, day.Weekday(), hour),
				DayOfWeek: day.Weekday().String(),
			})
		}
	}
	return samples, nil
}

func syntheticCount(rng *rand.Rand, weekday time.Weekday, hour int) int64 {
	base := float64(syntheticBase)
	switch weekday {
	case time.Friday, time.Saturday:
		base += syntheticFriSat
	case time.Sunday:
		base += syntheticSunday
	}
	switch {
	case hour >= 12 && hour <= 14:
		base += syntheticLunch
	case hour >= 18 && hour <= 20:
		base += syntheticDinner
	}
	jitter := syntheticJitterMin + rng.Float64()*syntheticJitterSpan
	return int64(math.Round(base * jitter))
}

func seed(restaurantID, date string) (uint64, uint64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(restaurantID))
	hi := h.Sum64()
	_, _ = h.Write([]byte{'/'})
	_, _ = h.Write([]byte(date))
	return hi, h.Sum64()
}
