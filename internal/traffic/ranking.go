package traffic

import (
	"sort"
	"time"

	"restaurant-insights/internal/models"
)

var weekdayOrder = func() map[string]int {
	order := make(map[string]int, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		order[d.String()] = int(d)
	}
	return order
}()

type weekdayMean struct {
	name string
	sum  int64
	n    int64
}

func (w weekdayMean) mean() float64 { return float64(w.sum) / float64(w.n) }

// peakAndSlowestWeekday ranks weekdays by their mean count per sample.
// Ties go to the weekday that comes first from Sunday to Saturday; names that
// are not English weekdays rank after them, alphabetically.
func peakAndSlowestWeekday(samples []models.Sample) (peak, slowest string) {
	byDay := make(map[string]*weekdayMean)
	for _, s := range samples {
		name := s.DayOfWeek
		if name == "" {
			if day, err := models.ParseDate(s.Date); err == nil {
				name = day.Weekday().String()
			}
		}
		w, ok := byDay[name]
		if !ok {
			w = &weekdayMean{name: name}
			byDay[name] = w
		}
		w.sum += s.Count
		w.n++
	}

	days := make([]*weekdayMean, 0, len(byDay))
	for _, w := range byDay {
		days = append(days, w)
	}
	sort.Slice(days, func(i, j int) bool {
		oi, iKnown := weekdayOrder[days[i].name]
		oj, jKnown := weekdayOrder[days[j].name]
		if iKnown != jKnown {
			return iKnown
		}
		if iKnown {
			return oi < oj
		}
		return days[i].name < days[j].name
	})

	peakIdx, slowestIdx := 0, 0
	for i := 1; i < len(days); i++ {
		if days[i].mean() > days[peakIdx].mean() {
			peakIdx = i
		}
		if days[i].mean() < days[slowestIdx].mean() {
			slowestIdx = i
		}
	}
	return days[peakIdx].name, days[slowestIdx].name
}

// peakHour is the hour with the largest total across all dates; ties go to the earliest hour.
func peakHour(samples []models.Sample) int {
	totals := make(map[int]int64)
	for _, s := range samples {
		totals[s.Hour] += s.Count
	}

	hours := make([]int, 0, len(totals))
	for hour := range totals {
		hours = append(hours, hour)
	}
	sort.Ints(hours)

	best := hours[0]
	for _, hour := range hours[1:] {
		if totals[hour] > totals[best] {
			best = hour
		}
	}
	return best
}

// shortWeekday returns the three-letter weekday of date, falling back to the
// sample's own weekday name when the date does not parse.
func shortWeekday(date, fallback string) string {
	if day, err := models.ParseDate(date); err == nil {
		return day.Weekday().String()[:3]
	}
	if len(fallback) >= 3 {
		return fallback[:3]
	}
	return fallback
}
