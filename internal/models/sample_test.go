package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSample_DerivesWeekday(t *testing.T) {
	t.Parallel()

	sample, err := NewSample("2025-12-28", 18, 42)
	require.NoError(t, err)
	assert.Equal(t, Sample{Date: "2025-12-28", Hour: 18, Count: 42, DayOfWeek: "Sunday"}, sample)
}

func TestNewSample_InvalidDate(t *testing.T) {
	t.Parallel()

	for _, date := range []string{"", "28/12/2025", "2025-13-01", "2025-12-28T00:00:00Z"} {
		_, err := NewSample(date, 10, 1)
		assert.Error(t, err, "date %q should be rejected", date)
	}
}

func TestTruncateDay(t *testing.T) {
	t.Parallel()

	got := TruncateDay(time.Date(2025, 12, 28, 23, 59, 59, 999, time.UTC))
	assert.Equal(t, time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestOperatingHours(t *testing.T) {
	t.Parallel()

	hours, err := NewOperatingHours(10, 22)
	require.NoError(t, err)
	assert.Equal(t, DefaultOperatingHours, hours)
	assert.Len(t, hours.Hours(), 13)
	assert.Equal(t, 10, hours.Hours()[0])
	assert.Equal(t, 22, hours.Hours()[12])
	assert.True(t, hours.Contains(10))
	assert.True(t, hours.Contains(22))
	assert.False(t, hours.Contains(9))
	assert.False(t, hours.Contains(23))

	_, err = NewOperatingHours(18, 10)
	assert.Error(t, err)
	_, err = NewOperatingHours(-1, 10)
	assert.Error(t, err)
	_, err = NewOperatingHours(10, 24)
	assert.Error(t, err)
}

func TestDailyTraffic_Samples(t *testing.T) {
	t.Parallel()

	record := &DailyTraffic{
		RestaurantID: "bistro-12",
		Date:         "2025-12-26",
		CountsByHour: HourlyCounts{18: 50, 12: 30, 13: 20},
	}

	assert.False(t, record.IsNew())
	assert.Equal(t, int64(100), record.CountsByHour.Total())
	assert.Equal(t, []Sample{
		{Date: "2025-12-26", Hour: 12, Count: 30, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 13, Count: 20, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 18, Count: 50, DayOfWeek: "Friday"},
	}, record.Samples())
}

func TestDailyTraffic_Samples_SplitsMergedHours(t *testing.T) {
	t.Parallel()

	// 12h merged from three samples, 18h from two, 13h predates sample tallies
	record := &DailyTraffic{
		RestaurantID:  "bistro-12",
		Date:          "2025-12-26",
		CountsByHour:  HourlyCounts{12: 31, 13: 20, 18: 8},
		SamplesByHour: HourlyCounts{12: 3, 18: 2},
	}

	assert.Equal(t, []Sample{
		{Date: "2025-12-26", Hour: 12, Count: 11, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 12, Count: 10, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 12, Count: 10, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 13, Count: 20, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 18, Count: 4, DayOfWeek: "Friday"},
		{Date: "2025-12-26", Hour: 18, Count: 4, DayOfWeek: "Friday"},
	}, record.Samples())
}

func TestDailyTraffic_HasBatch(t *testing.T) {
	t.Parallel()

	record := NewEmptyDailyTraffic("bistro-12", "2025-12-26")
	assert.True(t, record.IsNew())
	assert.False(t, record.HasBatch("batch-1"))

	record.AppliedBatchIDs = append(record.AppliedBatchIDs, "batch-1")
	assert.False(t, record.IsNew())
	assert.True(t, record.HasBatch("batch-1"))
	assert.False(t, record.HasBatch("batch-2"))
	assert.False(t, record.HasBatch(""))
}

func TestDailyTraffic_WithinRange(t *testing.T) {
	t.Parallel()

	from := time.Date(2025, 12, 20, 15, 0, 0, 0, time.UTC)
	to := time.Date(2025, 12, 28, 1, 0, 0, 0, time.UTC)

	assert.True(t, NewEmptyDailyTraffic("r", "2025-12-20").WithinRange(from, to))
	assert.True(t, NewEmptyDailyTraffic("r", "2025-12-28").WithinRange(from, to))
	assert.False(t, NewEmptyDailyTraffic("r", "2025-12-19").WithinRange(from, to))
	assert.False(t, NewEmptyDailyTraffic("r", "2025-12-29").WithinRange(from, to))
	assert.False(t, NewEmptyDailyTraffic("r", "not-a-date").WithinRange(from, to))
	assert.True(t, NewEmptyDailyTraffic("r", "2025-12-20").IsNew())
}
