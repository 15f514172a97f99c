package models

import (
	"fmt"
	"time"
)

// Timeframe is a trailing range of whole days ending today.
type Timeframe string

const (
	TimeframeLast7Days  Timeframe = "last_7_days"
	TimeframeLast14Days Timeframe = "last_14_days"
	TimeframeLast30Days Timeframe = "last_30_days"
	TimeframeLast90Days Timeframe = "last_90_days"
)

func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(s)
	switch tf {
	case TimeframeLast7Days, TimeframeLast14Days, TimeframeLast30Days, TimeframeLast90Days:
		return tf, nil
	}
	return "", fmt.Errorf("invalid timeframe: %q", s)
}

func (tf Timeframe) Days() int {
	switch tf {
	case TimeframeLast7Days:
		return 7
	case TimeframeLast14Days:
		return 14
	case TimeframeLast30Days:
		return 30
	case TimeframeLast90Days:
		return 90
	default:
		panic(fmt.Sprintf("invalid Timeframe: %q", tf))
	}
}

// Range returns the first and last calendar day (midnight UTC) covered when
// the timeframe is evaluated at now. Both ends are inclusive.
func (tf Timeframe) Range(now time.Time) (from, to time.Time) {
	to = TruncateDay(now)
	from = to.AddDate(0, 0, -(tf.Days() - 1))
	return from, to
}
