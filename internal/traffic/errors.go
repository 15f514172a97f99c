package traffic

import "errors"

var (
	// ErrEmptyInput is returned when there are no samples to summarize.
	ErrEmptyInput = errors.New("traffic: no samples")
	// ErrInsufficientHistory is returned when fewer than WeekLength+1 distinct
	// dates exist, so there is no second week to compare against.
	ErrInsufficientHistory = errors.New("traffic: not enough distinct dates for a week-over-week comparison")
	// ErrZeroBaseline is returned when the first week has no visitors.
	ErrZeroBaseline = errors.New("traffic: first week has no visitors")
)
