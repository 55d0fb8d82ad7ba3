package types

import (
	"fmt"
	"time"
)

// TimeRange restricts a view of the journal to a trailing window of time.
// RangeAll means no restriction.
type TimeRange string

const (
	RangeAll   TimeRange = "all"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
)

// AllTimeRanges returns all valid time ranges
func AllTimeRanges() []TimeRange {
	return []TimeRange{
		RangeAll,
		RangeWeek,
		RangeMonth,
	}
}

// IsValid checks if the time range is valid
func (r TimeRange) IsValid() bool {
	switch r {
	case RangeAll,
		RangeWeek,
		RangeMonth:
		return true
	default:
		return false
	}
}

// Normalize returns the range, treating empty as RangeAll.
func (r TimeRange) Normalize() TimeRange {
	if r == "" {
		return RangeAll
	}
	return r
}

// Cutoff returns the earliest instant included by the range, relative to now.
// The second return value is false for RangeAll, which has no cutoff.
func (r TimeRange) Cutoff(now time.Time) (time.Time, bool) {
	switch r {
	case RangeWeek:
		return now.AddDate(0, 0, -7), true
	case RangeMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// String returns the string representation of the time range
func (r TimeRange) String() string {
	return string(r)
}

// ParseTimeRange parses a string into a TimeRange
func ParseTimeRange(s string) (TimeRange, error) {
	r := TimeRange(s).Normalize()
	if !r.IsValid() {
		return "", fmt.Errorf("invalid time range: %s", s)
	}
	return r, nil
}
