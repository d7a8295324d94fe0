package burst

import (
	"sort"
	"time"
)

// DefaultWindowDays is the window used when a non-positive size is given.
const DefaultWindowDays = 7

// Calculator measures how concentrated in time a file's surviving changes are.
// Burst score = (max history entries in any window) / (total entries)
type Calculator struct {
	windowDays int
}

// NewCalculator creates a new burst score calculator.
func NewCalculator(windowDays int) *Calculator {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &Calculator{windowDays: windowDays}
}

// WindowDays returns the window size in days.
func (c *Calculator) WindowDays() int {
	return c.windowDays
}

// Score calculates the burst score of a set of change dates.
// Uses a two-pointer sliding window; dates may arrive in any order.
func (c *Calculator) Score(dates []time.Time) float64 {
	if len(dates) == 0 {
		return 0.0
	}
	if len(dates) == 1 {
		// A single change is maximally "bursty"
		return 1.0
	}

	// Copy to avoid mutating the caller's slice
	times := make([]time.Time, len(dates))
	copy(times, dates)
	if !sort.SliceIsSorted(times, func(i, j int) bool { return times[i].Before(times[j]) }) {
		sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })
	}

	window := time.Duration(c.windowDays) * 24 * time.Hour
	maxInWindow := 1

	left := 0
	for right := 0; right < len(times); right++ {
		for times[right].Sub(times[left]) > window {
			left++
		}
		if n := right - left + 1; n > maxInWindow {
			maxInWindow = n
		}
	}

	return float64(maxInWindow) / float64(len(times))
}
