package burst

import (
	"math"
	"testing"
	"time"
)

func TestNewCalculator_DefaultWindow(t *testing.T) {
	if got := NewCalculator(0).WindowDays(); got != DefaultWindowDays {
		t.Errorf("WindowDays() = %d, want %d", got, DefaultWindowDays)
	}
	if got := NewCalculator(-3).WindowDays(); got != DefaultWindowDays {
		t.Errorf("WindowDays() = %d, want %d", got, DefaultWindowDays)
	}
	if got := NewCalculator(30).WindowDays(); got != 30 {
		t.Errorf("WindowDays() = %d, want 30", got)
	}
}

func TestScore(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	tests := []struct {
		name  string
		dates []time.Time
		want  float64
	}{
		{name: "Empty", dates: nil, want: 0},
		{name: "Single", dates: []time.Time{base}, want: 1},
		{name: "AllInOneWeek", dates: []time.Time{day(0), day(2), day(6)}, want: 1},
		{name: "Spread", dates: []time.Time{day(0), day(30), day(60), day(90)}, want: 0.25},
		{name: "HalfClustered", dates: []time.Time{day(0), day(1), day(100), day(200)}, want: 0.5},
		{name: "WindowBoundaryInclusive", dates: []time.Time{day(0), day(7)}, want: 1},
		{name: "Unsorted", dates: []time.Time{day(100), day(0), day(1), day(200)}, want: 0.5},
	}

	calc := NewCalculator(7)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.Score(tt.dates)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestScore_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	dates := []time.Time{base.AddDate(0, 0, 9), base, base.AddDate(0, 0, 3)}
	orig := append([]time.Time(nil), dates...)

	NewCalculator(7).Score(dates)

	for i := range dates {
		if !dates[i].Equal(orig[i]) {
			t.Fatalf("Score mutated input at %d: %v != %v", i, dates[i], orig[i])
		}
	}
}
