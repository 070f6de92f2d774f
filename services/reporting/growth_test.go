package reporting

import (
	"testing"
	"time"
)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"previous zero is guarded", 5, 0, 0},
		{"both zero", 0, 0, 0},
		{"fifty percent increase", 75, 50, 50},
		{"decline", 50, 100, -50},
		{"flat", 40, 40, 0},
		{"current zero", 0, 20, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GrowthRate(tt.current, tt.previous); got != tt.want {
				t.Errorf("GrowthRate(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestMonthWindows(t *testing.T) {
	now := time.Date(2025, time.March, 17, 15, 4, 5, 0, time.UTC)
	prev, cur, next := MonthWindows(now)

	if want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC); !prev.Equal(want) {
		t.Errorf("previousStart = %v, want %v", prev, want)
	}
	if want := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC); !cur.Equal(want) {
		t.Errorf("currentStart = %v, want %v", cur, want)
	}
	if want := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC); !next.Equal(want) {
		t.Errorf("nextStart = %v, want %v", next, want)
	}
}

func TestMonthWindowsYearRollover(t *testing.T) {
	now := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	prev, cur, next := MonthWindows(now)

	if want := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC); !prev.Equal(want) {
		t.Errorf("previousStart = %v, want %v", prev, want)
	}
	if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !cur.Equal(want) {
		t.Errorf("currentStart = %v, want %v", cur, want)
	}
	if want := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC); !next.Equal(want) {
		t.Errorf("nextStart = %v, want %v", next, want)
	}

	// December rolls the other way.
	_, _, decNext := MonthWindows(time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC))
	if want := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC); !decNext.Equal(want) {
		t.Errorf("nextStart = %v, want %v", decNext, want)
	}
}

func TestExpertEarnings(t *testing.T) {
	if got := ExpertEarnings(100); got != 90 {
		t.Errorf("ExpertEarnings(100) = %v, want 90", got)
	}
	if got := ExpertEarnings(0); got != 0 {
		t.Errorf("ExpertEarnings(0) = %v, want 0", got)
	}
}
