package reporting

import "time"

// GrowthRate returns the percentage change from previous to current. When
// the previous-period value is exactly 0 the growth is reported as 0 rather
// than undefined; a new expert shows 0% growth, not infinity.
func GrowthRate(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return (current - previous) / previous * 100
}

// MonthWindows returns the start of the previous calendar month, the start
// of the current one and the start of the next one, relative to now in its
// location. time.Date normalizes out-of-range months, so January's previous
// month resolves to December of the prior year.
func MonthWindows(now time.Time) (previousStart, currentStart, nextStart time.Time) {
	year, month, _ := now.Date()
	loc := now.Location()
	previousStart = time.Date(year, month-1, 1, 0, 0, 0, 0, loc)
	currentStart = time.Date(year, month, 1, 0, 0, 0, 0, loc)
	nextStart = time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	return previousStart, currentStart, nextStart
}
