package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentMonth(t *testing.T) {
	asOf := time.Date(2025, 6, 15, 12, 30, 0, 0, time.UTC)
	w := CurrentMonth(asOf)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, asOf, w.End)
}

func TestPreviousMonth_AcrossYearBoundary(t *testing.T) {
	asOf := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	w := PreviousMonth(asOf)

	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), w.End)
}

func TestSameMonthLastYear_LeapFebruary(t *testing.T) {
	asOf := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	w := SameMonthLastYear(asOf)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), w.Start)
	// 2024 is a leap year
	assert.Equal(t, 29, w.End.Day())
}

func TestCurrentQuarter(t *testing.T) {
	tests := []struct {
		asOf       time.Time
		wantStart  time.Time
		wantEndDay int
	}{
		{time.Date(2025, 2, 5, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 31},
		{time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), 30},
		{time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 31},
	}

	for _, tt := range tests {
		w := CurrentQuarter(tt.asOf)
		assert.Equal(t, tt.wantStart, w.Start)
		assert.Equal(t, tt.wantEndDay, w.End.Day())
	}
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 28, DaysInMonth(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysInMonth(time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 30, DaysInMonth(time.Date(2025, 4, 30, 23, 59, 0, 0, time.UTC)))
}

func TestMonthWindow_Offsets(t *testing.T) {
	asOf := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	w0 := MonthWindow(asOf, 0)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), w0.Start)

	w3 := MonthWindow(asOf, 3)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), w3.Start)
	assert.Equal(t, 31, w3.End.Day())
}

func TestMonthKey_NoZeroPadding(t *testing.T) {
	assert.Equal(t, "2025-3", MonthKey(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-12", MonthKey(time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC)))
}
