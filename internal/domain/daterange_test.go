package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDurationDays(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "Three day range",
			start:    date(2025, 7, 10),
			end:      date(2025, 7, 12),
			expected: 3,
		},
		{
			name:     "Single day rental",
			start:    date(2025, 7, 10),
			end:      date(2025, 7, 10),
			expected: 1,
		},
		{
			name:     "Range across month boundary",
			start:    date(2025, 7, 30),
			end:      date(2025, 8, 2),
			expected: 4,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			days, err := DurationDays(tc.start, tc.end)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, days)
		})
	}
}

func TestDurationDays_InvalidRange(t *testing.T) {
	_, err := DurationDays(date(2025, 7, 12), date(2025, 7, 10))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestDurationDays_IgnoresTimeOfDay(t *testing.T) {
	// Время суток не влияет: сравниваются только календарные даты
	start := time.Date(2025, 7, 10, 23, 59, 0, 0, time.UTC)
	end := time.Date(2025, 7, 12, 0, 1, 0, 0, time.UTC)

	days, err := DurationDays(start, end)
	assert.NoError(t, err)
	assert.Equal(t, 3, days)
}

func TestRangesOverlap(t *testing.T) {
	testCases := []struct {
		name     string
		aStart   time.Time
		aEnd     time.Time
		bStart   time.Time
		bEnd     time.Time
		expected bool
	}{
		{
			name:   "Partial overlap",
			aStart: date(2025, 8, 1), aEnd: date(2025, 8, 5),
			bStart: date(2025, 8, 4), bEnd: date(2025, 8, 10),
			expected: true,
		},
		{
			name:   "Shared boundary day overlaps",
			aStart: date(2025, 8, 1), aEnd: date(2025, 8, 5),
			bStart: date(2025, 8, 5), bEnd: date(2025, 8, 10),
			expected: true,
		},
		{
			name:   "Adjacent ranges do not overlap",
			aStart: date(2025, 8, 1), aEnd: date(2025, 8, 5),
			bStart: date(2025, 8, 6), bEnd: date(2025, 8, 10),
			expected: false,
		},
		{
			name:   "One range inside another",
			aStart: date(2025, 8, 1), aEnd: date(2025, 8, 10),
			bStart: date(2025, 8, 3), bEnd: date(2025, 8, 5),
			expected: true,
		},
		{
			name:   "Disjoint ranges",
			aStart: date(2025, 8, 1), aEnd: date(2025, 8, 3),
			bStart: date(2025, 8, 20), bEnd: date(2025, 8, 25),
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RangesOverlap(tc.aStart, tc.aEnd, tc.bStart, tc.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tc.expected, RangesOverlap(tc.bStart, tc.bEnd, tc.aStart, tc.aEnd))
		})
	}
}

func TestExpandToDailyList(t *testing.T) {
	days := ExpandToDailyList(date(2025, 7, 10), date(2025, 7, 12))

	assert.Equal(t, []time.Time{
		date(2025, 7, 10),
		date(2025, 7, 11),
		date(2025, 7, 12),
	}, days)
}

func TestExpandToDailyList_SingleDay(t *testing.T) {
	days := ExpandToDailyList(date(2025, 7, 10), date(2025, 7, 10))
	assert.Equal(t, []time.Time{date(2025, 7, 10)}, days)
}

func TestExpandToDailyList_InvalidRange(t *testing.T) {
	days := ExpandToDailyList(date(2025, 7, 12), date(2025, 7, 10))
	assert.Empty(t, days)
}

func TestDateOnly(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	ts := time.Date(2025, 7, 10, 15, 30, 45, 123, moscow)

	got := DateOnly(ts)

	assert.Equal(t, date(2025, 7, 10), got)
	assert.Equal(t, time.UTC, got.Location())
}
