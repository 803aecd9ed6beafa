package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePeriodsDefaultsToTrailing90Days(t *testing.T) {
	now := day("2025-03-31")

	cur, cmp, err := ResolvePeriods(time.Time{}, time.Time{}, now)
	require.NoError(t, err)

	assert.Equal(t, day("2025-03-31"), cur.End)
	assert.Equal(t, day("2025-01-01"), cur.Start)
	assert.Equal(t, 90, cur.Days())
	assert.Equal(t, 90, cmp.Days())
}

func TestResolvePeriodsUses364DayOffset(t *testing.T) {
	cur, cmp, err := ResolvePeriods(day("2025-01-01"), day("2025-03-31"), day("2025-03-31"))
	require.NoError(t, err)

	assert.Equal(t, day("2024-01-03"), cmp.Start)
	assert.Equal(t, day("2024-04-01"), cmp.End)
	// day-of-week alignment
	assert.Equal(t, cur.Start.Weekday(), cmp.Start.Weekday())
	assert.Equal(t, cur.End.Weekday(), cmp.End.Weekday())
}

func TestResolvePeriodsEqualDayCountAcrossLeapDay(t *testing.T) {
	// current window spans 2024-02-29
	cur, cmp, err := ResolvePeriods(day("2024-02-01"), day("2024-03-01"), day("2024-03-01"))
	require.NoError(t, err)

	assert.Equal(t, 30, cur.Days())
	assert.Equal(t, cur.Days(), cmp.Days())
}

func TestResolvePeriodsRejectsInvertedRange(t *testing.T) {
	_, _, err := ResolvePeriods(day("2025-03-31"), day("2025-01-01"), day("2025-03-31"))
	assert.Error(t, err)
}

func TestMonthKeys(t *testing.T) {
	keys := monthKeys(testPeriod("2025-01-15", "2025-03-02"))
	assert.Equal(t, []string{"2025-01", "2025-02", "2025-03"}, keys)
}

func TestWeekIndexCountsBackFromPeriodEnd(t *testing.T) {
	p := testPeriod("2025-01-01", "2025-03-31")

	assert.Equal(t, 0, weekIndex(day("2025-03-31"), p))
	assert.Equal(t, 0, weekIndex(day("2025-03-25"), p))
	assert.Equal(t, 1, weekIndex(day("2025-03-24"), p))
	assert.Equal(t, 12, fullWeeks(p))
}
