package insights

import (
	"testing"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelloutRateAndPricingFlag(t *testing.T) {
	period := testPeriod("2025-01-01", "2025-03-31")
	now := day("2025-03-31")

	cur := []domain.InventoryDay{inventory("WXYZ", domain.DaypartPrime, "2025-02-01", 1000, 870)}
	cmp := []domain.InventoryDay{inventory("WXYZ", domain.DaypartPrime, "2024-02-01", 1000, 800)}

	view := buildSelloutView(cur, cmp, period, now)

	prime := view.Dayparts[5]
	require.Equal(t, "PR", prime.Daypart)
	require.NotNil(t, prime.CYRate)
	assert.Equal(t, 87.0, *prime.CYRate)
	require.NotNil(t, prime.PYRate)
	assert.Equal(t, 80.0, *prime.PYRate)
	assert.True(t, prime.PricingFlag)
}

func TestSelloutBoundary85DoesNotFlag(t *testing.T) {
	period := testPeriod("2025-01-01", "2025-03-31")
	cur := []domain.InventoryDay{inventory("WXYZ", domain.DaypartPrime, "2025-02-01", 1000, 850)}

	view := buildSelloutView(cur, nil, period, day("2025-03-31"))

	prime := view.Dayparts[5]
	require.NotNil(t, prime.CYRate)
	assert.Equal(t, 85.0, *prime.CYRate)
	assert.False(t, prime.PricingFlag)
}

func TestSelloutZeroAvailsReportsNullNotZero(t *testing.T) {
	period := testPeriod("2025-01-01", "2025-03-31")
	cur := []domain.InventoryDay{inventory("WXYZ", domain.DaypartLateFringe, "2025-02-01", 0, 0)}

	view := buildSelloutView(cur, nil, period, day("2025-03-31"))

	lateFringe := view.Dayparts[7]
	require.Equal(t, "LF", lateFringe.Daypart)
	assert.Nil(t, lateFringe.CYRate)
	assert.Nil(t, lateFringe.ProjectedRate)
	assert.False(t, lateFringe.PricingFlag)
}

func TestProjectSellout(t *testing.T) {
	period := testPeriod("2025-01-01", "2025-03-31") // 90 days

	t.Run("not available below minimum elapsed fraction", func(t *testing.T) {
		// 5 of 90 days elapsed
		assert.Nil(t, ProjectSellout(fptr(4.0), period, day("2025-01-05")))
	})

	t.Run("extrapolates linearly", func(t *testing.T) {
		// 45 of 90 days elapsed, 40% booked to date
		got := ProjectSellout(fptr(40.0), period, day("2025-02-14"))
		require.NotNil(t, got)
		assert.Equal(t, 80.0, *got)
	})

	t.Run("caps at 100", func(t *testing.T) {
		got := ProjectSellout(fptr(70.0), period, day("2025-02-14"))
		require.NotNil(t, got)
		assert.Equal(t, 100.0, *got)
	})

	t.Run("completed period projects its own rate", func(t *testing.T) {
		got := ProjectSellout(fptr(84.0), period, day("2025-06-01"))
		require.NotNil(t, got)
		assert.Equal(t, 84.0, *got)
	})

	t.Run("nil rate stays nil", func(t *testing.T) {
		assert.Nil(t, ProjectSellout(nil, period, day("2025-02-14")))
	})
}
