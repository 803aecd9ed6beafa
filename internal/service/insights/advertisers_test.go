package insights

import (
	"testing"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvertiserConcentrationThreshold(t *testing.T) {
	cur := []domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "Acme", 16000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-02", "Beta", 15000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-03", "Gamma", 69000),
	}

	view := buildAdvertiserView(cur, nil, 10)

	require.Len(t, view.Advertisers, 3)
	assert.Equal(t, "Gamma", view.Advertisers[0].Name)

	acme := view.Advertisers[1]
	assert.Equal(t, "Acme", acme.Name)
	assert.Equal(t, 16.0, acme.SharePct)
	assert.True(t, acme.Flag)

	beta := view.Advertisers[2]
	assert.Equal(t, "Beta", beta.Name)
	assert.Equal(t, 15.0, beta.SharePct)
	assert.False(t, beta.Flag)
}

func TestAdvertiserTiesBreakByNameAscending(t *testing.T) {
	cur := []domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "Zeta", 5000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-02", "Alpha", 5000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-03", "Mid", 5000),
	}

	view := buildAdvertiserView(cur, nil, 10)

	names := []string{view.Advertisers[0].Name, view.Advertisers[1].Name, view.Advertisers[2].Name}
	assert.Equal(t, []string{"Alpha", "Mid", "Zeta"}, names)
}

func TestHHIBoundsAndSingleAdvertiser(t *testing.T) {
	single := buildAdvertiserView([]domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "Acme", 1000),
	}, nil, 10)
	assert.Equal(t, 10000.0, single.HHI)

	spread := buildAdvertiserView([]domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "A", 2500),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "B", 2500),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "C", 2500),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "D", 2500),
	}, nil, 10)
	assert.Equal(t, 2500.0, spread.HHI)
	assert.GreaterOrEqual(t, spread.HHI, 0.0)
	assert.LessOrEqual(t, spread.HHI, 10000.0)
}

func TestHHIComputedAcrossAllAdvertisersNotTopN(t *testing.T) {
	cur := []domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "A", 5000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "B", 3000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "C", 2000),
	}

	view := buildAdvertiserView(cur, nil, 1)

	require.Len(t, view.Advertisers, 1)
	// 50^2 + 30^2 + 20^2
	assert.Equal(t, 3800.0, view.HHI)
}

func TestNewVersusReturningAdvertisers(t *testing.T) {
	cur := []domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "Acme", 8000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-02", "Newcomer", 2000),
	}
	cmp := []domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2024-02-02", "Acme", 7000),
	}

	view := buildAdvertiserView(cur, cmp, 10)

	assert.Equal(t, 1, view.NewCount)
	assert.Equal(t, 1, view.ReturningCount)
	for _, row := range view.Advertisers {
		if row.Name == "Newcomer" {
			assert.True(t, row.IsNew)
		} else {
			assert.False(t, row.IsNew)
		}
	}
}

func TestTop5ShareAndEmptyPeriod(t *testing.T) {
	empty := buildAdvertiserView(nil, nil, 10)
	assert.Nil(t, empty.Top5Share)
	assert.Zero(t, empty.HHI)
	assert.Empty(t, empty.Advertisers)

	cur := []domain.Spot{
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "A", 3000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "B", 2000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "C", 2000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "D", 1500),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "E", 1000),
		aired("KHQ-TV", domain.DaypartPrime, "2025-02-01", "F", 500),
	}
	view := buildAdvertiserView(cur, nil, 10)
	require.NotNil(t, view.Top5Share)
	assert.Equal(t, 95.0, *view.Top5Share)
}
