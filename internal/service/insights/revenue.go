package insights

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/skyline-media/revenue-insights/internal/domain"
)

// Dayparts whose YoY move is at least this large are marked significant.
const yoySignificancePct = 5.0

// buildRevenueView computes current vs comparison revenue per daypart plus
// intra-period week-over-week and month-over-month deltas.
func buildRevenueView(cur, cmp []domain.Spot, curPeriod, cmpPeriod Period) *domain.RevenueView {
	byDaypart := func(s domain.Spot) string { return string(s.Daypart) }

	cy := sumSpotsBy(cur, byDaypart)
	py := sumSpotsBy(cmp, byDaypart)

	totalCY := decimal.Zero
	totalPY := decimal.Zero
	for _, bucket := range cy {
		totalCY = totalCY.Add(bucket.Revenue)
	}
	for _, bucket := range py {
		totalPY = totalPY.Add(bucket.Revenue)
	}

	view := &domain.RevenueView{
		Dayparts: make([]domain.RevenueDaypart, 0, len(domain.DaypartOrder)),
		TotalCY:  money(totalCY),
		TotalPY:  money(totalPY),
	}
	view.TotalYoYPct = pctChange(totalCY, totalPY)

	hundred := decimal.NewFromInt(100)
	for _, dp := range domain.DaypartOrder {
		key := string(dp)
		cyBucket := cy.at(key)
		pyBucket := py.at(key)

		row := domain.RevenueDaypart{
			Daypart:     key,
			DaypartName: dp.Name(),
			CYRevenue:   money(cyBucket.Revenue),
			PYRevenue:   money(pyBucket.Revenue),
			YoYPct:      pctChange(cyBucket.Revenue, pyBucket.Revenue),
			WoWPct:      weekOverWeek(cur, dp, curPeriod),
			MoMPct:      monthOverMonth(cur, dp, curPeriod),
		}
		if totalCY.IsPositive() {
			share := cyBucket.Revenue.Mul(hundred).Div(totalCY)
			row.SharePct = fptr(share.InexactFloat64())
		}
		if row.YoYPct != nil && math.Abs(*row.YoYPct) >= yoySignificancePct {
			row.Flag = true
		}

		view.Dayparts = append(view.Dayparts, row)
	}

	return view
}

// weekOverWeek compares the most recent full 7-day block of the period to the
// one before it. Needs at least two full blocks and a nonzero prior block.
func weekOverWeek(spots []domain.Spot, dp domain.Daypart, period Period) *float64 {
	if fullWeeks(period) < 2 {
		return nil
	}

	last := decimal.Zero
	prev := decimal.Zero
	for _, spot := range spots {
		if spot.Daypart != dp || !spot.Status.CountsRevenue() {
			continue
		}
		switch weekIndex(spot.AirDate, period) {
		case 0:
			last = last.Add(spot.Revenue)
		case 1:
			prev = prev.Add(spot.Revenue)
		}
	}

	return pctChange(last, prev)
}

// monthOverMonth compares the last two calendar months touched by the period.
func monthOverMonth(spots []domain.Spot, dp domain.Daypart, period Period) *float64 {
	keys := monthKeys(period)
	if len(keys) < 2 {
		return nil
	}
	lastKey := keys[len(keys)-1]
	prevKey := keys[len(keys)-2]

	last := decimal.Zero
	prev := decimal.Zero
	for _, spot := range spots {
		if spot.Daypart != dp || !spot.Status.CountsRevenue() {
			continue
		}
		switch monthKey(spot.AirDate) {
		case lastKey:
			last = last.Add(spot.Revenue)
		case prevKey:
			prev = prev.Add(spot.Revenue)
		}
	}

	return pctChange(last, prev)
}
