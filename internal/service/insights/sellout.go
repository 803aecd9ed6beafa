package insights

import (
	"time"

	"github.com/skyline-media/revenue-insights/internal/domain"
)

// selloutThresholdPct marks dayparts priced too low: selling out above this
// rate means rates have room to move. Strictly greater-than; 85.0 exactly
// does not flag.
const selloutThresholdPct = 85.0

// minElapsedFraction guards the pacing projection against wild extrapolation
// from sparse early data.
const minElapsedFraction = 0.10

// buildSelloutView computes booked/available rates per daypart for both
// periods plus a pacing projection for the current one. A daypart with zero
// available units reports nil rates, never 0% or a division error.
func buildSelloutView(cur, cmp []domain.InventoryDay, curPeriod Period, now time.Time) *domain.SelloutView {
	byDaypart := func(d domain.InventoryDay) string { return string(d.Daypart) }

	cy := sumInventoryBy(cur, byDaypart)
	py := sumInventoryBy(cmp, byDaypart)

	view := &domain.SelloutView{Dayparts: make([]domain.SelloutDaypart, 0, len(domain.DaypartOrder))}

	for _, dp := range domain.DaypartOrder {
		key := string(dp)
		cyBucket := cy.at(key)
		pyBucket := py.at(key)

		cyRate := ratePct(cyBucket.Booked, cyBucket.Available)
		pyRate := ratePct(pyBucket.Booked, pyBucket.Available)

		row := domain.SelloutDaypart{
			Daypart:        key,
			DaypartName:    dp.Name(),
			BookedUnits:    cyBucket.Booked,
			AvailableUnits: cyBucket.Available,
			PricingFlag:    cyRate != nil && *cyRate > selloutThresholdPct,
			ProjectedRate:  ProjectSellout(cyRate, curPeriod, now),
		}
		if cyRate != nil {
			row.CYRate = fptr(round1(*cyRate))
		}
		if pyRate != nil {
			row.PYRate = fptr(round1(*pyRate))
		}

		view.Dayparts = append(view.Dayparts, row)
	}

	return view
}

// ProjectSellout linearly extrapolates the booked-to-date rate over the
// elapsed fraction of the period, capped at 100%. Below minElapsedFraction
// the projection is not available. A named pure function so a forecasting
// model can replace it.
func ProjectSellout(cyRate *float64, period Period, now time.Time) *float64 {
	if cyRate == nil {
		return nil
	}

	elapsedDays := period.Days()
	if today := truncateToDay(now); today.Before(period.End) {
		if today.Before(period.Start) {
			return nil
		}
		elapsedDays = int(today.Sub(period.Start).Hours()/24) + 1
	}

	fraction := float64(elapsedDays) / float64(period.Days())
	if fraction < minElapsedFraction {
		return nil
	}

	projected := *cyRate / fraction
	if projected > 100 {
		projected = 100
	}
	return fptr(round1(projected))
}
