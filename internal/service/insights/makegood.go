package insights

import (
	"github.com/shopspring/decimal"
	"github.com/skyline-media/revenue-insights/internal/domain"
)

// makegoodThresholdPct flags a station or daypart whose preemption plus
// makegood rate exceeds this share of countable spots. Strictly greater-than;
// exactly 5.0 does not flag.
const makegoodThresholdPct = 5.0

// buildMakegoodView summarizes preemption and makegood exposure per station
// and per daypart over the current period. A preempted spot and its
// replacement are two distinct records, so the counts never double-count one
// row. Revenue impact comes from the linked makegood records.
func buildMakegoodView(cur []domain.Spot, makegoods []domain.Makegood) *domain.MakegoodView {
	byStation := func(s domain.Spot) string { return s.Station }
	byDaypart := func(s domain.Spot) string { return string(s.Daypart) }

	stationBuckets, stationPre, stationMG := countSpotsBy(cur, byStation)
	daypartBuckets, daypartPre, daypartMG := countSpotsBy(cur, byDaypart)

	stationImpact := make(map[string]decimal.Decimal)
	daypartImpact := make(map[string]decimal.Decimal)
	for _, mg := range makegoods {
		stationImpact[mg.Station] = stationImpact[mg.Station].Add(mg.RevenueImpact)
		daypartImpact[string(mg.Daypart)] = daypartImpact[string(mg.Daypart)].Add(mg.RevenueImpact)
	}

	view := &domain.MakegoodView{}

	for _, station := range unionKeys(stationBuckets) {
		row := makegoodRow(stationBuckets.at(station).Spots, stationPre[station], stationMG[station], stationImpact[station])
		row.Station = station
		view.Stations = append(view.Stations, row)
	}

	for _, dp := range domain.DaypartOrder {
		key := string(dp)
		row := makegoodRow(daypartBuckets.at(key).Spots, daypartPre[key], daypartMG[key], daypartImpact[key])
		row.Daypart = key
		row.DaypartName = dp.Name()
		view.ByDaypart = append(view.ByDaypart, row)
	}

	return view
}

func makegoodRow(total, preempted, madeGood int, impact decimal.Decimal) domain.MakegoodRow {
	row := domain.MakegoodRow{
		Preempted:     preempted,
		Makegood:      madeGood,
		TotalSpots:    total,
		RevenueImpact: money(impact),
	}
	if rate := ratePct(int64(preempted+madeGood), int64(total)); rate != nil {
		row.Flag = *rate > makegoodThresholdPct
		row.CombinedRate = fptr(round1(*rate))
	}
	return row
}
