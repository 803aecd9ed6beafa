package insights

import (
	"github.com/shopspring/decimal"
	"github.com/skyline-media/revenue-insights/internal/domain"
)

// Trend classifications for a monthly AUR series.
const (
	TrendRising    = "rising"
	TrendDeclining = "declining"
	TrendFlat      = "flat"
)

// trendEpsilon is the per-month slope below which a series counts as flat.
const trendEpsilon = 0.05

// buildAURView computes the Average Unit Rate per daypart per calendar month:
// revenue divided by 30-second-equivalent units sold. Months without spots are
// nil, not zero — a zero would falsely depress the trend.
func buildAURView(cur []domain.Spot, curPeriod Period) *domain.AURView {
	months := monthKeys(curPeriod)
	index := make(map[string]int, len(months))
	for i, key := range months {
		index[key] = i
	}

	type cell struct {
		revenue decimal.Decimal
		units   float64
	}
	cells := make(map[domain.Daypart][]cell)
	for _, dp := range domain.DaypartOrder {
		cells[dp] = make([]cell, len(months))
	}

	for _, spot := range cur {
		if !spot.Status.CountsRevenue() {
			continue
		}
		i, ok := index[monthKey(spot.AirDate)]
		if !ok {
			continue
		}
		row := cells[spot.Daypart]
		row[i].revenue = row[i].revenue.Add(spot.Revenue)
		row[i].units += spot.UnitLength
	}

	view := &domain.AURView{
		Months: months,
		Series: make([]domain.AURSeries, 0, len(domain.DaypartOrder)),
	}

	for _, dp := range domain.DaypartOrder {
		values := make([]*float64, len(months))
		for i, c := range cells[dp] {
			if c.units > 0 {
				values[i] = fptr(money(c.revenue.Div(decimal.NewFromFloat(c.units))))
			}
		}

		trend := ClassifyTrend(values, trendEpsilon)
		view.Series = append(view.Series, domain.AURSeries{
			Daypart:     string(dp),
			DaypartName: dp.Name(),
			Values:      values,
			Trend:       trend,
			Flag:        trend == TrendDeclining,
		})
	}

	return view
}

// ClassifyTrend fits an ordinary least-squares line through the non-nil
// points of a monthly series (x = month index) and labels the slope. It is a
// deliberately simple heuristic kept as a named pure function so a real
// forecasting model can replace it without touching the views.
func ClassifyTrend(values []*float64, epsilon float64) string {
	var n, sumX, sumY, sumXY, sumXX float64
	for i, v := range values {
		if v == nil {
			continue
		}
		x := float64(i)
		n++
		sumX += x
		sumY += *v
		sumXY += x * *v
		sumXX += x * x
	}
	if n < 2 {
		return TrendFlat
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return TrendFlat
	}
	slope := (n*sumXY - sumX*sumY) / denom

	switch {
	case slope > epsilon:
		return TrendRising
	case slope < -epsilon:
		return TrendDeclining
	default:
		return TrendFlat
	}
}
