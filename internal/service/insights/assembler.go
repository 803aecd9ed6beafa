package insights

import (
	"fmt"

	"github.com/skyline-media/revenue-insights/internal/domain"
)

// assemble merges the view outputs and alert list into the payload contract.
// The narrative summary is derived from the same computed views — never
// recomputed — so chat and dashboard surfaces always agree numerically.
func assemble(
	rev *domain.RevenueView,
	aur *domain.AURView,
	adv *domain.AdvertiserView,
	sell *domain.SelloutView,
	mg *domain.MakegoodView,
	alerts []domain.Alert,
	curPeriod, cmpPeriod Period,
	orderCount, excluded int,
) *domain.InsightsPayload {
	summary := domain.Summary{
		CurrentPeriod:    curPeriod.Info(),
		ComparisonPeriod: cmpPeriod.Info(),
		TotalCYRevenue:   rev.TotalCY,
		TotalPYRevenue:   rev.TotalPY,
		TotalYoYPct:      rev.TotalYoYPct,
		AlertCount:       len(alerts),
		ExcludedRows:     excluded,
	}

	facts := make([]string, 0, 8)
	if summary.TotalYoYPct != nil {
		facts = append(facts, fmt.Sprintf("Total revenue $%.2f, %+.1f%% year over year", rev.TotalCY, *rev.TotalYoYPct))
	} else {
		facts = append(facts, fmt.Sprintf("Total revenue $%.2f; no comparison-period data", rev.TotalCY))
	}

	var top *domain.RevenueDaypart
	for i := range rev.Dayparts {
		if top == nil || rev.Dayparts[i].CYRevenue > top.CYRevenue {
			top = &rev.Dayparts[i]
		}
	}
	if top != nil && top.CYRevenue > 0 {
		summary.TopDaypart = &top.DaypartName
		if top.SharePct != nil {
			facts = append(facts, fmt.Sprintf("%s leads with %.1f%% of revenue", top.DaypartName, *top.SharePct))
		}
	}

	if len(adv.Advertisers) > 0 {
		summary.TopAdvertiser = &adv.Advertisers[0].Name
		facts = append(facts, fmt.Sprintf("Top advertiser %s at %.1f%% share (HHI %.0f)",
			adv.Advertisers[0].Name, adv.Advertisers[0].SharePct, adv.HHI))
	}
	if adv.NewCount > 0 {
		facts = append(facts, fmt.Sprintf("%d new advertisers vs %d returning", adv.NewCount, adv.ReturningCount))
	}
	if orderCount > 0 {
		facts = append(facts, fmt.Sprintf("%d orders active in the window", orderCount))
	}

	for _, dp := range rev.Dayparts {
		if dp.Flag && dp.YoYPct != nil {
			facts = append(facts, fmt.Sprintf("%s revenue moved %+.1f%% year over year", dp.DaypartName, *dp.YoYPct))
		}
	}

	for _, a := range alerts {
		facts = append(facts, a.Message)
	}
	summary.KeyFacts = facts

	return &domain.InsightsPayload{
		Revenue:     rev,
		AUR:         aur,
		Advertisers: adv,
		Sellout:     sell,
		Makegood:    mg,
		Alerts:      alerts,
		Summary:     summary,
	}
}
