package insights

import (
	"fmt"
	"math"

	"github.com/skyline-media/revenue-insights/internal/domain"
)

// rateErosionBandPct: a sell-out rate within this many percentage points of
// the prior year counts as flat for the rate-erosion rule.
const rateErosionBandPct = 2.0

// EvaluateAlerts scans the already-computed views for flagged entries and
// produces one flat, deterministically ordered alert list. The cross-view
// rate-erosion rule lives here, on top of the view outputs, so each view
// stays independently testable.
func EvaluateAlerts(aur *domain.AURView, adv *domain.AdvertiserView, sell *domain.SelloutView, mg *domain.MakegoodView) []domain.Alert {
	alerts := make([]domain.Alert, 0)

	for _, dp := range sell.Dayparts {
		if !dp.PricingFlag {
			continue
		}
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertSellout,
			Message:  fmt.Sprintf("%s is %.1f%% sold out; rates likely have room to move", dp.DaypartName, *dp.CYRate),
			Severity: domain.SeverityHigh,
		})
	}

	trends := make(map[string]string, len(aur.Series))
	for _, series := range aur.Series {
		trends[series.Daypart] = series.Trend
	}
	for _, dp := range sell.Dayparts {
		if trends[dp.Daypart] != TrendDeclining {
			continue
		}
		if dp.CYRate == nil || dp.PYRate == nil {
			continue
		}
		if math.Abs(*dp.CYRate-*dp.PYRate) > rateErosionBandPct {
			continue
		}
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertRateErosion,
			Message:  fmt.Sprintf("%s AUR is declining while sell-out is flat; rate erosion, not demand loss", dp.DaypartName),
			Severity: domain.SeverityHigh,
		})
	}

	for _, row := range adv.Advertisers {
		if !row.Flag {
			continue
		}
		severity := domain.SeverityMedium
		if row.SharePct > 2*concentrationThresholdPct {
			severity = domain.SeverityHigh
		}
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertConcentration,
			Message:  fmt.Sprintf("%s holds %.1f%% of revenue; concentration risk", row.Name, row.SharePct),
			Severity: severity,
		})
	}

	for _, row := range mg.Stations {
		if !row.Flag {
			continue
		}
		severity := domain.SeverityMedium
		if *row.CombinedRate > 2*makegoodThresholdPct {
			severity = domain.SeverityHigh
		}
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertMakegood,
			Message:  fmt.Sprintf("%s preemption+makegood rate is %.1f%% of spots", row.Station, *row.CombinedRate),
			Severity: severity,
		})
	}
	for _, row := range mg.ByDaypart {
		if !row.Flag {
			continue
		}
		severity := domain.SeverityMedium
		if *row.CombinedRate > 2*makegoodThresholdPct {
			severity = domain.SeverityHigh
		}
		alerts = append(alerts, domain.Alert{
			Type:     domain.AlertMakegood,
			Message:  fmt.Sprintf("%s preemption+makegood rate is %.1f%% of spots", row.DaypartName, *row.CombinedRate),
			Severity: severity,
		})
	}

	return alerts
}
