package insights

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/skyline-media/revenue-insights/internal/domain"
)

// concentrationThresholdPct flags any single advertiser holding more than
// this share of current-period revenue.
const concentrationThresholdPct = 15

// buildAdvertiserView ranks advertisers by current-period revenue and
// computes concentration metrics. HHI uses shares on the 0-100 scale, so it
// ranges 0..10000, and is computed across all advertisers, not just the
// returned top slice.
func buildAdvertiserView(cur, cmp []domain.Spot, limit int) *domain.AdvertiserView {
	byAdvertiser := func(s domain.Spot) string { return s.Advertiser }

	cy := sumSpotsBy(cur, byAdvertiser)
	py := sumSpotsBy(cmp, byAdvertiser)

	total := decimal.Zero
	for _, bucket := range cy {
		total = total.Add(bucket.Revenue)
	}

	names := unionKeys(cy)
	// revenue descending, ties broken by name ascending for a reproducible top-N
	sort.SliceStable(names, func(i, j int) bool {
		ri := cy.at(names[i]).Revenue
		rj := cy.at(names[j]).Revenue
		if !ri.Equal(rj) {
			return ri.GreaterThan(rj)
		}
		return names[i] < names[j]
	})

	view := &domain.AdvertiserView{
		Advertisers:  make([]domain.AdvertiserRow, 0, limit),
		TotalRevenue: money(total),
	}

	hundred := decimal.NewFromInt(100)
	threshold := decimal.NewFromInt(concentrationThresholdPct)
	hhi := decimal.Zero
	top5 := decimal.Zero

	for rank, name := range names {
		revenue := cy.at(name).Revenue
		if !total.IsPositive() {
			break
		}
		share := revenue.Mul(hundred).Div(total)
		hhi = hhi.Add(share.Mul(share))
		if rank < 5 {
			top5 = top5.Add(share)
		}

		isNew := !py.at(name).Revenue.IsPositive() && revenue.IsPositive()
		if isNew {
			view.NewCount++
		} else if revenue.IsPositive() {
			view.ReturningCount++
		}

		if rank < limit {
			view.Advertisers = append(view.Advertisers, domain.AdvertiserRow{
				Name:     name,
				Revenue:  money(revenue),
				SharePct: round1(share.InexactFloat64()),
				IsNew:    isNew,
				Flag:     share.GreaterThan(threshold),
			})
		}
	}

	if total.IsPositive() {
		view.HHI = hhi.Round(0).InexactFloat64()
		view.Top5Share = fptr(round1(top5.InexactFloat64()))
	}

	return view
}
