package insights

import (
	"github.com/skyline-media/revenue-insights/internal/domain"
)

// recordSet is one query's immutable input snapshot after invariant checks.
type recordSet struct {
	CurSpots     []domain.Spot
	CmpSpots     []domain.Spot
	CurInventory []domain.InventoryDay
	CmpInventory []domain.InventoryDay
	Makegoods    []domain.Makegood
	Orders       []domain.Order
	Excluded     int
}

// sanitize drops rows violating data-model invariants and counts them. The
// query keeps going; the count surfaces in the response summary instead of a
// silent drop or a crash.
func sanitize(set recordSet) recordSet {
	out := recordSet{}

	keep := func(ok bool) bool {
		if !ok {
			out.Excluded++
		}
		return ok
	}

	for _, o := range set.Orders {
		if keep(o.Daypart.Valid() && !o.Revenue.IsNegative() && !o.EndDate.Before(o.StartDate)) {
			out.Orders = append(out.Orders, o)
		}
	}

	// origin lookup for makegood references spans both periods: a replacement
	// can land long after the preemption
	preemptedIDs := make(map[string]struct{})
	for _, spots := range [][]domain.Spot{set.CurSpots, set.CmpSpots} {
		for _, sp := range spots {
			if sp.Status == domain.SpotStatusPreempted {
				preemptedIDs[sp.ID] = struct{}{}
			}
		}
	}

	validSpot := func(sp domain.Spot) bool {
		return sp.Daypart.Valid() && sp.Status.Valid() && !sp.Revenue.IsNegative() && sp.UnitLength >= 0
	}
	for _, sp := range set.CurSpots {
		if keep(validSpot(sp)) {
			out.CurSpots = append(out.CurSpots, sp)
		}
	}
	for _, sp := range set.CmpSpots {
		if keep(validSpot(sp)) {
			out.CmpSpots = append(out.CmpSpots, sp)
		}
	}

	validInventory := func(d domain.InventoryDay) bool {
		return d.Daypart.Valid() && d.AvailableUnits >= 0 && d.BookedUnits >= 0
	}
	for _, d := range set.CurInventory {
		if keep(validInventory(d)) {
			out.CurInventory = append(out.CurInventory, d)
		}
	}
	for _, d := range set.CmpInventory {
		if keep(validInventory(d)) {
			out.CmpInventory = append(out.CmpInventory, d)
		}
	}

	for _, mg := range set.Makegoods {
		_, linked := preemptedIDs[mg.OriginSpotID]
		if keep(mg.Daypart.Valid() && mg.OriginSpotID != "" && linked) {
			out.Makegoods = append(out.Makegoods, mg)
		}
	}

	return out
}
