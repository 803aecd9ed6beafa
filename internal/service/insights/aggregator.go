package insights

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/skyline-media/revenue-insights/internal/domain"
)

// Bucket accumulates sums for one (dimension value, period) cell. Buckets are
// ephemeral: rebuilt per query, never persisted.
type Bucket struct {
	Revenue   decimal.Decimal
	Units     float64
	Spots     int
	Available int64
	Booked    int64
}

// Buckets maps a dimension value to its bucket within a single period.
type Buckets map[string]*Bucket

func (b Buckets) get(key string) *Bucket {
	bucket, ok := b[key]
	if !ok {
		bucket = &Bucket{}
		b[key] = bucket
	}
	return bucket
}

// at returns the bucket for key, or a zero bucket when the dimension value
// never occurred in this period. Missing sides of a key union are zero-filled,
// never dropped.
func (b Buckets) at(key string) Bucket {
	if bucket, ok := b[key]; ok {
		return *bucket
	}
	return Bucket{}
}

// sumSpotsBy groups revenue-bearing spots by an arbitrary dimension key.
// Input order does not affect the result.
func sumSpotsBy(spots []domain.Spot, key func(domain.Spot) string) Buckets {
	buckets := make(Buckets)
	for _, spot := range spots {
		if !spot.Status.CountsRevenue() {
			continue
		}
		bucket := buckets.get(key(spot))
		bucket.Revenue = bucket.Revenue.Add(spot.Revenue)
		bucket.Units += spot.UnitLength
		bucket.Spots++
	}
	return buckets
}

// countSpotsBy groups all countable spots (aired, makegood, preempted) by a
// dimension key without any revenue filter, for exposure rates.
func countSpotsBy(spots []domain.Spot, key func(domain.Spot) string) (Buckets, map[string]int, map[string]int) {
	buckets := make(Buckets)
	preempted := make(map[string]int)
	madeGood := make(map[string]int)
	for _, spot := range spots {
		if spot.Status == domain.SpotStatusCancelled {
			continue
		}
		k := key(spot)
		buckets.get(k).Spots++
		switch spot.Status {
		case domain.SpotStatusPreempted:
			preempted[k]++
		case domain.SpotStatusMakegood:
			madeGood[k]++
		}
	}
	return buckets, preempted, madeGood
}

// sumInventoryBy groups avail capacity and booked counts by a dimension key.
func sumInventoryBy(days []domain.InventoryDay, key func(domain.InventoryDay) string) Buckets {
	buckets := make(Buckets)
	for _, day := range days {
		bucket := buckets.get(key(day))
		bucket.Available += day.AvailableUnits
		bucket.Booked += day.BookedUnits
	}
	return buckets
}

// unionKeys merges the key sets of both periods into one sorted slice so that
// dimension values present in only one period still appear in the output.
func unionKeys(sets ...Buckets) []string {
	seen := make(map[string]struct{})
	for _, set := range sets {
		for key := range set {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// money converts an engine-internal decimal sum to the wire representation.
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func fptr(v float64) *float64 {
	return &v
}

// pctChange returns (cur-prev)/prev*100, or nil when prev is not positive.
func pctChange(cur, prev decimal.Decimal) *float64 {
	if !prev.IsPositive() {
		return nil
	}
	change := cur.Sub(prev).Mul(decimal.NewFromInt(100)).Div(prev)
	return fptr(round1(change.InexactFloat64()))
}

// ratePct computes part/whole*100 with multiply-first integer arithmetic so
// threshold boundaries like 85.0 stay exact. Returns nil when whole is zero.
func ratePct(part, whole int64) *float64 {
	if whole == 0 {
		return nil
	}
	return fptr(float64(part) * 100 / float64(whole))
}
