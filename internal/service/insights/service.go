package insights

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/skyline-media/revenue-insights/internal/domain/dto"
	"github.com/skyline-media/revenue-insights/internal/pkg/constants"
	"github.com/skyline-media/revenue-insights/internal/pkg/logger"
	"github.com/skyline-media/revenue-insights/internal/pkg/store"
)

const defaultAdvertiserLimit = 10

// Service runs the insights engine against the record store. A single query
// is a pure, synchronous computation over the fetched snapshot; concurrent
// queries share no mutable state.
type Service struct {
	store store.Store
	now   func() time.Time
}

func NewService(recordStore store.Store) *Service {
	return &Service{store: recordStore, now: time.Now}
}

// NewServiceWithClock pins the clock, for pacing projections in tests.
func NewServiceWithClock(recordStore store.Store, now func() time.Time) *Service {
	return &Service{store: recordStore, now: now}
}

func (s *Service) ListStations(ctx context.Context) ([]string, error) {
	return s.store.ListStations(ctx)
}

// BuildInsights computes all five metric views, the alert list and the
// summary in one pass over the query's record snapshot.
func (s *Service) BuildInsights(ctx context.Context, query dto.InsightsQuery) (*domain.InsightsPayload, error) {
	filter, err := s.resolveFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	start, end, err := parseDates(query)
	if err != nil {
		return nil, err
	}

	curPeriod, cmpPeriod, err := ResolvePeriods(start, end, s.now())
	if err != nil {
		return nil, constants.NewInvalidFilterError(err.Error())
	}

	set, err := s.fetch(ctx, filter, curPeriod, cmpPeriod)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	raw := len(set.CurSpots) + len(set.CmpSpots)
	set = sanitize(set)
	if set.Excluded > 0 {
		logger.Warnf(ctx, "excluded %d malformed rows from aggregation", set.Excluded)
	}
	if len(set.CmpSpots) == 0 && raw > 0 {
		// comparison period empty: YoY fields degrade to null, query continues
		logger.Debugf(ctx, "no comparison-period records for window %s..%s", cmpPeriod.Start.Format(dateLayout), cmpPeriod.End.Format(dateLayout))
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultAdvertiserLimit
	}

	rev := buildRevenueView(set.CurSpots, set.CmpSpots, curPeriod, cmpPeriod)
	aur := buildAURView(set.CurSpots, curPeriod)
	adv := buildAdvertiserView(set.CurSpots, set.CmpSpots, limit)
	sell := buildSelloutView(set.CurInventory, set.CmpInventory, curPeriod, s.now())
	mg := buildMakegoodView(set.CurSpots, set.Makegoods)

	alerts := EvaluateAlerts(aur, adv, sell, mg)

	return assemble(rev, aur, adv, sell, mg, alerts, curPeriod, cmpPeriod, len(set.Orders), set.Excluded), nil
}

// resolveFilter validates the station/daypart filters. Unknown values abort
// the query with no partial payload.
func (s *Service) resolveFilter(ctx context.Context, query dto.InsightsQuery) (store.RecordFilter, error) {
	filter := store.RecordFilter{}

	if query.Daypart != "" {
		dp := domain.Daypart(query.Daypart)
		if !dp.Valid() {
			return filter, constants.NewInvalidFilterError(fmt.Sprintf("unknown daypart code %q", query.Daypart))
		}
		filter.Daypart = &dp
	}

	if query.Station != "" {
		stations, err := s.store.ListStations(ctx)
		if err != nil {
			return filter, fmt.Errorf("list stations: %w", err)
		}
		known := false
		for _, st := range stations {
			if st == query.Station {
				known = true
				break
			}
		}
		if !known {
			return filter, constants.NewInvalidFilterError(fmt.Sprintf("unknown station %q", query.Station))
		}
		station := query.Station
		filter.Station = &station
	}

	return filter, nil
}

func parseDates(query dto.InsightsQuery) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if query.StartDate != "" {
		if start, err = time.Parse(dateLayout, query.StartDate); err != nil {
			return start, end, constants.NewInvalidFilterError(fmt.Sprintf("bad start_date %q", query.StartDate))
		}
	}
	if query.EndDate != "" {
		if end, err = time.Parse(dateLayout, query.EndDate); err != nil {
			return start, end, constants.NewInvalidFilterError(fmt.Sprintf("bad end_date %q", query.EndDate))
		}
	}

	return start, end, nil
}

// fetch pulls both periods' record sets concurrently. Each list call returns
// rows in arbitrary order; the aggregator never depends on ordering.
func (s *Service) fetch(ctx context.Context, filter store.RecordFilter, cur, cmp Period) (recordSet, error) {
	curFilter := filter
	curFilter.Start, curFilter.End = cur.Start, cur.End
	cmpFilter := filter
	cmpFilter.Start, cmpFilter.End = cmp.Start, cmp.End

	var set recordSet
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() (err error) {
		set.CurSpots, err = s.store.ListSpots(egCtx, curFilter)
		return err
	})
	eg.Go(func() (err error) {
		set.CmpSpots, err = s.store.ListSpots(egCtx, cmpFilter)
		return err
	})
	eg.Go(func() (err error) {
		set.CurInventory, err = s.store.ListInventory(egCtx, curFilter)
		return err
	})
	eg.Go(func() (err error) {
		set.CmpInventory, err = s.store.ListInventory(egCtx, cmpFilter)
		return err
	})
	eg.Go(func() (err error) {
		set.Makegoods, err = s.store.ListMakegoods(egCtx, curFilter)
		return err
	})
	eg.Go(func() (err error) {
		set.Orders, err = s.store.ListOrders(egCtx, curFilter)
		return err
	})

	if err := eg.Wait(); err != nil {
		return recordSet{}, err
	}

	return set, nil
}
