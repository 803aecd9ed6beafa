package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/skyline-media/revenue-insights/internal/pkg/store/xpgx"
)

var (
	orderColumns     = []string{"id", "station", "daypart", "advertiser", "start_date", "end_date", "revenue"}
	spotColumns      = []string{"id", "order_id", "station", "daypart", "air_date", "advertiser", "revenue", "rate", "unit_length", "status"}
	inventoryColumns = []string{"station", "daypart", "date", "available_units", "booked_units"}
	makegoodColumns  = []string{"id", "origin_spot_id", "station", "daypart", "date", "advertiser", "revenue_impact"}
)

func applyFilter(query sq.SelectBuilder, dateColumn string, filter RecordFilter) sq.SelectBuilder {
	query = query.Where(sq.GtOrEq{dateColumn: filter.Start}).
		Where(sq.LtOrEq{dateColumn: filter.End})
	if filter.Station != nil {
		query = query.Where(sq.Eq{"station": *filter.Station})
	}
	if filter.Daypart != nil {
		query = query.Where(sq.Eq{"daypart": *filter.Daypart})
	}
	return query
}

func (s *store) ListOrders(ctx context.Context, filter RecordFilter) ([]domain.Order, error) {
	query := applyFilter(builder().Select(orderColumns...).From(tableOrders), "start_date", filter)

	selected, err := xpgx.Select[domain.Order](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListSpots(ctx context.Context, filter RecordFilter) ([]domain.Spot, error) {
	query := applyFilter(builder().Select(spotColumns...).From(tableSpots), "air_date", filter)

	selected, err := xpgx.Select[domain.Spot](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListInventory(ctx context.Context, filter RecordFilter) ([]domain.InventoryDay, error) {
	query := applyFilter(builder().Select(inventoryColumns...).From(tableInventory), "date", filter)

	selected, err := xpgx.Select[domain.InventoryDay](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListMakegoods(ctx context.Context, filter RecordFilter) ([]domain.Makegood, error) {
	query := applyFilter(builder().Select(makegoodColumns...).From(tableMakegoods), "date", filter)

	selected, err := xpgx.Select[domain.Makegood](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListStations(ctx context.Context) ([]string, error) {
	query := builder().Select("distinct station").From(tableSpots).OrderBy("station")

	stations, err := xpgx.SelectScalar[string](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return stations, nil
}

func (s *store) UpsertOrders(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}

	query := builder().Insert(tableOrders).Columns(orderColumns...)
	for _, o := range orders {
		query = query.Values(o.ID, o.Station, o.Daypart, o.Advertiser, o.StartDate, o.EndDate, o.Revenue)
	}
	query = query.Suffix(`
on conflict (id)
do update
set
	station = excluded.station,
	daypart = excluded.daypart,
	advertiser = excluded.advertiser,
	start_date = excluded.start_date,
	end_date = excluded.end_date,
	revenue = excluded.revenue`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) UpsertSpots(ctx context.Context, spots []domain.Spot) error {
	if len(spots) == 0 {
		return nil
	}

	query := builder().Insert(tableSpots).Columns(spotColumns...)
	for _, sp := range spots {
		query = query.Values(sp.ID, sp.OrderID, sp.Station, sp.Daypart, sp.AirDate, sp.Advertiser, sp.Revenue, sp.Rate, sp.UnitLength, sp.Status)
	}
	query = query.Suffix(`
on conflict (id)
do update
set
	revenue = excluded.revenue,
	rate = excluded.rate,
	status = excluded.status`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) UpsertInventory(ctx context.Context, days []domain.InventoryDay) error {
	if len(days) == 0 {
		return nil
	}

	query := builder().Insert(tableInventory).Columns(inventoryColumns...)
	for _, d := range days {
		query = query.Values(d.Station, d.Daypart, d.Date, d.AvailableUnits, d.BookedUnits)
	}
	query = query.Suffix(`
on conflict (station, daypart, date)
do update
set
	available_units = excluded.available_units,
	booked_units = excluded.booked_units`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) UpsertMakegoods(ctx context.Context, makegoods []domain.Makegood) error {
	if len(makegoods) == 0 {
		return nil
	}

	query := builder().Insert(tableMakegoods).Columns(makegoodColumns...)
	for _, m := range makegoods {
		query = query.Values(m.ID, m.OriginSpotID, m.Station, m.Daypart, m.Date, m.Advertiser, m.RevenueImpact)
	}
	query = query.Suffix(`
on conflict (id)
do update
set
	revenue_impact = excluded.revenue_impact`)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		return wrapErr(err)
	}

	return nil
}
