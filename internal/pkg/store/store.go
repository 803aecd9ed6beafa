package store

import (
	"context"
	"time"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/skyline-media/revenue-insights/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// RecordFilter restricts a record query to a date range and optional
// station/daypart. Rows come back in arbitrary order.
type RecordFilter struct {
	Start   time.Time
	End     time.Time
	Station *string
	Daypart *domain.Daypart
}

type Store interface {
	ListOrders(ctx context.Context, filter RecordFilter) ([]domain.Order, error)
	ListSpots(ctx context.Context, filter RecordFilter) ([]domain.Spot, error)
	ListInventory(ctx context.Context, filter RecordFilter) ([]domain.InventoryDay, error)
	ListMakegoods(ctx context.Context, filter RecordFilter) ([]domain.Makegood, error)
	ListStations(ctx context.Context) ([]string, error)

	UpsertOrders(ctx context.Context, orders []domain.Order) error
	UpsertSpots(ctx context.Context, spots []domain.Spot) error
	UpsertInventory(ctx context.Context, days []domain.InventoryDay) error
	UpsertMakegoods(ctx context.Context, makegoods []domain.Makegood) error
}

type store struct {
	pool *Pool
}

func NewStore(pool *Pool) Store {
	return &store{pool}
}
