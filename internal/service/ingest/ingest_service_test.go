package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/skyline-media/revenue-insights/internal/pkg/store"
)

// captureStore records every upserted batch; list methods are unused here.
type captureStore struct {
	mu        sync.Mutex
	orders    []domain.Order
	spots     []domain.Spot
	inventory []domain.InventoryDay
	makegoods []domain.Makegood
}

func (c *captureStore) ListOrders(context.Context, store.RecordFilter) ([]domain.Order, error) {
	return nil, nil
}

func (c *captureStore) ListSpots(context.Context, store.RecordFilter) ([]domain.Spot, error) {
	return nil, nil
}

func (c *captureStore) ListInventory(context.Context, store.RecordFilter) ([]domain.InventoryDay, error) {
	return nil, nil
}

func (c *captureStore) ListMakegoods(context.Context, store.RecordFilter) ([]domain.Makegood, error) {
	return nil, nil
}

func (c *captureStore) ListStations(context.Context) ([]string, error) { return nil, nil }

func (c *captureStore) UpsertOrders(_ context.Context, orders []domain.Order) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orders = append(c.orders, orders...)
	return nil
}

func (c *captureStore) UpsertSpots(_ context.Context, spots []domain.Spot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.spots = append(c.spots, spots...)
	return nil
}

func (c *captureStore) UpsertInventory(_ context.Context, days []domain.InventoryDay) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inventory = append(c.inventory, days...)
	return nil
}

func (c *captureStore) UpsertMakegoods(_ context.Context, makegoods []domain.Makegood) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.makegoods = append(c.makegoods, makegoods...)
	return nil
}

func writeFixture(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func seedExportDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFixture(t, dir, "orders.csv", `id,station,daypart,advertiser,start_date,end_date,revenue
ORD-1,KHQ-TV,PR,Pacific Auto Group,2025-01-06,2025-03-30,20000
ORD-2,KHQ-TV,EN,Cascade Insurance,not-a-date,2025-03-30,4000
`)
	writeFixture(t, dir, "spots.csv", `id,order_id,station,daypart,air_date,advertiser,revenue,rate,length,status
SP-1,ORD-1,KHQ-TV,PR,2025-02-01,Pacific Auto Group,1200,1200,30,aired
SP-2,ORD-1,KHQ-TV,PR,2025-02-08,Pacific Auto Group,2400,2400,60,aired
,ORD-1,KHQ-TV,pr,2025-02-15,Pacific Auto Group,1100,,,aired
SP-4,ORD-1,KHQ-TV,PR,2025-02-22,Pacific Auto Group,1200,1200,30,vaporized
`)
	writeFixture(t, dir, "inventory.csv", `station,daypart,date,total_avails,booked
KHQ-TV,PR,2025-02-01,1000,870
`)

	return dir
}

func TestBackfillCountsAndSkips(t *testing.T) {
	st := &captureStore{}
	dir := seedExportDir(t)

	report, err := NewService(st, dir).Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Orders)
	assert.Equal(t, 3, report.Spots)
	assert.Equal(t, 1, report.Inventory)
	assert.Zero(t, report.Makegoods)
	// one order with a bad date, one spot with an unknown status
	assert.Equal(t, 2, report.Skipped)

	require.Len(t, st.orders, 1)
	assert.Equal(t, "ORD-1", st.orders[0].ID)
	require.Len(t, st.inventory, 1)
	assert.Equal(t, int64(1000), st.inventory[0].AvailableUnits)
	assert.Equal(t, int64(870), st.inventory[0].BookedUnits)
}

func TestBackfillNormalizesSpotFields(t *testing.T) {
	st := &captureStore{}
	dir := seedExportDir(t)

	_, err := NewService(st, dir).Backfill(context.Background())
	require.NoError(t, err)

	byID := map[string]domain.Spot{}
	for _, s := range st.spots {
		byID[s.ID] = s
	}

	// 60-second spot counts as two 30-second-equivalent units
	assert.Equal(t, 1.0, byID["SP-1"].UnitLength)
	assert.Equal(t, 2.0, byID["SP-2"].UnitLength)
	require.NotNil(t, byID["SP-1"].Rate)
	assert.Equal(t, "1200", byID["SP-1"].Rate.String())

	// missing id, lowercase daypart and blank length/rate still load
	var generated *domain.Spot
	for id, s := range byID {
		if id != "SP-1" && id != "SP-2" {
			s := s
			generated = &s
		}
	}
	require.NotNil(t, generated)
	assert.NotEmpty(t, generated.ID)
	assert.Equal(t, domain.DaypartPrime, generated.Daypart)
	assert.Equal(t, 1.0, generated.UnitLength)
	assert.Nil(t, generated.Rate)
}

func TestBackfillMakegoodsFileIsOptional(t *testing.T) {
	st := &captureStore{}
	dir := seedExportDir(t)

	report, err := NewService(st, dir).Backfill(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Makegoods)
	assert.Empty(t, st.makegoods)
}

func TestBackfillLoadsMakegoods(t *testing.T) {
	st := &captureStore{}
	dir := seedExportDir(t)
	writeFixture(t, dir, "makegoods.csv", `id,origin_spot_id,station,daypart,date,advertiser,revenue_impact
MG-1,SP-9,KHQ-TV,PR,2025-02-10,Pacific Auto Group,250.50
MG-2,SP-10,KHQ-TV,XX,2025-02-11,Pacific Auto Group,100
`)

	report, err := NewService(st, dir).Backfill(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, report.Makegoods)
	require.Len(t, st.makegoods, 1)
	mg := st.makegoods[0]
	assert.Equal(t, "MG-1", mg.ID)
	assert.Equal(t, "SP-9", mg.OriginSpotID)
	assert.Equal(t, "250.5", mg.RevenueImpact.String())
	// the bad daypart row is counted, not fatal
	assert.Equal(t, 3, report.Skipped)
}

func TestBackfillMissingRequiredFileFails(t *testing.T) {
	st := &captureStore{}
	dir := seedExportDir(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "spots.csv")))

	_, err := NewService(st, dir).Backfill(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "spots.csv")
}
