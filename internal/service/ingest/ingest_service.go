package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/skyline-media/revenue-insights/internal/pkg/logger"
	"github.com/skyline-media/revenue-insights/internal/pkg/store"
)

const upsertBatchSize = 500

// Service loads WideOrbit-style CSV exports into the normalized tables.
// Expected files under the source directory:
//
//	orders.csv     id,station,daypart,advertiser,start_date,end_date,revenue
//	spots.csv      id,order_id,station,daypart,air_date,advertiser,revenue,rate,length,status
//	inventory.csv  station,daypart,date,total_avails,booked
//	makegoods.csv  id,origin_spot_id,station,daypart,date,advertiser,revenue_impact (optional)
//
// Spot length is seconds and is normalized to a 30-second-equivalent
// multiplier on load. Rows that fail to parse are skipped and counted.
type Service struct {
	store store.Store
	dir   string
}

func NewService(recordStore store.Store, dir string) *Service {
	return &Service{store: recordStore, dir: dir}
}

// Backfill ingests all export files concurrently and upserts them in batches.
func (s *Service) Backfill(ctx context.Context) (*domain.BackfillReport, error) {
	report := &domain.BackfillReport{}
	var mu sync.Mutex

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		orders, skipped, err := readCSV(s.path("orders.csv"), parseOrder)
		if err != nil {
			return fmt.Errorf("orders.csv: %w", err)
		}
		if err := upsertBatched(egCtx, orders, s.store.UpsertOrders); err != nil {
			return fmt.Errorf("upsert orders: %w", err)
		}
		mu.Lock()
		report.Orders = len(orders)
		report.Skipped += skipped
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		spots, skipped, err := readCSV(s.path("spots.csv"), parseSpot)
		if err != nil {
			return fmt.Errorf("spots.csv: %w", err)
		}
		if err := upsertBatched(egCtx, spots, s.store.UpsertSpots); err != nil {
			return fmt.Errorf("upsert spots: %w", err)
		}
		mu.Lock()
		report.Spots = len(spots)
		report.Skipped += skipped
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		days, skipped, err := readCSV(s.path("inventory.csv"), parseInventory)
		if err != nil {
			return fmt.Errorf("inventory.csv: %w", err)
		}
		if err := upsertBatched(egCtx, days, s.store.UpsertInventory); err != nil {
			return fmt.Errorf("upsert inventory: %w", err)
		}
		mu.Lock()
		report.Inventory = len(days)
		report.Skipped += skipped
		mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		makegoods, skipped, err := readCSV(s.path("makegoods.csv"), parseMakegood)
		if err != nil {
			if os.IsNotExist(err) {
				// older exports have no makegood file
				return nil
			}
			return fmt.Errorf("makegoods.csv: %w", err)
		}
		if err := upsertBatched(egCtx, makegoods, s.store.UpsertMakegoods); err != nil {
			return fmt.Errorf("upsert makegoods: %w", err)
		}
		mu.Lock()
		report.Makegoods = len(makegoods)
		report.Skipped += skipped
		mu.Unlock()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	logger.Infof(ctx, "backfill done: %d orders, %d spots, %d inventory days, %d makegoods, %d skipped",
		report.Orders, report.Spots, report.Inventory, report.Makegoods, report.Skipped)

	return report, nil
}

func (s *Service) path(name string) string {
	return filepath.Join(s.dir, name)
}

// row gives parsers name-based access to one CSV record.
type row struct {
	header map[string]int
	fields []string
}

func (r row) get(name string) string {
	i, ok := r.header[name]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

func readCSV[T any](path string, parse func(row) (T, error)) ([]T, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	headerFields, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read header: %w", err)
	}
	header := make(map[string]int, len(headerFields))
	for i, name := range headerFields {
		header[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var out []T
	skipped := 0
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		item, err := parse(row{header: header, fields: fields})
		if err != nil {
			skipped++
			continue
		}
		out = append(out, item)
	}

	return out, skipped, nil
}

func upsertBatched[T any](ctx context.Context, items []T, upsert func(context.Context, []T) error) error {
	for start := 0; start < len(items); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(items) {
			end = len(items)
		}
		if err := upsert(ctx, items[start:end]); err != nil {
			return err
		}
	}
	return nil
}

func parseOrder(r row) (domain.Order, error) {
	start, err := parseDate(r.get("start_date"))
	if err != nil {
		return domain.Order{}, err
	}
	end, err := parseDate(r.get("end_date"))
	if err != nil {
		return domain.Order{}, err
	}
	revenue, err := parseMoney(r.get("revenue"))
	if err != nil {
		return domain.Order{}, err
	}
	dp, err := parseDaypart(r.get("daypart"))
	if err != nil {
		return domain.Order{}, err
	}

	return domain.Order{
		ID:         orDefault(r.get("id"), uuid.NewString()),
		Station:    r.get("station"),
		Daypart:    dp,
		Advertiser: r.get("advertiser"),
		StartDate:  start,
		EndDate:    end,
		Revenue:    revenue,
	}, nil
}

func parseSpot(r row) (domain.Spot, error) {
	airDate, err := parseDate(r.get("air_date"))
	if err != nil {
		return domain.Spot{}, err
	}
	revenue, err := parseMoney(r.get("revenue"))
	if err != nil {
		return domain.Spot{}, err
	}
	dp, err := parseDaypart(r.get("daypart"))
	if err != nil {
		return domain.Spot{}, err
	}
	status := domain.SpotStatus(r.get("status"))
	if !status.Valid() {
		return domain.Spot{}, fmt.Errorf("bad status %q", r.get("status"))
	}
	lengthSec, err := strconv.Atoi(orDefault(r.get("length"), "30"))
	if err != nil || lengthSec <= 0 {
		return domain.Spot{}, fmt.Errorf("bad length %q", r.get("length"))
	}

	spot := domain.Spot{
		ID:         orDefault(r.get("id"), uuid.NewString()),
		OrderID:    r.get("order_id"),
		Station:    r.get("station"),
		Daypart:    dp,
		AirDate:    airDate,
		Advertiser: r.get("advertiser"),
		Revenue:    revenue,
		UnitLength: float64(lengthSec) / 30,
		Status:     status,
	}
	if rate := r.get("rate"); rate != "" {
		parsed, err := parseMoney(rate)
		if err != nil {
			return domain.Spot{}, err
		}
		spot.Rate = &parsed
	}

	return spot, nil
}

func parseInventory(r row) (domain.InventoryDay, error) {
	date, err := parseDate(r.get("date"))
	if err != nil {
		return domain.InventoryDay{}, err
	}
	dp, err := parseDaypart(r.get("daypart"))
	if err != nil {
		return domain.InventoryDay{}, err
	}
	avails, err := strconv.ParseInt(r.get("total_avails"), 10, 64)
	if err != nil {
		return domain.InventoryDay{}, err
	}
	booked, err := strconv.ParseInt(r.get("booked"), 10, 64)
	if err != nil {
		return domain.InventoryDay{}, err
	}

	return domain.InventoryDay{
		Station:        r.get("station"),
		Daypart:        dp,
		Date:           date,
		AvailableUnits: avails,
		BookedUnits:    booked,
	}, nil
}

func parseMakegood(r row) (domain.Makegood, error) {
	date, err := parseDate(r.get("date"))
	if err != nil {
		return domain.Makegood{}, err
	}
	dp, err := parseDaypart(r.get("daypart"))
	if err != nil {
		return domain.Makegood{}, err
	}
	impact, err := parseMoney(r.get("revenue_impact"))
	if err != nil {
		return domain.Makegood{}, err
	}

	return domain.Makegood{
		ID:            orDefault(r.get("id"), uuid.NewString()),
		OriginSpotID:  r.get("origin_spot_id"),
		Station:       r.get("station"),
		Daypart:       dp,
		Date:          date,
		Advertiser:    r.get("advertiser"),
		RevenueImpact: impact,
	}, nil
}

func parseMoney(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

func parseDaypart(s string) (domain.Daypart, error) {
	dp := domain.Daypart(strings.ToUpper(s))
	if !dp.Valid() {
		return dp, fmt.Errorf("bad daypart %q", s)
	}
	return dp, nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
