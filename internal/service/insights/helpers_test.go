package insights

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/skyline-media/revenue-insights/internal/domain"
)

var spotSeq int

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testPeriod(start, end string) Period {
	return Period{Label: "current", Start: day(start), End: day(end)}
}

func testSpot(station string, dp domain.Daypart, airDate, advertiser string, revenue float64, status domain.SpotStatus) domain.Spot {
	spotSeq++
	return domain.Spot{
		ID:         fmt.Sprintf("SP-%04d", spotSeq),
		OrderID:    "ORD-1",
		Station:    station,
		Daypart:    dp,
		AirDate:    day(airDate),
		Advertiser: advertiser,
		Revenue:    decimal.NewFromFloat(revenue),
		UnitLength: 1,
		Status:     status,
	}
}

func aired(station string, dp domain.Daypart, airDate, advertiser string, revenue float64) domain.Spot {
	return testSpot(station, dp, airDate, advertiser, revenue, domain.SpotStatusAired)
}

func inventory(station string, dp domain.Daypart, date string, available, booked int64) domain.InventoryDay {
	return domain.InventoryDay{
		Station:        station,
		Daypart:        dp,
		Date:           day(date),
		AvailableUnits: available,
		BookedUnits:    booked,
	}
}
