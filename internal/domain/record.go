package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Daypart is one of the eight fixed broadcast daypart codes.
type Daypart string

const (
	DaypartEarlyMorning Daypart = "EM"
	DaypartDaytime      Daypart = "DT"
	DaypartEarlyFringe  Daypart = "EF"
	DaypartEarlyNews    Daypart = "EN"
	DaypartPrimeAccess  Daypart = "PA"
	DaypartPrime        Daypart = "PR"
	DaypartLateNews     Daypart = "LN"
	DaypartLateFringe   Daypart = "LF"
)

// DaypartOrder is the canonical broadcast-day ordering used by every view.
var DaypartOrder = []Daypart{
	DaypartEarlyMorning,
	DaypartDaytime,
	DaypartEarlyFringe,
	DaypartEarlyNews,
	DaypartPrimeAccess,
	DaypartPrime,
	DaypartLateNews,
	DaypartLateFringe,
}

var daypartNames = map[Daypart]string{
	DaypartEarlyMorning: "Early Morning",
	DaypartDaytime:      "Daytime",
	DaypartEarlyFringe:  "Early Fringe",
	DaypartEarlyNews:    "Early News",
	DaypartPrimeAccess:  "Prime Access",
	DaypartPrime:        "Prime",
	DaypartLateNews:     "Late News",
	DaypartLateFringe:   "Late Fringe",
}

func (d Daypart) Valid() bool {
	_, ok := daypartNames[d]
	return ok
}

func (d Daypart) Name() string {
	return daypartNames[d]
}

type SpotStatus string

const (
	SpotStatusAired     SpotStatus = "aired"
	SpotStatusPreempted SpotStatus = "preempted"
	SpotStatusMakegood  SpotStatus = "makegood"
	SpotStatusCancelled SpotStatus = "cancelled"
)

func (s SpotStatus) Valid() bool {
	switch s {
	case SpotStatusAired, SpotStatusPreempted, SpotStatusMakegood, SpotStatusCancelled:
		return true
	}
	return false
}

// CountsRevenue reports whether a spot in this status contributes revenue.
func (s SpotStatus) CountsRevenue() bool {
	return s == SpotStatusAired || s == SpotStatusMakegood
}

// Order is one ad buy contract covering a date range on a station/daypart.
type Order struct {
	ID         string          `db:"id"`
	Station    string          `db:"station"`
	Daypart    Daypart         `db:"daypart"`
	Advertiser string          `db:"advertiser"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	Revenue    decimal.Decimal `db:"revenue"`
}

// Spot is a single commercial placement. Rate is nil for bundled buys;
// UnitLength is the spot duration as a 30-second-equivalent multiplier
// (15s = 0.5, 30s = 1.0, 60s = 2.0).
type Spot struct {
	ID         string           `db:"id"`
	OrderID    string           `db:"order_id"`
	Station    string           `db:"station"`
	Daypart    Daypart          `db:"daypart"`
	AirDate    time.Time        `db:"air_date"`
	Advertiser string           `db:"advertiser"`
	Revenue    decimal.Decimal  `db:"revenue"`
	Rate       *decimal.Decimal `db:"rate"`
	UnitLength float64          `db:"unit_length"`
	Status     SpotStatus       `db:"status"`
}

// InventoryDay is the avail capacity and booked count for one
// station/daypart/date cell.
type InventoryDay struct {
	Station        string    `db:"station"`
	Daypart        Daypart   `db:"daypart"`
	Date           time.Time `db:"date"`
	AvailableUnits int64     `db:"available_units"`
	BookedUnits    int64     `db:"booked_units"`
}

// Makegood is a replacement spot record linked to the preempted original.
// RevenueImpact can be zero when the makegood was value-neutral.
type Makegood struct {
	ID            string          `db:"id"`
	OriginSpotID  string          `db:"origin_spot_id"`
	Station       string          `db:"station"`
	Daypart       Daypart         `db:"daypart"`
	Date          time.Time       `db:"date"`
	Advertiser    string          `db:"advertiser"`
	RevenueImpact decimal.Decimal `db:"revenue_impact"`
}
