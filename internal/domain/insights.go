package domain

// Result types returned by the insights engine. Percentage fields are plain
// numbers; a nil pointer means "not available", which is distinct from zero
// and serializes as an explicit JSON null.

type PeriodInfo struct {
	Label     string `json:"label"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type RevenueDaypart struct {
	Daypart     string   `json:"daypart"`
	DaypartName string   `json:"daypart_name"`
	CYRevenue   float64  `json:"cy_revenue"`
	PYRevenue   float64  `json:"py_revenue"`
	YoYPct      *float64 `json:"yoy_pct"`
	SharePct    *float64 `json:"share_pct"`
	WoWPct      *float64 `json:"wow_pct"`
	MoMPct      *float64 `json:"mom_pct"`
	Flag        bool     `json:"flag"`
}

type RevenueView struct {
	Dayparts    []RevenueDaypart `json:"dayparts"`
	TotalCY     float64          `json:"total_cy"`
	TotalPY     float64          `json:"total_py"`
	TotalYoYPct *float64         `json:"total_yoy_pct"`
}

type AURSeries struct {
	Daypart     string     `json:"daypart"`
	DaypartName string     `json:"daypart_name"`
	Values      []*float64 `json:"values"`
	Trend       string     `json:"trend"`
	Flag        bool       `json:"flag"`
}

type AURView struct {
	Months []string    `json:"months"`
	Series []AURSeries `json:"series"`
}

type AdvertiserRow struct {
	Name     string  `json:"name"`
	Revenue  float64 `json:"revenue"`
	SharePct float64 `json:"share_pct"`
	IsNew    bool    `json:"is_new"`
	Flag     bool    `json:"concentration_flag"`
}

type AdvertiserView struct {
	Advertisers    []AdvertiserRow `json:"advertisers"`
	HHI            float64         `json:"hhi"`
	Top5Share      *float64        `json:"top5_share"`
	NewCount       int             `json:"new_count"`
	ReturningCount int             `json:"returning_count"`
	TotalRevenue   float64         `json:"total_revenue"`
}

type SelloutDaypart struct {
	Daypart        string   `json:"daypart"`
	DaypartName    string   `json:"daypart_name"`
	BookedUnits    int64    `json:"booked_units"`
	AvailableUnits int64    `json:"available_units"`
	CYRate         *float64 `json:"cy_rate"`
	PYRate         *float64 `json:"py_rate"`
	ProjectedRate  *float64 `json:"projected_rate"`
	PricingFlag    bool     `json:"pricing_flag"`
}

type SelloutView struct {
	Dayparts []SelloutDaypart `json:"dayparts"`
}

type MakegoodRow struct {
	Station       string   `json:"station,omitempty"`
	Daypart       string   `json:"daypart,omitempty"`
	DaypartName   string   `json:"daypart_name,omitempty"`
	Preempted     int      `json:"preempted"`
	Makegood      int      `json:"makegood"`
	TotalSpots    int      `json:"total_spots"`
	CombinedRate  *float64 `json:"combined_rate"`
	RevenueImpact float64  `json:"revenue_impact"`
	Flag          bool     `json:"flag"`
}

type MakegoodView struct {
	Stations  []MakegoodRow `json:"stations"`
	ByDaypart []MakegoodRow `json:"by_daypart"`
}

type AlertType string

const (
	AlertSellout       AlertType = "sellout"
	AlertRateErosion   AlertType = "rate_erosion"
	AlertConcentration AlertType = "concentration"
	AlertMakegood      AlertType = "makegood"
)

type AlertSeverity string

const (
	SeverityHigh   AlertSeverity = "high"
	SeverityMedium AlertSeverity = "medium"
)

type Alert struct {
	Type     AlertType     `json:"type"`
	Message  string        `json:"message"`
	Severity AlertSeverity `json:"severity"`
}

// Summary is the narrative-ready digest assembled from the same computation
// pass as the structured views.
type Summary struct {
	CurrentPeriod    PeriodInfo `json:"current_period"`
	ComparisonPeriod PeriodInfo `json:"comparison_period"`
	TotalCYRevenue   float64    `json:"total_cy_revenue"`
	TotalPYRevenue   float64    `json:"total_py_revenue"`
	TotalYoYPct      *float64   `json:"total_yoy_pct"`
	TopDaypart       *string    `json:"top_daypart"`
	TopAdvertiser    *string    `json:"top_advertiser"`
	AlertCount       int        `json:"alert_count"`
	ExcludedRows     int        `json:"excluded_rows"`
	KeyFacts         []string   `json:"key_facts"`
}

type InsightsPayload struct {
	Revenue     *RevenueView    `json:"revenue"`
	AUR         *AURView        `json:"aur"`
	Advertisers *AdvertiserView `json:"advertisers"`
	Sellout     *SelloutView    `json:"sellout"`
	Makegood    *MakegoodView   `json:"makegood"`
	Alerts      []Alert         `json:"alerts"`
	Summary     Summary         `json:"summary"`
}

type BackfillReport struct {
	Orders    int `json:"orders"`
	Spots     int `json:"spots"`
	Inventory int `json:"inventory"`
	Makegoods int `json:"makegoods"`
	Skipped   int `json:"skipped"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
