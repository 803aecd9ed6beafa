package dto

// InsightsQuery carries the query-boundary parameters for every insights
// endpoint. Dates use YYYY-MM-DD; both empty means trailing 90 days ending
// today. Limit only applies to the top-advertisers endpoint.
type InsightsQuery struct {
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Station   string `query:"station" validate:"omitempty,max=16"`
	Daypart   string `query:"daypart" validate:"omitempty,oneof=EM DT EF EN PA PR LN LF"`
	Limit     int    `query:"limit" validate:"omitempty,min=1,max=50"`
}

type StationsResponse struct {
	Stations []string `json:"stations"`
}
