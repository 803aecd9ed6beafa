package controller

import (
	"github.com/skyline-media/revenue-insights/internal/service/ingest"
	"github.com/skyline-media/revenue-insights/internal/service/insights"
)

type Controller struct {
	insights *insights.Service
	ingest   *ingest.Service
}

func NewController(insightsService *insights.Service, ingestService *ingest.Service) *Controller {
	return &Controller{insights: insightsService, ingest: ingestService}
}
