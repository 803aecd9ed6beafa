package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"github.com/skyline-media/revenue-insights/internal/api/controller"
	"github.com/skyline-media/revenue-insights/internal/pkg/logger"
	"github.com/skyline-media/revenue-insights/internal/pkg/store"
	"github.com/skyline-media/revenue-insights/internal/service/ingest"
	"github.com/skyline-media/revenue-insights/internal/service/insights"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(recordStore store.Store, sampleDir string) (*APIService, error) {
	svc := &APIService{router: echo.New()}
	svc.router.HideBanner = true

	svc.router.Validator = NewValidator()
	svc.router.JSONSerializer = NewJSONSerializer()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return random.String(32) },
	}))
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000"},
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	insightsService := insights.NewService(recordStore)
	ingestService := ingest.NewService(recordStore, sampleDir)
	cntrl := controller.NewController(insightsService, ingestService)

	api := svc.router.Group("/api/v1")

	api.GET("/stations", cntrl.GetStations)

	data := api.Group("/insights")
	data.GET("", cntrl.GetInsights)
	data.GET("/revenue-by-daypart", cntrl.GetRevenueByDaypart)
	data.GET("/aur-trends", cntrl.GetAURTrends)
	data.GET("/top-advertisers", cntrl.GetTopAdvertisers)
	data.GET("/sellout-rates", cntrl.GetSelloutRates)
	data.GET("/makegood-summary", cntrl.GetMakegoodSummary)

	admin := api.Group("/admin", svc.AdminMiddleware)
	admin.POST("/backfill", cntrl.Backfill)

	return svc, nil
}
