package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skyline-media/revenue-insights/internal/domain"
	"github.com/skyline-media/revenue-insights/internal/domain/dto"
)

func (c *Controller) GetStations(ctx echo.Context) error {
	stations, err := c.insights.ListStations(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.StationsResponse{Stations: stations})
}

func (c *Controller) bindQuery(ctx echo.Context) (dto.InsightsQuery, error) {
	var query dto.InsightsQuery
	if err := ctx.Bind(&query); err != nil {
		return query, err
	}
	if err := ctx.Validate(&query); err != nil {
		return query, err
	}
	return query, nil
}

// buildPayload runs the single engine pass every insights endpoint is served
// from, so per-view responses can never drift from the full payload.
func (c *Controller) buildPayload(ctx echo.Context) (*domain.InsightsPayload, error) {
	query, err := c.bindQuery(ctx)
	if err != nil {
		return nil, err
	}
	return c.insights.BuildInsights(ctx.Request().Context(), query)
}

func (c *Controller) GetInsights(ctx echo.Context) error {
	payload, err := c.buildPayload(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payload)
}

func (c *Controller) GetRevenueByDaypart(ctx echo.Context) error {
	payload, err := c.buildPayload(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payload.Revenue)
}

func (c *Controller) GetAURTrends(ctx echo.Context) error {
	payload, err := c.buildPayload(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payload.AUR)
}

func (c *Controller) GetTopAdvertisers(ctx echo.Context) error {
	payload, err := c.buildPayload(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payload.Advertisers)
}

func (c *Controller) GetSelloutRates(ctx echo.Context) error {
	payload, err := c.buildPayload(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payload.Sellout)
}

func (c *Controller) GetMakegoodSummary(ctx echo.Context) error {
	payload, err := c.buildPayload(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, payload.Makegood)
}
