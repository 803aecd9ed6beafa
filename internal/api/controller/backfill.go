package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (c *Controller) Backfill(ctx echo.Context) error {
	report, err := c.ingest.Backfill(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, report)
}
