package api

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/skyline-media/revenue-insights/internal/pkg/constants"
	"github.com/skyline-media/revenue-insights/internal/pkg/utils"
)

// AdminMiddleware guards mutating endpoints with the shared-secret token.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrUnauthorized
		}

		secret := viper.GetString(constants.ViperSecretKey)
		token, err := utils.ParseAuthToken(cookie.Value, secret)
		if err != nil {
			return constants.ErrUnauthorized
		}

		if token.Secret != secret {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
