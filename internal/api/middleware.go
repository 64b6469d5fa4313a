package api

import (
	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/logger"
)

// RequestLoggerMiddleware tags every log line of a request with its request id.
func (svc *APIService) RequestLoggerMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id := ctx.Response().Header().Get(echo.HeaderXRequestID)
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.WithFields(req.Context(), constants.CtxKeyRequestID, id)))
		return next(ctx)
	}
}

func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		raw := ctx.Request().Header.Get(constants.HeaderKeySecretToken)
		if raw == "" {
			cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
			if err != nil {
				return constants.ErrUnauthorized
			}
			raw = cookie.Value
		}

		if err := svc.authService.Authorize(raw); err != nil {
			return err
		}

		return next(ctx)
	}
}
