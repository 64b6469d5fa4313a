package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/pkg/constants"
	"github.com/printadmin/storformat/internal/pkg/logger"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := constants.CodeOf(err)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %v", c.Request().Method, c.Path(), err)
		msg = http.StatusText(code)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
