package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/service/auth"
	"github.com/printadmin/storformat/internal/service/storformat"
)

type Controller struct {
	service *storformat.Service
	auth    *auth.Service
}

func NewController(service *storformat.Service, authService *auth.Service) *Controller {
	return &Controller{service: service, auth: authService}
}

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// bind decodes and validates a request body.
func bind(ctx echo.Context, req interface{}) error {
	if err := ctx.Bind(req); err != nil {
		return err
	}
	return ctx.Validate(req)
}
