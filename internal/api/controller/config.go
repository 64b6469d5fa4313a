package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/domain"
	"github.com/printadmin/storformat/internal/domain/dto"
)

func (c *Controller) GetConfig(ctx echo.Context) error {
	cfg, err := c.service.Config(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cfg)
}

func (c *Controller) UpdateConfig(ctx echo.Context) error {
	var req dto.Config
	if err := bind(ctx, &req); err != nil {
		return err
	}

	cfg, err := c.service.UpdateConfig(ctx.Request().Context(), domain.Config(req))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, cfg)
}
