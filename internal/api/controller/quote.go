package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/domain/dto"
)

func (c *Controller) Calculate(ctx echo.Context) error {
	var req dto.CalculateRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Calculate(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) Quote(ctx echo.Context) error {
	var req dto.QuoteRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Quote(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}

func (c *Controller) QuoteTable(ctx echo.Context) error {
	var req dto.QuoteTableRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.QuoteTable(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, res)
}
