package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/domain/dto"
)

func (c *Controller) ListMaterials(ctx echo.Context) error {
	materials, err := c.service.ListMaterials(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, materials)
}

func (c *Controller) GetMaterial(ctx echo.Context) error {
	material, err := c.service.GetMaterial(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, material)
}

func (c *Controller) SaveMaterial(ctx echo.Context) error {
	var req dto.Material
	if err := bind(ctx, &req); err != nil {
		return err
	}

	material, err := c.service.SaveMaterial(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, material)
}

func (c *Controller) DeleteMaterial(ctx echo.Context) error {
	if err := c.service.DeleteMaterial(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ListFinishes(ctx echo.Context) error {
	finishes, err := c.service.ListFinishes(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, finishes)
}

func (c *Controller) GetFinish(ctx echo.Context) error {
	finish, err := c.service.GetFinish(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, finish)
}

func (c *Controller) SaveFinish(ctx echo.Context) error {
	var req dto.Finish
	if err := bind(ctx, &req); err != nil {
		return err
	}

	finish, err := c.service.SaveFinish(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, finish)
}

func (c *Controller) DeleteFinish(ctx echo.Context) error {
	if err := c.service.DeleteFinish(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) ListProducts(ctx echo.Context) error {
	products, err := c.service.ListProducts(ctx.Request().Context())
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, products)
}

func (c *Controller) GetProduct(ctx echo.Context) error {
	product, err := c.service.GetProduct(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, product)
}

func (c *Controller) SaveProduct(ctx echo.Context) error {
	var req dto.Product
	if err := bind(ctx, &req); err != nil {
		return err
	}

	product, err := c.service.SaveProduct(ctx.Request().Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, product)
}

func (c *Controller) DeleteProduct(ctx echo.Context) error {
	if err := c.service.DeleteProduct(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
