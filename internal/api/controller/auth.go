package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/printadmin/storformat/internal/domain/dto"
	"github.com/printadmin/storformat/internal/pkg/constants"
)

func (c *Controller) LoginAdmin(ctx echo.Context) error {
	var req dto.AdminLoginRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}

	resp, err := c.auth.LoginAdmin(ctx.Request().Context(), req.Secret)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    resp.AuthToken,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, resp)
}
