package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexloop/vocab_server/internal/logging"
	"github.com/lexloop/vocab_server/internal/middleware"
	"github.com/lexloop/vocab_server/internal/service"
	"github.com/lexloop/vocab_server/internal/transport"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	token, user, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrValidation) || errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "incorrect username or password")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, transport.AuthResponse{
		JwtToken: token,
		User:     transport.NewUserResponse(user),
	})
}

// Refresh reissues a token for the identity the auth middleware has
// already verified. No password check and no store access happen here.
func (h *AuthHTTP) Refresh(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_refresh")

	claim, ok := middleware.UserFromContext(c)
	if !ok {
		l.Warn("refresh_error", "status", 401, "reason", "no identity in context")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
	}

	token, err := h.Svc.Renew(ctx, claim)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, transport.AuthResponse{
		JwtToken: token,
		User:     transport.UserResponseFromClaim(claim),
	})
}
