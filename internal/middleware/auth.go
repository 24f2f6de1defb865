package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lexloop/vocab_server/internal/tokens"
)

const userContextKey = "user_claim"

type JWTAuth struct {
	JWTSecret []byte
}

func NewJWTAuth(secret []byte) *JWTAuth {
	return &JWTAuth{JWTSecret: secret}
}

// RequireAuth guards a route with a bearer token. Every failure mode
// (missing header, wrong scheme, bad signature, expired) gets the same
// 401 so the response never says which check failed. On success the
// embedded user claim is attached to the echo context, read-only from
// there on.
func (m *JWTAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || scheme != "Bearer" || token == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
		}

		claims, err := tokens.ClaimsFromToken(token, m.JWTSecret)
		if err != nil || claims == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
		}

		c.Set(userContextKey, claims.User)

		return next(c)
	}
}

func UserFromContext(c echo.Context) (tokens.UserClaim, bool) {
	claim, ok := c.Get(userContextKey).(tokens.UserClaim)
	return claim, ok
}
