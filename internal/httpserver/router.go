package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexloop/vocab_server/internal/middleware"
)

type Deps struct {
	AuthHandler   *AuthHTTP
	UserHandler   *UserHTTP
	WordHandler   *WordHTTP
	SearchHandler *SearchHTTP
	JWTSecret     []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	authMw := middleware.NewJWTAuth(d.JWTSecret)

	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/refresh", d.AuthHandler.Refresh, authMw.RequireAuth)

	api.POST("/user", d.UserHandler.Create)

	words := api.Group("/word")
	words.GET("/search", d.SearchHandler.SearchWords, authMw.RequireAuth)
	words.GET("", d.WordHandler.GetWords, authMw.RequireAuth)
	words.POST("", d.WordHandler.CreateWord, authMw.RequireAuth)
	words.GET("/:id", d.WordHandler.GetWord)
	words.PUT("/:id", d.WordHandler.UpdateWord, authMw.RequireAuth)
	words.PATCH("/:id", d.WordHandler.UpdateWord, authMw.RequireAuth)
	words.DELETE("/:id", d.WordHandler.DeleteWord, authMw.RequireAuth)
}
