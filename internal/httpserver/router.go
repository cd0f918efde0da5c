package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityasp/auth-backend/internal/token"
)

type Deps struct {
	AuthHandler *AuthHTTP
	Tokens      *token.Service
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	bearer := &BearerAuth{Tokens: d.Tokens}

	auth := e.Group("/api/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.PUT("/login", d.AuthHandler.Login)
	auth.GET("/get-token", d.AuthHandler.GetToken, RequireRefreshCookie)
	auth.PUT("/logout", d.AuthHandler.Logout, RequireRefreshCookie, bearer.RequireAuth)
}
