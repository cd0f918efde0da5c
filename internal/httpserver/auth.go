package httpserver

import (
	"net/http"
	"net/mail"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/adityasp/auth-backend/internal/logging"
	"github.com/adityasp/auth-backend/internal/service"
)

const minPasswordLen = 8

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_register")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "please input name")
	}
	if err := validateCredentials(req.Email, req.Password); err != nil {
		return err
	}

	user, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"user":    user,
		"message": "user created",
	})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth_login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	if err := validateCredentials(req.Email, req.Password); err != nil {
		return err
	}

	res, err := h.Svc.Login(ctx, req.Email, req.Password, c.Request().UserAgent())
	if err != nil {
		return err
	}

	// The refresh token travels only in the cookie, never in the body.
	c.SetCookie(CreateCookie(RefreshCookieName, res.RefreshToken, "/", res.RefreshExpiresAt))

	return c.JSON(http.StatusOK, echo.Map{
		"user":        res.User,
		"accessToken": res.AccessToken,
	})
}

// GetToken exchanges a valid refresh-token cookie for a fresh access token.
// On any failure the cookie is cleared so the client falls back to login.
func (h *AuthHTTP) GetToken(c echo.Context) error {
	ctx := c.Request().Context()

	refreshToken := c.Get(ctxKeyRefreshToken).(string)

	accessToken, err := h.Svc.Refresh(ctx, refreshToken)
	if err != nil {
		c.SetCookie(DeleteCookie(RefreshCookieName, "/"))
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": accessToken,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	userID := c.Get(ctxKeyUserID).(uint)
	refreshToken := c.Get(ctxKeyRefreshToken).(string)

	affected, err := h.Svc.Logout(ctx, userID, refreshToken)
	if err != nil {
		return err
	}

	c.SetCookie(DeleteCookie(RefreshCookieName, "/"))

	return c.JSON(http.StatusOK, echo.Map{
		"message": "logged out",
		"revoked": affected > 0,
	})
}

func validateCredentials(email, password string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "not a valid e-mail address")
	}
	if len(password) < minPasswordLen {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 8 characters long")
	}
	return nil
}
