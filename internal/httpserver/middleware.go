package httpserver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/adityasp/auth-backend/internal/apperr"
	"github.com/adityasp/auth-backend/internal/logging"
	"github.com/adityasp/auth-backend/internal/token"
)

const (
	ctxKeyRefreshToken = "refreshToken"
	ctxKeyUserID       = "userID"
	ctxKeyEmail        = "email"
)

// RequireRefreshCookie pulls the refresh-token cookie into the echo context
// for the handlers behind it.
func RequireRefreshCookie(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(RefreshCookieName)
		if err != nil || cookie.Value == "" {
			return apperr.ErrMissingRefreshToken
		}
		c.Set(ctxKeyRefreshToken, cookie.Value)
		return next(c)
	}
}

type BearerAuth struct {
	Tokens *token.Service
}

// RequireAuth verifies the Authorization bearer access token and stores the
// caller's identity in the context. Verification failures map to distinct
// kinds: bad signature, expired, not yet valid.
func (m *BearerAuth) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return apperr.ErrInvalidAccessToken
		}

		claims, err := m.Tokens.ParseAccessToken(raw)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				return apperr.ErrAccessTokenExpired
			case errors.Is(err, jwt.ErrTokenNotValidYet):
				return apperr.ErrTokenNotYetValid
			default:
				return apperr.ErrInvalidAccessToken
			}
		}

		userID, err := claims.UserID()
		if err != nil {
			return apperr.ErrInvalidAccessToken
		}

		c.Set(ctxKeyUserID, userID)
		c.Set(ctxKeyEmail, claims.Email)
		return next(c)
	}
}

func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)

			l := base.With(
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
				"user_agent", c.Request().UserAgent(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			dur := time.Since(start)
			status := c.Response().Status

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
				status = c.Response().Status
			}

			switch {
			case status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Response().Size)
			}
			return nil
		}
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}
