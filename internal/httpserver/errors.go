package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/adityasp/auth-backend/internal/apperr"
	"github.com/adityasp/auth-backend/internal/logging"
)

// NewHTTPErrorHandler is the single place errors become HTTP responses.
// Domain errors carry their own status and client-safe message; everything
// else is a generic 500 with details kept to the logs.
func NewHTTPErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		var ae *apperr.Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ae):
			status = ae.Status
			message = ae.Message
		case errors.As(err, &he):
			status = he.Code
			message = fmt.Sprint(he.Message)
		default:
			logging.FromContext(c.Request().Context()).Error("unhandled_error", "error", err)
		}

		if writeErr := c.JSON(status, echo.Map{"message": message}); writeErr != nil {
			logging.FromContext(c.Request().Context()).Error("error_response_write_failed", "error", writeErr)
		}
	}
}
