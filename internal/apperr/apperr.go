// Package apperr defines the closed set of domain errors the service can
// return, each carrying the HTTP status and client-safe message the transport
// layer translates it to.
package apperr

import "net/http"

type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrDuplicateEmail      = &Error{Status: http.StatusConflict, Message: "user already exists with this email"}
	ErrInvalidCredentials  = &Error{Status: http.StatusUnauthorized, Message: "invalid email or password"}
	ErrInvalidRefreshToken = &Error{Status: http.StatusUnauthorized, Message: "invalid refresh token"}
	ErrRevokedToken        = &Error{Status: http.StatusUnauthorized, Message: "your access is already revoked, please login again"}
	ErrExpiredToken        = &Error{Status: http.StatusUnauthorized, Message: "expired refresh token"}

	ErrMissingRefreshToken = &Error{Status: http.StatusUnauthorized, Message: "refresh token not found, please login again"}
	ErrInvalidAccessToken  = &Error{Status: http.StatusUnauthorized, Message: "invalid token, please login again"}
	ErrAccessTokenExpired  = &Error{Status: http.StatusUnauthorized, Message: "token expired, please login again"}
	ErrTokenNotYetValid    = &Error{Status: http.StatusUnauthorized, Message: "token not yet valid"}
)
