// Package token issues and verifies the signed access tokens and generates
// the opaque refresh tokens. Refresh tokens are random strings, not JWTs:
// their validity is established by store lookup only.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTokenTTL = 30 * time.Minute

	opaqueTokenBytes = 32
)

var ErrUnexpectedSigningMethod = errors.New("unexpected signing method")

type AccessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// UserID parses the numeric subject claim.
func (c *AccessClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse subject claim: %w", err)
	}
	return uint(id), nil
}

type Service struct {
	Secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{Secret: secret}
}

func (s *Service) IssueAccessToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.Secret)
}

// ParseAccessToken verifies signature and time bounds. Failures surface the
// jwt/v5 sentinel errors (ErrTokenExpired, ErrTokenNotValidYet,
// ErrTokenSignatureInvalid) so callers can map them to distinct kinds.
func (s *Service) ParseAccessToken(raw string) (*AccessClaims, error) {
	var claims AccessClaims
	tkn, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrUnexpectedSigningMethod
		}
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return &claims, nil
}

// NewOpaqueToken returns 32 cryptographically random bytes as an unpadded
// URL-safe base64 string.
func NewOpaqueToken() (string, error) {
	buf := make([]byte, opaqueTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
