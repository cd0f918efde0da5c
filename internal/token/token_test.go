package token

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService([]byte("test-jwt-secret"))
}

func TestIssueAccessToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	raw, err := svc.IssueAccessToken(42, "ann@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := svc.ParseAccessToken(raw)
	require.NoError(t, err)

	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "ann@x.com", claims.Email)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(AccessTokenTTL), claims.ExpiresAt.Time, 2*time.Second)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := newTestService().IssueAccessToken(1, "a@b.com")
	require.NoError(t, err)

	claims, err := NewService([]byte("another-secret")).ParseAccessToken(raw)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestParseAccessToken_Expired(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	expired := signedWithClaims(t, svc.Secret, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})

	claims, err := svc.ParseAccessToken(expired)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseAccessToken_NotYetValid(t *testing.T) {
	t.Parallel()

	svc := newTestService()
	future := signedWithClaims(t, svc.Secret, jwt.RegisteredClaims{
		Subject:   "1",
		NotBefore: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(2 * time.Hour)),
	})

	claims, err := svc.ParseAccessToken(future)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, jwt.ErrTokenNotValidYet)
}

func TestParseAccessToken_RejectsWrongAlgorithm(t *testing.T) {
	t.Parallel()

	svc := newTestService()

	tkn := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := tkn.SignedString(svc.Secret)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(raw)
	require.Error(t, err)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrUnexpectedSigningMethod)
}

func TestParseAccessToken_Garbage(t *testing.T) {
	t.Parallel()

	claims, err := newTestService().ParseAccessToken("not-a-jwt")
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestNewOpaqueToken_Format(t *testing.T) {
	t.Parallel()

	tok, err := NewOpaqueToken()
	require.NoError(t, err)

	assert.Len(t, tok, 43)
	assert.False(t, strings.ContainsAny(tok, "=+/"))

	decoded, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestNewOpaqueToken_Distinct(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		tok, err := NewOpaqueToken()
		require.NoError(t, err)
		_, dup := seen[tok]
		require.False(t, dup, "opaque token repeated")
		seen[tok] = struct{}{}
	}
}

func signedWithClaims(t *testing.T, secret []byte, claims jwt.RegisteredClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return raw
}
