// Package service holds the auth session manager: registration, login,
// access-token refresh and logout, orchestrating the store, the password
// hasher and the token issuer.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/adityasp/auth-backend/internal/apperr"
	"github.com/adityasp/auth-backend/internal/events"
	"github.com/adityasp/auth-backend/internal/hash"
	"github.com/adityasp/auth-backend/internal/logging"
	"github.com/adityasp/auth-backend/internal/models"
	"github.com/adityasp/auth-backend/internal/repo"
	"github.com/adityasp/auth-backend/internal/token"
)

const (
	RefreshTokenTTL = 15 * 24 * time.Hour

	RevokeReasonLogout = "logout"
)

// AuthService is stateless apart from its collaborators; one instance serves
// concurrent requests.
type AuthService struct {
	Repo   repo.GormRepo
	Hasher hash.PasswordHasher
	Tokens *token.Service
	Events *events.Producer
}

type LoginResult struct {
	User             models.PublicUser
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.PublicUser, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	pwHash, err := s.Hasher.Hash(password)
	if err != nil {
		l.Error("register_failed", "reason", "cannot hash password", "error", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			l.Warn("register_failed", "status", 409, "reason", "email already taken")
			return nil, apperr.ErrDuplicateEmail
		}
		l.Error("register_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":    "user_registered",
		"user_id": user.ID,
		"email":   user.Email,
	})

	pub := user.Public()
	return &pub, nil
}

// Login verifies credentials and opens a new session: a stored opaque refresh
// token valid for 15 days plus a signed 30-minute access token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password, deviceInfo string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("login_failed", "status", 401, "reason", "unknown email")
			return nil, apperr.ErrInvalidCredentials
		}
		l.Error("login_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !s.Hasher.Check(user.PasswordHash, password) {
		l.Warn("login_failed", "status", 401, "reason", "wrong password")
		return nil, apperr.ErrInvalidCredentials
	}

	refreshToken, err := token.NewOpaqueToken()
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	refreshExp := time.Now().Add(RefreshTokenTTL)
	rt := models.RefreshToken{
		Token:      refreshToken,
		UserID:     user.ID,
		ExpiresAt:  refreshExp,
		DeviceInfo: deviceInfo,
	}
	if err := s.Repo.SaveRefreshToken(ctx, &rt); err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("save refresh token: %w", err)
	}

	accessToken, err := s.Tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		l.Error("login_failed", "status", 500, "error", err)
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	s.publish(ctx, user.ID, map[string]any{
		"type":    "user_logged_in",
		"user_id": user.ID,
		"email":   user.Email,
	})

	l.Info("login_successful", "user_id", user.ID)
	return &LoginResult{
		User:             user.Public(),
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// Refresh mints a new access token for the session behind the opaque refresh
// token. Validity is a pure store lookup. The refresh token is not rotated:
// it stays usable until expiry or revocation.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.refresh")

	rt, err := s.Repo.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			l.Warn("refresh_failed", "status", 401, "reason", "unknown token")
			return "", apperr.ErrInvalidRefreshToken
		}
		l.Error("refresh_failed", "status", 500, "error", err)
		return "", fmt.Errorf("find refresh token: %w", err)
	}

	if rt.Revoked {
		l.Warn("refresh_failed", "status", 401, "reason", "revoked", "user_id", rt.UserID)
		return "", apperr.ErrRevokedToken
	}
	if !time.Now().Before(rt.ExpiresAt) {
		l.Warn("refresh_failed", "status", 401, "reason", "expired", "user_id", rt.UserID)
		return "", apperr.ErrExpiredToken
	}

	accessToken, err := s.Tokens.IssueAccessToken(rt.User.ID, rt.User.Email)
	if err != nil {
		l.Error("refresh_failed", "status", 500, "error", err)
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return accessToken, nil
}

// Logout revokes the session matching user and token. Zero affected rows is
// success: repeating a logout, or logging out an unknown token, is a no-op.
func (s *AuthService) Logout(ctx context.Context, userID uint, refreshToken string) (int64, error) {
	l := logging.FromContext(ctx).With("svc", "auth.logout", "user_id", userID)

	affected, err := s.Repo.RevokeRefreshToken(ctx, userID, refreshToken, RevokeReasonLogout)
	if err != nil {
		l.Error("logout_failed", "status", 500, "error", err)
		return 0, fmt.Errorf("revoke refresh token: %w", err)
	}

	if affected > 0 {
		s.publish(ctx, userID, map[string]any{
			"type":    "session_revoked",
			"user_id": userID,
			"reason":  RevokeReasonLogout,
		})
	}

	l.Info("logout_complete", "affected", affected)
	return affected, nil
}

func (s *AuthService) publish(ctx context.Context, userID uint, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.Events.PublishEvent(pubCtx, fmt.Sprint(userID), event); err != nil {
		logging.FromContext(ctx).Error("kafka_publish_failed", "error", err)
	}
}
