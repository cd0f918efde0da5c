package repo

import (
	"context"
	"time"

	"github.com/adityasp/auth-backend/internal/models"
)

func (r GormRepo) SaveRefreshToken(ctx context.Context, rt *models.RefreshToken) error {
	return r.DB.WithContext(ctx).Create(rt).Error
}

// FindRefreshToken looks a token up by value with its owning user preloaded.
// Revoked and expired rows are returned as-is so the caller can tell the
// failure modes apart. Returns gorm.ErrRecordNotFound when absent.
func (r GormRepo) FindRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.DB.WithContext(ctx).Preload("User").Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// RevokeRefreshToken flips revoked on the row matching both user and token,
// recording reason and time. Already-revoked rows are left untouched, so the
// affected count reports 1 on the first revocation and 0 on any repeat.
func (r GormRepo) RevokeRefreshToken(ctx context.Context, userID uint, token, reason string) (int64, error) {
	now := time.Now()
	result := r.DB.WithContext(ctx).Model(&models.RefreshToken{}).
		Where("user_id = ? AND token = ? AND revoked = ?", userID, token, false).
		Updates(map[string]any{
			"revoked":        true,
			"revoked_reason": reason,
			"revoked_at":     now,
		})
	return result.RowsAffected, result.Error
}
