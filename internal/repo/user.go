package repo

import (
	"context"

	"github.com/adityasp/auth-backend/internal/models"
)

// CreateUser inserts the user. A duplicate email surfaces as
// gorm.ErrDuplicatedKey via the driver's error translation.
func (r GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// FindUserByEmail returns gorm.ErrRecordNotFound when no user matches.
// Email comparison is exact, as stored.
func (r GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r GormRepo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
