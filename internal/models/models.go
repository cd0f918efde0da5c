package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"not null"                 json:"name"`
	Email        string    `gorm:"uniqueIndex;not null"     json:"email"`
	PasswordHash string    `gorm:"not null"                 json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RefreshToken is one issued refresh session. Rows are only ever created or
// revoked, never deleted or un-revoked.
type RefreshToken struct {
	ID            uint       `gorm:"primaryKey"             json:"id"`
	Token         string     `gorm:"uniqueIndex;not null"   json:"-"`
	UserID        uint       `gorm:"index;not null"         json:"user_id"`
	User          User       `json:"-"`
	ExpiresAt     time.Time  `gorm:"not null"               json:"expires_at"`
	Revoked       bool       `gorm:"not null;default:false" json:"revoked"`
	RevokedReason *string    `json:"revoked_reason,omitempty"`
	RevokedAt     *time.Time `json:"revoked_at,omitempty"`
	DeviceInfo    string     `json:"device_info,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// PublicUser is the client-safe projection of a User.
type PublicUser struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
