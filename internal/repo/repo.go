// Package repo is the relational credential store: pure CRUD over users and
// refresh tokens. Domain classification (revoked vs expired vs valid) lives
// in the service layer.
package repo

import "gorm.io/gorm"

type GormRepo struct {
	DB *gorm.DB
}

func New(db *gorm.DB) GormRepo {
	return GormRepo{DB: db}
}
