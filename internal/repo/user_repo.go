// Package repo: User repository. Users are read-only reference data in this
// API; there are no mutation functions.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListUsers returns every user.
func ListUsers(ctx context.Context, db *gorm.DB) ([]domain.User, error) {
	out := make([]domain.User, 0)
	err := db.WithContext(ctx).Find(&out).Error
	return out, err
}

// GetUser fetches a single user by username, or ErrNotFound if missing.
func GetUser(ctx context.Context, db *gorm.DB, username string) (*domain.User, error) {
	var u domain.User
	err := db.WithContext(ctx).
		Where("username = ?", username).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// CheckUserExists reports whether a user row exists for username. Returns
// nil when it does, ErrNotFound when it does not.
func CheckUserExists(ctx context.Context, db *gorm.DB, username string) error {
	var u string
	err := db.WithContext(ctx).
		Model(&domain.User{}).
		Select("username").
		Where("username = ?", username).
		First(&u).Error
	return err
}
