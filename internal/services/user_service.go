// Package services: UserService. Users are read-only in this API.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// UserService implements the read-only use-cases around users.
type UserService struct {
	// DB is the process-wide database handle shared by all requests.
	DB *gorm.DB
}

// NewUserService returns a UserService bound to db.
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return repo.ListUsers(ctx, s.DB)
}

// Get returns the user with the given username, or ErrUserNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*domain.User, error) {
	u, err := repo.GetUser(ctx, s.DB, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
