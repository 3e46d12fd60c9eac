// Package repo: Topic repository.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListTopics returns every topic. An empty table yields an empty slice.
func ListTopics(ctx context.Context, db *gorm.DB) ([]domain.Topic, error) {
	out := make([]domain.Topic, 0)
	err := db.WithContext(ctx).Find(&out).Error
	return out, err
}

// CreateTopic inserts a new topic row and returns it.
func CreateTopic(ctx context.Context, db *gorm.DB, slug, description string) (*domain.Topic, error) {
	t := &domain.Topic{Slug: slug, Description: description}
	if err := db.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}

// CheckTopicExists reports whether a topic row exists for slug. Returns nil
// when it does, ErrNotFound when it does not, and the raw DB error otherwise.
func CheckTopicExists(ctx context.Context, db *gorm.DB, slug string) error {
	var s string
	err := db.WithContext(ctx).
		Model(&domain.Topic{}).
		Select("slug").
		Where("slug = ?", slug).
		First(&s).Error
	return err
}
