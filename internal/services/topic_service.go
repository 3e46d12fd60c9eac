// Package services: TopicService.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// TopicService implements the use-cases around topics.
type TopicService struct {
	// DB is the process-wide database handle shared by all requests.
	DB *gorm.DB
}

// NewTopicService returns a TopicService bound to db.
func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{DB: db}
}

// List returns every topic.
func (s *TopicService) List(ctx context.Context) ([]domain.Topic, error) {
	return repo.ListTopics(ctx, s.DB)
}

// Create inserts a new topic. Both slug and description are required and
// must be non-empty; a violation is a validation fault raised before any
// query executes.
func (s *TopicService) Create(ctx context.Context, slug, description string) (*domain.Topic, error) {
	if slug == "" || description == "" {
		return nil, ErrBadRequest
	}
	return repo.CreateTopic(ctx, s.DB, slug, description)
}
