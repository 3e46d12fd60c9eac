// Package services: CommentService.
//
// Comment use-cases: listing per article, creation with concurrent article
// existence validation, relative vote increments, and deletion. Required
// fields are checked before any storage access; the author reference is left
// to the storage engine's FOREIGN KEY constraint, which the handler-level
// classifier reports as not-found.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// CommentService implements the use-cases around comments.
type CommentService struct {
	// DB is the process-wide database handle shared by all requests.
	DB *gorm.DB
}

// NewCommentService returns a CommentService bound to db.
func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{DB: db}
}

// ListForArticle returns the comments on an article, newest first. The
// article existence check and the listing query run concurrently; a missing
// article is ErrArticleNotFound even though the listing alone would have
// returned an empty slice.
func (s *CommentService) ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error) {
	var out []domain.Comment

	check := func(ctx context.Context) error {
		if err := repo.CheckArticleExists(ctx, s.DB, articleID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrArticleNotFound
			}
			return err
		}
		return nil
	}
	fetch := func(ctx context.Context) error {
		var err error
		out, err = repo.ListCommentsForArticle(ctx, s.DB, articleID)
		return err
	}

	if err := runAll(ctx, check, fetch); err != nil {
		return nil, err
	}
	return out, nil
}

// Create validates the payload and inserts a comment on articleID.
//
// username and body must both be non-empty; either missing fails the whole
// operation before any query executes, and is distinct from "referenced user
// does not exist" (which surfaces from the insert's FOREIGN KEY constraint
// and is reclassified downstream). The article existence check runs
// concurrently with the insert and takes priority when both fail.
func (s *CommentService) Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error) {
	if username == "" || body == "" {
		return nil, ErrBadRequest
	}

	var created *domain.Comment

	check := func(ctx context.Context) error {
		if err := repo.CheckArticleExists(ctx, s.DB, articleID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrArticleNotFound
			}
			return err
		}
		return nil
	}
	insert := func(ctx context.Context) error {
		var err error
		created, err = repo.CreateComment(ctx, s.DB, articleID, username, body)
		return err
	}

	if err := runAll(ctx, check, insert); err != nil {
		return nil, err
	}
	return created, nil
}

// IncrementVotes applies a signed relative vote increment to a comment and
// returns the updated row, or ErrNotFound when the comment does not exist.
func (s *CommentService) IncrementVotes(ctx context.Context, commentID, delta int) (*domain.Comment, error) {
	c, err := repo.IncrementCommentVotes(ctx, s.DB, commentID, delta)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a comment by id. A repeated delete of the same id is
// ErrNotFound, never a second success.
func (s *CommentService) Delete(ctx context.Context, commentID int) error {
	if err := repo.DeleteComment(ctx, s.DB, commentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
