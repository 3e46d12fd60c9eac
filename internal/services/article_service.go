// Package services: ArticleService.
//
// This file implements the article use-cases: listing with dynamic sort and
// topic filtering, single-article retrieval, creation with foreign-key
// validation, relative vote increments, and deletion. Payload validation and
// the allow-list gate run before any storage work; foreign-key existence
// checks fan out concurrently with (or ahead of) the primary statement and
// are joined with deterministic fault priority.
package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/repo"
)

// DefaultArticleImgURL is stored when a creation payload omits the image URL.
const DefaultArticleImgURL = "no img_url"

// ArticleService implements the use-cases around articles.
type ArticleService struct {
	// DB is the process-wide database handle shared by all requests.
	DB *gorm.DB
}

// NewArticleService returns an ArticleService bound to db.
func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{DB: db}
}

// List returns article summaries ordered and filtered by the given controls.
//
// Sort validation is a synchronous gate: an out-of-allow-list sortBy or order
// returns ErrBadRequest before any query executes. When topic is supplied,
// the topic existence check and the listing query are issued concurrently;
// a missing topic wins over the (legally empty) filtered result, so filtering
// by an unknown topic is a not-found fault, not an empty 200.
func (s *ArticleService) List(ctx context.Context, sortBy, order, topic string) ([]domain.ArticleSummary, error) {
	if err := repo.ValidateArticleSort(sortBy, order); err != nil {
		return nil, ErrBadRequest
	}

	var out []domain.ArticleSummary
	fetch := func(ctx context.Context) error {
		var err error
		out, err = repo.ListArticles(ctx, s.DB, sortBy, order, topic)
		return err
	}

	if topic == "" {
		if err := fetch(ctx); err != nil {
			return nil, err
		}
		return out, nil
	}

	checkTopic := func(ctx context.Context) error {
		if err := repo.CheckTopicExists(ctx, s.DB, topic); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	}

	// Existence first: the missing-topic fault outranks anything the
	// listing query produces.
	if err := runAll(ctx, checkTopic, fetch); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns the full article (body included) with its derived
// comment_count, or ErrArticleNotFound.
func (s *ArticleService) Get(ctx context.Context, articleID int) (*domain.ArticleDetail, error) {
	a, err := repo.GetArticle(ctx, s.DB, articleID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create validates the payload, verifies the author and topic exist (both
// checks issued concurrently), inserts the article, and re-reads it so the
// response carries generated fields and a zero comment_count.
//
// A missing required field is a validation fault; a well-formed but dangling
// author or topic reference is an existence fault. The check-then-insert
// window is not transactional: should a referenced row vanish in between,
// the insert's FOREIGN KEY violation is still classified as not-found.
func (s *ArticleService) Create(ctx context.Context, author, title, body, topic, imgURL string) (*domain.ArticleDetail, error) {
	if author == "" || title == "" || body == "" || topic == "" {
		return nil, ErrBadRequest
	}
	if imgURL == "" {
		imgURL = DefaultArticleImgURL
	}

	checkAuthor := func(ctx context.Context) error {
		if err := repo.CheckUserExists(ctx, s.DB, author); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	}
	checkTopic := func(ctx context.Context) error {
		if err := repo.CheckTopicExists(ctx, s.DB, topic); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	}
	if err := runAll(ctx, checkAuthor, checkTopic); err != nil {
		return nil, err
	}

	a, err := repo.CreateArticle(ctx, s.DB, author, title, body, topic, imgURL)
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, a.ArticleID)
}

// IncrementVotes applies a signed relative vote increment to an article and
// returns the updated row. The existence check runs concurrently with the
// increment; when the article is missing, the existence fault is the one
// reported regardless of which statement settled first.
func (s *ArticleService) IncrementVotes(ctx context.Context, articleID, delta int) (*domain.Article, error) {
	var updated *domain.Article

	check := func(ctx context.Context) error {
		if err := repo.CheckArticleExists(ctx, s.DB, articleID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return ErrArticleNotFound
			}
			return err
		}
		return nil
	}
	patch := func(ctx context.Context) error {
		var err error
		updated, err = repo.IncrementArticleVotes(ctx, s.DB, articleID, delta)
		return err
	}

	if err := runAll(ctx, check, patch); err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an article and its comments. Deleting a missing (or already
// deleted) id is ErrArticleNotFound, never a silent no-op.
func (s *ArticleService) Delete(ctx context.Context, articleID int) error {
	if err := repo.DeleteArticle(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}
