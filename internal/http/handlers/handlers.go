// Package handlers provides the HTTP handler implementations for the public
// news API: topics, articles, comments, and users.
//
// Handlers are transport-thin: they parse and validate path identifiers and
// payloads, call application services through narrow interfaces, and shape
// responses. Every fault flowing out of a service goes through the classifier
// in classify.go, which is the single point producing the HTTP-visible error.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

//
// Service contracts (context-aware)
//

// TopicService defines topic operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type TopicService interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)
	// Create inserts a new topic with the given slug and description.
	Create(ctx context.Context, slug, description string) (*domain.Topic, error)
}

// ArticleService defines article operations consumed by HTTP handlers.
type ArticleService interface {
	// List returns article summaries for the given sort/order/topic controls.
	List(ctx context.Context, sortBy, order, topic string) ([]domain.ArticleSummary, error)
	// Get returns a single article with its derived comment count.
	Get(ctx context.Context, articleID int) (*domain.ArticleDetail, error)
	// Create inserts an article after validating its foreign-key targets.
	Create(ctx context.Context, author, title, body, topic, imgURL string) (*domain.ArticleDetail, error)
	// IncrementVotes applies a signed relative vote increment.
	IncrementVotes(ctx context.Context, articleID, delta int) (*domain.Article, error)
	// Delete removes an article and its comments.
	Delete(ctx context.Context, articleID int) error
}

// CommentService defines comment operations consumed by HTTP handlers.
type CommentService interface {
	// ListForArticle returns an article's comments, newest first.
	ListForArticle(ctx context.Context, articleID int) ([]domain.Comment, error)
	// Create inserts a comment on an article.
	Create(ctx context.Context, articleID int, username, body string) (*domain.Comment, error)
	// IncrementVotes applies a signed relative vote increment.
	IncrementVotes(ctx context.Context, commentID, delta int) (*domain.Comment, error)
	// Delete removes a comment.
	Delete(ctx context.Context, commentID int) error
}

// UserService defines the read-only user operations consumed by handlers.
type UserService interface {
	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)
	// Get returns a single user by username.
	Get(ctx context.Context, username string) (*domain.User, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for all resources. It depends on
// abstract service interfaces to keep transport concerns separate from
// business logic.
type Handlers struct {
	topicSvc   TopicService
	articleSvc ArticleService
	commentSvc CommentService
	userSvc    UserService
}

// New constructs a Handlers instance bound to the given services.
func New(topicSvc TopicService, articleSvc ArticleService, commentSvc CommentService, userSvc UserService) *Handlers {
	return &Handlers{
		topicSvc:   topicSvc,
		articleSvc: articleSvc,
		commentSvc: commentSvc,
		userSvc:    userSvc,
	}
}

// pathID parses the named path parameter as a decimal integer. A
// syntactically invalid identifier is rejected here, before any storage work,
// so "malformed id" (400) is never confused with "well-formed but absent"
// (404).
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return 0, false
	}
	return id, true
}
