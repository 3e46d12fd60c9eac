// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model, including the dynamic listing query builder.
//
// All functions are context-aware and accept a *gorm.DB handle. They follow
// the "thin repository" approach: no business logic, only CRUD persistence
// and query composition.
//
// Error semantics:
//   - When an article is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - Out-of-allow-list sort controls return ErrInvalidSortKey/ErrInvalidOrder
//     before any SQL is composed or executed.
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated for the handler-level classifier.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for consistency across the service layer.
var ErrNotFound = gorm.ErrRecordNotFound

// Sort-control faults raised by the listing query builder.
var (
	ErrInvalidSortKey = errors.New("invalid sort_by value")
	ErrInvalidOrder   = errors.New("invalid order value")
)

// articleSortKeys is the closed set of accepted sort_by values. sort_by and
// order land in clause position, where bind parameters cannot be used, so
// this allow-list is the injection gate: nothing outside it ever reaches the
// query text.
var articleSortKeys = map[string]bool{
	"author":          true,
	"title":           true,
	"article_id":      true,
	"topic":           true,
	"created_at":      true,
	"votes":           true,
	"article_img_url": true,
	"comment_count":   true,
}

var orderKeys = map[string]bool{
	"ASC":  true,
	"DESC": true,
}

// articleSummaryColumns is the listing projection: everything but the body,
// plus the aggregated comment_count.
const articleSummaryColumns = "articles.author AS author, articles.title AS title, " +
	"articles.article_id AS article_id, articles.topic AS topic, " +
	"articles.created_at AS created_at, articles.votes AS votes, " +
	"articles.article_img_url AS article_img_url, " +
	"COUNT(comments.comment_id) AS comment_count"

// ValidateArticleSort checks sortBy and order against the allow-lists.
// Empty values are accepted (they take the defaults). This is the hard gate
// the service layer applies before issuing any storage work for a listing.
func ValidateArticleSort(sortBy, order string) error {
	if sortBy != "" && !articleSortKeys[sortBy] {
		return ErrInvalidSortKey
	}
	if order != "" && !orderKeys[order] {
		return ErrInvalidOrder
	}
	return nil
}

// ListArticles returns article summaries with derived comment counts,
// optionally filtered by topic (bound parameter) and ordered by the given
// sort controls. Defaults are created_at DESC.
//
// The allow-list gate runs again here so the builder is safe even when
// called directly: sortBy/order are only ever interpolated after validation.
func ListArticles(ctx context.Context, db *gorm.DB, sortBy, order, topic string) ([]domain.ArticleSummary, error) {
	if err := ValidateArticleSort(sortBy, order); err != nil {
		return nil, err
	}
	if sortBy == "" {
		sortBy = "created_at"
	}
	if order == "" {
		order = "DESC"
	}

	q := db.WithContext(ctx).
		Table("articles").
		Select(articleSummaryColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if topic != "" {
		q = q.Where("articles.topic = ?", topic)
	}

	out := make([]domain.ArticleSummary, 0)
	err := q.Order(sortBy + " " + order).Scan(&out).Error
	return out, err
}

// GetArticle fetches a single article by id, including the derived
// comment_count. Returns ErrNotFound when no such article exists.
func GetArticle(ctx context.Context, db *gorm.DB, articleID int) (*domain.ArticleDetail, error) {
	var out domain.ArticleDetail
	res := db.WithContext(ctx).
		Table("articles").
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", articleID).
		Group("articles.article_id").
		Scan(&out)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return &out, nil
}

// CheckArticleExists reports whether an article row exists for articleID.
// Returns nil when it does, ErrNotFound when it does not, and the raw DB
// error otherwise.
func CheckArticleExists(ctx context.Context, db *gorm.DB, articleID int) error {
	var id int
	err := db.WithContext(ctx).
		Model(&domain.Article{}).
		Select("article_id").
		Where("article_id = ?", articleID).
		First(&id).Error
	return err
}

// CreateArticle inserts a new article row and returns it with generated
// fields (id, timestamp, vote default) populated. FK violations for a
// missing author or topic propagate as raw driver errors.
func CreateArticle(ctx context.Context, db *gorm.DB, author, title, body, topic, imgURL string) (*domain.Article, error) {
	a := &domain.Article{
		Author:        author,
		Title:         title,
		Body:          body,
		Topic:         topic,
		ArticleImgURL: imgURL,
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

// IncrementArticleVotes applies a signed relative increment to an article's
// vote counter in a single statement (votes = votes + delta) and returns the
// updated row. The increment is atomic per statement, so concurrent
// increments compose without read-modify-write races at this layer.
// Returns ErrNotFound when the article does not exist.
func IncrementArticleVotes(ctx context.Context, db *gorm.DB, articleID, delta int) (*domain.Article, error) {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("article_id = ?", articleID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var a domain.Article
	if err := db.WithContext(ctx).First(&a, "article_id = ?", articleID).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteArticle removes an article by id; its comments cascade. Returns
// ErrNotFound when nothing was deleted, so a repeated delete reports the
// missing row instead of silently succeeding.
func DeleteArticle(ctx context.Context, db *gorm.DB, articleID int) error {
	res := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Delete(&domain.Article{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
