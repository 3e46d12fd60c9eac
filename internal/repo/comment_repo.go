// Package repo: Comment repository.
//
// Thin persistence functions for the Comment model. Not-found rows surface as
// ErrNotFound; constraint violations (e.g. an unknown author username on
// insert) propagate as raw driver errors for the handler-level classifier.
package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ListCommentsForArticle returns all comments attached to articleID, newest
// first. The caller is responsible for verifying that the article exists;
// an existing article with no comments yields an empty slice.
func ListCommentsForArticle(ctx context.Context, db *gorm.DB, articleID int) ([]domain.Comment, error) {
	out := make([]domain.Comment, 0)
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// CreateComment inserts a new comment row for articleID authored by username
// and returns it with generated fields populated. A dangling article or
// username reference fails with the engine's FOREIGN KEY violation.
func CreateComment(ctx context.Context, db *gorm.DB, articleID int, username, body string) (*domain.Comment, error) {
	c := &domain.Comment{
		Body:      body,
		ArticleID: articleID,
		Author:    username,
	}
	if err := db.WithContext(ctx).Omit(clause.Associations).Create(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

// IncrementCommentVotes applies a signed relative increment to a comment's
// vote counter (votes = votes + delta) and returns the updated row.
// Returns ErrNotFound when the comment does not exist.
func IncrementCommentVotes(ctx context.Context, db *gorm.DB, commentID, delta int) (*domain.Comment, error) {
	res := db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("comment_id = ?", commentID).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var c domain.Comment
	if err := db.WithContext(ctx).First(&c, "comment_id = ?", commentID).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// DeleteComment removes a comment by id. Returns ErrNotFound when nothing
// was deleted; repeating a delete therefore reports not-found, never a
// second success.
func DeleteComment(ctx context.Context, db *gorm.DB, commentID int) error {
	res := db.WithContext(ctx).
		Where("comment_id = ?", commentID).
		Delete(&domain.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
