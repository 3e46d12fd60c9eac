package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// test DB helper: unique in-memory DB per call, FKs enforced, full schema.
func newNewsDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:news_repo_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

// seeded DB helper: schema plus the demo fixture rows.
func newSeededDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := newNewsDB(t)
	if err := Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestValidateArticleSort(t *testing.T) {
	// empties take the defaults
	if err := ValidateArticleSort("", ""); err != nil {
		t.Fatalf("empty controls should pass: %v", err)
	}
	// every allow-listed column
	for col := range articleSortKeys {
		if err := ValidateArticleSort(col, "ASC"); err != nil {
			t.Fatalf("column %q should pass: %v", col, err)
		}
	}
	// out-of-list column, including injection-shaped input
	for _, bad := range []string{"body", "votes; DROP TABLE articles", "Votes"} {
		if err := ValidateArticleSort(bad, ""); !errors.Is(err, ErrInvalidSortKey) {
			t.Fatalf("sort_by %q expected ErrInvalidSortKey, got %v", bad, err)
		}
	}
	// bad order values, case-sensitive
	for _, bad := range []string{"sideways", "asc", "desc"} {
		if err := ValidateArticleSort("", bad); !errors.Is(err, ErrInvalidOrder) {
			t.Fatalf("order %q expected ErrInvalidOrder, got %v", bad, err)
		}
	}
}

func TestListArticles_DefaultOrderAndCommentCount(t *testing.T) {
	db := newSeededDB(t)

	out, err := ListArticles(context.Background(), db, "", "", "")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 articles, got %d", len(out))
	}
	// default created_at DESC: article 3 (Jul 27) first, article 4 (Jul 5) last
	if out[0].ArticleID != 3 || out[3].ArticleID != 4 {
		t.Fatalf("unexpected default order: %+v", out)
	}
	for _, a := range out {
		if a.Title == "" || a.Author == "" {
			t.Fatalf("summary missing fields: %+v", a)
		}
		switch a.ArticleID {
		case 1:
			if a.CommentCount != 2 {
				t.Fatalf("article 1 comment_count = %d, want 2", a.CommentCount)
			}
		case 2:
			if a.CommentCount != 0 {
				t.Fatalf("article 2 comment_count = %d, want 0", a.CommentCount)
			}
		}
	}
}

func TestListArticles_SortByVotesAsc(t *testing.T) {
	db := newSeededDB(t)

	out, err := ListArticles(context.Background(), db, "votes", "ASC", "")
	if err != nil {
		t.Fatalf("ListArticles: %v", err)
	}
	for i := 1; i < len(out); i++ {
		if out[i-1].Votes > out[i].Votes {
			t.Fatalf("votes not ascending at %d: %+v", i, out)
		}
	}
	if out[len(out)-1].ArticleID != 1 {
		t.Fatalf("article 1 (100 votes) should sort last: %+v", out)
	}
}

func TestListArticles_TopicFilter(t *testing.T) {
	db := newSeededDB(t)

	cats, err := ListArticles(context.Background(), db, "", "", "cats")
	if err != nil {
		t.Fatalf("ListArticles(cats): %v", err)
	}
	if len(cats) != 1 || cats[0].ArticleID != 4 {
		t.Fatalf("unexpected cats listing: %+v", cats)
	}

	// a real topic with no articles is an empty slice, not nil and not an error
	paper, err := ListArticles(context.Background(), db, "", "", "paper")
	if err != nil {
		t.Fatalf("ListArticles(paper): %v", err)
	}
	if paper == nil || len(paper) != 0 {
		t.Fatalf("expected empty non-nil slice, got %+v", paper)
	}
}

func TestListArticles_RejectsBadControls(t *testing.T) {
	db := newSeededDB(t)

	if _, err := ListArticles(context.Background(), db, "body", "", ""); !errors.Is(err, ErrInvalidSortKey) {
		t.Fatalf("expected ErrInvalidSortKey, got %v", err)
	}
	if _, err := ListArticles(context.Background(), db, "votes", "down", ""); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder, got %v", err)
	}
}

func TestGetArticle_FoundAndNotFound(t *testing.T) {
	db := newSeededDB(t)

	a, err := GetArticle(context.Background(), db, 1)
	if err != nil {
		t.Fatalf("GetArticle(1): %v", err)
	}
	if a.ArticleID != 1 || a.Body == "" || a.CommentCount != 2 || a.Votes != 100 {
		t.Fatalf("unexpected article: %+v", a)
	}

	if _, err := GetArticle(context.Background(), db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckArticleExists(t *testing.T) {
	db := newSeededDB(t)

	if err := CheckArticleExists(context.Background(), db, 1); err != nil {
		t.Fatalf("existing article: %v", err)
	}
	if err := CheckArticleExists(context.Background(), db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateArticle_PopulatesGeneratedFields(t *testing.T) {
	db := newSeededDB(t)

	a, err := CreateArticle(context.Background(), db,
		"lurker", "Quiet thoughts", "nothing to report", "paper", "no img_url")
	if err != nil {
		t.Fatalf("CreateArticle: %v", err)
	}
	if a.ArticleID <= 4 {
		t.Fatalf("expected generated id > 4, got %d", a.ArticleID)
	}
	if a.Votes != 0 {
		t.Fatalf("new article votes = %d, want 0", a.Votes)
	}
	if a.CreatedAt.IsZero() || time.Since(a.CreatedAt) > time.Minute {
		t.Fatalf("CreatedAt not set reasonably: %v", a.CreatedAt)
	}
}

func TestCreateArticle_DanglingAuthorFKViolation(t *testing.T) {
	db := newSeededDB(t)

	_, err := CreateArticle(context.Background(), db,
		"nobody", "t", "b", "mitch", "no img_url")
	if err == nil {
		t.Fatalf("expected FK violation for unknown author")
	}
	if !strings.Contains(strings.ToLower(err.Error()), "foreign key constraint") {
		t.Fatalf("expected FOREIGN KEY violation, got %v", err)
	}
}

func TestIncrementArticleVotes(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	a, err := IncrementArticleVotes(ctx, db, 1, 20)
	if err != nil {
		t.Fatalf("increment +20: %v", err)
	}
	if a.Votes != 120 {
		t.Fatalf("votes = %d, want 120", a.Votes)
	}

	// negative increments apply the same way
	a, err = IncrementArticleVotes(ctx, db, 1, -25)
	if err != nil {
		t.Fatalf("increment -25: %v", err)
	}
	if a.Votes != 95 {
		t.Fatalf("votes = %d, want 95", a.Votes)
	}

	if _, err := IncrementArticleVotes(ctx, db, 9999, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteArticle_CascadesAndReportsRepeatAsNotFound(t *testing.T) {
	db := newSeededDB(t)
	ctx := context.Background()

	if err := DeleteArticle(ctx, db, 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// comments on article 1 must be gone too
	var n int64
	if err := db.Model(&domain.Comment{}).Where("article_id = ?", 1).Count(&n).Error; err != nil {
		t.Fatalf("count comments: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected cascade delete, %d comments remain", n)
	}

	// a second delete of the same id reports the missing row
	if err := DeleteArticle(ctx, db, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on repeat delete, got %v", err)
	}
}
