package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-news-backend/internal/repo"
)

// bareSvcDB opens an empty in-memory DB with no schema. Services that gate
// input before touching storage must succeed against it; anything that slips
// through to SQL fails loudly with "no such table".
func bareSvcDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:news_svc_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
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
	return db
}

// seededSvcDB migrates the schema and loads the demo fixture.
func seededSvcDB(t *testing.T) *gorm.DB {
	t.Helper()
	db := bareSvcDB(t)
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	if err := repo.Seed(context.Background(), db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func TestArticleList_InvalidSortIsGatedBeforeAnyQuery(t *testing.T) {
	// no schema: if the gate leaked a query, the error would be "no such
	// table", not the validation fault
	svc := NewArticleService(bareSvcDB(t))

	if _, err := svc.List(context.Background(), "body", "", ""); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if _, err := svc.List(context.Background(), "votes", "sideways", ""); !errors.Is(err, ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestArticleList_UnknownTopicOutranksEmptyResult(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))

	// the filtered listing alone would legally return an empty slice, but
	// the concurrent existence check must win
	if _, err := svc.List(context.Background(), "", "", "gardening"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// a known topic with zero articles stays a plain empty 200
	out, err := svc.List(context.Background(), "", "", "paper")
	if err != nil {
		t.Fatalf("List(paper): %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty listing, got %+v", out)
	}
}

func TestArticleList_SortedAndFiltered(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))

	out, err := svc.List(context.Background(), "article_id", "ASC", "mitch")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 3 || out[0].ArticleID != 1 || out[2].ArticleID != 3 {
		t.Fatalf("unexpected listing: %+v", out)
	}
}

func TestArticleGet(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))

	a, err := svc.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get(1): %v", err)
	}
	if a.ArticleID != 1 || a.CommentCount != 2 {
		t.Fatalf("unexpected article: %+v", a)
	}

	if _, err := svc.Get(context.Background(), 9999); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleCreate_MissingFieldIsGatedBeforeAnyQuery(t *testing.T) {
	svc := NewArticleService(bareSvcDB(t))

	cases := [][5]string{
		{"", "t", "b", "mitch", ""},
		{"butter_bridge", "", "b", "mitch", ""},
		{"butter_bridge", "t", "", "mitch", ""},
		{"butter_bridge", "t", "b", "", ""},
	}
	for i, in := range cases {
		_, err := svc.Create(context.Background(), in[0], in[1], in[2], in[3], in[4])
		if !errors.Is(err, ErrBadRequest) {
			t.Fatalf("case %d: expected ErrBadRequest, got %v", i, err)
		}
	}
}

func TestArticleCreate_UnknownReferences(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))
	ctx := context.Background()

	if _, err := svc.Create(ctx, "nobody", "t", "b", "mitch", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown author: expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, "butter_bridge", "t", "b", "gardening", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown topic: expected ErrNotFound, got %v", err)
	}
	// both unknown: still the deterministic single fault
	if _, err := svc.Create(ctx, "nobody", "t", "b", "gardening", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("both unknown: expected ErrNotFound, got %v", err)
	}
}

func TestArticleCreate_AppliesImgDefaultAndReturnsDetail(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))

	a, err := svc.Create(context.Background(), "lurker", "Quiet thoughts", "nothing", "paper", "")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if a.ArticleImgURL != DefaultArticleImgURL {
		t.Fatalf("img url = %q, want default", a.ArticleImgURL)
	}
	if a.CommentCount != 0 || a.Votes != 0 || a.ArticleID == 0 {
		t.Fatalf("unexpected created article: %+v", a)
	}
}

func TestArticleIncrementVotes(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))
	ctx := context.Background()

	a, err := svc.IncrementVotes(ctx, 1, 20)
	if err != nil {
		t.Fatalf("IncrementVotes: %v", err)
	}
	if a.Votes != 120 {
		t.Fatalf("votes = %d, want 120", a.Votes)
	}

	// missing article: the existence check's fault is the one reported, even
	// though the increment statement also matched zero rows
	if _, err := svc.IncrementVotes(ctx, 9999, 1); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound, got %v", err)
	}
}

func TestArticleDelete(t *testing.T) {
	svc := NewArticleService(seededSvcDB(t))
	ctx := context.Background()

	if err := svc.Delete(ctx, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, 4); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("expected ErrArticleNotFound on repeat delete, got %v", err)
	}
}
