package repo

import (
	"context"
	"testing"

	"github.com/tbourn/go-news-backend/internal/domain"
)

func TestSeed_IsIdempotent(t *testing.T) {
	db := newNewsDB(t)
	ctx := context.Background()

	if err := Seed(ctx, db); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := Seed(ctx, db); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	counts := map[string]int64{}
	for name, model := range map[string]any{
		"topics":   &domain.Topic{},
		"users":    &domain.User{},
		"articles": &domain.Article{},
		"comments": &domain.Comment{},
	} {
		var n int64
		if err := db.Model(model).Count(&n).Error; err != nil {
			t.Fatalf("count %s: %v", name, err)
		}
		counts[name] = n
	}

	if counts["topics"] != 3 || counts["users"] != 4 || counts["articles"] != 4 || counts["comments"] != 3 {
		t.Fatalf("unexpected counts after double seed: %+v", counts)
	}
}
