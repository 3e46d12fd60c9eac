// Package repo: demo seed data.
//
// Seed loads a small fixture set (topics, users, articles, comments) into an
// empty database. It backs local development (SEED_DEMO_DATA=true) and the
// integration tests, which need deterministic rows to assert sorting,
// filtering, and vote arithmetic against.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// Seed inserts the demo fixture set. It is a no-op when topics already exist,
// so repeated startups do not duplicate rows.
func Seed(ctx context.Context, db *gorm.DB) error {
	var n int64
	if err := db.WithContext(ctx).Model(&domain.Topic{}).Count(&n).Error; err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	topics := []domain.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		{Slug: "cats", Description: "Not dogs"},
		{Slug: "paper", Description: "what books are made of"},
	}
	users := []domain.User{
		{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://www.healthytherapies.com/wp-content/uploads/2016/06/Lime3.jpg"},
		{Username: "icellusedkars", Name: "sam", AvatarURL: "https://avatars2.githubusercontent.com/u/24604688?s=460&v=4"},
		{Username: "rogersop", Name: "paul", AvatarURL: "https://avatars2.githubusercontent.com/u/24394918?s=400&v=4"},
		{Username: "lurker", Name: "do_nothing", AvatarURL: "https://www.golenbock.com/wp-content/uploads/2015/01/placeholder-user.png"},
	}

	at := func(day int) time.Time {
		return time.Date(2020, time.July, day, 12, 0, 0, 0, time.UTC)
	}
	articles := []domain.Article{
		{ArticleID: 1, Author: "butter_bridge", Title: "Living in the shadow of a great man", Body: "I find this existence challenging", Topic: "mitch", CreatedAt: at(9), Votes: 100, ArticleImgURL: "no img_url"},
		{ArticleID: 2, Author: "icellusedkars", Title: "Sony Vaio; or, The Laptop", Body: "Call me Mitchell.", Topic: "mitch", CreatedAt: at(20), Votes: 0, ArticleImgURL: "no img_url"},
		{ArticleID: 3, Author: "icellusedkars", Title: "Eight pug gifs that remind me of mitch", Body: "some gifs", Topic: "mitch", CreatedAt: at(27), Votes: 0, ArticleImgURL: "no img_url"},
		{ArticleID: 4, Author: "rogersop", Title: "UNCOVERED: catspiracy to bring down democracy", Body: "Bastet walks amongst us", Topic: "cats", CreatedAt: at(5), Votes: 0, ArticleImgURL: "no img_url"},
	}
	comments := []domain.Comment{
		{CommentID: 1, Body: "Oh, I've got compassion running out of my nose, pal!", ArticleID: 1, Author: "butter_bridge", Votes: 16, CreatedAt: at(10)},
		{CommentID: 2, Body: "The beautiful thing about treasure is that it exists.", ArticleID: 1, Author: "icellusedkars", Votes: 14, CreatedAt: at(14)},
		{CommentID: 3, Body: "git push origin master", ArticleID: 3, Author: "icellusedkars", Votes: 0, CreatedAt: at(28)},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&topics).Error; err != nil {
			return err
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Create(&articles).Error; err != nil {
			return err
		}
		return tx.Omit(clause.Associations).Create(&comments).Error
	})
}
