// Package domain defines the persistence models for topics, users, articles,
// and comments, plus the read-side projection rows derived from them. These
// types are mapped with GORM and form the core data layer of the news API.
package domain

import "time"

// Topic is a category articles are filed under. The slug doubles as the
// primary key and as the value articles reference in their topic column.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(64);primaryKey"`
	Description string `json:"description" gorm:"type:varchar(255);not null"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is static reference data in this API: usernames are referenced by
// articles and comments, but there are no user mutation endpoints.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(64);primaryKey"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:varchar(1024)"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a posted piece of writing. Author and topic are foreign keys to
// users.username and topics.slug; votes only ever change by relative
// increment, never by absolute overwrite.
//
// comment_count is deliberately not a column: it is derived by aggregation at
// read time (see ArticleSummary and ArticleDetail).
type Article struct {
	ArticleID     int       `json:"article_id"      gorm:"column:article_id;primaryKey;autoIncrement"`
	Author        string    `json:"author"          gorm:"type:varchar(64);not null;index"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(64);not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"type:varchar(1024);not null;default:'no img_url'"`

	// FK associations. Deleting a referenced user or topic is restricted.
	AuthorRef User  `json:"-" gorm:"foreignKey:Author;references:Username"`
	TopicRef  Topic `json:"-" gorm:"foreignKey:Topic;references:Slug"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// Comment is a reply attached to an article. Comments are cascade-deleted
// with their article.
type Comment struct {
	CommentID int       `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	ArticleID int       `json:"article_id" gorm:"column:article_id;not null;index"`
	Author    string    `json:"author"     gorm:"type:varchar(64);not null"`
	Votes     int       `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at"`

	ArticleRef Article `json:"-" gorm:"belongsTo:Article;foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	AuthorRef  User    `json:"-" gorm:"foreignKey:Author;references:Username"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// ArticleSummary is the listing projection of an article: every stored field
// except the long-form body, plus the derived comment_count. It is scanned
// from the aggregation query in the repo layer and never persisted.
type ArticleSummary struct {
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	ArticleID     int       `json:"article_id" gorm:"column:article_id"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count" gorm:"column:comment_count"`
}

// ArticleDetail is the single-article projection: all stored fields including
// the body, plus the derived comment_count.
type ArticleDetail struct {
	ArticleID     int       `json:"article_id" gorm:"column:article_id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int       `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int       `json:"comment_count" gorm:"column:comment_count"`
}
