// Article HTTP handlers.
//
//   - GET    /api/articles                (list, sortable, topic filter)
//   - POST   /api/articles                (create)
//   - GET    /api/articles/{article_id}   (detail)
//   - PATCH  /api/articles/{article_id}   (vote increment)
//   - DELETE /api/articles/{article_id}   (delete, cascades comments)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// CreateArticleRequest is the JSON payload for creating an article.
// ArticleImgURL is optional; a sentinel default is stored when omitted.
type CreateArticleRequest struct {
	Author        string `json:"author" example:"butter_bridge"`
	Title         string `json:"title" example:"Living in the shadow of a great man"`
	Body          string `json:"body" example:"I find this existence challenging"`
	Topic         string `json:"topic" example:"mitch"`
	ArticleImgURL string `json:"article_img_url,omitempty" example:"https://images.example.com/lime.jpg"`
}

// UpdateVotesRequest is the JSON payload for vote-increment endpoints.
// inc_votes must be present and an integer; it may be negative.
type UpdateVotesRequest struct {
	IncVotes *int `json:"inc_votes" example:"20"`
}

// ArticlesResponse wraps the article listing.
type ArticlesResponse struct {
	Articles []domain.ArticleSummary `json:"articles"`
}

// ArticleResponse wraps a single full article.
type ArticleResponse struct {
	Article *domain.ArticleDetail `json:"article"`
}

// UpdatedArticleResponse wraps the article returned by a vote update.
type UpdatedArticleResponse struct {
	UpdatedArticle *domain.Article `json:"updatedArticle"`
}

// bindIncVotes parses an UpdateVotesRequest and rejects absent or
// non-numeric inc_votes values before any storage work.
func bindIncVotes(c *gin.Context) (int, bool) {
	var req UpdateVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return 0, false
	}
	return *req.IncVotes, true
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List article summaries
// @Description Returns article summaries (no body field) with derived comment counts. Supports whitelisted sorting and exact-match topic filtering.
// @Tags        Articles
// @Produce     json
// @Param       sort_by  query  string  false  "Sort column"  Enums(author, title, article_id, topic, created_at, votes, article_img_url, comment_count)  default(created_at)
// @Param       order    query  string  false  "Sort direction"  Enums(ASC, DESC)  default(DESC)
// @Param       topic    query  string  false  "Filter by topic slug"
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse "Invalid sort_by or order"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown topic"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	articles, err := h.articleSvc.List(c.Request.Context(),
		c.Query("sort_by"), c.Query("order"), c.Query("topic"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: articles})
}

// CreateArticle godoc
// @ID          createArticle
// @Summary     Create a new article
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateArticleRequest  true  "New article"
// @Success     201  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse "Missing required field"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown author or topic"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles [post]
func (h *Handlers) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return
	}

	a, err := h.articleSvc.Create(c.Request.Context(),
		req.Author, req.Title, req.Body, req.Topic, req.ArticleImgURL)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, ArticleResponse{Article: a})
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Get a single article
// @Description Returns the full article, body included, plus its derived comment count.
// @Tags        Articles
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse "Non-integer id"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown id"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, okID := pathID(c, "article_id")
	if !okID {
		return
	}
	a, err := h.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: a})
}

// UpdateArticleVotes godoc
// @ID          updateArticleVotes
// @Summary     Increment an article's votes
// @Description Applies a signed relative increment (votes = votes + inc_votes) and returns the updated article.
// @Tags        Articles
// @Accept      json
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"
// @Param       body  body  handlers.UpdateVotesRequest  true  "Vote increment"
// @Success     200  {object}  handlers.UpdatedArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse "Non-integer id or non-numeric inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown id"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) UpdateArticleVotes(c *gin.Context) {
	id, okID := pathID(c, "article_id")
	if !okID {
		return
	}
	delta, okBody := bindIncVotes(c)
	if !okBody {
		return
	}

	a, err := h.articleSvc.IncrementVotes(c.Request.Context(), id, delta)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, UpdatedArticleResponse{UpdatedArticle: a})
}

// DeleteArticle godoc
// @ID          deleteArticle
// @Summary     Delete an article
// @Description Removes the article and its comments. Deleting an unknown or already-deleted id is 404.
// @Tags        Articles
// @Param       article_id  path  int  true  "Article ID"
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse "Non-integer id"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown id"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles/{article_id} [delete]
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, okID := pathID(c, "article_id")
	if !okID {
		return
	}
	if err := h.articleSvc.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
