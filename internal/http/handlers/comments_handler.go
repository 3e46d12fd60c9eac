// Comment HTTP handlers.
//
//   - GET    /api/articles/{article_id}/comments   (list per article)
//   - POST   /api/articles/{article_id}/comments   (create)
//   - PATCH  /api/comments/{comment_id}            (vote increment)
//   - DELETE /api/comments/{comment_id}            (delete)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// CreateCommentRequest is the JSON payload for posting a comment.
type CreateCommentRequest struct {
	Username string `json:"username" example:"icellusedkars"`
	Body     string `json:"body" example:"hi"`
}

// CommentsResponse wraps a comment listing.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentResponse wraps a single created comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// UpdatedCommentResponse wraps the comment returned by a vote update.
type UpdatedCommentResponse struct {
	UpdatedComment *domain.Comment `json:"updatedComment"`
}

// ListArticleComments godoc
// @ID          listArticleComments
// @Summary     List an article's comments
// @Description Returns the article's comments sorted by creation time descending. An existing article with no comments yields an empty list.
// @Tags        Comments
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse "Non-integer id"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown article"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) ListArticleComments(c *gin.Context) {
	id, okID := pathID(c, "article_id")
	if !okID {
		return
	}
	comments, err := h.commentSvc.ListForArticle(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: comments})
}

// CreateComment godoc
// @ID          createComment
// @Summary     Post a comment on an article
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       article_id  path  int  true  "Article ID"
// @Param       body  body  handlers.CreateCommentRequest  true  "New comment"
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse "Missing or empty username/body, or non-integer id"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown article or username"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) CreateComment(c *gin.Context) {
	id, okID := pathID(c, "article_id")
	if !okID {
		return
	}
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return
	}

	cm, err := h.commentSvc.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: cm})
}

// UpdateCommentVotes godoc
// @ID          updateCommentVotes
// @Summary     Increment a comment's votes
// @Tags        Comments
// @Accept      json
// @Produce     json
// @Param       comment_id  path  int  true  "Comment ID"
// @Param       body  body  handlers.UpdateVotesRequest  true  "Vote increment"
// @Success     200  {object}  handlers.UpdatedCommentResponse
// @Failure     400  {object}  handlers.ErrorResponse "Non-integer id or non-numeric inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown id"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /comments/{comment_id} [patch]
func (h *Handlers) UpdateCommentVotes(c *gin.Context) {
	id, okID := pathID(c, "comment_id")
	if !okID {
		return
	}
	delta, okBody := bindIncVotes(c)
	if !okBody {
		return
	}

	cm, err := h.commentSvc.IncrementVotes(c.Request.Context(), id, delta)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, UpdatedCommentResponse{UpdatedComment: cm})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Description Removes the comment. Deleting an unknown or already-deleted id is 404, never a silent success.
// @Tags        Comments
// @Param       comment_id  path  int  true  "Comment ID"
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse "Non-integer id"
// @Failure     404  {object}  handlers.ErrorResponse "Unknown id"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, okID := pathID(c, "comment_id")
	if !okID {
		return
	}
	if err := h.commentSvc.Delete(c.Request.Context(), id); err != nil {
		failErr(c, err)
		return
	}
	noContent(c)
}
