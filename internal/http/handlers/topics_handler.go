// Topic HTTP handlers.
//
//   - GET  /api/topics  (list)
//   - POST /api/topics  (create)
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// CreateTopicRequest is the JSON payload for creating a topic.
type CreateTopicRequest struct {
	Slug        string `json:"slug" example:"coding"`
	Description string `json:"description" example:"Code is love, code is life"`
}

// TopicsResponse wraps the topic listing.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// TopicResponse wraps a single topic.
type TopicResponse struct {
	Topic *domain.Topic `json:"topic"`
}

// ListTopics godoc
// @ID          listTopics
// @Summary     List all topics
// @Tags        Topics
// @Produce     json
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /topics [get]
func (h *Handlers) ListTopics(c *gin.Context) {
	topics, err := h.topicSvc.List(c.Request.Context())
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}

// CreateTopic godoc
// @ID          createTopic
// @Summary     Create a new topic
// @Tags        Topics
// @Accept      json
// @Produce     json
// @Param       body  body  handlers.CreateTopicRequest  true  "New topic"
// @Success     201  {object}  handlers.TopicResponse
// @Failure     400  {object}  handlers.ErrorResponse "Missing slug or description"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /topics [post]
func (h *Handlers) CreateTopic(c *gin.Context) {
	var req CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Bad request")
		return
	}

	t, err := h.topicSvc.Create(c.Request.Context(),
		strings.TrimSpace(req.Slug), strings.TrimSpace(req.Description))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, TopicResponse{Topic: t})
}
