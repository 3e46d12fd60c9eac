package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/services"
)

func TestListArticleComments(t *testing.T) {
	r := newTestRouter(stubs{comment: stubCommentSvc{
		list: func(_ context.Context, id int) ([]domain.Comment, error) {
			return []domain.Comment{{CommentID: 2, ArticleID: id}, {CommentID: 1, ArticleID: id}}, nil
		},
	}})

	w := doJSON(t, r, http.MethodGet, "/api/articles/1/comments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp CommentsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Comments) != 2 || resp.Comments[0].CommentID != 2 {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestListArticleComments_MissingArticle(t *testing.T) {
	r := newTestRouter(stubs{comment: stubCommentSvc{
		list: func(context.Context, int) ([]domain.Comment, error) {
			return nil, services.ErrArticleNotFound
		},
	}})
	w := doJSON(t, r, http.MethodGet, "/api/articles/9999/comments", "")
	wantMsg(t, w, http.StatusNotFound, "article does not exist")
}

func TestCreateComment_Success(t *testing.T) {
	r := newTestRouter(stubs{comment: stubCommentSvc{
		create: func(_ context.Context, id int, username, body string) (*domain.Comment, error) {
			return &domain.Comment{CommentID: 19, ArticleID: id, Author: username, Body: body}, nil
		},
	}})

	w := doJSON(t, r, http.MethodPost, "/api/articles/2/comments",
		`{"username":"lurker","body":"well said"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp CommentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Comment == nil || resp.Comment.CommentID != 19 || resp.Comment.Author != "lurker" {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestCreateComment_MalformedJSON(t *testing.T) {
	r := newTestRouter(stubs{})
	w := doJSON(t, r, http.MethodPost, "/api/articles/2/comments", `{"username":`)
	wantMsg(t, w, http.StatusBadRequest, "Bad request")
}

func TestUpdateCommentVotes(t *testing.T) {
	r := newTestRouter(stubs{comment: stubCommentSvc{
		incr: func(_ context.Context, id, delta int) (*domain.Comment, error) {
			return &domain.Comment{CommentID: id, Votes: 16 + delta}, nil
		},
	}})

	// nil inc_votes rejected before the service
	w := doJSON(t, r, http.MethodPatch, "/api/comments/1", `{"other_key":1}`)
	wantMsg(t, w, http.StatusBadRequest, "Bad request")

	w = doJSON(t, r, http.MethodPatch, "/api/comments/1", `{"inc_votes":4}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var resp UpdatedCommentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.UpdatedComment == nil || resp.UpdatedComment.Votes != 20 {
		t.Fatalf("unexpected envelope: %s", w.Body.String())
	}
}

func TestDeleteComment_NotFoundMessage(t *testing.T) {
	r := newTestRouter(stubs{comment: stubCommentSvc{
		del: func(context.Context, int) error { return services.ErrNotFound },
	}})
	w := doJSON(t, r, http.MethodDelete, "/api/comments/9999", "")
	wantMsg(t, w, http.StatusNotFound, "Not found")
}
