// Package services defines the business logic for topics, articles, comments,
// and users. This file centralizes the domain faults the service layer can
// produce so callers and the HTTP classifier see consistent values.
//
// Every fault is an *apperr.Error, i.e. it carries the HTTP status and the
// client-safe message as data. The classifier passes these through verbatim
// (stage one of the cascade); storage-level errors flow out of the repo layer
// untouched and are mapped at stage two.
package services

import (
	"net/http"

	"github.com/tbourn/go-news-backend/internal/apperr"
)

var (
	// ErrBadRequest rejects malformed or incomplete input: a missing or
	// empty required field, or an out-of-allow-list sort control.
	ErrBadRequest = apperr.New(http.StatusBadRequest, "Bad request")

	// ErrNotFound is the generic existence fault: a well-formed reference
	// (topic slug, author username) that matches no stored row.
	ErrNotFound = apperr.New(http.StatusNotFound, "Not found")

	// ErrArticleNotFound is raised when an article id is syntactically valid
	// but no such article exists.
	ErrArticleNotFound = apperr.New(http.StatusNotFound, "article does not exist")

	// ErrUserNotFound is raised when a username lookup matches no user.
	ErrUserNotFound = apperr.New(http.StatusNotFound, "user does not exist")
)
