// Package handlers: response utilities.
//
// This file defines the standard response helpers used across all endpoints.
// Error responses are a single-key JSON envelope, e.g.:
//
//	HTTP/1.1 404 Not Found
//	{ "msg": "article does not exist" }
//
// Conventions:
//   - fail() writes the envelope and aborts; 5xx outcomes are logged with the
//     request-scoped logger so operators get the detail the client does not.
//   - failErr() routes an error through the classifier cascade first.
//   - ok() and noContent() keep success responses uniform.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints. The body
// carries exactly one field; the status code is the rest of the contract.
type ErrorResponse struct {
	// Human-readable message (safe to show to users)
	Msg string `json:"msg" example:"Bad request"`
}

// fail aborts the request with the error envelope for status and msg.
// Server errors (>=500) are logged with the request-scoped logger.
func fail(c *gin.Context, status int, msg string) {
	if status >= http.StatusInternalServerError {
		lg := middleware.LoggerFrom(c)
		lg.Error().
			Int("status", status).
			Str("message", msg).
			Msg("api error")
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Msg: msg})
}

// failErr classifies err through the three-stage cascade and writes the
// resulting envelope. Unclassified faults are logged with their underlying
// detail; the client only ever sees the generic message.
func failErr(c *gin.Context, err error) {
	status, msg, classified := classify(err)
	if !classified {
		lg := middleware.LoggerFrom(c)
		lg.Error().Err(err).Msg("unclassified error")
	}
	fail(c, status, msg)
}

// Fail is the exported variant of fail(). External packages (e.g., router
// setup) use it for consistent envelopes on fallback routes.
func Fail(c *gin.Context, status int, msg string) { fail(c, status, msg) }

// ok writes a success JSON response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

// noContent writes an HTTP 204 No Content response.
func noContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
