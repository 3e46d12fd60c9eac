// Package handlers: error classification cascade.
//
// Every fault reaching the HTTP layer goes through classify(), a fixed
// three-stage chain:
//
//  1. Domain fault: an *apperr.Error already carrying status and message
//     (produced by the validator and existence checks in the service layer).
//     Passed through verbatim.
//  2. Storage fault: a storage-engine error not classified above. A fixed
//     mapping translates the known SQLite conditions: datatype mismatch,
//     NOT NULL and CHECK violations become 400 "Bad request"; FOREIGN KEY
//     violations and record-not-found become 404 "Not found".
//  3. Unknown fault: everything else is 500 "Internal server error"; the
//     underlying detail is logged server-side, never leaked to the caller.
//
// The ordering is deliberate: an application-level "this resource doesn't
// exist" judgment is never overridden by a lower-level storage error that
// fires for the same request (e.g. a constraint failure that only occurs
// because the row was already absent).
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/apperr"
)

// classify maps err to an HTTP status and client-safe message. The third
// return value reports whether one of the first two stages matched; callers
// log the raw error when it did not.
func classify(err error) (status int, msg string, classified bool) {
	// Stage 1: domain faults carry their own status and message.
	var ae *apperr.Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Msg, true
	}

	// Stage 2: known storage faults.
	if status, msg, ok := storageStatus(err); ok {
		return status, msg, true
	}

	// Stage 3: unknown.
	return http.StatusInternalServerError, "Internal server error", false
}

// storageStatus translates storage-engine errors into the external contract.
// GORM's record-not-found sentinel is matched structurally; driver-level
// constraint violations are matched on the engine's stable message fragments
// (SQLite has no error-code accessor through this driver stack).
func storageStatus(err error) (int, string, bool) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return http.StatusNotFound, "Not found", true
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "foreign key constraint"):
		// Well-formed insert referencing a missing row.
		return http.StatusNotFound, "Not found", true
	case strings.Contains(msg, "not null constraint"),
		strings.Contains(msg, "check constraint"),
		strings.Contains(msg, "datatype mismatch"):
		return http.StatusBadRequest, "Bad request", true
	}
	return 0, "", false
}
