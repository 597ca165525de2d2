package api

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ncnews/ncnews/internal/api/shared"
	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

// Client-facing error messages. The classifier never leaks internal error
// text; every failure maps to one of these.
const (
	MsgBadRequest   = "Bad request."
	MsgNotFound     = "Not found."
	MsgConflict     = "Already exists."
	MsgInternal     = "Internal Server Error."
	MsgPathNotFound = "Path not found."
)

// MapErrorToStatusCode classifies an error into an HTTP status code. The
// chain is layered, first match wins:
//
//  1. Store and domain sentinels, which the accessors produce whenever they
//     can classify a failure locally (absent row, duplicate key, rejected
//     sort column, malformed identifier).
//  2. Raw PostgreSQL error codes, for storage errors that bubbled up
//     unclassified: invalid text representation and not-null violations are
//     the client's fault (400); a foreign key violation means a referenced
//     entity is absent (404); a unique violation is a conflict (409).
//  3. Everything else is an internal error.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, store.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidQueryParam),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "22P02", "23502": // invalid_text_representation, not_null_violation
			return http.StatusBadRequest
		case "23503": // foreign_key_violation
			return http.StatusNotFound
		case "23505": // unique_violation
			return http.StatusConflict
		}
	}

	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the client-facing message for the status an
// error classifies to.
func GetSafeErrorMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusConflict:
		return MsgConflict
	default:
		return MsgInternal
	}
}

// HandleAPIError classifies err and writes the matching error response,
// logging the raw error server-side.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(status), err)
}

// NotFoundHandler answers any unmatched path with the generic 404 body.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, shared.ErrorResponse{Msg: MsgPathNotFound})
}
