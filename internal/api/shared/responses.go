package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ncnews/ncnews/internal/redact"
)

// ErrorResponse is the error body shape every failure path produces.
type ErrorResponse struct {
	Msg string `json:"msg"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithError writes the standard {"msg": ...} error body with the
// given status code.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"msg", msg,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorResponse{Msg: msg})
}

// RespondWithErrorAndLog writes the standard error body and logs the
// underlying error in full on the server side. The client only ever sees
// the sanitized message.
//
// 5xx responses log at ERROR; everything else at DEBUG. The raw error is
// redacted before logging so connection strings and SQL text stay out of
// the logs too.
func RespondWithErrorAndLog(w http.ResponseWriter, r *http.Request, status int, msg string, err error) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("msg", msg),
	}
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", redact.Error(err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, ErrorResponse{Msg: msg})
}
