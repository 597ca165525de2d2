package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/ncnews/internal/api/shared"
)

// performRequest mounts the handler on a chi route pattern (so URL
// parameters resolve like in the real router) and plays the request
// through it.
func performRequest(t *testing.T, method, pattern string, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.MethodFunc(method, pattern, handler)

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reqBody)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// decodeResponse unmarshals the recorded JSON body into v.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// assertErrorBody checks for the uniform {"msg": ...} error shape.
func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder, wantMsg string) {
	t.Helper()
	var body shared.ErrorResponse
	decodeResponse(t, rec, &body)
	require.Equal(t, wantMsg, body.Msg)
}
