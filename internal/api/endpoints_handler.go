package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/ncnews/ncnews/internal/api/shared"
)

// EndpointDescription is one entry of the static API description document:
// what a route does, which query parameters it takes, and an example of
// what it returns. The GET /api entry carries only a description.
type EndpointDescription struct {
	Description     string          `json:"description"`
	Queries         []string        `json:"queries,omitempty"`
	ExampleResponse json.RawMessage `json:"exampleResponse,omitempty"`
}

// EndpointsHandler serves the static API description document. The
// document is read from disk on every request; it is small and this keeps
// edits visible without a restart.
type EndpointsHandler struct {
	path   string
	logger *slog.Logger
}

// NewEndpointsHandler creates a new EndpointsHandler reading the document
// at the given path.
func NewEndpointsHandler(path string, logger *slog.Logger) *EndpointsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EndpointsHandler{
		path:   path,
		logger: logger,
	}
}

// GetEndpointsDescription handles GET /api requests.
func (h *EndpointsHandler) GetEndpointsDescription(w http.ResponseWriter, r *http.Request) {
	raw, err := os.ReadFile(h.path)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var doc map[string]EndpointDescription
	if err := json.Unmarshal(raw, &doc); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		APIEndpointsDescription map[string]EndpointDescription `json:"apiEndpointsDescription"`
	}{APIEndpointsDescription: doc})
}
