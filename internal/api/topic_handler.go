package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ncnews/ncnews/internal/api/shared"
	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

// CreateTopicRequest represents the request body for creating a topic.
// Fields outside this struct are ignored.
type CreateTopicRequest struct {
	Slug        string `json:"slug"        validate:"required"`
	Description string `json:"description" validate:"required"`
}

// TopicHandler handles topic-related HTTP requests.
type TopicHandler struct {
	topicStore store.TopicStore
	logger     *slog.Logger
}

// NewTopicHandler creates a new TopicHandler.
func NewTopicHandler(topicStore store.TopicStore, logger *slog.Logger) *TopicHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicHandler{
		topicStore: topicStore,
		logger:     logger,
	}
}

// ListTopics handles GET /api/topics requests.
func (h *TopicHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.topicStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Topics []domain.Topic `json:"topics"`
	}{Topics: topics})
}

// GetTopicBySlug handles GET /api/topics/{slug} requests.
func (h *TopicHandler) GetTopicBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	topic, err := h.topicStore.GetBySlug(r.Context(), slug)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Topic *domain.Topic `json:"topic"`
	}{Topic: topic})
}

// CreateTopic handles POST /api/topics requests.
func (h *TopicHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req CreateTopicRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	topic, err := h.topicStore.Create(r.Context(), &domain.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, struct {
		Topic *domain.Topic `json:"topic"`
	}{Topic: topic})
}
