package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/ncnews/ncnews/internal/api/shared"
	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

// CreateCommentRequest represents the request body for posting a comment.
// Fields outside this struct are ignored.
type CreateCommentRequest struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body"     validate:"required"`
}

// CommentHandler handles comment-related HTTP requests. It holds the
// article and user stores for the concurrent existence checks the
// comment operations perform.
type CommentHandler struct {
	commentStore store.CommentStore
	articleStore store.ArticleStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(
	commentStore store.CommentStore,
	articleStore store.ArticleStore,
	userStore store.UserStore,
	logger *slog.Logger,
) *CommentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentHandler{
		commentStore: commentStore,
		articleStore: articleStore,
		userStore:    userStore,
		logger:       logger,
	}
}

// ListCommentsForArticle handles GET /api/articles/{article_id}/comments
// requests. The article existence check runs concurrently with the page
// read; an unknown article is a 404 even though the page read alone would
// just come back empty.
func (h *CommentHandler) ListCommentsForArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	page, err := getPageParams(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	ctx := r.Context()

	var (
		wg       sync.WaitGroup
		comments []domain.Comment
		getErr   error
		listErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, getErr = h.articleStore.GetByID(ctx, articleID)
	}()
	go func() {
		defer wg.Done()
		comments, listErr = h.commentStore.ListByArticle(ctx, articleID, page)
	}()

	wg.Wait()

	if getErr != nil {
		HandleAPIError(w, r, getErr)
		return
	}
	if listErr != nil {
		HandleAPIError(w, r, listErr)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Comments []domain.Comment `json:"comments"`
	}{Comments: comments})
}

// CreateComment handles POST /api/articles/{article_id}/comments requests.
// The article and author existence reads run concurrently with the insert;
// the foreign keys are the real backstop under races.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req CreateCommentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	ctx := r.Context()

	var (
		wg         sync.WaitGroup
		created    *domain.Comment
		articleErr error
		userErr    error
		createErr  error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		_, articleErr = h.articleStore.GetByID(ctx, articleID)
	}()
	go func() {
		defer wg.Done()
		_, userErr = h.userStore.GetByUsername(ctx, req.Username)
	}()
	go func() {
		defer wg.Done()
		created, createErr = h.commentStore.Create(ctx, &domain.Comment{
			ArticleID: articleID,
			Author:    req.Username,
			Body:      req.Body,
		})
	}()

	wg.Wait()

	if articleErr != nil {
		HandleAPIError(w, r, articleErr)
		return
	}
	if userErr != nil {
		HandleAPIError(w, r, userErr)
		return
	}
	if createErr != nil {
		HandleAPIError(w, r, createErr)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, struct {
		Comment *domain.Comment `json:"comment"`
	}{Comment: created})
}

// PatchCommentVotes handles PATCH /api/comments/{comment_id} requests. No
// separate existence read here: a zero-row update already tells us the
// comment is gone.
func (h *CommentHandler) PatchCommentVotes(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathInt(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req PatchVotesRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, MsgBadRequest)
		return
	}

	comment, err := h.commentStore.IncrementVotes(r.Context(), commentID, *req.IncVotes)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Comment *domain.Comment `json:"comment"`
	}{Comment: comment})
}

// DeleteComment handles DELETE /api/comments/{comment_id} requests.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := getPathInt(r, "comment_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.commentStore.Delete(r.Context(), commentID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListAllComments handles GET /api/comments requests.
func (h *CommentHandler) ListAllComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentStore.ListAll(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Comments []domain.Comment `json:"comments"`
	}{Comments: comments})
}
