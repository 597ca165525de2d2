package api

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/ncnews/ncnews/internal/api/shared"
	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

// CreateArticleRequest represents the request body for posting an article.
// ArticleImgURL is optional; when absent the table default applies. Fields
// outside this struct are ignored.
type CreateArticleRequest struct {
	Author        string `json:"author"          validate:"required"`
	Title         string `json:"title"           validate:"required"`
	Body          string `json:"body"            validate:"required"`
	Topic         string `json:"topic"           validate:"required"`
	ArticleImgURL string `json:"article_img_url"`
}

// PatchVotesRequest represents the request body for vote updates on
// articles and comments. A pointer distinguishes a missing inc_votes from
// an explicit zero; a non-numeric value fails JSON decoding.
type PatchVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required"`
}

// ArticleHandler handles article-related HTTP requests. It holds the topic
// and user stores as well because several article operations need a
// concurrent existence check against a referenced entity.
type ArticleHandler struct {
	articleStore store.ArticleStore
	topicStore   store.TopicStore
	userStore    store.UserStore
	logger       *slog.Logger
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(
	articleStore store.ArticleStore,
	topicStore store.TopicStore,
	userStore store.UserStore,
	logger *slog.Logger,
) *ArticleHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleHandler{
		articleStore: articleStore,
		topicStore:   topicStore,
		userStore:    userStore,
		logger:       logger,
	}
}

// GetArticleByID handles GET /api/articles/{article_id} requests.
func (h *ArticleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	article, err := h.articleStore.GetByID(r.Context(), articleID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Article *domain.Article `json:"article"`
	}{Article: article})
}

// parseArticleListOptions extracts the optional filter, sort, and
// pagination query parameters, applying defaults where absent. Sort column
// and direction validation belongs to the store's allow-list; only the
// numeric parameters are rejected here.
func parseArticleListOptions(r *http.Request) (store.ArticleListOptions, error) {
	page, err := getPageParams(r)
	if err != nil {
		return store.ArticleListOptions{}, err
	}

	q := r.URL.Query()
	opts := store.ArticleListOptions{
		Topic:  q.Get("topic"),
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
		Limit:  page.Limit,
		Page:   page.Page,
	}
	if opts.SortBy == "" {
		opts.SortBy = store.DefaultSortBy
	}
	if opts.Order == "" {
		opts.Order = store.DefaultOrder
	}
	return opts, nil
}

// ListArticles handles GET /api/articles requests. When a topic filter is
// present, the topic existence check runs concurrently with the list query;
// its only job is to turn an unknown topic into a 404 instead of an empty
// 200.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	opts, err := parseArticleListOptions(r)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	ctx := r.Context()

	var (
		wg       sync.WaitGroup
		articles []domain.Article
		total    int
		listErr  error
		topicErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		articles, total, listErr = h.articleStore.List(ctx, opts)
	}()

	if opts.Topic != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, topicErr = h.topicStore.GetBySlug(ctx, opts.Topic)
		}()
	}

	wg.Wait()

	if listErr != nil {
		HandleAPIError(w, r, listErr)
		return
	}
	if topicErr != nil {
		HandleAPIError(w, r, topicErr)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Articles   []domain.Article `json:"articles"`
		TotalCount int              `json:"total_count"`
	}{Articles: articles, TotalCount: total})
}

// CreateArticle handles POST /api/articles requests. The author and topic
// existence reads run concurrently with the insert itself; under a racing
// delete of either referenced row the foreign key constraint, not the
// check, is what stops the insert.
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req CreateArticleRequest
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
		wg        sync.WaitGroup
		created   *domain.Article
		userErr   error
		topicErr  error
		createErr error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		_, userErr = h.userStore.GetByUsername(ctx, req.Author)
	}()
	go func() {
		defer wg.Done()
		_, topicErr = h.topicStore.GetBySlug(ctx, req.Topic)
	}()
	go func() {
		defer wg.Done()
		created, createErr = h.articleStore.Create(ctx, &domain.Article{
			Author:        req.Author,
			Title:         req.Title,
			Body:          req.Body,
			Topic:         req.Topic,
			ArticleImgURL: req.ArticleImgURL,
		})
	}()

	wg.Wait()

	if userErr != nil {
		HandleAPIError(w, r, userErr)
		return
	}
	if topicErr != nil {
		HandleAPIError(w, r, topicErr)
		return
	}
	if createErr != nil {
		HandleAPIError(w, r, createErr)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, struct {
		Article *domain.Article `json:"article"`
	}{Article: created})
}

// PatchArticleVotes handles PATCH /api/articles/{article_id} requests. The
// existence read and the vote update run concurrently; the read exists
// purely to produce the 404 for unknown articles, the update's result is
// what gets returned.
func (h *ArticleHandler) PatchArticleVotes(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
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

	ctx := r.Context()

	var (
		wg      sync.WaitGroup
		updated *domain.Article
		getErr  error
		updErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, getErr = h.articleStore.GetByID(ctx, articleID)
	}()
	go func() {
		defer wg.Done()
		updated, updErr = h.articleStore.IncrementVotes(ctx, articleID, *req.IncVotes)
	}()

	wg.Wait()

	if getErr != nil {
		HandleAPIError(w, r, getErr)
		return
	}
	if updErr != nil {
		HandleAPIError(w, r, updErr)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct {
		Article *domain.Article `json:"article"`
	}{Article: updated})
}

// DeleteArticle handles DELETE /api/articles/{article_id} requests. The
// article's comments are removed by the schema's referential cascade.
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	articleID, err := getPathInt(r, "article_id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.articleStore.Delete(r.Context(), articleID); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
