package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

func fixtureComment() *domain.Comment {
	return &domain.Comment{
		CommentID: 2,
		ArticleID: 1,
		Author:    "butter_bridge",
		Body:      "The beautiful thing about treasure is that it exists.",
		Votes:     14,
		CreatedAt: fixtureTime,
	}
}

func newCommentHandler(comments *MockCommentStore, articles *MockArticleStore, users *MockUserStore) *CommentHandler {
	if comments == nil {
		comments = &MockCommentStore{}
	}
	if articles == nil {
		articles = &MockArticleStore{}
	}
	if users == nil {
		users = &MockUserStore{}
	}
	return NewCommentHandler(comments, articles, users, nil)
}

func TestCommentHandler_ListCommentsForArticle(t *testing.T) {
	t.Run("returns_the_article_comments", func(t *testing.T) {
		comments := &MockCommentStore{
			ListByArticleFn: func(ctx context.Context, articleID int, page store.Page) ([]domain.Comment, error) {
				require.Equal(t, 1, articleID)
				require.Equal(t, store.Page{Limit: 10, Page: 1}, page)
				return []domain.Comment{*fixtureComment()}, nil
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodGet, "/api/articles/{article_id}/comments",
			h.ListCommentsForArticle, "/api/articles/1/comments", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Comments []domain.Comment `json:"comments"`
		}
		decodeResponse(t, rec, &body)
		require.Len(t, body.Comments, 1)
		assert.Equal(t, *fixtureComment(), body.Comments[0])
	})

	t.Run("pagination_params_are_forwarded", func(t *testing.T) {
		comments := &MockCommentStore{
			ListByArticleFn: func(ctx context.Context, articleID int, page store.Page) ([]domain.Comment, error) {
				require.Equal(t, store.Page{Limit: 5, Page: 3}, page)
				return []domain.Comment{}, nil
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodGet, "/api/articles/{article_id}/comments",
			h.ListCommentsForArticle, "/api/articles/1/comments?limit=5&p=3", nil)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("article_with_no_comments_is_an_empty_200", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodGet, "/api/articles/{article_id}/comments",
			h.ListCommentsForArticle, "/api/articles/2/comments", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Comments []domain.Comment `json:"comments"`
		}
		decodeResponse(t, rec, &body)
		assert.NotNil(t, body.Comments)
		assert.Empty(t, body.Comments)
	})

	t.Run("unknown_article_is_404", func(t *testing.T) {
		articles := &MockArticleStore{
			GetByIDFn: func(ctx context.Context, articleID int) (*domain.Article, error) {
				return nil, store.ErrArticleNotFound
			},
		}
		h := newCommentHandler(nil, articles, nil)

		rec := performRequest(t, http.MethodGet, "/api/articles/{article_id}/comments",
			h.ListCommentsForArticle, "/api/articles/9999/comments", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorBody(t, rec, MsgNotFound)
	})

	t.Run("malformed_article_id_is_400", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodGet, "/api/articles/{article_id}/comments",
			h.ListCommentsForArticle, "/api/articles/not-valid/comments", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorBody(t, rec, MsgBadRequest)
	})

	t.Run("invalid_limit_is_400", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodGet, "/api/articles/{article_id}/comments",
			h.ListCommentsForArticle, "/api/articles/1/comments?limit=0", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorBody(t, rec, MsgBadRequest)
	})
}

func TestCommentHandler_CreateComment(t *testing.T) {
	validBody := map[string]any{
		"username": "butter_bridge",
		"body":     "Superbly written.",
	}

	t.Run("created", func(t *testing.T) {
		comments := &MockCommentStore{
			CreateFn: func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
				require.Equal(t, 1, comment.ArticleID)
				require.Equal(t, "butter_bridge", comment.Author)
				require.Equal(t, "Superbly written.", comment.Body)
				created := *comment
				created.CommentID = 19
				created.CreatedAt = fixtureTime
				return &created, nil
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodPost, "/api/articles/{article_id}/comments",
			h.CreateComment, "/api/articles/1/comments", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		var body struct {
			Comment domain.Comment `json:"comment"`
		}
		decodeResponse(t, rec, &body)
		assert.Equal(t, 19, body.Comment.CommentID)
		assert.Equal(t, 0, body.Comment.Votes)
	})

	t.Run("extra_fields_are_ignored", func(t *testing.T) {
		withExtra := map[string]any{}
		for k, v := range validBody {
			withExtra[k] = v
		}
		withExtra["votes"] = 1000

		comments := &MockCommentStore{
			CreateFn: func(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
				require.Equal(t, 0, comment.Votes)
				return comment, nil
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodPost, "/api/articles/{article_id}/comments",
			h.CreateComment, "/api/articles/1/comments", withExtra)

		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing_required_field_is_400", func(t *testing.T) {
		for _, missing := range []string{"username", "body"} {
			reqBody := map[string]any{}
			for k, v := range validBody {
				if k != missing {
					reqBody[k] = v
				}
			}
			h := newCommentHandler(nil, nil, nil)

			rec := performRequest(t, http.MethodPost, "/api/articles/{article_id}/comments",
				h.CreateComment, "/api/articles/1/comments", reqBody)

			require.Equal(t, http.StatusBadRequest, rec.Code, "missing %q", missing)
			assertErrorBody(t, rec, MsgBadRequest)
		}
	})

	t.Run("unknown_article_is_404", func(t *testing.T) {
		articles := &MockArticleStore{
			GetByIDFn: func(ctx context.Context, articleID int) (*domain.Article, error) {
				return nil, store.ErrArticleNotFound
			},
		}
		h := newCommentHandler(nil, articles, nil)

		rec := performRequest(t, http.MethodPost, "/api/articles/{article_id}/comments",
			h.CreateComment, "/api/articles/9999/comments", validBody)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorBody(t, rec, MsgNotFound)
	})

	t.Run("unknown_username_is_404", func(t *testing.T) {
		users := &MockUserStore{
			GetByUsernameFn: func(ctx context.Context, username string) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		}
		h := newCommentHandler(nil, nil, users)

		rec := performRequest(t, http.MethodPost, "/api/articles/{article_id}/comments",
			h.CreateComment, "/api/articles/1/comments", validBody)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorBody(t, rec, MsgNotFound)
	})

	t.Run("malformed_article_id_is_400", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodPost, "/api/articles/{article_id}/comments",
			h.CreateComment, "/api/articles/not-valid/comments", validBody)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorBody(t, rec, MsgBadRequest)
	})
}

func TestCommentHandler_PatchCommentVotes(t *testing.T) {
	t.Run("applies_the_delta", func(t *testing.T) {
		comments := &MockCommentStore{
			IncrementVotesFn: func(ctx context.Context, commentID int, delta int) (*domain.Comment, error) {
				require.Equal(t, 2, commentID)
				require.Equal(t, 10, delta)
				updated := fixtureComment()
				updated.Votes = 24
				return updated, nil
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodPatch, "/api/comments/{comment_id}",
			h.PatchCommentVotes, "/api/comments/2", map[string]any{"inc_votes": 10})

		require.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Comment domain.Comment `json:"comment"`
		}
		decodeResponse(t, rec, &body)
		assert.Equal(t, 24, body.Comment.Votes)
	})

	t.Run("missing_inc_votes_is_400", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodPatch, "/api/comments/{comment_id}",
			h.PatchCommentVotes, "/api/comments/2", map[string]any{})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorBody(t, rec, MsgBadRequest)
	})

	t.Run("unknown_comment_is_404", func(t *testing.T) {
		comments := &MockCommentStore{
			IncrementVotesFn: func(ctx context.Context, commentID int, delta int) (*domain.Comment, error) {
				return nil, store.ErrCommentNotFound
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodPatch, "/api/comments/{comment_id}",
			h.PatchCommentVotes, "/api/comments/9999", map[string]any{"inc_votes": 1})

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorBody(t, rec, MsgNotFound)
	})

	t.Run("malformed_id_is_400", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodPatch, "/api/comments/{comment_id}",
			h.PatchCommentVotes, "/api/comments/not-valid", map[string]any{"inc_votes": 1})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorBody(t, rec, MsgBadRequest)
	})
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		deleted := false
		comments := &MockCommentStore{
			DeleteFn: func(ctx context.Context, commentID int) error {
				require.Equal(t, 2, commentID)
				deleted = true
				return nil
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodDelete, "/api/comments/{comment_id}",
			h.DeleteComment, "/api/comments/2", nil)

		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.True(t, deleted)
	})

	t.Run("unknown_id_is_404", func(t *testing.T) {
		comments := &MockCommentStore{
			DeleteFn: func(ctx context.Context, commentID int) error {
				return store.ErrCommentNotFound
			},
		}
		h := newCommentHandler(comments, nil, nil)

		rec := performRequest(t, http.MethodDelete, "/api/comments/{comment_id}",
			h.DeleteComment, "/api/comments/9999", nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assertErrorBody(t, rec, MsgNotFound)
	})

	t.Run("malformed_id_is_400", func(t *testing.T) {
		h := newCommentHandler(nil, nil, nil)

		rec := performRequest(t, http.MethodDelete, "/api/comments/{comment_id}",
			h.DeleteComment, "/api/comments/not-valid", nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assertErrorBody(t, rec, MsgBadRequest)
	})
}

func TestCommentHandler_ListAllComments(t *testing.T) {
	comments := &MockCommentStore{
		ListAllFn: func(ctx context.Context) ([]domain.Comment, error) {
			return []domain.Comment{*fixtureComment()}, nil
		},
	}
	h := newCommentHandler(comments, nil, nil)

	rec := performRequest(t, http.MethodGet, "/api/comments", h.ListAllComments, "/api/comments", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Comments []domain.Comment `json:"comments"`
	}
	decodeResponse(t, rec, &body)
	require.Len(t, body.Comments, 1)
	assert.Equal(t, 2, body.Comments[0].CommentID)
}
