package store

import (
	"context"

	"github.com/ncnews/ncnews/internal/domain"
)

// CommentStore defines the interface for comment data persistence.
type CommentStore interface {
	// ListByArticle returns a page of the comments attached to an article,
	// newest first. An empty page past the end of the data is not an error.
	// Existence of the article itself is the caller's concern.
	ListByArticle(ctx context.Context, articleID int, page Page) ([]domain.Comment, error)

	// ListAll returns every comment, newest first.
	ListAll(ctx context.Context) ([]domain.Comment, error)

	// Create saves a new comment against an article. Referential integrity
	// of the article and author is enforced by the database's foreign keys.
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)

	// IncrementVotes applies a signed delta to the comment's vote total and
	// returns the updated row. Returns ErrCommentNotFound if no row was
	// updated.
	IncrementVotes(ctx context.Context, commentID int, delta int) (*domain.Comment, error)

	// Delete removes a comment. Returns ErrCommentNotFound if no row was
	// deleted.
	Delete(ctx context.Context, commentID int) error
}
