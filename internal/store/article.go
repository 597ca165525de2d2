package store

import (
	"context"

	"github.com/ncnews/ncnews/internal/domain"
)

// Article list defaults applied when the corresponding query parameter is
// absent from the request.
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ArticleListOptions carries the optional filter, sort, and pagination
// inputs for listing articles. The zero-ish defaults above are applied by
// the request parser; SortBy and Order are validated against a closed
// allow-list by the store before any SQL is composed.
type ArticleListOptions struct {
	// Topic filters to articles under the given topic slug. Empty means no
	// filter. The caller is responsible for confirming the topic exists
	// when a 404 is wanted for unknown slugs.
	Topic string

	// SortBy names the column to order by.
	SortBy string

	// Order is "asc" or "desc".
	Order string

	// Limit and Page control pagination. Offset is (Page-1)*Limit.
	Limit int
	Page  int
}

// Offset returns the row offset implied by Limit and Page.
func (o ArticleListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// Page carries the pagination inputs for listing comments.
type Page struct {
	Limit int
	Page  int
}

// Offset returns the row offset implied by Limit and Page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ArticleStore defines the interface for article data persistence.
type ArticleStore interface {
	// GetByID retrieves an article by its ID, including its derived
	// comment count. Returns ErrArticleNotFound if the article does not
	// exist.
	GetByID(ctx context.Context, articleID int) (*domain.Article, error)

	// List returns the page of articles selected by opts along with the
	// total count of articles matching the filter before pagination.
	// Returns ErrInvalidInput if SortBy or Order is outside the allow-list.
	List(ctx context.Context, opts ArticleListOptions) ([]domain.Article, int, error)

	// Create saves a new article. The ArticleImgURL field may be empty, in
	// which case the table default is applied. Referential integrity of
	// Author and Topic is enforced by the database's foreign keys.
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)

	// IncrementVotes applies a signed delta to the article's vote total and
	// returns the updated row. Returns ErrArticleNotFound if no row was
	// updated.
	IncrementVotes(ctx context.Context, articleID int, delta int) (*domain.Article, error)

	// Delete removes an article; its comments go with it via the schema's
	// referential cascade. Returns ErrArticleNotFound if no row was deleted.
	Delete(ctx context.Context, articleID int) error
}
