package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/platform/logger"
	"github.com/ncnews/ncnews/internal/store"
)

// PostgresCommentStore implements the store.CommentStore interface using a
// PostgreSQL database as the storage backend.
type PostgresCommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCommentStore creates a new PostgreSQL implementation of the
// CommentStore interface. The connection is initialized and managed by the
// caller. If logger is nil, the default logger is used.
func NewPostgresCommentStore(db store.DBTX, logger *slog.Logger) *PostgresCommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresCommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*PostgresCommentStore)(nil)

const commentColumns = `comment_id, article_id, author, body, votes, created_at`

func scanComment(rows *sql.Rows, comment *domain.Comment) error {
	return rows.Scan(
		&comment.CommentID,
		&comment.ArticleID,
		&comment.Author,
		&comment.Body,
		&comment.Votes,
		&comment.CreatedAt,
	)
}

// ListByArticle implements store.CommentStore.ListByArticle. Ordering is
// fixed at newest first; a page past the end of the data yields an empty
// slice, not an error.
func (s *PostgresCommentStore) ListByArticle(ctx context.Context, articleID int, page store.Page) ([]domain.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE article_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, articleID, page.Limit, page.Offset())
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := scanComment(rows, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return comments, nil
}

// ListAll implements store.CommentStore.ListAll.
func (s *PostgresCommentStore) ListAll(ctx context.Context) ([]domain.Comment, error) {
	query := `
		SELECT ` + commentColumns + `
		FROM comments
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var comment domain.Comment
		if err := scanComment(rows, &comment); err != nil {
			return nil, fmt.Errorf("failed to scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return comments, nil
}

// Create implements store.CommentStore.Create. The article and author
// references are guaranteed by the table's foreign keys; a violation comes
// back from MapError as store.ErrNotFound.
func (s *PostgresCommentStore) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO comments (author, article_id, body)
		VALUES ($1, $2, $3)
		RETURNING ` + commentColumns + `
	`

	var created domain.Comment
	err := s.db.QueryRowContext(ctx, query, comment.Author, comment.ArticleID, comment.Body).Scan(
		&created.CommentID,
		&created.ArticleID,
		&created.Author,
		&created.Body,
		&created.Votes,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, MapError(err)
	}

	log.Info("comment created",
		slog.Int("comment_id", created.CommentID),
		slog.Int("article_id", created.ArticleID),
		slog.String("author", created.Author))
	return &created, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes. Returns
// store.ErrCommentNotFound if no row was updated.
func (s *PostgresCommentStore) IncrementVotes(ctx context.Context, commentID int, delta int) (*domain.Comment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING ` + commentColumns + `
	`

	var comment domain.Comment
	err := s.db.QueryRowContext(ctx, query, delta, commentID).Scan(
		&comment.CommentID,
		&comment.ArticleID,
		&comment.Author,
		&comment.Body,
		&comment.Votes,
		&comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		return nil, MapError(err)
	}

	log.Debug("comment votes updated",
		slog.Int("comment_id", commentID),
		slog.Int("delta", delta),
		slog.Int("votes", comment.Votes))
	return &comment, nil
}

// Delete implements store.CommentStore.Delete. Returns
// store.ErrCommentNotFound if no row was deleted.
func (s *PostgresCommentStore) Delete(ctx context.Context, commentID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := s.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrCommentNotFound); err != nil {
		return err
	}

	log.Info("comment deleted", slog.Int("comment_id", commentID))
	return nil
}
