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

// PostgresArticleStore implements the store.ArticleStore interface using a
// PostgreSQL database as the storage backend.
type PostgresArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresArticleStore creates a new PostgreSQL implementation of the
// ArticleStore interface. The connection is initialized and managed by the
// caller. If logger is nil, the default logger is used.
func NewPostgresArticleStore(db store.DBTX, logger *slog.Logger) *PostgresArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*PostgresArticleStore)(nil)

// GetByID implements store.ArticleStore.GetByID. The comment count is
// aggregated in the same statement so a single round trip produces the full
// read shape. Returns store.ErrArticleNotFound if no row matches.
func (s *PostgresArticleStore) GetByID(ctx context.Context, articleID int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT
			articles.article_id,
			articles.title,
			articles.topic,
			articles.author,
			articles.body,
			articles.created_at,
			articles.votes,
			articles.article_img_url,
			COUNT(comments.comment_id)::text AS comment_count
		FROM articles
		LEFT JOIN comments ON articles.article_id = comments.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, articleID).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
		&article.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("article not found", slog.Int("article_id", articleID))
			return nil, store.ErrArticleNotFound
		}
		return nil, MapError(err)
	}

	return &article, nil
}

// List implements store.ArticleStore.List. The page query and the
// total-count query are built together by buildArticleListQuery; the count
// reflects the topic filter but not the pagination.
func (s *PostgresArticleStore) List(ctx context.Context, opts store.ArticleListOptions) ([]domain.Article, int, error) {
	query, args, countQuery, countArgs, err := buildArticleListQuery(opts)
	if err != nil {
		return nil, 0, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(
			&article.ArticleID,
			&article.Title,
			&article.Topic,
			&article.Author,
			&article.CreatedAt,
			&article.Votes,
			&article.ArticleImgURL,
			&article.CommentCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan article row: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	var totalCount int
	if err := s.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&totalCount); err != nil {
		return nil, 0, MapError(err)
	}

	return articles, totalCount, nil
}

// Create implements store.ArticleStore.Create. When ArticleImgURL is empty
// the column is left out of the insert so the table default applies, the
// same shape variation the list query uses for its filter. A fresh article
// has no comments, so the comment count is a literal "0".
func (s *PostgresArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO articles (author, title, body, topic)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`
	args := []any{article.Author, article.Title, article.Body, article.Topic}

	if article.ArticleImgURL != "" {
		query = `
			INSERT INTO articles (author, title, body, topic, article_img_url)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
		`
		args = append(args, article.ArticleImgURL)
	}

	var created domain.Article
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&created.ArticleID,
		&created.Title,
		&created.Topic,
		&created.Author,
		&created.Body,
		&created.CreatedAt,
		&created.Votes,
		&created.ArticleImgURL,
	)
	if err != nil {
		return nil, MapError(err)
	}
	created.CommentCount = "0"

	log.Info("article created",
		slog.Int("article_id", created.ArticleID),
		slog.String("author", created.Author),
		slog.String("topic", created.Topic))
	return &created, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes. Votes are
// unbounded; a negative delta may drive the total below zero. Returns
// store.ErrArticleNotFound if no row was updated.
func (s *PostgresArticleStore) IncrementVotes(ctx context.Context, articleID int, delta int) (*domain.Article, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var article domain.Article
	err := s.db.QueryRowContext(ctx, query, delta, articleID).Scan(
		&article.ArticleID,
		&article.Title,
		&article.Topic,
		&article.Author,
		&article.Body,
		&article.CreatedAt,
		&article.Votes,
		&article.ArticleImgURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleNotFound
		}
		return nil, MapError(err)
	}

	log.Debug("article votes updated",
		slog.Int("article_id", articleID),
		slog.Int("delta", delta),
		slog.Int("votes", article.Votes))
	return &article, nil
}

// Delete implements store.ArticleStore.Delete. The comments referencing the
// article are removed by the schema's ON DELETE CASCADE, not by application
// logic. Returns store.ErrArticleNotFound if no row was deleted.
func (s *PostgresArticleStore) Delete(ctx context.Context, articleID int) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM articles WHERE article_id = $1`

	result, err := s.db.ExecContext(ctx, query, articleID)
	if err != nil {
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrArticleNotFound); err != nil {
		return err
	}

	log.Info("article deleted", slog.Int("article_id", articleID))
	return nil
}
