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

// PostgresTopicStore implements the store.TopicStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface. The connection is initialized and managed by the
// caller. If logger is nil, the default logger is used.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*PostgresTopicStore)(nil)

// List implements store.TopicStore.List.
func (s *PostgresTopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	query := `SELECT slug, description FROM topics`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	topics := []domain.Topic{}
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(&topic.Slug, &topic.Description); err != nil {
			return nil, fmt.Errorf("failed to scan topic row: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return topics, nil
}

// GetBySlug implements store.TopicStore.GetBySlug.
// Returns store.ErrTopicNotFound if no topic has the given slug.
func (s *PostgresTopicStore) GetBySlug(ctx context.Context, slug string) (*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT slug, description FROM topics WHERE slug = $1`

	var topic domain.Topic
	err := s.db.QueryRowContext(ctx, query, slug).Scan(&topic.Slug, &topic.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("topic not found", slog.String("slug", slug))
			return nil, store.ErrTopicNotFound
		}
		return nil, MapError(err)
	}

	return &topic, nil
}

// Create implements store.TopicStore.Create.
// Returns store.ErrTopicExists if the slug is already taken.
func (s *PostgresTopicStore) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description
	`

	var created domain.Topic
	err := s.db.QueryRowContext(ctx, query, topic.Slug, topic.Description).
		Scan(&created.Slug, &created.Description)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("duplicate topic slug", slog.String("slug", topic.Slug))
			return nil, fmt.Errorf("%w: %v", store.ErrTopicExists, err)
		}
		return nil, MapError(err)
	}

	log.Info("topic created", slog.String("slug", created.Slug))
	return &created, nil
}
