package store

import (
	"context"

	"github.com/ncnews/ncnews/internal/domain"
)

// TopicStore defines the interface for topic data persistence.
type TopicStore interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)

	// GetBySlug retrieves a topic by its slug.
	// Returns ErrTopicNotFound if the topic does not exist.
	GetBySlug(ctx context.Context, slug string) (*domain.Topic, error)

	// Create saves a new topic.
	// Returns ErrTopicExists if the slug is already taken.
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}
