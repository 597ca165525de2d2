package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is a generic version of the entity-specific not found
	// errors (e.g., ErrArticleNotFound, ErrTopicNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a topic with an existing slug).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidInput is returned when an operation is given input the
	// store refuses to act on, such as a sort column outside the allow-list.
	// The request never reaches the database in that case.
	ErrInvalidInput = errors.New("invalid input")

	// Entity-specific "not found" errors

	// ErrTopicNotFound indicates that the requested topic does not exist.
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)

	// ErrArticleNotFound indicates that the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates that the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrTopicExists indicates that a topic with the given slug already
	// exists. Returned when creating a topic with a taken slug.
	ErrTopicExists = fmt.Errorf("%w: topic slug", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
