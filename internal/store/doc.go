// Package store defines interfaces for data persistence operations on
// topics, articles, comments, and users. These interfaces abstract the
// underlying storage mechanism from the handlers, allowing delivery code
// to remain independent of the Postgres implementation and making it
// straightforward to substitute mocks in tests.
package store
