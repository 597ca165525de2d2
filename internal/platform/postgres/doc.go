// Package postgres provides PostgreSQL implementations of the store
// interfaces. All statements are parameterized; the one sanctioned
// exception is the article list's sort column and direction, which SQL
// cannot take as bind parameters and which are therefore checked against a
// closed allow-list before any string composition happens.
//
// Database errors are translated to store sentinel errors by MapError so
// that no pgconn detail leaks past this package except through error
// wrapping for logs.
package postgres
