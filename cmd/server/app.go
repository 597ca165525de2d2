package main

import (
	"database/sql"
	"log/slog"

	"github.com/ncnews/ncnews/internal/config"
	"github.com/ncnews/ncnews/internal/platform/postgres"
	"github.com/ncnews/ncnews/internal/store"
)

// endpointsFilePath is where the static API description document lives,
// relative to the server's working directory.
const endpointsFilePath = "endpoints.json"

// application holds the process-scoped dependencies: configuration, the
// logger, the shared database pool, and the stores built on top of it.
// The pool is acquired once at startup and released at shutdown; nothing
// opens ad hoc connections per request.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	topicStore   store.TopicStore
	articleStore store.ArticleStore
	commentStore store.CommentStore
	userStore    store.UserStore
}

// newApplication wires the stores over the shared pool.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) *application {
	return &application{
		config:       cfg,
		logger:       logger,
		db:           db,
		topicStore:   postgres.NewPostgresTopicStore(db, logger),
		articleStore: postgres.NewPostgresArticleStore(db, logger),
		commentStore: postgres.NewPostgresCommentStore(db, logger),
		userStore:    postgres.NewPostgresUserStore(db, logger),
	}
}

// cleanup releases process-scoped resources on shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database", "error", err)
	}
}
