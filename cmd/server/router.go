package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ncnews/ncnews/internal/api"
	apiMiddleware "github.com/ncnews/ncnews/internal/api/middleware"
)

// setupRouter creates the application router with all routes and
// middleware, using the application's stores to build handlers.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	endpointsHandler := api.NewEndpointsHandler(endpointsFilePath, app.logger)
	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.topicStore, app.userStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.articleStore, app.userStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", endpointsHandler.GetEndpointsDescription)

		r.Route("/topics", func(r chi.Router) {
			r.Get("/", topicHandler.ListTopics)
			r.Post("/", topicHandler.CreateTopic)
			r.Get("/{slug}", topicHandler.GetTopicBySlug)
		})

		r.Route("/articles", func(r chi.Router) {
			r.Get("/", articleHandler.ListArticles)
			r.Post("/", articleHandler.CreateArticle)

			r.Route("/{article_id}", func(r chi.Router) {
				r.Get("/", articleHandler.GetArticleByID)
				r.Patch("/", articleHandler.PatchArticleVotes)
				r.Delete("/", articleHandler.DeleteArticle)

				r.Route("/comments", func(r chi.Router) {
					r.Get("/", commentHandler.ListCommentsForArticle)
					r.Post("/", commentHandler.CreateComment)
				})
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/", commentHandler.ListAllComments)
			r.Patch("/{comment_id}", commentHandler.PatchCommentVotes)
			r.Delete("/{comment_id}", commentHandler.DeleteComment)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.ListUsers)
			r.Get("/{username}", userHandler.GetUserByUsername)
		})
	})

	// Any unmatched path or method falls through to the generic 404 body.
	r.NotFound(api.NotFoundHandler)
	r.MethodNotAllowed(api.NotFoundHandler)

	return r
}
