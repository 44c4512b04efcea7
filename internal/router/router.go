// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the blog
// JSON API.
package router

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"blogcms/internal/handlers"
	"blogcms/internal/middleware"
)

// Pinger reports whether the database is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// healthTimeout bounds the database ping behind /health.
const healthTimeout = 2 * time.Second

// New creates the configured Chi router. viewLimiter throttles the post
// view counter; nil disables throttling.
func New(db Pinger, blog *handlers.Blog, viewLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusNotFound, `{"error":"Not found"}`)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`)
	})

	r.Get("/health", healthHandler(db))

	r.Route("/api/v1/blog", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", blog.ListPosts)
			r.Post("/", blog.CreatePost)
			r.Get("/slug/{slug}", blog.GetPostBySlug)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", blog.GetPost)
				r.Put("/", blog.UpdatePost)
				r.Delete("/", blog.DeletePost)
				r.Post("/publish", blog.PublishPost)
				r.Post("/unpublish", blog.UnpublishPost)
				r.Post("/archive", blog.ArchivePost)
				r.Put("/tags", blog.ReplacePostTags)
				r.Get("/comments", blog.ListPostComments)

				r.Group(func(r chi.Router) {
					if viewLimiter != nil {
						r.Use(viewLimiter.Middleware)
					}
					r.Post("/view", blog.RecordView)
				})
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", blog.ListCategories)
			r.Post("/", blog.CreateCategory)
			r.Get("/{id}", blog.GetCategory)
			r.Put("/{id}", blog.UpdateCategory)
			r.Delete("/{id}", blog.DeleteCategory)
			r.Get("/{id}/posts", blog.ListCategoryPosts)
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", blog.ListTags)
			r.Post("/", blog.CreateTag)
			r.Get("/{id}", blog.GetTag)
			r.Put("/{id}", blog.UpdateTag)
			r.Delete("/{id}", blog.DeleteTag)
			r.Get("/{id}/posts", blog.ListTagPosts)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Post("/", blog.CreateComment)
			r.Delete("/{id}", blog.DeleteComment)
			r.Post("/{id}/approve", blog.ApproveComment)
			r.Post("/{id}/reject", blog.RejectComment)
		})

		r.Get("/statistics/dashboard", blog.Statistics)
	})

	return r
}

// healthHandler returns a JSON health check that also pings the database.
func healthHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			slog.Error("health check failed", "error", err, "request_id", chimw.GetReqID(r.Context()))
			writeStatus(w, http.StatusServiceUnavailable, `{"status":"unavailable"}`)
			return
		}
		writeStatus(w, http.StatusOK, `{"status":"ok"}`)
	}
}

func writeStatus(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body + "\n"))
}
