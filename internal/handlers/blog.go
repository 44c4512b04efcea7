// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers of the blog JSON API.
// Handlers decode requests, call the blog service and map its error
// classes onto status codes; they hold no state of their own.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"blogcms/internal/blog"
	"blogcms/internal/models"
	"blogcms/internal/store"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// BlogService is the set of blog operations used by the API. It is
// implemented by *blog.Service.
type BlogService interface {
	CreatePost(ctx context.Context, in models.PostInput) (*models.PostWithRelations, error)
	GetPost(ctx context.Context, id uuid.UUID) (*models.PostWithRelations, error)
	GetPostBySlug(ctx context.Context, slug string) (*models.PostWithRelations, error)
	ListPosts(ctx context.Context, f models.PostFilter, s models.PostSort, p models.Pagination) (*models.PostPage, error)
	UpdatePost(ctx context.Context, id uuid.UUID, patch models.PostPatch) (*models.PostWithRelations, error)
	DeletePost(ctx context.Context, id uuid.UUID) (bool, error)
	PublishPost(ctx context.Context, id uuid.UUID) (*models.Post, error)
	UnpublishPost(ctx context.Context, id uuid.UUID) (*models.Post, error)
	ArchivePost(ctx context.Context, id uuid.UUID) (*models.Post, error)
	RecordView(ctx context.Context, id uuid.UUID) (int, error)
	ReplacePostTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) (*models.PostWithRelations, error)

	CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error)
	ListCategoryPosts(ctx context.Context, id uuid.UUID, s models.PostSort, p models.Pagination) (*models.PostPage, error)

	CreateTag(ctx context.Context, in models.TagInput) (*models.Tag, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, in models.TagInput) (*models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) (bool, error)
	ListTagPosts(ctx context.Context, id uuid.UUID, s models.PostSort, p models.Pagination) (*models.PostPage, error)

	CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthor, error)
	ApproveComment(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	RejectComment(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) (bool, error)

	Statistics(ctx context.Context) (*models.Statistics, error)
}

var _ BlogService = (*blog.Service)(nil)

// Blog groups the blog API handlers.
type Blog struct {
	svc BlogService
}

// NewBlog creates the blog API handler group.
func NewBlog(svc BlogService) *Blog {
	return &Blog{svc: svc}
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError maps err onto a status code. Unexpected errors are logged and
// reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var ve *blog.ValidationError
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: ve.Fields})
	case errors.Is(err, blog.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	case errors.Is(err, store.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: "Already exists"})
	case errors.Is(err, store.ErrInvalidReference), errors.Is(err, store.ErrConstraint):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "Invalid reference"})
	default:
		slog.Error(op, "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}

func writeNotFound(w http.ResponseWriter, what string) {
	writeJSON(w, http.StatusNotFound, errorResponse{Error: what + " not found"})
}

// writeBadRequest reports input problems found while decoding a request.
func writeBadRequest(w http.ResponseWriter, fields validation.Errors) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: fields})
}

// decodeJSON reads the request body into dst. It writes the error response
// itself and returns false when the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid JSON body", Details: err.Error()})
		return false
	}
	return true
}

// urlID parses a UUID route parameter, writing a 400 when it is malformed.
func urlID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeBadRequest(w, validation.Errors{name: errors.New("must be a valid UUID")})
		return uuid.Nil, false
	}
	return id, true
}
