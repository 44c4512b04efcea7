// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"blogcms/internal/markdown"
	"blogcms/internal/models"
)

// ListPosts handles GET /posts.
func (b *Blog) ListPosts(w http.ResponseWriter, r *http.Request) {
	lq, errs := parseListQuery(r.URL.Query())
	if errs != nil {
		writeBadRequest(w, errs)
		return
	}

	page, err := b.svc.ListPosts(r.Context(), lq.filter, lq.sort, lq.pagination)
	if err != nil {
		writeError(w, r, "list posts", err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// CreatePost handles POST /posts.
func (b *Blog) CreatePost(w http.ResponseWriter, r *http.Request) {
	var in models.PostInput
	if !decodeJSON(w, r, &in) {
		return
	}

	post, err := b.svc.CreatePost(r.Context(), in)
	if err != nil {
		writeError(w, r, "create post", err)
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// GetPost handles GET /posts/{id}.
func (b *Blog) GetPost(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}

	post, err := b.svc.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, "get post", err)
		return
	}
	if post == nil {
		writeNotFound(w, "Blog post")
		return
	}
	b.writePost(w, r, post)
}

// GetPostBySlug handles GET /posts/slug/{slug}.
func (b *Blog) GetPostBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := b.svc.GetPostBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, r, "get post by slug", err)
		return
	}
	if post == nil {
		writeNotFound(w, "Blog post")
		return
	}
	b.writePost(w, r, post)
}

// writePost answers with a single post. With ?format=html the Markdown
// content is also rendered into content_html.
func (b *Blog) writePost(w http.ResponseWriter, r *http.Request, post *models.PostWithRelations) {
	if r.URL.Query().Get("format") == "html" {
		html, err := markdown.ToHTML(post.Content)
		if err != nil {
			writeError(w, r, "render post content", err)
			return
		}
		post.ContentHTML = html
	}
	writeJSON(w, http.StatusOK, post)
}

// UpdatePost handles PUT /posts/{id} with a partial body.
func (b *Blog) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var patch models.PostPatch
	if !decodeJSON(w, r, &patch) {
		return
	}

	post, err := b.svc.UpdatePost(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, "update post", err)
		return
	}
	if post == nil {
		writeNotFound(w, "Blog post")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// DeletePost handles DELETE /posts/{id}.
func (b *Blog) DeletePost(w http.ResponseWriter, r *http.Request) {
	b.deleteByID(w, r, "Blog post", b.svc.DeletePost)
}

// PublishPost handles POST /posts/{id}/publish.
func (b *Blog) PublishPost(w http.ResponseWriter, r *http.Request) {
	b.transition(w, r, "publish post", b.svc.PublishPost)
}

// UnpublishPost handles POST /posts/{id}/unpublish.
func (b *Blog) UnpublishPost(w http.ResponseWriter, r *http.Request) {
	b.transition(w, r, "unpublish post", b.svc.UnpublishPost)
}

// ArchivePost handles POST /posts/{id}/archive.
func (b *Blog) ArchivePost(w http.ResponseWriter, r *http.Request) {
	b.transition(w, r, "archive post", b.svc.ArchivePost)
}

func (b *Blog) transition(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, uuid.UUID) (*models.Post, error)) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	post, err := fn(r.Context(), id)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// RecordView handles POST /posts/{id}/view.
func (b *Blog) RecordView(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	n, err := b.svc.RecordView(r.Context(), id)
	if err != nil {
		writeError(w, r, "record view", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"view_count": n})
}

// replaceTagsRequest is the body of PUT /posts/{id}/tags.
type replaceTagsRequest struct {
	TagIDs []uuid.UUID `json:"tag_ids"`
}

// ReplacePostTags handles PUT /posts/{id}/tags.
func (b *Blog) ReplacePostTags(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var req replaceTagsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	post, err := b.svc.ReplacePostTags(r.Context(), id, req.TagIDs)
	if err != nil {
		writeError(w, r, "replace post tags", err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// ListPostComments handles GET /posts/{id}/comments.
func (b *Blog) ListPostComments(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	comments, err := b.svc.ListComments(r.Context(), id)
	if err != nil {
		writeError(w, r, "list comments", err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// deleteByID runs a boolean delete and answers 204, or 404 when nothing
// was removed.
func (b *Blog) deleteByID(w http.ResponseWriter, r *http.Request, what string, fn func(context.Context, uuid.UUID) (bool, error)) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	deleted, err := fn(r.Context(), id)
	if err != nil {
		writeError(w, r, "delete "+what, err)
		return
	}
	if !deleted {
		writeNotFound(w, what)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
