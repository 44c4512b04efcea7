// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"blogcms/internal/models"
)

// ListCategories handles GET /categories.
func (b *Blog) ListCategories(w http.ResponseWriter, r *http.Request) {
	items, err := b.svc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateCategory handles POST /categories.
func (b *Blog) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var in models.CategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := b.svc.CreateCategory(r.Context(), in)
	if err != nil {
		writeError(w, r, "create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// GetCategory handles GET /categories/{id}.
func (b *Blog) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	c, err := b.svc.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, r, "get category", err)
		return
	}
	if c == nil {
		writeNotFound(w, "Category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateCategory handles PUT /categories/{id}.
func (b *Blog) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var patch models.CategoryPatch
	if !decodeJSON(w, r, &patch) {
		return
	}
	c, err := b.svc.UpdateCategory(r.Context(), id, patch)
	if err != nil {
		writeError(w, r, "update category", err)
		return
	}
	if c == nil {
		writeNotFound(w, "Category")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCategory handles DELETE /categories/{id}.
func (b *Blog) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	b.deleteByID(w, r, "Category", b.svc.DeleteCategory)
}

// ListCategoryPosts handles GET /categories/{id}/posts.
func (b *Blog) ListCategoryPosts(w http.ResponseWriter, r *http.Request) {
	b.listScoped(w, r, "list category posts", b.svc.ListCategoryPosts)
}

// ListTags handles GET /tags.
func (b *Blog) ListTags(w http.ResponseWriter, r *http.Request) {
	items, err := b.svc.ListTags(r.Context())
	if err != nil {
		writeError(w, r, "list tags", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateTag handles POST /tags.
func (b *Blog) CreateTag(w http.ResponseWriter, r *http.Request) {
	var in models.TagInput
	if !decodeJSON(w, r, &in) {
		return
	}
	t, err := b.svc.CreateTag(r.Context(), in)
	if err != nil {
		writeError(w, r, "create tag", err)
		return
	}
	writeJSON(w, http.StatusCreated, t)
}

// GetTag handles GET /tags/{id}.
func (b *Blog) GetTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	t, err := b.svc.GetTag(r.Context(), id)
	if err != nil {
		writeError(w, r, "get tag", err)
		return
	}
	if t == nil {
		writeNotFound(w, "Tag")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// UpdateTag handles PUT /tags/{id}.
func (b *Blog) UpdateTag(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	var in models.TagInput
	if !decodeJSON(w, r, &in) {
		return
	}
	t, err := b.svc.UpdateTag(r.Context(), id, in)
	if err != nil {
		writeError(w, r, "update tag", err)
		return
	}
	if t == nil {
		writeNotFound(w, "Tag")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// DeleteTag handles DELETE /tags/{id}.
func (b *Blog) DeleteTag(w http.ResponseWriter, r *http.Request) {
	b.deleteByID(w, r, "Tag", b.svc.DeleteTag)
}

// ListTagPosts handles GET /tags/{id}/posts.
func (b *Blog) ListTagPosts(w http.ResponseWriter, r *http.Request) {
	b.listScoped(w, r, "list tag posts", b.svc.ListTagPosts)
}

// listScoped serves a post listing narrowed to the entity in the {id} route
// parameter. Only sorting and paging are read from the query string.
func (b *Blog) listScoped(w http.ResponseWriter, r *http.Request, op string,
	fn func(context.Context, uuid.UUID, models.PostSort, models.Pagination) (*models.PostPage, error),
) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	lq, errs := parseListQuery(r.URL.Query())
	if errs != nil {
		writeBadRequest(w, errs)
		return
	}
	page, err := fn(r.Context(), id, lq.sort, lq.pagination)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
