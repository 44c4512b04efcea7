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

// CreateComment handles POST /comments.
func (b *Blog) CreateComment(w http.ResponseWriter, r *http.Request) {
	var in models.CommentInput
	if !decodeJSON(w, r, &in) {
		return
	}
	c, err := b.svc.CreateComment(r.Context(), in)
	if err != nil {
		writeError(w, r, "create comment", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// DeleteComment handles DELETE /comments/{id}.
func (b *Blog) DeleteComment(w http.ResponseWriter, r *http.Request) {
	b.deleteByID(w, r, "Comment", b.svc.DeleteComment)
}

// ApproveComment handles POST /comments/{id}/approve.
func (b *Blog) ApproveComment(w http.ResponseWriter, r *http.Request) {
	b.moderate(w, r, "approve comment", b.svc.ApproveComment)
}

// RejectComment handles POST /comments/{id}/reject.
func (b *Blog) RejectComment(w http.ResponseWriter, r *http.Request) {
	b.moderate(w, r, "reject comment", b.svc.RejectComment)
}

func (b *Blog) moderate(w http.ResponseWriter, r *http.Request, op string, fn func(context.Context, uuid.UUID) (*models.Comment, error)) {
	id, ok := urlID(w, r, "id")
	if !ok {
		return
	}
	c, err := fn(r.Context(), id)
	if err != nil {
		writeError(w, r, op, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Statistics handles GET /statistics/dashboard.
func (b *Blog) Statistics(w http.ResponseWriter, r *http.Request) {
	st, err := b.svc.Statistics(r.Context())
	if err != nil {
		writeError(w, r, "blog statistics", err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
