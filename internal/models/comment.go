// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a reader comment on a post. ParentID threads replies to any depth.
type Comment struct {
	ID         uuid.UUID  `json:"id"`
	Content    string     `json:"content"`
	PostID     uuid.UUID  `json:"post_id"`
	AuthorID   uuid.UUID  `json:"author_id"`
	ParentID   *uuid.UUID `json:"parent_id,omitempty"`
	IsApproved bool       `json:"is_approved"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CommentInput carries the fields for creating a comment. New comments are
// never approved on creation.
type CommentInput struct {
	Content  string     `json:"content"`
	PostID   uuid.UUID  `json:"post_id"`
	AuthorID uuid.UUID  `json:"author_id"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
}

// CommentWithAuthor is a comment joined with its author and, for dashboard
// listings, the post it belongs to.
type CommentWithAuthor struct {
	Comment
	Author *AuthorSummary `json:"author,omitempty"`
	Post   *PostRef       `json:"post,omitempty"`
}
