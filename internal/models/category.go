// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups posts. A post has at most one category; deleting a
// category leaves its posts uncategorized.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Virtual field populated by list/get queries; omitted when zero.
	PostCount int `json:"post_count,omitempty"`
}

// CategoryInput carries the fields for creating or updating a category.
type CategoryInput struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// CategoryPatch is a partial category update. A nil Name keeps the current
// name; Description follows Optional semantics.
type CategoryPatch struct {
	Name        *string          `json:"name,omitempty"`
	Description Optional[string] `json:"description"`
}
