// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a label attached to any number of posts through blog_post_tags.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// PostCount is only loaded by listings and lookups of the tag itself.
	PostCount int `json:"post_count,omitempty"`
}

// TagInput carries the fields for creating or renaming a tag.
type TagInput struct {
	Name string `json:"name"`
}
