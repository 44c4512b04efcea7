// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and the request/response shapes shared by the store, service and handlers.
package models

import (
	"time"

	"github.com/google/uuid"
)

// PostStatus represents the publishing state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

// PostStatuses lists every status accepted by the post_status enum.
var PostStatuses = []PostStatus{PostStatusDraft, PostStatusPublished, PostStatusArchived}

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	for _, v := range PostStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Post is a row of the blog_posts table.
type Post struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Content       string     `json:"content"`
	Excerpt       *string    `json:"excerpt,omitempty"`
	FeaturedImage *string    `json:"featured_image,omitempty"`
	Status        PostStatus `json:"status"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ViewCount     int        `json:"view_count"`
	AuthorID      uuid.UUID  `json:"author_id"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsPublished returns true if the post is in published status.
func (p *Post) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// PostWithRelations is a post joined with its category, author summary,
// tag list and approved-comment count.
type PostWithRelations struct {
	Post
	Category      *Category      `json:"category,omitempty"`
	Author        *AuthorSummary `json:"author,omitempty"`
	Tags          []Tag          `json:"tags"`
	CommentsCount int            `json:"comments_count"`

	// ContentHTML is the rendered Content, filled only on request.
	ContentHTML string `json:"content_html,omitempty"`
}

// PostInput carries the fields for creating a post. The slug is always
// derived from Title.
type PostInput struct {
	Title         string      `json:"title"`
	Content       string      `json:"content"`
	Excerpt       *string     `json:"excerpt,omitempty"`
	FeaturedImage *string     `json:"featured_image,omitempty"`
	Status        PostStatus  `json:"status"`
	PublishedAt   *time.Time  `json:"published_at,omitempty"`
	AuthorID      uuid.UUID   `json:"author_id"`
	CategoryID    *uuid.UUID  `json:"category_id,omitempty"`
	TagIDs        []uuid.UUID `json:"tag_ids,omitempty"`
}

// PostPatch is a partial update. Nil pointers and unset Optionals leave the
// stored value untouched; TagIDs == nil keeps the tag set, an empty slice
// clears it.
type PostPatch struct {
	Title         *string             `json:"title,omitempty"`
	Content       *string             `json:"content,omitempty"`
	Excerpt       Optional[string]    `json:"excerpt"`
	FeaturedImage Optional[string]    `json:"featured_image"`
	Status        *PostStatus         `json:"status,omitempty"`
	PublishedAt   *time.Time          `json:"published_at,omitempty"`
	CategoryID    Optional[uuid.UUID] `json:"category_id"`
	TagIDs        *[]uuid.UUID        `json:"tag_ids,omitempty"`
}

// Apply copies the set fields of the patch onto p. An explicit PublishedAt
// only lands on a published post that has never been published before; the
// slug is left to the caller.
func (pp *PostPatch) Apply(p *Post) {
	if pp.Title != nil {
		p.Title = *pp.Title
	}
	if pp.Content != nil {
		p.Content = *pp.Content
	}
	if pp.Excerpt.Set {
		p.Excerpt = pp.Excerpt.Value
	}
	if pp.FeaturedImage.Set {
		p.FeaturedImage = pp.FeaturedImage.Value
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.PublishedAt != nil && p.PublishedAt == nil && p.Status == PostStatusPublished {
		t := *pp.PublishedAt
		p.PublishedAt = &t
	}
	if pp.CategoryID.Set {
		p.CategoryID = pp.CategoryID.Value
	}
}

// PostRef is the minimal identity of a post embedded in other payloads.
type PostRef struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Slug  string    `json:"slug"`
}
