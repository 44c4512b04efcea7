// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"math"

	"github.com/google/uuid"
)

// Pagination defaults and bounds for post listings. MaxPage keeps the row
// offset of any page within int.
const (
	DefaultPageSize = 10
	MaxPageSize     = 50
	MaxPage         = math.MaxInt / MaxPageSize
)

// SortField is a sortable post column, named the way clients send it.
type SortField string

const (
	SortByCreatedAt   SortField = "created_at"
	SortByUpdatedAt   SortField = "updated_at"
	SortByPublishedAt SortField = "published_at"
	SortByTitle       SortField = "title"
	SortByViewCount   SortField = "view_count"
)

// SortFields lists the accepted sort fields.
var SortFields = []SortField{SortByCreatedAt, SortByUpdatedAt, SortByPublishedAt, SortByTitle, SortByViewCount}

// SortDirection is asc or desc.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// PostFilter narrows a post listing. Zero-valued fields impose no constraint.
type PostFilter struct {
	Status     *PostStatus
	CategoryID *uuid.UUID
	AuthorID   *uuid.UUID
	Search     string
	// TagIDs matches posts carrying at least one of the tags.
	TagIDs []uuid.UUID
}

// PostSort orders a post listing. Ties are left in storage order.
type PostSort struct {
	Field     SortField
	Direction SortDirection
}

// DefaultPostSort is newest first.
var DefaultPostSort = PostSort{Field: SortByCreatedAt, Direction: SortDesc}

// Pagination is a 1-based page window.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the page window into its allowed range.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

// Offset returns the row offset of the page. Call on a normalized value.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PostPage is one page of enriched posts plus the total number of matches.
type PostPage struct {
	Posts      []PostWithRelations `json:"posts"`
	TotalCount int                 `json:"total_count"`
	TotalPages int                 `json:"total_pages"`
	Page       int                 `json:"current_page"`
	Limit      int                 `json:"limit"`
}

// TotalPagesFor returns how many pages of size limit hold total rows.
func TotalPagesFor(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}
