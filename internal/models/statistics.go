// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Statistics is the dashboard snapshot. Lists are always non-nil so they
// serialize as empty arrays.
type Statistics struct {
	TotalPosts       int                 `json:"total_posts"`
	PublishedPosts   int                 `json:"published_posts"`
	DraftPosts       int                 `json:"draft_posts"`
	TotalCategories  int                 `json:"total_categories"`
	TotalTags        int                 `json:"total_tags"`
	TotalComments    int                 `json:"total_comments"`
	ApprovedComments int                 `json:"approved_comments"`
	PendingComments  int                 `json:"pending_comments"`
	TotalAuthors     int                 `json:"total_authors"`
	RecentPosts      []PostWithRelations `json:"recent_posts"`
	PopularPosts     []PostWithRelations `json:"popular_posts"`
	RecentComments   []CommentWithAuthor `json:"recent_comments"`
}
