// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogcms/internal/models"
)

func TestBuildPostQuery_NoFilter(t *testing.T) {
	pg := models.Pagination{Page: 1, Limit: 10}
	pageSQL, pageArgs, countSQL, countArgs := buildPostQuery(models.PostFilter{}, models.DefaultPostSort, pg)

	assert.Equal(t, "SELECT COUNT(*) FROM blog_posts p", countSQL)
	assert.Empty(t, countArgs)
	assert.NotContains(t, pageSQL, "WHERE")
	assert.Contains(t, pageSQL, "ORDER BY p.created_at DESC LIMIT $1 OFFSET $2")
	assert.Equal(t, []any{10, 0}, pageArgs)
}

func TestBuildPostQuery_AllFilters(t *testing.T) {
	status := models.PostStatusPublished
	cat := uuid.New()
	author := uuid.New()
	tag1, tag2 := uuid.New(), uuid.New()

	f := models.PostFilter{
		Status:     &status,
		CategoryID: &cat,
		AuthorID:   &author,
		Search:     "go",
		TagIDs:     []uuid.UUID{tag1, tag2},
	}
	pageSQL, pageArgs, countSQL, countArgs := buildPostQuery(f, models.PostSort{Field: models.SortByTitle, Direction: models.SortAsc}, models.Pagination{Page: 3, Limit: 20})

	wantWhere := " WHERE p.status = $1 AND p.category_id = $2 AND p.author_id = $3" +
		" AND (p.title ILIKE $4 OR p.content ILIKE $4)" +
		" AND EXISTS (SELECT 1 FROM blog_post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = ANY($5::uuid[]))"
	assert.Equal(t, "SELECT COUNT(*) FROM blog_posts p"+wantWhere, countSQL)
	assert.True(t, strings.Contains(pageSQL, wantWhere+" ORDER BY p.title ASC LIMIT $6 OFFSET $7"), pageSQL)

	require.Len(t, countArgs, 5)
	assert.Equal(t, "published", countArgs[0])
	assert.Equal(t, cat, countArgs[1])
	assert.Equal(t, author, countArgs[2])
	assert.Equal(t, "%go%", countArgs[3])
	assert.Equal(t, []string{tag1.String(), tag2.String()}, countArgs[4])

	require.Len(t, pageArgs, 7)
	assert.Equal(t, countArgs, pageArgs[:5])
	assert.Equal(t, 20, pageArgs[5])
	assert.Equal(t, 40, pageArgs[6])
}

func TestBuildPostQuery_CountHasNoBounds(t *testing.T) {
	status := models.PostStatusDraft
	filters := []models.PostFilter{
		{},
		{Status: &status},
		{Search: "x"},
		{TagIDs: []uuid.UUID{uuid.New()}},
	}
	for _, f := range filters {
		for _, field := range models.SortFields {
			_, _, countSQL, _ := buildPostQuery(f, models.PostSort{Field: field, Direction: models.SortAsc}, models.Pagination{Page: 9, Limit: 50})
			upper := strings.ToUpper(countSQL)
			assert.NotContains(t, upper, "ORDER BY")
			assert.NotContains(t, upper, "LIMIT")
			assert.NotContains(t, upper, "OFFSET")
		}
	}
}

func TestBuildPostQuery_SearchEscapesWildcards(t *testing.T) {
	_, _, _, args := buildPostQuery(models.PostFilter{Search: `50%_off\now`}, models.DefaultPostSort, models.Pagination{Page: 1, Limit: 10})
	require.Len(t, args, 1)
	assert.Equal(t, `%50\%\_off\\now%`, args[0])
}

func TestOrderByClause(t *testing.T) {
	tests := []struct {
		sort models.PostSort
		want string
	}{
		{models.PostSort{Field: models.SortByCreatedAt, Direction: models.SortDesc}, " ORDER BY p.created_at DESC"},
		{models.PostSort{Field: models.SortByUpdatedAt, Direction: models.SortAsc}, " ORDER BY p.updated_at ASC"},
		{models.PostSort{Field: models.SortByPublishedAt, Direction: models.SortDesc}, " ORDER BY p.published_at DESC"},
		{models.PostSort{Field: models.SortByViewCount, Direction: models.SortDesc}, " ORDER BY p.view_count DESC"},
		{models.PostSort{Field: "id; DROP TABLE blog_posts", Direction: models.SortAsc}, " ORDER BY p.created_at ASC"},
		{models.PostSort{Field: models.SortByTitle, Direction: "sideways"}, " ORDER BY p.title DESC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, orderByClause(tt.sort), "sort %+v", tt.sort)
	}
}
