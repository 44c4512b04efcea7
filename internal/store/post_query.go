// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"strconv"
	"strings"

	"blogcms/internal/models"
)

// sortColumns whitelists the columns a post listing may be ordered by.
var sortColumns = map[models.SortField]string{
	models.SortByCreatedAt:   "p.created_at",
	models.SortByUpdatedAt:   "p.updated_at",
	models.SortByPublishedAt: "p.published_at",
	models.SortByTitle:       "p.title",
	models.SortByViewCount:   "p.view_count",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// postQuery accumulates WHERE predicates and their positional arguments.
type postQuery struct {
	where []string
	args  []any
}

// bind appends v to the argument list and returns its placeholder.
func (q *postQuery) bind(v any) string {
	q.args = append(q.args, v)
	return "$" + strconv.Itoa(len(q.args))
}

func (q *postQuery) whereClause() string {
	if len(q.where) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.where, " AND ")
}

// newPostQuery translates a filter into ANDed predicates over blog_posts p.
// Absent filter fields contribute nothing.
func newPostQuery(f models.PostFilter) *postQuery {
	q := &postQuery{}

	if f.Status != nil {
		q.where = append(q.where, "p.status = "+q.bind(string(*f.Status)))
	}
	if f.CategoryID != nil {
		q.where = append(q.where, "p.category_id = "+q.bind(*f.CategoryID))
	}
	if f.AuthorID != nil {
		q.where = append(q.where, "p.author_id = "+q.bind(*f.AuthorID))
	}
	if f.Search != "" {
		ph := q.bind("%" + likeEscaper.Replace(f.Search) + "%")
		q.where = append(q.where, "(p.title ILIKE "+ph+" OR p.content ILIKE "+ph+")")
	}
	if len(f.TagIDs) > 0 {
		ids := make([]string, len(f.TagIDs))
		for i, id := range f.TagIDs {
			ids[i] = id.String()
		}
		q.where = append(q.where,
			"EXISTS (SELECT 1 FROM blog_post_tags pt WHERE pt.post_id = p.id AND pt.tag_id = ANY("+q.bind(ids)+"::uuid[]))")
	}

	return q
}

// orderByClause returns the ORDER BY for s, falling back to the default
// sort for unknown fields or directions.
func orderByClause(s models.PostSort) string {
	col, ok := sortColumns[s.Field]
	if !ok {
		col = sortColumns[models.DefaultPostSort.Field]
	}
	dir := "DESC"
	if s.Direction == models.SortAsc {
		dir = "ASC"
	}
	return " ORDER BY " + col + " " + dir
}

// buildPostQuery returns the page query and the matching count query for a
// listing. Both share the same WHERE clause; the count query has no
// ordering or bounds. p must already be normalized.
func buildPostQuery(f models.PostFilter, s models.PostSort, p models.Pagination) (pageSQL string, pageArgs []any, countSQL string, countArgs []any) {
	q := newPostQuery(f)
	where := q.whereClause()

	countSQL = `SELECT COUNT(*) FROM blog_posts p` + where
	countArgs = append([]any(nil), q.args...)

	pageSQL = `SELECT ` + postWithRelationsColumns + postWithRelationsFrom + where + orderByClause(s)
	pageSQL += " LIMIT " + q.bind(p.Limit) + " OFFSET " + q.bind(p.Offset())
	pageArgs = q.args

	return pageSQL, pageArgs, countSQL, countArgs
}
