// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"blogcms/internal/models"
)

// Aggregate queries backing the dashboard report. Each runs as a single
// statement so the caller can issue them concurrently.

// Count returns the number of posts, optionally restricted to one status.
func (s *PostStore) Count(ctx context.Context, status *models.PostStatus) (int, error) {
	var (
		n   int
		err error
	)
	if status == nil {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_posts`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM blog_posts WHERE status = $1`, string(*status)).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// CountAuthors returns the number of distinct users that authored a post.
func (s *PostStore) CountAuthors(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(DISTINCT author_id) FROM blog_posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return n, nil
}

// Count returns the number of comments, optionally restricted by approval.
func (s *CommentStore) Count(ctx context.Context, approved *bool) (int, error) {
	var (
		n   int
		err error
	)
	if approved == nil {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_comments`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM blog_comments WHERE is_approved = $1`, *approved).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return n, nil
}
