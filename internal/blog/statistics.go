// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"blogcms/internal/models"
)

// Sizes of the top-N lists in the dashboard report.
const (
	statsRecentPosts    = 5
	statsPopularPosts   = 5
	statsRecentComments = 5
)

// statsConcurrency caps how many report queries run at once, so one
// dashboard load holds only a few pool connections.
const statsConcurrency = 4

// Statistics builds the dashboard report. Every figure comes from an
// independent query and up to statsConcurrency of them run at once; if any
// query fails the whole report fails.
func (s *Service) Statistics(ctx context.Context) (*models.Statistics, error) {
	st := &models.Statistics{
		RecentPosts:    []models.PostWithRelations{},
		PopularPosts:   []models.PostWithRelations{},
		RecentComments: []models.CommentWithAuthor{},
	}

	published := models.PostStatusPublished
	draft := models.PostStatusDraft
	approved, pending := true, false

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(statsConcurrency)

	count := func(dst *int, fn func(context.Context) (int, error)) {
		eg.Go(func() error {
			n, err := fn(egCtx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	posts, comments := s.stores.Posts, s.stores.Comments
	count(&st.TotalPosts, func(ctx context.Context) (int, error) { return posts.Count(ctx, nil) })
	count(&st.PublishedPosts, func(ctx context.Context) (int, error) { return posts.Count(ctx, &published) })
	count(&st.DraftPosts, func(ctx context.Context) (int, error) { return posts.Count(ctx, &draft) })
	count(&st.TotalCategories, s.stores.Categories.Count)
	count(&st.TotalTags, s.stores.Tags.Count)
	count(&st.TotalComments, func(ctx context.Context) (int, error) { return comments.Count(ctx, nil) })
	count(&st.ApprovedComments, func(ctx context.Context) (int, error) { return comments.Count(ctx, &approved) })
	count(&st.PendingComments, func(ctx context.Context) (int, error) { return comments.Count(ctx, &pending) })
	count(&st.TotalAuthors, posts.CountAuthors)

	eg.Go(func() error {
		page, err := posts.List(egCtx, models.PostFilter{},
			models.PostSort{Field: models.SortByCreatedAt, Direction: models.SortDesc},
			models.Pagination{Page: 1, Limit: statsRecentPosts})
		if err != nil {
			return err
		}
		st.RecentPosts = page.Posts
		return nil
	})

	eg.Go(func() error {
		page, err := posts.List(egCtx, models.PostFilter{Status: &published},
			models.PostSort{Field: models.SortByViewCount, Direction: models.SortDesc},
			models.Pagination{Page: 1, Limit: statsPopularPosts})
		if err != nil {
			return err
		}
		st.PopularPosts = page.Posts
		return nil
	})

	eg.Go(func() error {
		recent, err := comments.Recent(egCtx, statsRecentComments)
		if err != nil {
			return err
		}
		st.RecentComments = recent
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("blog statistics: %w", err)
	}
	return st, nil
}
