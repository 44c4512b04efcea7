// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"blogcms/internal/models"
	"blogcms/internal/slug"
	"blogcms/internal/store"
)

// postSlug derives the slug for a title, rejecting titles that contain no
// usable characters.
func postSlug(title string) (string, error) {
	sl := slug.Generate(title)
	if !slug.Valid(sl) {
		return "", invalidField("title", "must contain at least one letter or digit")
	}
	return sl, nil
}

// CreatePost validates in, derives the slug from the title and inserts the
// post together with its tag links in one transaction. A published post
// gets PublishedAt from the input or the current time; any other status
// leaves it empty.
func (s *Service) CreatePost(ctx context.Context, in models.PostInput) (*models.PostWithRelations, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := validatePostInput(&in); err != nil {
		return nil, err
	}
	sl, err := postSlug(in.Title)
	if err != nil {
		return nil, err
	}

	p := &models.Post{
		Title:         in.Title,
		Slug:          sl,
		Content:       in.Content,
		Excerpt:       in.Excerpt,
		FeaturedImage: in.FeaturedImage,
		Status:        in.Status,
		AuthorID:      in.AuthorID,
		CategoryID:    in.CategoryID,
	}
	if p.Status == "" {
		p.Status = models.PostStatusDraft
	}
	if p.IsPublished() {
		at := s.now()
		if in.PublishedAt != nil {
			at = *in.PublishedAt
		}
		p.PublishedAt = &at
	}

	var id uuid.UUID
	err = s.stores.InTx(ctx, func(tx *store.Stores) error {
		created, err := tx.Posts.Create(ctx, p)
		if err != nil {
			return err
		}
		id = created.ID
		return tx.PostTags.Associate(ctx, created.ID, in.TagIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.stores.Posts.FindByID(ctx, id)
}

// GetPost returns the enriched post, or nil if it does not exist.
func (s *Service) GetPost(ctx context.Context, id uuid.UUID) (*models.PostWithRelations, error) {
	return s.stores.Posts.FindByID(ctx, id)
}

// GetPostBySlug returns the enriched post with the given slug, or nil.
// Strings that are not slugs never reach the database.
func (s *Service) GetPostBySlug(ctx context.Context, sl string) (*models.PostWithRelations, error) {
	if !slug.Valid(sl) {
		return nil, nil
	}
	return s.stores.Posts.FindBySlug(ctx, sl)
}

// ListPosts returns one page of enriched posts plus the total number of
// posts matching the filter.
func (s *Service) ListPosts(ctx context.Context, f models.PostFilter, srt models.PostSort, pg models.Pagination) (*models.PostPage, error) {
	f.Search = strings.TrimSpace(f.Search)
	if err := validateQuery(&f, &srt, &pg); err != nil {
		return nil, err
	}
	if srt.Field == "" {
		srt.Field = models.DefaultPostSort.Field
	}
	if srt.Direction == "" {
		srt.Direction = models.DefaultPostSort.Direction
	}
	return s.stores.Posts.List(ctx, f, srt, s.pagination(pg))
}

// UpdatePost applies a partial update. A title change regenerates the slug,
// and the first transition to published stamps PublishedAt. When the patch
// carries tag ids the tag set is replaced in the same transaction. Returns
// nil if the post does not exist.
func (s *Service) UpdatePost(ctx context.Context, id uuid.UUID, patch models.PostPatch) (*models.PostWithRelations, error) {
	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		patch.Title = &t
	}
	if err := validatePostPatch(&patch); err != nil {
		return nil, err
	}

	found := true
	err := s.stores.InTx(ctx, func(tx *store.Stores) error {
		p, err := tx.Posts.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			found = false
			return nil
		}

		oldTitle := p.Title
		patch.Apply(p)
		if p.Title != oldTitle {
			if p.Slug, err = postSlug(p.Title); err != nil {
				return err
			}
		}
		if p.IsPublished() && p.PublishedAt == nil {
			at := s.now()
			p.PublishedAt = &at
		}

		if _, err := tx.Posts.Update(ctx, p); err != nil {
			return err
		}
		if patch.TagIDs != nil {
			return tx.ReplacePostTags(ctx, id, *patch.TagIDs)
		}
		return nil
	})
	if err != nil || !found {
		return nil, err
	}

	return s.stores.Posts.FindByID(ctx, id)
}

// DeletePost removes a post with its comments and tag links. Returns false
// if the post did not exist.
func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.stores.Posts.Delete(ctx, id)
}

// PublishPost moves a post to published.
func (s *Service) PublishPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.setStatus(ctx, id, models.PostStatusPublished)
}

// UnpublishPost moves a post back to draft. PublishedAt is kept.
func (s *Service) UnpublishPost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.setStatus(ctx, id, models.PostStatusDraft)
}

// ArchivePost moves a post to archived. PublishedAt is kept.
func (s *Service) ArchivePost(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return s.setStatus(ctx, id, models.PostStatusArchived)
}

func (s *Service) setStatus(ctx context.Context, id uuid.UUID, status models.PostStatus) (*models.Post, error) {
	p, err := s.stores.Posts.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// RecordView increments the view counter and returns the new value.
func (s *Service) RecordView(ctx context.Context, id uuid.UUID) (int, error) {
	n, found, err := s.stores.Posts.IncrementViews(ctx, id)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, ErrNotFound
	}
	return n, nil
}

// ReplacePostTags makes tagIDs the complete tag set of a post and returns
// the enriched post. Unknown tag ids fail with store.ErrInvalidReference and
// leave the previous set untouched.
func (s *Service) ReplacePostTags(ctx context.Context, id uuid.UUID, tagIDs []uuid.UUID) (*models.PostWithRelations, error) {
	if err := validateTagIDs(tagIDs); err != nil {
		return nil, err
	}

	err := s.stores.InTx(ctx, func(tx *store.Stores) error {
		p, err := tx.Posts.FindForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return ErrNotFound
		}
		return tx.ReplacePostTags(ctx, id, tagIDs)
	})
	if err != nil {
		return nil, err
	}
	return s.stores.Posts.FindByID(ctx, id)
}
