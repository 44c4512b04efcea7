// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package blog

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"blogcms/internal/models"
)

// CreateTag inserts a tag with a slug derived from its name.
func (s *Service) CreateTag(ctx context.Context, in models.TagInput) (*models.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateTag(&in); err != nil {
		return nil, err
	}
	sl, err := nameSlug(in.Name)
	if err != nil {
		return nil, err
	}
	return s.stores.Tags.Create(ctx, &models.Tag{Name: in.Name, Slug: sl})
}

// ListTags returns every tag with the number of posts using it.
func (s *Service) ListTags(ctx context.Context) ([]models.Tag, error) {
	return s.stores.Tags.List(ctx)
}

// GetTag returns a tag with its post count, or nil.
func (s *Service) GetTag(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	return s.stores.Tags.FindByID(ctx, id)
}

// UpdateTag renames a tag and regenerates its slug. Returns nil if the tag
// does not exist.
func (s *Service) UpdateTag(ctx context.Context, id uuid.UUID, in models.TagInput) (*models.Tag, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateTag(&in); err != nil {
		return nil, err
	}
	sl, err := nameSlug(in.Name)
	if err != nil {
		return nil, err
	}

	existing, err := s.stores.Tags.FindByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	updated, err := s.stores.Tags.Update(ctx, &models.Tag{ID: id, Name: in.Name, Slug: sl})
	if err != nil || updated == nil {
		return nil, err
	}
	updated.PostCount = existing.PostCount
	return updated, nil
}

// DeleteTag removes a tag and its post links. Returns false if the tag did
// not exist.
func (s *Service) DeleteTag(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.stores.Tags.Delete(ctx, id)
}

// ListTagPosts lists posts carrying one tag.
func (s *Service) ListTagPosts(ctx context.Context, id uuid.UUID, srt models.PostSort, pg models.Pagination) (*models.PostPage, error) {
	t, err := s.stores.Tags.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrNotFound
	}
	return s.ListPosts(ctx, models.PostFilter{TagIDs: []uuid.UUID{id}}, srt, pg)
}
