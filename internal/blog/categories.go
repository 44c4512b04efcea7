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
)

// nameSlug derives the slug for a category or tag name.
func nameSlug(name string) (string, error) {
	sl := slug.Generate(name)
	if !slug.Valid(sl) {
		return "", invalidField("name", "must contain at least one letter or digit")
	}
	return sl, nil
}

// CreateCategory inserts a category with a slug derived from its name.
// Duplicate names or slugs fail with store.ErrConflict.
func (s *Service) CreateCategory(ctx context.Context, in models.CategoryInput) (*models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateCategory(&in.Name, in.Description); err != nil {
		return nil, err
	}
	sl, err := nameSlug(in.Name)
	if err != nil {
		return nil, err
	}
	return s.stores.Categories.Create(ctx, &models.Category{
		Name:        in.Name,
		Slug:        sl,
		Description: in.Description,
	})
}

// ListCategories returns every category with its post count.
func (s *Service) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.stores.Categories.List(ctx)
}

// GetCategory returns a category with its post count, or nil.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return s.stores.Categories.FindByID(ctx, id)
}

// UpdateCategory applies a partial update; a new name regenerates the slug.
// Returns nil if the category does not exist.
func (s *Service) UpdateCategory(ctx context.Context, id uuid.UUID, patch models.CategoryPatch) (*models.Category, error) {
	if patch.Name != nil {
		n := strings.TrimSpace(*patch.Name)
		patch.Name = &n
	}
	if err := validateCategory(patch.Name, patch.Description.Value); err != nil {
		return nil, err
	}

	c, err := s.stores.Categories.FindByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != c.Name {
		if c.Slug, err = nameSlug(*patch.Name); err != nil {
			return nil, err
		}
		c.Name = *patch.Name
	}
	if patch.Description.Set {
		c.Description = patch.Description.Value
	}

	updated, err := s.stores.Categories.Update(ctx, c)
	if err != nil || updated == nil {
		return nil, err
	}
	updated.PostCount = c.PostCount
	return updated, nil
}

// DeleteCategory removes a category. Its posts stay and lose their
// category. Returns false if the category did not exist.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.stores.Categories.Delete(ctx, id)
}

// ListCategoryPosts lists posts of one category.
func (s *Service) ListCategoryPosts(ctx context.Context, id uuid.UUID, srt models.PostSort, pg models.Pagination) (*models.PostPage, error) {
	c, err := s.stores.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return s.ListPosts(ctx, models.PostFilter{CategoryID: &id}, srt, pg)
}
