// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogcms/internal/models"
)

func TestCategoryStoreCRUD(t *testing.T) {
	s, _, _ := testStores(t)
	ctx := context.Background()

	desc := "Product news"
	created, err := s.Categories.Create(ctx, &models.Category{Name: "News", Slug: "news", Description: &desc})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	require.NotNil(t, created.Description)
	assert.Equal(t, "Product news", *created.Description)

	found, err := s.Categories.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "news", found.Slug)
	assert.Zero(t, found.PostCount)

	found.Name = "Company News"
	found.Slug = "company-news"
	found.Description = nil
	updated, err := s.Categories.Update(ctx, found)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Company News", updated.Name)
	assert.Nil(t, updated.Description)

	deleted, err := s.Categories.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	gone, err := s.Categories.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	deleted, err = s.Categories.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	none, err := s.Categories.Update(ctx, &models.Category{ID: uuid.New(), Name: "x", Slug: "x"})
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestCategoryStoreDuplicateName(t *testing.T) {
	s, _, _ := testStores(t)
	createCategory(t, s, "Engineering")

	_, err := s.Categories.Create(context.Background(), &models.Category{Name: "Engineering", Slug: "engineering-2"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = s.Categories.Create(context.Background(), &models.Category{Name: "Other", Slug: "Not A Slug"})
	assert.ErrorIs(t, err, ErrConstraint)
}

func TestCategoryStoreListWithCounts(t *testing.T) {
	s, _, authorID := testStores(t)
	ctx := context.Background()

	zeta := createCategory(t, s, "Zeta")
	createCategory(t, s, "Alpha")

	for _, title := range []string{"One", "Two"} {
		p := createPost(t, s, authorID, title, models.PostStatusDraft)
		p.CategoryID = &zeta.ID
		_, err := s.Posts.Update(ctx, p)
		require.NoError(t, err)
	}

	items, err := s.Categories.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Alpha", items[0].Name)
	assert.Zero(t, items[0].PostCount)
	assert.Equal(t, "Zeta", items[1].Name)
	assert.Equal(t, 2, items[1].PostCount)

	n, err := s.Categories.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCategoryStoreDeleteUncategorizesPosts(t *testing.T) {
	s, _, authorID := testStores(t)
	ctx := context.Background()

	cat := createCategory(t, s, "Temporary")
	p := createPost(t, s, authorID, "Survivor", models.PostStatusPublished)
	p.CategoryID = &cat.ID
	_, err := s.Posts.Update(ctx, p)
	require.NoError(t, err)

	deleted, err := s.Categories.Delete(ctx, cat.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	found, err := s.Posts.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.CategoryID)
	assert.Nil(t, found.Category)
}

func TestCategoryStoreUnknownCategoryOnPost(t *testing.T) {
	s, _, authorID := testStores(t)
	p := createPost(t, s, authorID, "Misfiled", models.PostStatusDraft)

	bogus := uuid.New()
	p.CategoryID = &bogus
	_, err := s.Posts.Update(context.Background(), p)
	assert.ErrorIs(t, err, ErrInvalidReference)
}
