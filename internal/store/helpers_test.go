// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"blogcms/internal/database/dbtest"
	"blogcms/internal/models"
	"blogcms/internal/slug"
)

// testStores returns stores over a fresh schema plus one author to own posts.
func testStores(t *testing.T) (*Stores, *sql.DB, uuid.UUID) {
	t.Helper()
	db := dbtest.Open(t)
	return New(db), db, dbtest.CreateAuthor(t, db, "Test Author")
}

func createPost(t *testing.T, s *Stores, authorID uuid.UUID, title string, status models.PostStatus) *models.Post {
	t.Helper()
	p := &models.Post{
		Title:    title,
		Slug:     slug.Generate(title),
		Content:  "Body of " + title,
		Status:   status,
		AuthorID: authorID,
	}
	created, err := s.Posts.Create(context.Background(), p)
	require.NoError(t, err)
	return created
}

func createCategory(t *testing.T, s *Stores, name string) *models.Category {
	t.Helper()
	c, err := s.Categories.Create(context.Background(), &models.Category{Name: name, Slug: slug.Generate(name)})
	require.NoError(t, err)
	return c
}

func createTag(t *testing.T, s *Stores, name string) *models.Tag {
	t.Helper()
	tag, err := s.Tags.Create(context.Background(), &models.Tag{Name: name, Slug: slug.Generate(name)})
	require.NoError(t, err)
	return tag
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	return names
}

func postTitles(posts []models.PostWithRelations) []string {
	titles := make([]string, len(posts))
	for i, p := range posts {
		titles[i] = p.Title
	}
	return titles
}
