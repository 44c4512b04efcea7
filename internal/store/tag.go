// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"blogcms/internal/models"
)

// TagStore manages blog tags in the database.
type TagStore struct {
	db DBTX
}

// NewTagStore returns a new TagStore.
func NewTagStore(db DBTX) *TagStore {
	return &TagStore{db: db}
}

const tagColumns = `id, name, slug, created_at, updated_at`

func scanTag(s scanner) (*models.Tag, error) {
	var t models.Tag
	if err := s.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

const tagWithCountSelect = `
	SELECT t.id, t.name, t.slug, t.created_at, t.updated_at,
	       COUNT(pt.post_id) AS post_count
	FROM blog_tags t
	LEFT JOIN blog_post_tags pt ON pt.tag_id = t.id`

func scanTagWithCount(s scanner) (*models.Tag, error) {
	var t models.Tag
	if err := s.Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt, &t.PostCount); err != nil {
		return nil, err
	}
	return &t, nil
}

// List returns all tags ordered by name, with the number of posts using each.
func (s *TagStore) List(ctx context.Context) ([]models.Tag, error) {
	rows, err := s.db.QueryContext(ctx, tagWithCountSelect+`
		GROUP BY t.id
		ORDER BY t.name`)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	defer rows.Close()

	items := []models.Tag{}
	for rows.Next() {
		t, err := scanTagWithCount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan tag: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// FindByID retrieves a tag with its post count. Returns nil if not found.
func (s *TagStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Tag, error) {
	row := s.db.QueryRowContext(ctx, tagWithCountSelect+`
		WHERE t.id = $1
		GROUP BY t.id`, id)
	t, err := scanTagWithCount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find tag by id: %w", err)
	}
	return t, nil
}

// Create inserts a new tag and returns it.
func (s *TagStore) Create(ctx context.Context, t *models.Tag) (*models.Tag, error) {
	row := s.db.QueryRowContext(ctx,
		`INSERT INTO blog_tags (name, slug) VALUES ($1, $2) RETURNING `+tagColumns,
		t.Name, t.Slug,
	)
	created, err := scanTag(row)
	if err != nil {
		return nil, wrapErr("create tag", err)
	}
	return created, nil
}

// Update renames a tag. Returns nil if not found.
func (s *TagStore) Update(ctx context.Context, t *models.Tag) (*models.Tag, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE blog_tags SET name = $1, slug = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+tagColumns,
		t.Name, t.Slug, t.ID,
	)
	updated, err := scanTag(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("update tag", err)
	}
	return updated, nil
}

// Delete removes a tag and, through the cascade, its post associations.
// Returns false if nothing was deleted.
func (s *TagStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_tags WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete tag: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete tag: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of tags.
func (s *TagStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM blog_tags`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count tags: %w", err)
	}
	return n, nil
}
