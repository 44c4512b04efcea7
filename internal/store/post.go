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

// PostStore manages blog posts in the database.
type PostStore struct {
	db DBTX
}

// NewPostStore returns a new PostStore.
func NewPostStore(db DBTX) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, slug, content, excerpt, featured_image, status, published_at,
	view_count, author_id, category_id, created_at, updated_at`

// postWithRelationsColumns selects a post with its category, its author and
// the number of approved comments. Used with postWithRelationsFrom.
const postWithRelationsColumns = `p.id, p.title, p.slug, p.content, p.excerpt, p.featured_image,
	p.status, p.published_at, p.view_count, p.author_id, p.category_id, p.created_at, p.updated_at,
	c.id, c.name, c.slug, c.description, c.created_at, c.updated_at,
	u.id, u.name, u.email, u.image,
	(SELECT COUNT(*) FROM blog_comments bc WHERE bc.post_id = p.id AND bc.is_approved) AS comments_count`

const postWithRelationsFrom = `
	FROM blog_posts p
	LEFT JOIN blog_categories c ON c.id = p.category_id
	LEFT JOIN users u ON u.id = p.author_id`

// scanPost scans a row into a Post struct.
func scanPost(s scanner) (*models.Post, error) {
	var p models.Post
	err := s.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImage,
		&p.Status, &p.PublishedAt, &p.ViewCount, &p.AuthorID, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanPostWithRelations scans a row selected with postWithRelationsColumns.
// Tags are left empty; callers load them in one batch.
func scanPostWithRelations(s scanner) (*models.PostWithRelations, error) {
	var (
		p models.PostWithRelations

		catID                  *uuid.UUID
		catName, catSlug       sql.NullString
		catDescription         *string
		catCreated, catUpdated sql.NullTime

		authorID               *uuid.UUID
		authorName, authorMail sql.NullString
		authorImage            *string
	)
	err := s.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.FeaturedImage,
		&p.Status, &p.PublishedAt, &p.ViewCount, &p.AuthorID, &p.CategoryID,
		&p.CreatedAt, &p.UpdatedAt,
		&catID, &catName, &catSlug, &catDescription, &catCreated, &catUpdated,
		&authorID, &authorName, &authorMail, &authorImage,
		&p.CommentsCount,
	)
	if err != nil {
		return nil, err
	}

	if catID != nil {
		p.Category = &models.Category{
			ID:          *catID,
			Name:        catName.String,
			Slug:        catSlug.String,
			Description: catDescription,
			CreatedAt:   catCreated.Time,
			UpdatedAt:   catUpdated.Time,
		}
	}
	if authorID != nil {
		p.Author = &models.AuthorSummary{
			ID:    *authorID,
			Name:  authorName.String,
			Email: authorMail.String,
			Image: authorImage,
		}
	}
	p.Tags = []models.Tag{}
	return &p, nil
}

// Create inserts a new post and returns it.
func (s *PostStore) Create(ctx context.Context, p *models.Post) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO blog_posts (title, slug, content, excerpt, featured_image, status,
		                        published_at, author_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, p.FeaturedImage, string(p.Status),
		p.PublishedAt, p.AuthorID, p.CategoryID,
	)
	created, err := scanPost(row)
	if err != nil {
		return nil, wrapErr("create post", err)
	}
	return created, nil
}

// FindByID retrieves an enriched post by ID. Returns nil if not found.
func (s *PostStore) FindByID(ctx context.Context, id uuid.UUID) (*models.PostWithRelations, error) {
	return s.findOne(ctx, "find post by id", `p.id = $1`, id)
}

// FindBySlug retrieves an enriched post by slug. Returns nil if not found.
func (s *PostStore) FindBySlug(ctx context.Context, slug string) (*models.PostWithRelations, error) {
	return s.findOne(ctx, "find post by slug", `p.slug = $1`, slug)
}

func (s *PostStore) findOne(ctx context.Context, op, cond string, arg any) (*models.PostWithRelations, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postWithRelationsColumns+postWithRelationsFrom+` WHERE `+cond, arg)
	p, err := scanPostWithRelations(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tags, err := NewPostTagStore(s.db).TagsForPosts(ctx, []uuid.UUID{p.ID})
	if err != nil {
		return nil, err
	}
	if t := tags[p.ID]; t != nil {
		p.Tags = t
	}
	return p, nil
}

// FindForUpdate loads the bare post row and locks it until the surrounding
// transaction ends. Returns nil if not found.
func (s *PostStore) FindForUpdate(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM blog_posts WHERE id = $1 FOR UPDATE`, id)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post for update: %w", err)
	}
	return p, nil
}

// List returns one page of enriched posts matching f, ordered by srt,
// together with the total number of matches. pg is normalized first.
func (s *PostStore) List(ctx context.Context, f models.PostFilter, srt models.PostSort, pg models.Pagination) (*models.PostPage, error) {
	pg = pg.Normalize()
	pageSQL, pageArgs, countSQL, countArgs := buildPostQuery(f, srt, pg)

	var total int
	if err := s.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	posts, err := s.query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, err
	}

	return &models.PostPage{
		Posts:      posts,
		TotalCount: total,
		TotalPages: models.TotalPagesFor(total, pg.Limit),
		Page:       pg.Page,
		Limit:      pg.Limit,
	}, nil
}

// query runs a postWithRelationsColumns select and attaches each post's tags
// with a single additional query for the whole result set.
func (s *PostStore) query(ctx context.Context, query string, args ...any) ([]models.PostWithRelations, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := []models.PostWithRelations{}
	ids := []uuid.UUID{}
	for rows.Next() {
		p, err := scanPostWithRelations(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if len(posts) == 0 {
		return posts, nil
	}

	tags, err := NewPostTagStore(s.db).TagsForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if t := tags[posts[i].ID]; t != nil {
			posts[i].Tags = t
		}
	}
	return posts, nil
}

// Update writes the mutable fields of p. A published_at that is already set
// is never overwritten. Returns nil if the post does not exist.
func (s *PostStore) Update(ctx context.Context, p *models.Post) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE blog_posts SET
			title = $1, slug = $2, content = $3, excerpt = $4, featured_image = $5,
			status = $6, published_at = COALESCE(published_at, $7), category_id = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING `+postColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, p.FeaturedImage,
		string(p.Status), p.PublishedAt, p.CategoryID, p.ID,
	)
	updated, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("update post", err)
	}
	return updated, nil
}

// SetStatus changes the status of a post. The first transition to published
// stamps published_at; later transitions keep it. Returns nil if the post
// does not exist.
func (s *PostStore) SetStatus(ctx context.Context, id uuid.UUID, status models.PostStatus) (*models.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE blog_posts SET
			status = $1::post_status,
			published_at = CASE WHEN $1::post_status = 'published' THEN COALESCE(published_at, NOW())
			                    ELSE published_at END,
			updated_at = NOW()
		WHERE id = $2
		RETURNING `+postColumns,
		string(status), id,
	)
	p, err := scanPost(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("set post status", err)
	}
	return p, nil
}

// IncrementViews adds one to the view counter and returns the new value.
// found is false when the post does not exist.
func (s *PostStore) IncrementViews(ctx context.Context, id uuid.UUID) (count int, found bool, err error) {
	err = s.db.QueryRowContext(ctx,
		`UPDATE blog_posts SET view_count = view_count + 1 WHERE id = $1 RETURNING view_count`, id,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("increment post views: %w", err)
	}
	return count, true, nil
}

// Delete removes a post. Its tag associations and comments are removed by
// the cascading foreign keys. Returns false if nothing was deleted.
func (s *PostStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	return n > 0, nil
}
