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

// CommentStore manages blog comments in the database.
type CommentStore struct {
	db DBTX
}

// NewCommentStore returns a new CommentStore.
func NewCommentStore(db DBTX) *CommentStore {
	return &CommentStore{db: db}
}

const commentColumns = `id, content, post_id, author_id, parent_id, is_approved, created_at, updated_at`

func scanComment(s scanner) (*models.Comment, error) {
	var c models.Comment
	err := s.Scan(
		&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.ParentID,
		&c.IsApproved, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// commentWithAuthorSelect joins each comment to its author and the post it
// belongs to.
const commentWithAuthorSelect = `
	SELECT cm.id, cm.content, cm.post_id, cm.author_id, cm.parent_id, cm.is_approved,
	       cm.created_at, cm.updated_at,
	       u.id, u.name, u.email, u.image,
	       p.id, p.title, p.slug
	FROM blog_comments cm
	LEFT JOIN users u ON u.id = cm.author_id
	LEFT JOIN blog_posts p ON p.id = cm.post_id`

func scanCommentWithAuthor(s scanner) (*models.CommentWithAuthor, error) {
	var (
		c models.CommentWithAuthor

		authorID               *uuid.UUID
		authorName, authorMail sql.NullString
		authorImage            *string

		postID              *uuid.UUID
		postTitle, postSlug sql.NullString
	)
	err := s.Scan(
		&c.ID, &c.Content, &c.PostID, &c.AuthorID, &c.ParentID, &c.IsApproved,
		&c.CreatedAt, &c.UpdatedAt,
		&authorID, &authorName, &authorMail, &authorImage,
		&postID, &postTitle, &postSlug,
	)
	if err != nil {
		return nil, err
	}

	if authorID != nil {
		c.Author = &models.AuthorSummary{
			ID:    *authorID,
			Name:  authorName.String,
			Email: authorMail.String,
			Image: authorImage,
		}
	}
	if postID != nil {
		c.Post = &models.PostRef{ID: *postID, Title: postTitle.String, Slug: postSlug.String}
	}
	return &c, nil
}

func (s *CommentStore) listWithAuthor(ctx context.Context, op, query string, args ...any) ([]models.CommentWithAuthor, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.CommentWithAuthor{}
	for rows.Next() {
		c, err := scanCommentWithAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Create inserts a new comment and returns it. Comments start unapproved.
func (s *CommentStore) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO blog_comments (content, post_id, author_id, parent_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+commentColumns,
		c.Content, c.PostID, c.AuthorID, c.ParentID,
	)
	created, err := scanComment(row)
	if err != nil {
		return nil, wrapErr("create comment", err)
	}
	return created, nil
}

// FindByID retrieves a comment by ID. Returns nil if not found.
func (s *CommentStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM blog_comments WHERE id = $1`, id)
	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

// ListByPost returns every comment on a post, approved or not, newest first.
func (s *CommentStore) ListByPost(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthor, error) {
	return s.listWithAuthor(ctx, "list comments by post",
		commentWithAuthorSelect+` WHERE cm.post_id = $1 ORDER BY cm.created_at DESC`, postID)
}

// Recent returns the newest comments across all posts.
func (s *CommentStore) Recent(ctx context.Context, limit int) ([]models.CommentWithAuthor, error) {
	return s.listWithAuthor(ctx, "list recent comments",
		commentWithAuthorSelect+` ORDER BY cm.created_at DESC LIMIT $1`, limit)
}

// SetApproved flips the moderation flag of a comment. Returns nil if not found.
func (s *CommentStore) SetApproved(ctx context.Context, id uuid.UUID, approved bool) (*models.Comment, error) {
	row := s.db.QueryRowContext(ctx, `
		UPDATE blog_comments SET is_approved = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+commentColumns,
		approved, id,
	)
	c, err := scanComment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("set comment approval: %w", err)
	}
	return c, nil
}

// Delete removes a comment and its replies. Returns false if nothing was deleted.
func (s *CommentStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM blog_comments WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete comment: %w", err)
	}
	return n > 0, nil
}
