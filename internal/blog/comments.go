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

// CreateComment adds an unapproved comment to a post. A reply must point at
// a comment of the same post.
func (s *Service) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	in.Content = strings.TrimSpace(in.Content)
	if err := validateComment(&in); err != nil {
		return nil, err
	}

	post, err := s.stores.Posts.FindByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	if in.ParentID != nil {
		parent, err := s.stores.Comments.FindByID(ctx, *in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.PostID != in.PostID {
			return nil, invalidField("parent_id", "must reference a comment on the same post")
		}
	}

	return s.stores.Comments.Create(ctx, &models.Comment{
		Content:  in.Content,
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		ParentID: in.ParentID,
	})
}

// ListComments returns every comment on a post, newest first, with authors.
func (s *Service) ListComments(ctx context.Context, postID uuid.UUID) ([]models.CommentWithAuthor, error) {
	return s.stores.Comments.ListByPost(ctx, postID)
}

// ApproveComment marks a comment approved.
func (s *Service) ApproveComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.setApproval(ctx, id, true)
}

// RejectComment withdraws the approval of a comment.
func (s *Service) RejectComment(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	return s.setApproval(ctx, id, false)
}

func (s *Service) setApproval(ctx context.Context, id uuid.UUID, approved bool) (*models.Comment, error) {
	c, err := s.stores.Comments.SetApproved(ctx, id, approved)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// DeleteComment removes a comment and its replies. Returns false if the
// comment did not exist.
func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.stores.Comments.Delete(ctx, id)
}
