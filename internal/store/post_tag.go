// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"blogcms/internal/models"
)

// PostTagStore manages the post/tag junction table.
type PostTagStore struct {
	db DBTX
}

// NewPostTagStore returns a new PostTagStore.
func NewPostTagStore(db DBTX) *PostTagStore {
	return &PostTagStore{db: db}
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// Associate links a post to each distinct tag in tagIDs. Existing links are
// kept. An unknown tag id fails with ErrInvalidReference.
func (s *PostTagStore) Associate(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blog_post_tags (post_id, tag_id)
		SELECT DISTINCT $1::uuid, t.id FROM unnest($2::uuid[]) AS t(id)
		ON CONFLICT DO NOTHING`,
		postID, uuidStrings(tagIDs),
	)
	if err != nil {
		return wrapErr("associate post tags", err)
	}
	return nil
}

// DeleteByPost removes every tag link of a post.
func (s *PostTagStore) DeleteByPost(ctx context.Context, postID uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM blog_post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("delete post tags: %w", err)
	}
	return nil
}

// TagIDsByPost returns the ids of the tags linked to a post.
func (s *PostTagStore) TagIDsByPost(ctx context.Context, postID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag_id FROM blog_post_tags WHERE post_id = $1 ORDER BY created_at, tag_id`, postID)
	if err != nil {
		return nil, fmt.Errorf("list post tag ids: %w", err)
	}
	defer rows.Close()

	ids := []uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan post tag id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// TagsForPosts loads the tags of every given post in one query, keyed by
// post id. Posts without tags are absent from the map.
func (s *PostTagStore) TagsForPosts(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]models.Tag, error) {
	result := make(map[uuid.UUID][]models.Tag)
	if len(postIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT pt.post_id, t.id, t.name, t.slug, t.created_at, t.updated_at
		FROM blog_post_tags pt
		JOIN blog_tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1::uuid[])
		ORDER BY t.name`,
		uuidStrings(postIDs),
	)
	if err != nil {
		return nil, fmt.Errorf("load post tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			postID uuid.UUID
			t      models.Tag
		)
		if err := rows.Scan(&postID, &t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan post tag: %w", err)
		}
		result[postID] = append(result[postID], t)
	}
	return result, rows.Err()
}

// ReplacePostTags makes tagIDs the complete tag set of a post. The delete
// and insert happen in one transaction, so a failure leaves the previous
// set in place.
func (s *Stores) ReplacePostTags(ctx context.Context, postID uuid.UUID, tagIDs []uuid.UUID) error {
	return s.InTx(ctx, func(tx *Stores) error {
		if err := tx.PostTags.DeleteByPost(ctx, postID); err != nil {
			return err
		}
		return tx.PostTags.Associate(ctx, postID, tagIDs)
	})
}
