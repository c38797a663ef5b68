package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

// SetLike is an idempotent upsert, a second like of the same post is a no-op.
// It reports whether a new row was inserted.
func (s pg) SetLike(ctx context.Context, userID, postID string, timestamp time.Time) (bool, error) {
	res, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO "like"(user_id, post_id, created_at) VALUES($1, $2, $3)
			ON CONFLICT(user_id, post_id) DO NOTHING
		`, userID, postID, timestamp.UTC(),
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return false, storage.ErrNotFound
		}

		return false, fmt.Errorf("failed to exec: %w", err)
	}

	c, _ := res.RowsAffected()

	return c > 0, nil
}

func (s pg) DeleteLike(ctx context.Context, userID, postID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM "like" WHERE user_id = $1 AND post_id = $2`, userID, postID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	var liked bool
	if err := sqlx.GetContext(ctx, s.ext, &liked,
		`SELECT EXISTS(SELECT 1 FROM "like" WHERE user_id = $1 AND post_id = $2)`,
		userID, postID,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return liked, nil
}

func (s pg) SetFollow(ctx context.Context, followerID, followingID string, timestamp time.Time) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO follow(follower_id, following_id, created_at) VALUES($1, $2, $3)
			ON CONFLICT(follower_id, following_id) DO NOTHING
		`, followerID, followingID, timestamp.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return storage.ErrNotFound
		}

		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) DeleteFollow(ctx context.Context, followerID, followingID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`DELETE FROM follow WHERE follower_id = $1 AND following_id = $2`,
		followerID, followingID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	var following bool
	if err := sqlx.GetContext(ctx, s.ext, &following,
		`SELECT EXISTS(SELECT 1 FROM follow WHERE follower_id = $1 AND following_id = $2)`,
		followerID, followingID,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return following, nil
}

func (s pg) ListFollowers(ctx context.Context, userID string, p storage.ListParams) ([]*entities.User, error) {
	var dd []*userDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT u.id, u.address, u.display_name, u.avatar_url, u.tier, u.created_at
			FROM follow f
			JOIN users u ON u.id = f.follower_id
			WHERE f.following_id = $1
			ORDER BY f.created_at DESC, u.id
			LIMIT $2 OFFSET $3
		`, userID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return usersToEntities(dd), nil
}

func (s pg) ListFollowing(ctx context.Context, userID string, p storage.ListParams) ([]*entities.User, error) {
	var dd []*userDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT u.id, u.address, u.display_name, u.avatar_url, u.tier, u.created_at
			FROM follow f
			JOIN users u ON u.id = f.following_id
			WHERE f.follower_id = $1
			ORDER BY f.created_at DESC, u.id
			LIMIT $2 OFFSET $3
		`, userID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return usersToEntities(dd), nil
}
