package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

// LikePost is idempotent. The post owner is notified once, on the first like only.
func (s srv) LikePost(ctx context.Context, userID, postID string) error {
	return s.s.InTx(ctx, func(tx storage.Storage) error {
		p, err := tx.GetPost(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to get post: %w", err)
		}

		now := time.Now()

		inserted, err := tx.SetLike(ctx, userID, postID, now)
		if err != nil {
			return fmt.Errorf("failed to set like: %w", err)
		}

		if !inserted || p.UserID == userID {
			return nil
		}

		if _, err := tx.CreateNotification(ctx, &storage.CreateNotificationParams{
			ID:        uuid.New().String(),
			UserID:    p.UserID,
			ActorID:   &userID,
			Type:      entities.LikeNotification,
			PostID:    &postID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		return nil
	})
}

func (s srv) UnlikePost(ctx context.Context, userID, postID string) error {
	if err := s.s.DeleteLike(ctx, userID, postID); err != nil {
		return fmt.Errorf("failed to delete like on storage side: %w", err)
	}

	return nil
}

func (s srv) HasLiked(ctx context.Context, userID, postID string) (bool, error) {
	liked, err := s.s.HasLiked(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to check like on storage side: %w", err)
	}

	return liked, nil
}

func (s srv) Follow(ctx context.Context, followerID, followingID string) error {
	if followerID == followingID {
		return service.ErrSelfFollow
	}

	if err := s.s.SetFollow(ctx, followerID, followingID, time.Now()); err != nil {
		return fmt.Errorf("failed to set follow on storage side: %w", err)
	}

	return nil
}

func (s srv) Unfollow(ctx context.Context, followerID, followingID string) error {
	if err := s.s.DeleteFollow(ctx, followerID, followingID); err != nil {
		return fmt.Errorf("failed to delete follow on storage side: %w", err)
	}

	return nil
}

func (s srv) IsFollowing(ctx context.Context, followerID, followingID string) (bool, error) {
	following, err := s.s.IsFollowing(ctx, followerID, followingID)
	if err != nil {
		return false, fmt.Errorf("failed to check follow on storage side: %w", err)
	}

	return following, nil
}

func (s srv) GetUserFollowers(ctx context.Context, userID string, p service.ListParams) ([]*entities.User, error) {
	uu, err := s.s.ListFollowers(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list followers from storage: %w", err)
	}

	return uu, nil
}

func (s srv) GetUserFollowing(ctx context.Context, userID string, p service.ListParams) ([]*entities.User, error) {
	uu, err := s.s.ListFollowing(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list following from storage: %w", err)
	}

	return uu, nil
}
