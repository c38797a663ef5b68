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

func (s srv) CreatePost(ctx context.Context, userID, content string) (*entities.Post, error) {
	if userID == "" || content == "" {
		return nil, fmt.Errorf("%w: user_id and content are required", service.ErrInvalidRequest)
	}

	p, err := s.s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        uuid.New().String(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post on storage side: %w", err)
	}

	return p, nil
}

func (s srv) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	p, err := s.s.GetPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get post from storage: %w", err)
	}

	return p, nil
}

func (s srv) UpdatePost(ctx context.Context, id, content string) (*entities.Post, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content is required", service.ErrInvalidRequest)
	}

	p, err := s.s.UpdatePostContent(ctx, id, content)
	if err != nil {
		return nil, fmt.Errorf("failed to update post on storage side: %w", err)
	}

	return p, nil
}

func (s srv) DeletePost(ctx context.Context, id string) error {
	if err := s.s.DeletePost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete post on storage side: %w", err)
	}

	return nil
}

func (s srv) GetUserFeed(ctx context.Context, userID string, p service.ListParams) ([]*entities.Post, error) {
	pp, err := s.s.ListFeed(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed from storage: %w", err)
	}

	return pp, nil
}

func (s srv) GetUserPosts(ctx context.Context, userID string, p service.ListParams) ([]*entities.Post, error) {
	pp, err := s.s.ListUserPosts(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list user posts from storage: %w", err)
	}

	return pp, nil
}

func (s srv) GetTrendingPosts(ctx context.Context, p service.ListParams) ([]*entities.Post, error) {
	pp, err := s.s.ListTrendingPosts(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list trending posts from storage: %w", err)
	}

	return pp, nil
}

func (s srv) GetPostReplies(ctx context.Context, postID string, p service.ListParams) ([]*entities.Post, error) {
	pp, err := s.s.ListPostReplies(ctx, postID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list post replies from storage: %w", err)
	}

	return pp, nil
}

// CreateReply creates a threaded reply and notifies the parent post's owner
// within the same transaction.
func (s srv) CreateReply(ctx context.Context, userID, postID, content string) (*entities.Post, error) {
	if userID == "" || content == "" {
		return nil, fmt.Errorf("%w: user_id and content are required", service.ErrInvalidRequest)
	}

	var out *entities.Post

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		parent, err := tx.GetPost(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to get parent post: %w", err)
		}

		now := time.Now()

		p, err := tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:        uuid.New().String(),
			UserID:    userID,
			Content:   content,
			ReplyToID: &postID,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to create reply: %w", err)
		}

		out = p

		if parent.UserID == userID {
			return nil
		}

		if _, err := tx.CreateNotification(ctx, &storage.CreateNotificationParams{
			ID:        uuid.New().String(),
			UserID:    parent.UserID,
			ActorID:   &userID,
			Type:      entities.ReplyNotification,
			PostID:    &p.ID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateRepost creates a repost referencing the original post. A non-empty
// quote turns it into a quote tweet.
func (s srv) CreateRepost(ctx context.Context, userID, postID, quote string) (*entities.Post, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", service.ErrInvalidRequest)
	}

	var out *entities.Post

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		original, err := tx.GetPost(ctx, postID)
		if err != nil {
			return fmt.Errorf("failed to get original post: %w", err)
		}

		now := time.Now()

		p, err := tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:        uuid.New().String(),
			UserID:    userID,
			Content:   quote,
			IsRepost:  true,
			RepostID:  &postID,
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("failed to create repost: %w", err)
		}

		out = p

		if original.UserID == userID {
			return nil
		}

		t := entities.RetweetNotification
		if quote != "" {
			t = entities.QuoteTweetNotification
		}

		if _, err := tx.CreateNotification(ctx, &storage.CreateNotificationParams{
			ID:        uuid.New().String(),
			UserID:    original.UserID,
			ActorID:   &userID,
			Type:      t,
			PostID:    &p.ID,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s srv) SearchPosts(ctx context.Context, query string, p service.ListParams) ([]*entities.Post, error) {
	pp, err := s.s.SearchPosts(ctx, query, p)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts on storage side: %w", err)
	}

	return pp, nil
}

func (s srv) GetPostsByHashtag(ctx context.Context, tag string, p service.ListParams) ([]*entities.Post, error) {
	pp, err := s.s.ListPostsByHashtag(ctx, tag, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by hashtag from storage: %w", err)
	}

	return pp, nil
}
