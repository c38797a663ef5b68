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

// CreateBookmark is idempotent, bookmarking the same post twice returns the
// existing bookmark.
func (s srv) CreateBookmark(ctx context.Context, userID, postID string) (*entities.Bookmark, error) {
	b, err := s.s.CreateBookmark(ctx, &storage.CreateBookmarkParams{
		ID:        uuid.New().String(),
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create bookmark on storage side: %w", err)
	}

	return b, nil
}

func (s srv) DeleteBookmark(ctx context.Context, userID, postID string) error {
	if err := s.s.DeleteBookmark(ctx, userID, postID); err != nil {
		return fmt.Errorf("failed to delete bookmark on storage side: %w", err)
	}

	return nil
}

func (s srv) HasBookmarked(ctx context.Context, userID, postID string) (bool, error) {
	bookmarked, err := s.s.HasBookmarked(ctx, userID, postID)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark on storage side: %w", err)
	}

	return bookmarked, nil
}

func (s srv) GetUserBookmarks(ctx context.Context, userID string, p service.ListParams) ([]*entities.Bookmark, error) {
	bb, err := s.s.ListBookmarks(ctx, userID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks from storage: %w", err)
	}

	return bb, nil
}
