// Package impl is implementation of service interface.
package impl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/service"
	"github.com/base-buzz/hive/internal/storage"
)

type srv struct {
	s storage.Storage
}

// New creates new instance of service.
func New(s storage.Storage) service.Service {
	return srv{
		s: s,
	}
}

func (s srv) CreateUser(ctx context.Context, p service.CreateUserParams) (*entities.User, error) {
	u, err := s.s.CreateUser(ctx, &storage.CreateUserParams{
		ID:          uuid.New().String(),
		Address:     strings.ToLower(p.Address),
		DisplayName: p.DisplayName,
		AvatarURL:   p.AvatarURL,
		Tier:        p.Tier,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user on storage side: %w", err)
	}

	return u, nil
}

func (s srv) GetUser(ctx context.Context, id string) (*entities.User, error) {
	u, err := s.s.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user from storage: %w", err)
	}

	return u, nil
}

func (s srv) GetUserByAddress(ctx context.Context, address string) (*entities.User, error) {
	u, err := s.s.GetUserByAddress(ctx, strings.ToLower(address))
	if err != nil {
		return nil, fmt.Errorf("failed to get user from storage: %w", err)
	}

	return u, nil
}

func (s srv) SearchUsers(ctx context.Context, query string, p service.ListParams) ([]*entities.User, error) {
	uu, err := s.s.SearchUsers(ctx, query, p)
	if err != nil {
		return nil, fmt.Errorf("failed to search users on storage side: %w", err)
	}

	return uu, nil
}

func (s srv) SuggestedUsers(ctx context.Context, forUser string, limit uint16) ([]*entities.User, error) {
	uu, err := s.s.SuggestedUsers(ctx, forUser, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get suggested users from storage: %w", err)
	}

	return uu, nil
}

func (s srv) GetUserStats(ctx context.Context, id string) (*entities.UserStats, error) {
	st, err := s.s.GetUserStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats from storage: %w", err)
	}

	return st, nil
}

// GetUserMetrics fans out independent count queries, the result is a
// best-effort snapshot without cross-query consistency.
func (s srv) GetUserMetrics(ctx context.Context, id string) (*entities.UserMetrics, error) {
	if _, err := s.s.GetUser(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to get user from storage: %w", err)
	}

	var m entities.UserMetrics

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() (err error) {
		m.Posts, err = s.s.CountPostsByUser(ctx, id)
		return
	})
	gr.Go(func() (err error) {
		m.LikesGiven, err = s.s.CountLikesByUser(ctx, id)
		return
	})
	gr.Go(func() (err error) {
		m.LikesReceived, err = s.s.CountLikesReceived(ctx, id)
		return
	})
	gr.Go(func() (err error) {
		m.Bookmarks, err = s.s.CountBookmarksByUser(ctx, id)
		return
	})
	gr.Go(func() (err error) {
		m.UnreadNotifications, err = s.s.CountUnreadNotifications(ctx, id)
		return
	})

	if err := gr.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count user metrics: %w", err)
	}

	return &m, nil
}

// GetPlatformMetrics fans out independent count queries, the result is a
// best-effort snapshot without cross-query consistency.
func (s srv) GetPlatformMetrics(ctx context.Context) (*entities.PlatformMetrics, error) {
	var m entities.PlatformMetrics

	gr, ctx := errgroup.WithContext(ctx)
	gr.Go(func() (err error) {
		m.Users, err = s.s.CountUsers(ctx)
		return
	})
	gr.Go(func() (err error) {
		m.Posts, err = s.s.CountPosts(ctx)
		return
	})
	gr.Go(func() (err error) {
		m.Likes, err = s.s.CountLikes(ctx)
		return
	})
	gr.Go(func() (err error) {
		m.Follows, err = s.s.CountFollows(ctx)
		return
	})

	if err := gr.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count platform metrics: %w", err)
	}

	return &m, nil
}

func (s srv) GetTrendingHashtags(ctx context.Context, limit uint16) ([]*entities.HashtagCount, error) {
	hh, err := s.s.TrendingHashtags(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get trending hashtags from storage: %w", err)
	}

	return hh, nil
}

func (s srv) GetTokenPrice(ctx context.Context, symbol string) (*entities.TokenPrice, error) {
	p, err := s.s.GetTokenPrice(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get token price from storage: %w", err)
	}

	return p, nil
}
