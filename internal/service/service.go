// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

// ErrSelfFollow returned when a user attempts to follow themselves.
var ErrSelfFollow = errors.New("self-follow is forbidden")

// ErrInvalidRequest returned when required input is missing or malformed.
var ErrInvalidRequest = errors.New("invalid request")

// ListParams is a shared pagination window, offset is page*limit.
type ListParams = storage.ListParams

// CreateUserParams ...
type CreateUserParams struct {
	Address     string
	DisplayName string
	AvatarURL   string
	Tier        string
}

// CreateNotificationParams ...
type CreateNotificationParams struct {
	UserID  string
	ActorID *string
	Type    entities.NotificationType
	PostID  *string
	Message string
}

// Service ...
type Service interface {
	CreateUser(ctx context.Context, p CreateUserParams) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByAddress(ctx context.Context, address string) (*entities.User, error)
	SearchUsers(ctx context.Context, query string, p ListParams) ([]*entities.User, error)
	SuggestedUsers(ctx context.Context, forUser string, limit uint16) ([]*entities.User, error)
	GetUserStats(ctx context.Context, id string) (*entities.UserStats, error)
	GetUserMetrics(ctx context.Context, id string) (*entities.UserMetrics, error)
	GetPlatformMetrics(ctx context.Context) (*entities.PlatformMetrics, error)

	CreatePost(ctx context.Context, userID, content string) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	UpdatePost(ctx context.Context, id, content string) (*entities.Post, error)
	DeletePost(ctx context.Context, id string) error
	GetUserFeed(ctx context.Context, userID string, p ListParams) ([]*entities.Post, error)
	GetUserPosts(ctx context.Context, userID string, p ListParams) ([]*entities.Post, error)
	GetTrendingPosts(ctx context.Context, p ListParams) ([]*entities.Post, error)
	GetPostReplies(ctx context.Context, postID string, p ListParams) ([]*entities.Post, error)
	CreateReply(ctx context.Context, userID, postID, content string) (*entities.Post, error)
	CreateRepost(ctx context.Context, userID, postID, quote string) (*entities.Post, error)
	SearchPosts(ctx context.Context, query string, p ListParams) ([]*entities.Post, error)
	GetPostsByHashtag(ctx context.Context, tag string, p ListParams) ([]*entities.Post, error)

	LikePost(ctx context.Context, userID, postID string) error
	UnlikePost(ctx context.Context, userID, postID string) error
	HasLiked(ctx context.Context, userID, postID string) (bool, error)
	Follow(ctx context.Context, followerID, followingID string) error
	Unfollow(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	GetUserFollowers(ctx context.Context, userID string, p ListParams) ([]*entities.User, error)
	GetUserFollowing(ctx context.Context, userID string, p ListParams) ([]*entities.User, error)

	CreateBookmark(ctx context.Context, userID, postID string) (*entities.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, postID string) error
	HasBookmarked(ctx context.Context, userID, postID string) (bool, error)
	GetUserBookmarks(ctx context.Context, userID string, p ListParams) ([]*entities.Bookmark, error)

	CreateNotification(ctx context.Context, p CreateNotificationParams) (*entities.Notification, error)
	BroadcastSystemNotification(ctx context.Context, userIDs []string, message string) (int, error)
	GetUserNotifications(ctx context.Context, userID string, p ListParams) ([]*entities.Notification, error)
	GetUnreadNotificationCount(ctx context.Context, userID string) (uint64, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	GetTrendingHashtags(ctx context.Context, limit uint16) ([]*entities.HashtagCount, error)

	GetTokenPrice(ctx context.Context, symbol string) (*entities.TokenPrice, error)
}
