// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/base-buzz/hive/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	RefreshViews(ctx context.Context) error

	CreateUser(ctx context.Context, p *CreateUserParams) (*entities.User, error)
	GetUser(ctx context.Context, id string) (*entities.User, error)
	GetUserByAddress(ctx context.Context, address string) (*entities.User, error)
	SearchUsers(ctx context.Context, query string, p ListParams) ([]*entities.User, error)
	SuggestedUsers(ctx context.Context, forUser string, limit uint16) ([]*entities.User, error)
	GetUserStats(ctx context.Context, id string) (*entities.UserStats, error)

	CreatePost(ctx context.Context, p *CreatePostParams) (*entities.Post, error)
	GetPost(ctx context.Context, id string) (*entities.Post, error)
	UpdatePostContent(ctx context.Context, id, content string) (*entities.Post, error)
	DeletePost(ctx context.Context, id string) error
	ListUserPosts(ctx context.Context, userID string, p ListParams) ([]*entities.Post, error)
	ListFeed(ctx context.Context, userID string, p ListParams) ([]*entities.Post, error)
	ListTrendingPosts(ctx context.Context, p ListParams) ([]*entities.Post, error)
	ListPostReplies(ctx context.Context, postID string, p ListParams) ([]*entities.Post, error)
	SearchPosts(ctx context.Context, query string, p ListParams) ([]*entities.Post, error)
	ListPostsByHashtag(ctx context.Context, tag string, p ListParams) ([]*entities.Post, error)

	SetLike(ctx context.Context, userID, postID string, timestamp time.Time) (bool, error)
	DeleteLike(ctx context.Context, userID, postID string) error
	HasLiked(ctx context.Context, userID, postID string) (bool, error)
	SetFollow(ctx context.Context, followerID, followingID string, timestamp time.Time) error
	DeleteFollow(ctx context.Context, followerID, followingID string) error
	IsFollowing(ctx context.Context, followerID, followingID string) (bool, error)
	ListFollowers(ctx context.Context, userID string, p ListParams) ([]*entities.User, error)
	ListFollowing(ctx context.Context, userID string, p ListParams) ([]*entities.User, error)

	CreateBookmark(ctx context.Context, p *CreateBookmarkParams) (*entities.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, postID string) error
	HasBookmarked(ctx context.Context, userID, postID string) (bool, error)
	ListBookmarks(ctx context.Context, userID string, p ListParams) ([]*entities.Bookmark, error)

	CreateNotification(ctx context.Context, p *CreateNotificationParams) (*entities.Notification, error)
	ListNotifications(ctx context.Context, userID string, p ListParams) ([]*entities.Notification, error)
	CountUnreadNotifications(ctx context.Context, userID string) (uint64, error)
	MarkNotificationRead(ctx context.Context, id string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error

	TrendingHashtags(ctx context.Context, limit uint16) ([]*entities.HashtagCount, error)

	CountUsers(ctx context.Context) (uint64, error)
	CountPosts(ctx context.Context) (uint64, error)
	CountLikes(ctx context.Context) (uint64, error)
	CountFollows(ctx context.Context) (uint64, error)
	CountPostsByUser(ctx context.Context, userID string) (uint64, error)
	CountLikesByUser(ctx context.Context, userID string) (uint64, error)
	CountLikesReceived(ctx context.Context, userID string) (uint64, error)
	CountBookmarksByUser(ctx context.Context, userID string) (uint64, error)

	SetTokenPrice(ctx context.Context, p *entities.TokenPrice) error
	GetTokenPrice(ctx context.Context, symbol string) (*entities.TokenPrice, error)
}

// ListParams is a shared pagination window, offset is page*limit.
type ListParams struct {
	Limit  uint16
	Offset uint64
}

// CreateUserParams ...
type CreateUserParams struct {
	ID          string
	Address     string
	DisplayName string
	AvatarURL   string
	Tier        string
	CreatedAt   time.Time
}

// CreatePostParams ...
type CreatePostParams struct {
	ID        string
	UserID    string
	Content   string
	IsRepost  bool
	RepostID  *string
	ReplyToID *string
	CreatedAt time.Time
}

// CreateBookmarkParams ...
type CreateBookmarkParams struct {
	ID        string
	UserID    string
	PostID    string
	CreatedAt time.Time
}

// CreateNotificationParams ...
type CreateNotificationParams struct {
	ID        string
	UserID    string
	ActorID   *string
	Type      entities.NotificationType
	PostID    *string
	Message   string
	CreatedAt time.Time
}
