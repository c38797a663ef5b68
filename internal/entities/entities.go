// Package entities contains main entities of service.
package entities

import (
	"time"
)

// User ...
type User struct {
	ID          string
	Address     string
	DisplayName string
	AvatarURL   string
	Tier        string
	CreatedAt   time.Time
}

// Post ...
type Post struct {
	ID        string
	UserID    string
	Content   string
	IsDeleted bool
	IsRepost  bool
	RepostID  *string
	ReplyToID *string
	CreatedAt time.Time
}

// Like ...
type Like struct {
	UserID    string
	PostID    string
	CreatedAt time.Time
}

// Follow ...
type Follow struct {
	FollowerID  string
	FollowingID string
	CreatedAt   time.Time
}

// Bookmark carries its post and the post's owner when read back from listings.
type Bookmark struct {
	ID        string
	UserID    string
	PostID    string
	CreatedAt time.Time

	Post      *Post
	PostOwner *User
}

// NotificationType ...
type NotificationType string

const (
	// LikeNotification ...
	LikeNotification NotificationType = "like"
	// RetweetNotification ...
	RetweetNotification NotificationType = "retweet"
	// ReplyNotification ...
	ReplyNotification NotificationType = "reply"
	// QuoteTweetNotification ...
	QuoteTweetNotification NotificationType = "quoteTweet"
	// SystemNotification ...
	SystemNotification NotificationType = "system"
)

// IsValid ...
func (t NotificationType) IsValid() bool {
	switch t {
	case LikeNotification, RetweetNotification, ReplyNotification, QuoteTweetNotification, SystemNotification:
		return true
	}

	return false
}

// Notification ...
type Notification struct {
	ID        string
	UserID    string
	ActorID   *string
	Type      NotificationType
	PostID    *string
	IsRead    bool
	Message   string
	CreatedAt time.Time

	Actor *User
	Post  *Post
}

// HashtagCount is an aggregated usage counter for a single tag, without the leading '#'.
type HashtagCount struct {
	Tag   string
	Count uint64
}

// TokenPrice is the latest price snapshot written by the price feed consumer.
type TokenPrice struct {
	Symbol    string
	Price     float64
	UpdatedAt time.Time
}

// UserStats ...
type UserStats struct {
	Posts     uint64
	Followers uint64
	Following uint64
}

// UserMetrics is a best-effort snapshot, every count is queried independently.
type UserMetrics struct {
	Posts               uint64
	LikesGiven          uint64
	LikesReceived       uint64
	Bookmarks           uint64
	UnreadNotifications uint64
}

// PlatformMetrics is a best-effort snapshot, every count is queried independently.
type PlatformMetrics struct {
	Users   uint64
	Posts   uint64
	Likes   uint64
	Follows uint64
}
