package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

const maxLimit = 100
const defaultLimit = 20
const maxPage = 1 << 30

// Error ...
type Error struct {
	Error string `json:"error"`
}

// Post ...
type Post struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Content   string  `json:"content,omitempty"`
	IsRepost  bool    `json:"isRepost,omitempty"`
	RepostID  *string `json:"repostId,omitempty"`
	ReplyToID *string `json:"replyToId,omitempty"`
	CreatedAt uint64  `json:"createdAt"`
}

// User ...
type User struct {
	ID           string `json:"id"`
	Address      string `json:"address"`
	DisplayName  string `json:"displayName"`
	AvatarURL    string `json:"avatarUrl"`
	Tier         string `json:"tier"`
	RegisteredAt uint64 `json:"registeredAt"`
}

// Bookmark ...
type Bookmark struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	PostID    string `json:"postId"`
	CreatedAt uint64 `json:"createdAt"`
	Post      *Post  `json:"post,omitempty"`
	PostOwner *User  `json:"postOwner,omitempty"`
}

// Notification ...
type Notification struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	ActorID   *string `json:"actorId,omitempty"`
	Type      string  `json:"type"`
	PostID    *string `json:"postId,omitempty"`
	IsRead    bool    `json:"isRead"`
	Message   string  `json:"message,omitempty"`
	CreatedAt uint64  `json:"createdAt"`
	Actor     *User   `json:"actor,omitempty"`
	Post      *Post   `json:"post,omitempty"`
}

// HashtagCount ...
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count uint64 `json:"count"`
}

// TokenPrice ...
type TokenPrice struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	UpdatedAt uint64  `json:"updatedAt"`
}

// UserStats ...
type UserStats struct {
	Posts     uint64 `json:"posts"`
	Followers uint64 `json:"followers"`
	Following uint64 `json:"following"`
}

// UserMetrics ...
type UserMetrics struct {
	Posts               uint64 `json:"posts"`
	LikesGiven          uint64 `json:"likesGiven"`
	LikesReceived       uint64 `json:"likesReceived"`
	Bookmarks           uint64 `json:"bookmarks"`
	UnreadNotifications uint64 `json:"unreadNotifications"`
}

// PlatformMetrics ...
type PlatformMetrics struct {
	Users   uint64 `json:"users"`
	Posts   uint64 `json:"posts"`
	Likes   uint64 `json:"likes"`
	Follows uint64 `json:"follows"`
}

// SearchResponse ...
type SearchResponse struct {
	Users []*User `json:"users"`
	Posts []*Post `json:"posts"`
}

func toAPIPost(p *entities.Post) *Post {
	if p == nil {
		return nil
	}

	return &Post{
		ID:        p.ID,
		UserID:    p.UserID,
		Content:   p.Content,
		IsRepost:  p.IsRepost,
		RepostID:  p.RepostID,
		ReplyToID: p.ReplyToID,
		CreatedAt: uint64(p.CreatedAt.Unix()),
	}
}

func toAPIPosts(pp []*entities.Post) []*Post {
	out := make([]*Post, len(pp))
	for i, v := range pp {
		out[i] = toAPIPost(v)
	}

	return out
}

func toAPIUser(u *entities.User) *User {
	if u == nil {
		return nil
	}

	return &User{
		ID:           u.ID,
		Address:      u.Address,
		DisplayName:  u.DisplayName,
		AvatarURL:    u.AvatarURL,
		Tier:         u.Tier,
		RegisteredAt: uint64(u.CreatedAt.Unix()),
	}
}

func toAPIUsers(uu []*entities.User) []*User {
	out := make([]*User, len(uu))
	for i, v := range uu {
		out[i] = toAPIUser(v)
	}

	return out
}

func toAPIBookmark(b *entities.Bookmark) *Bookmark {
	return &Bookmark{
		ID:        b.ID,
		UserID:    b.UserID,
		PostID:    b.PostID,
		CreatedAt: uint64(b.CreatedAt.Unix()),
		Post:      toAPIPost(b.Post),
		PostOwner: toAPIUser(b.PostOwner),
	}
}

func toAPINotification(n *entities.Notification) *Notification {
	return &Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		ActorID:   n.ActorID,
		Type:      string(n.Type),
		PostID:    n.PostID,
		IsRead:    n.IsRead,
		Message:   n.Message,
		CreatedAt: uint64(n.CreatedAt.Unix()),
		Actor:     toAPIUser(n.Actor),
		Post:      toAPIPost(n.Post),
	}
}

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	data, _ := json.Marshal(v)
	w.Write(data) // nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeOK(w, status, Error{Error: message})
}

func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	logrus.WithField("request_id", middleware.GetReqID(ctx)).Errorf(format, args...)
	writeError(w, http.StatusInternalServerError, "internal error")
}

// extractListParamsFromQuery parses the shared limit/page window. Malformed
// numeric input is rejected, the policy is uniform across every listing.
func extractListParamsFromQuery(q url.Values) (storage.ListParams, error) {
	limit := uint64(defaultLimit)
	page := uint64(0)

	if s := q.Get("limit"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil || v == 0 {
			return storage.ListParams{}, fmt.Errorf("failed to parse limit")
		}

		if v > maxLimit {
			return storage.ListParams{}, fmt.Errorf("limit is too big")
		}

		limit = v
	}

	if s := q.Get("page"); s != "" {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return storage.ListParams{}, fmt.Errorf("failed to parse page")
		}

		// keeps page*limit within int64 for the driver
		if v > maxPage {
			return storage.ListParams{}, fmt.Errorf("page is too big")
		}

		page = v
	}

	return storage.ListParams{
		Limit:  uint16(limit),
		Offset: page * limit,
	}, nil
}
