package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/service"
	storageinterface "github.com/base-buzz/hive/internal/storage"
	storage "github.com/base-buzz/hive/internal/storage/mock"
)

func TestSrv_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateUserParams) (*entities.User, error) {
			assert.Equal(t, "0xabcdef", p.Address)
			assert.NotEmpty(t, p.ID)

			return &entities.User{ID: p.ID, Address: p.Address}, nil
		})

	u, err := srv.CreateUser(context.Background(), service.CreateUserParams{
		Address:     "0xABCdef",
		DisplayName: "name",
	})
	require.NoError(t, err)
	require.Equal(t, "0xabcdef", u.Address)
}

func TestSrv_GetUserByAddress(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	s.EXPECT().GetUserByAddress(gomock.Any(), "0xabc").Return(&entities.User{ID: "1"}, nil)
	u, err := srv.GetUserByAddress(context.Background(), "0xABC")
	require.NoError(t, err)
	require.Equal(t, "1", u.ID)

	s.EXPECT().GetUserByAddress(gomock.Any(), "0xabc").Return(nil, storageinterface.ErrNotFound)
	_, err = srv.GetUserByAddress(context.Background(), "0xabc")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
}

func TestSrv_CreatePost(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	_, err := srv.CreatePost(context.Background(), "", "content")
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.CreatePost(context.Background(), "1", "")
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreatePostParams) (*entities.Post, error) {
			assert.Equal(t, "1", p.UserID)
			assert.Equal(t, "hello", p.Content)

			return &entities.Post{ID: p.ID, UserID: p.UserID, Content: p.Content}, nil
		})

	p, err := srv.CreatePost(context.Background(), "1", "hello")
	require.NoError(t, err)
	require.Equal(t, "hello", p.Content)
}

func TestSrv_UpdatePost(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	_, err := srv.UpdatePost(context.Background(), "1", "")
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	s.EXPECT().UpdatePostContent(gomock.Any(), "1", "new").Return(&entities.Post{ID: "1", Content: "new"}, nil)
	p, err := srv.UpdatePost(context.Background(), "1", "new")
	require.NoError(t, err)
	require.Equal(t, "new", p.Content)
}

func inTx(s *storage.MockStorage) *gomock.Call {
	return s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f func(tx storageinterface.Storage) error) error {
			return f(s)
		})
}

func TestSrv_LikePost(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	// first like notifies the owner
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().SetLike(gomock.Any(), "liker", "p1", gomock.Any()).Return(true, nil)
	s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateNotificationParams) (*entities.Notification, error) {
			assert.Equal(t, "owner", p.UserID)
			assert.Equal(t, entities.LikeNotification, p.Type)
			assert.Equal(t, "liker", *p.ActorID)

			return &entities.Notification{ID: p.ID}, nil
		})
	require.NoError(t, srv.LikePost(context.Background(), "liker", "p1"))

	// repeated like does not notify again
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().SetLike(gomock.Any(), "liker", "p1", gomock.Any()).Return(false, nil)
	require.NoError(t, srv.LikePost(context.Background(), "liker", "p1"))

	// liking your own post does not notify
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().SetLike(gomock.Any(), "owner", "p1", gomock.Any()).Return(true, nil)
	require.NoError(t, srv.LikePost(context.Background(), "owner", "p1"))

	// liking a missing post fails
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "missing").Return(nil, storageinterface.ErrNotFound)
	require.True(t, errors.Is(srv.LikePost(context.Background(), "liker", "missing"), storageinterface.ErrNotFound))
}

func TestSrv_Follow(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	require.True(t, errors.Is(srv.Follow(context.Background(), "1", "1"), service.ErrSelfFollow))

	s.EXPECT().SetFollow(gomock.Any(), "1", "2", gomock.Any()).Return(nil)
	require.NoError(t, srv.Follow(context.Background(), "1", "2"))

	s.EXPECT().SetFollow(gomock.Any(), "1", "2", gomock.Any()).Return(context.Canceled)
	require.Error(t, srv.Follow(context.Background(), "1", "2"))
}

func TestSrv_CreateReply(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreatePostParams) (*entities.Post, error) {
			assert.Equal(t, "p1", *p.ReplyToID)

			return &entities.Post{ID: p.ID, UserID: p.UserID, ReplyToID: p.ReplyToID}, nil
		})
	s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateNotificationParams) (*entities.Notification, error) {
			assert.Equal(t, entities.ReplyNotification, p.Type)

			return &entities.Notification{ID: p.ID}, nil
		})

	p, err := srv.CreateReply(context.Background(), "replier", "p1", "nice")
	require.NoError(t, err)
	require.Equal(t, "p1", *p.ReplyToID)

	// replying to yourself skips the notification
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(&entities.Post{ID: "p2"}, nil)

	_, err = srv.CreateReply(context.Background(), "owner", "p1", "self reply")
	require.NoError(t, err)
}

func TestSrv_CreateRepost(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	// plain repost
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreatePostParams) (*entities.Post, error) {
			assert.True(t, p.IsRepost)
			assert.Equal(t, "p1", *p.RepostID)
			assert.Empty(t, p.Content)

			return &entities.Post{ID: p.ID, IsRepost: true, RepostID: p.RepostID}, nil
		})
	s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateNotificationParams) (*entities.Notification, error) {
			assert.Equal(t, entities.RetweetNotification, p.Type)

			return &entities.Notification{ID: p.ID}, nil
		})

	_, err := srv.CreateRepost(context.Background(), "reposter", "p1", "")
	require.NoError(t, err)

	// quote repost notifies with the quote type
	inTx(s)
	s.EXPECT().GetPost(gomock.Any(), "p1").Return(&entities.Post{ID: "p1", UserID: "owner"}, nil)
	s.EXPECT().CreatePost(gomock.Any(), gomock.Any()).Return(&entities.Post{ID: "p2", IsRepost: true}, nil)
	s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *storageinterface.CreateNotificationParams) (*entities.Notification, error) {
			assert.Equal(t, entities.QuoteTweetNotification, p.Type)

			return &entities.Notification{ID: p.ID}, nil
		})

	_, err = srv.CreateRepost(context.Background(), "reposter", "p1", "worth reading")
	require.NoError(t, err)
}

func TestSrv_CreateNotification(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	_, err := srv.CreateNotification(context.Background(), service.CreateNotificationParams{})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.CreateNotification(context.Background(), service.CreateNotificationParams{
		UserID: "1",
		Type:   entities.NotificationType("bogus"),
	})
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(&entities.Notification{ID: "n1"}, nil)
	n, err := srv.CreateNotification(context.Background(), service.CreateNotificationParams{
		UserID:  "1",
		Type:    entities.SystemNotification,
		Message: "hi",
	})
	require.NoError(t, err)
	require.Equal(t, "n1", n.ID)
}

func TestSrv_BroadcastSystemNotification(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	_, err := srv.BroadcastSystemNotification(context.Background(), nil, "hi")
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	_, err = srv.BroadcastSystemNotification(context.Background(), []string{"1"}, "")
	require.True(t, errors.Is(err, service.ErrInvalidRequest))

	s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(&entities.Notification{}, nil).Times(2)
	count, err := srv.BroadcastSystemNotification(context.Background(), []string{"1", "2"}, "hi")
	require.NoError(t, err)
	require.Equal(t, 2, count)

	// partial failure reports how many recipients were reached
	gomock.InOrder(
		s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(&entities.Notification{}, nil),
		s.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil, storageinterface.ErrNotFound),
	)
	count, err = srv.BroadcastSystemNotification(context.Background(), []string{"1", "missing", "3"}, "hi")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))
	require.Equal(t, 1, count)
}

func TestSrv_GetUserMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	s.EXPECT().GetUser(gomock.Any(), "missing").Return(nil, storageinterface.ErrNotFound)
	_, err := srv.GetUserMetrics(context.Background(), "missing")
	require.True(t, errors.Is(err, storageinterface.ErrNotFound))

	s.EXPECT().GetUser(gomock.Any(), "1").Return(&entities.User{ID: "1"}, nil)
	s.EXPECT().CountPostsByUser(gomock.Any(), "1").Return(uint64(5), nil)
	s.EXPECT().CountLikesByUser(gomock.Any(), "1").Return(uint64(4), nil)
	s.EXPECT().CountLikesReceived(gomock.Any(), "1").Return(uint64(3), nil)
	s.EXPECT().CountBookmarksByUser(gomock.Any(), "1").Return(uint64(2), nil)
	s.EXPECT().CountUnreadNotifications(gomock.Any(), "1").Return(uint64(1), nil)

	m, err := srv.GetUserMetrics(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, &entities.UserMetrics{
		Posts:               5,
		LikesGiven:          4,
		LikesReceived:       3,
		Bookmarks:           2,
		UnreadNotifications: 1,
	}, m)
}

func TestSrv_GetPlatformMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	s.EXPECT().CountUsers(gomock.Any()).Return(uint64(10), nil)
	s.EXPECT().CountPosts(gomock.Any()).Return(uint64(20), nil)
	s.EXPECT().CountLikes(gomock.Any()).Return(uint64(30), nil)
	s.EXPECT().CountFollows(gomock.Any()).Return(uint64(40), nil)

	m, err := srv.GetPlatformMetrics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &entities.PlatformMetrics{
		Users:   10,
		Posts:   20,
		Likes:   30,
		Follows: 40,
	}, m)

	s.EXPECT().CountUsers(gomock.Any()).Return(uint64(0), nil)
	s.EXPECT().CountPosts(gomock.Any()).Return(uint64(0), nil)
	s.EXPECT().CountLikes(gomock.Any()).Return(uint64(0), context.Canceled)
	s.EXPECT().CountFollows(gomock.Any()).Return(uint64(0), nil).AnyTimes()

	_, err = srv.GetPlatformMetrics(context.Background())
	require.Error(t, err)
}

func TestSrv_GetTokenPrice(t *testing.T) {
	ctrl := gomock.NewController(t)

	s := storage.NewMockStorage(ctrl)

	srv := New(s)

	now := time.Now()

	s.EXPECT().GetTokenPrice(gomock.Any(), "BUZZ").Return(&entities.TokenPrice{
		Symbol:    "BUZZ",
		Price:     1.5,
		UpdatedAt: now,
	}, nil)

	p, err := srv.GetTokenPrice(context.Background(), "BUZZ")
	require.NoError(t, err)
	require.Equal(t, 1.5, p.Price)
}
