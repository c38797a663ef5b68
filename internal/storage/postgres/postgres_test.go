//+build integration

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	m "github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

var (
	db  *sql.DB
	ctx = context.Background()
	s   storage.Storage
)

func TestMain(m *testing.M) {
	shutdown := setup()

	s = New(db)

	code := m.Run()
	shutdown()
	os.Exit(code)
}

func setup() func() {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:12",
		Env:          map[string]string{"POSTGRES_PASSWORD": "root"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
	})
	if err != nil {
		logrus.WithError(err).Fatalf("failed to create container")
	}

	if err := c.Start(ctx); err != nil {
		logrus.WithError(err).Fatal("failed to start container")
	}

	host, err := c.Host(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to get host")
	}

	port, err := c.MappedPort(ctx, "5432")
	if err != nil {
		logrus.WithError(err).Fatal("failed to map port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=postgres password=root sslmode=disable", host, port.Int())

	db, err = sql.Open("postgres", dsn)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open connection")
	}

	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	shutdownFn := func() {
		if c != nil {
			c.Terminate(ctx)
		}
	}

	migrateDB("postgres", "root", host, "postgres", port.Int())

	return shutdownFn
}

func migrateDB(username, password, hostname, dbname string, port int) {
	_, currFile, _, ok := runtime.Caller(0)
	if !ok {
		logrus.Fatal("failed to get current file location")
	}

	migrations := filepath.Join(currFile, "../../../../scripts/migrations/postgres/")

	migrator, err := m.New(
		fmt.Sprintf("file://%s", migrations),
		fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			username, password, hostname, port, dbname),
	)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}
	defer migrator.Close()

	if err := migrator.Up(); err != nil {
		logrus.WithError(err).Fatal("failed to migrate")
	}
}

func cleanup(t *testing.T) {
	for _, q := range []string{
		`DELETE FROM notification`,
		`DELETE FROM bookmark`,
		`DELETE FROM "like"`,
		`DELETE FROM follow`,
		`DELETE FROM post`,
		`DELETE FROM users`,
		`DELETE FROM token_price`,
	} {
		_, err := db.ExecContext(ctx, q)
		require.NoError(t, err)
	}

	refreshViews(t)
}

func refreshViews(t *testing.T) {
	require.NoError(t, s.RefreshViews(ctx))
}

func createUser(t *testing.T, id string) *entities.User {
	u, err := s.CreateUser(ctx, &storage.CreateUserParams{
		ID:          id,
		Address:     "0x" + id,
		DisplayName: "user " + id,
		Tier:        "free",
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)

	return u
}

func createPost(t *testing.T, id, userID, content string, createdAt time.Time) *entities.Post {
	p, err := s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        id,
		UserID:    userID,
		Content:   content,
		CreatedAt: createdAt,
	})
	require.NoError(t, err)

	return p
}

func TestPg_CreateUser(t *testing.T) {
	defer cleanup(t)

	u := createUser(t, "1")
	require.Equal(t, "0x1", u.Address)

	// same address updates the profile instead of failing
	u2, err := s.CreateUser(ctx, &storage.CreateUserParams{
		ID:          "2",
		Address:     "0x1",
		DisplayName: "renamed",
		Tier:        "pro",
		CreatedAt:   time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, u.ID, u2.ID)
	require.Equal(t, "renamed", u2.DisplayName)
	require.Equal(t, "pro", u2.Tier)
}

func TestPg_GetUser(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetUser(ctx, "missing")
	require.Equal(t, storage.ErrNotFound, err)

	u := createUser(t, "1")

	got, err := s.GetUser(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Address, got.Address)

	got, err = s.GetUserByAddress(ctx, u.Address)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestPg_OpaqueIDs(t *testing.T) {
	defer cleanup(t)

	// ids are opaque text, any string round-trips and a miss is ErrNotFound
	u := createUser(t, "ext-user:42")
	p := createPost(t, "ext-post/1", u.ID, "gm", time.Now().UTC())

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.UserID)

	_, err = s.GetPost(ctx, "not-a-uuid")
	require.Equal(t, storage.ErrNotFound, err)
}

func TestPg_SearchUsers(t *testing.T) {
	defer cleanup(t)

	createUser(t, "alice")
	createUser(t, "bob")

	uu, err := s.SearchUsers(ctx, "ali", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, uu, 1)
	require.Equal(t, "alice", uu[0].ID)
}

func TestPg_SuggestedUsers(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")
	createUser(t, "3")

	require.NoError(t, s.SetFollow(ctx, "1", "2", time.Now()))

	uu, err := s.SuggestedUsers(ctx, "1", 10)
	require.NoError(t, err)
	require.Len(t, uu, 1)
	require.Equal(t, "3", uu[0].ID)
}

func TestPg_GetUserStats(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetUserStats(ctx, "missing")
	require.Equal(t, storage.ErrNotFound, err)

	createUser(t, "1")
	createUser(t, "2")
	createUser(t, "3")

	createPost(t, "p1", "1", "hello", time.Now())
	require.NoError(t, s.SetFollow(ctx, "2", "1", time.Now()))
	require.NoError(t, s.SetFollow(ctx, "3", "1", time.Now()))
	require.NoError(t, s.SetFollow(ctx, "1", "2", time.Now()))

	stats, err := s.GetUserStats(ctx, "1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.Posts)
	assert.EqualValues(t, 2, stats.Followers)
	assert.EqualValues(t, 1, stats.Following)
}

func TestPg_CreatePost(t *testing.T) {
	defer cleanup(t)

	_, err := s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        "p1",
		UserID:    "missing",
		Content:   "orphan",
		CreatedAt: time.Now(),
	})
	require.Equal(t, storage.ErrNotFound, err)

	createUser(t, "1")
	p := createPost(t, "p1", "1", "hello #world", time.Now())

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "hello #world", got.Content)
	require.Equal(t, "1", got.UserID)
}

func TestPg_UpdatePostContent(t *testing.T) {
	defer cleanup(t)

	_, err := s.UpdatePostContent(ctx, "missing", "new")
	require.Equal(t, storage.ErrNotFound, err)

	createUser(t, "1")
	p := createPost(t, "p1", "1", "old", time.Now())

	got, err := s.UpdatePostContent(ctx, p.ID, "new")
	require.NoError(t, err)
	require.Equal(t, "new", got.Content)
}

func TestPg_DeletePost(t *testing.T) {
	defer cleanup(t)

	require.Equal(t, storage.ErrNotFound, s.DeletePost(ctx, "missing"))

	createUser(t, "1")
	p := createPost(t, "p1", "1", "hello", time.Now())

	require.NoError(t, s.DeletePost(ctx, p.ID))

	_, err := s.GetPost(ctx, p.ID)
	require.Equal(t, storage.ErrNotFound, err)

	// deleting twice reports not found, the row is already hidden
	require.Equal(t, storage.ErrNotFound, s.DeletePost(ctx, p.ID))
}

func TestPg_ListFeed(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")
	createUser(t, "3")

	createPost(t, "p1", "1", "own", time.Unix(1, 0))
	createPost(t, "p2", "2", "followed", time.Unix(2, 0))
	createPost(t, "p3", "3", "stranger", time.Unix(3, 0))

	require.NoError(t, s.SetFollow(ctx, "1", "2", time.Now()))

	pp, err := s.ListFeed(ctx, "1", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 2)
	require.Equal(t, "p2", pp[0].ID)
	require.Equal(t, "p1", pp[1].ID)
}

func TestPg_ListTrendingPosts(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")
	createUser(t, "3")

	now := time.Now().UTC()

	createPost(t, "p1", "1", "one like", now.Add(-time.Hour))
	createPost(t, "p2", "2", "two likes", now.Add(-2*time.Hour))
	createPost(t, "p3", "3", "stale likes", now.Add(-48*time.Hour))

	_, err := s.SetLike(ctx, "2", "p1", now)
	require.NoError(t, err)
	_, err = s.SetLike(ctx, "1", "p2", now)
	require.NoError(t, err)
	_, err = s.SetLike(ctx, "3", "p2", now)
	require.NoError(t, err)

	// engagement outside the window must not count
	_, err = s.SetLike(ctx, "1", "p3", now.Add(-30*time.Hour))
	require.NoError(t, err)
	_, err = s.SetLike(ctx, "2", "p3", now.Add(-30*time.Hour))
	require.NoError(t, err)

	pp, err := s.ListTrendingPosts(ctx, storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 3)
	require.Equal(t, "p2", pp[0].ID)
	require.Equal(t, "p1", pp[1].ID)
	require.Equal(t, "p3", pp[2].ID)
}

func TestPg_ListPostReplies(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	p := createPost(t, "p1", "1", "root", time.Unix(1, 0))

	reply, err := s.CreatePost(ctx, &storage.CreatePostParams{
		ID:        "p2",
		UserID:    "1",
		Content:   "reply",
		ReplyToID: &p.ID,
		CreatedAt: time.Unix(2, 0),
	})
	require.NoError(t, err)

	pp, err := s.ListPostReplies(ctx, p.ID, storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 1)
	require.Equal(t, reply.ID, pp[0].ID)
}

func TestPg_SearchPosts(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createPost(t, "p1", "1", "gm frens", time.Unix(1, 0))
	createPost(t, "p2", "1", "GN world", time.Unix(2, 0))

	pp, err := s.SearchPosts(ctx, "gm", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 1)
	require.Equal(t, "p1", pp[0].ID)
}

func TestPg_ListPostsByHashtag(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createPost(t, "p1", "1", "shipping #base today", time.Unix(1, 0))
	createPost(t, "p2", "1", "no tags here", time.Unix(2, 0))

	pp, err := s.ListPostsByHashtag(ctx, "base", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, pp, 1)
	require.Equal(t, "p1", pp[0].ID)
}

func TestPg_SetLike(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")
	createPost(t, "p1", "1", "hello", time.Now())

	inserted, err := s.SetLike(ctx, "2", "p1", time.Now())
	require.NoError(t, err)
	require.True(t, inserted)

	// repeated like is a no-op
	inserted, err = s.SetLike(ctx, "2", "p1", time.Now())
	require.NoError(t, err)
	require.False(t, inserted)

	liked, err := s.HasLiked(ctx, "2", "p1")
	require.NoError(t, err)
	require.True(t, liked)

	require.NoError(t, s.DeleteLike(ctx, "2", "p1"))

	liked, err = s.HasLiked(ctx, "2", "p1")
	require.NoError(t, err)
	require.False(t, liked)
}

func TestPg_Follow(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")

	require.NoError(t, s.SetFollow(ctx, "1", "2", time.Now()))
	require.NoError(t, s.SetFollow(ctx, "1", "2", time.Now()))

	following, err := s.IsFollowing(ctx, "1", "2")
	require.NoError(t, err)
	require.True(t, following)

	ff, err := s.ListFollowers(ctx, "2", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, ff, 1)
	require.Equal(t, "1", ff[0].ID)

	ff, err = s.ListFollowing(ctx, "1", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, ff, 1)
	require.Equal(t, "2", ff[0].ID)

	require.NoError(t, s.DeleteFollow(ctx, "1", "2"))

	following, err = s.IsFollowing(ctx, "1", "2")
	require.NoError(t, err)
	require.False(t, following)
}

func TestPg_Bookmarks(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")
	createPost(t, "p1", "2", "keep this", time.Now())

	b, err := s.CreateBookmark(ctx, &storage.CreateBookmarkParams{
		ID:        "b1",
		UserID:    "1",
		PostID:    "p1",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	// bookmarking twice returns the existing row
	b2, err := s.CreateBookmark(ctx, &storage.CreateBookmarkParams{
		ID:        "b2",
		UserID:    "1",
		PostID:    "p1",
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.Equal(t, b.ID, b2.ID)

	has, err := s.HasBookmarked(ctx, "1", "p1")
	require.NoError(t, err)
	require.True(t, has)

	bb, err := s.ListBookmarks(ctx, "1", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, bb, 1)
	require.NotNil(t, bb[0].Post)
	require.Equal(t, "p1", bb[0].Post.ID)
	require.NotNil(t, bb[0].PostOwner)
	require.Equal(t, "2", bb[0].PostOwner.ID)

	require.NoError(t, s.DeleteBookmark(ctx, "1", "p1"))
	require.Equal(t, storage.ErrNotFound, s.DeleteBookmark(ctx, "1", "p1"))
}

func TestPg_Notifications(t *testing.T) {
	defer cleanup(t)

	_, err := s.CreateNotification(ctx, &storage.CreateNotificationParams{
		ID:        "n0",
		UserID:    "missing",
		Type:      entities.SystemNotification,
		Message:   "hi",
		CreatedAt: time.Now(),
	})
	require.Equal(t, storage.ErrNotFound, err)

	createUser(t, "1")
	createUser(t, "2")
	createPost(t, "p1", "1", "hello", time.Now())

	actor := "2"
	postID := "p1"

	n, err := s.CreateNotification(ctx, &storage.CreateNotificationParams{
		ID:        "n1",
		UserID:    "1",
		ActorID:   &actor,
		Type:      entities.LikeNotification,
		PostID:    &postID,
		CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	require.False(t, n.IsRead)

	nn, err := s.ListNotifications(ctx, "1", storage.ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, nn, 1)
	require.NotNil(t, nn[0].Actor)
	require.Equal(t, "2", nn[0].Actor.ID)
	require.NotNil(t, nn[0].Post)
	require.Equal(t, "p1", nn[0].Post.ID)

	count, err := s.CountUnreadNotifications(ctx, "1")
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, s.MarkNotificationRead(ctx, n.ID))
	require.NoError(t, s.MarkNotificationRead(ctx, n.ID))
	require.Equal(t, storage.ErrNotFound, s.MarkNotificationRead(ctx, "missing"))

	count, err = s.CountUnreadNotifications(ctx, "1")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestPg_MarkAllNotificationsRead(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")

	for _, id := range []string{"n1", "n2", "n3"} {
		_, err := s.CreateNotification(ctx, &storage.CreateNotificationParams{
			ID:        id,
			UserID:    "1",
			Type:      entities.SystemNotification,
			Message:   "hi",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)
	}

	require.NoError(t, s.MarkAllNotificationsRead(ctx, "1"))

	count, err := s.CountUnreadNotifications(ctx, "1")
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestPg_TrendingHashtags(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createPost(t, "p1", "1", "gm #base #Buzz", time.Unix(1, 0))
	createPost(t, "p2", "1", "wagmi #BASE", time.Unix(2, 0))

	refreshViews(t)

	hh, err := s.TrendingHashtags(ctx, 10)
	require.NoError(t, err)
	require.Len(t, hh, 2)
	assert.Equal(t, "base", hh[0].Tag)
	assert.EqualValues(t, 2, hh[0].Count)
	assert.Equal(t, "buzz", hh[1].Tag)
	assert.EqualValues(t, 1, hh[1].Count)
}

func TestPg_Counts(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")
	createUser(t, "2")
	createPost(t, "p1", "1", "hello", time.Now())
	createPost(t, "p2", "2", "world", time.Now())

	_, err := s.SetLike(ctx, "1", "p2", time.Now())
	require.NoError(t, err)
	require.NoError(t, s.SetFollow(ctx, "1", "2", time.Now()))

	for name, tc := range map[string]struct {
		f        func() (uint64, error)
		expected uint64
	}{
		"users":          {func() (uint64, error) { return s.CountUsers(ctx) }, 2},
		"posts":          {func() (uint64, error) { return s.CountPosts(ctx) }, 2},
		"likes":          {func() (uint64, error) { return s.CountLikes(ctx) }, 1},
		"follows":        {func() (uint64, error) { return s.CountFollows(ctx) }, 1},
		"posts_by_user":  {func() (uint64, error) { return s.CountPostsByUser(ctx, "1") }, 1},
		"likes_by_user":  {func() (uint64, error) { return s.CountLikesByUser(ctx, "1") }, 1},
		"likes_received": {func() (uint64, error) { return s.CountLikesReceived(ctx, "2") }, 1},
		"bookmarks":      {func() (uint64, error) { return s.CountBookmarksByUser(ctx, "1") }, 0},
	} {
		t.Run(name, func(t *testing.T) {
			v, err := tc.f()
			require.NoError(t, err)
			require.Equal(t, tc.expected, v)
		})
	}
}

func TestPg_TokenPrice(t *testing.T) {
	defer cleanup(t)

	_, err := s.GetTokenPrice(ctx, "BUZZ")
	require.Equal(t, storage.ErrNotFound, err)

	require.NoError(t, s.SetTokenPrice(ctx, &entities.TokenPrice{
		Symbol:    "BUZZ",
		Price:     1.25,
		UpdatedAt: time.Now().UTC(),
	}))
	require.NoError(t, s.SetTokenPrice(ctx, &entities.TokenPrice{
		Symbol:    "BUZZ",
		Price:     1.5,
		UpdatedAt: time.Now().UTC(),
	}))

	p, err := s.GetTokenPrice(ctx, "BUZZ")
	require.NoError(t, err)
	require.Equal(t, 1.5, p.Price)
}

func TestPg_InTx(t *testing.T) {
	defer cleanup(t)

	createUser(t, "1")

	expected := errors.New("boom")
	err := s.InTx(ctx, func(tx storage.Storage) error {
		_, err := tx.CreatePost(ctx, &storage.CreatePostParams{
			ID:        "p1",
			UserID:    "1",
			Content:   "rolled back",
			CreatedAt: time.Now(),
		})
		require.NoError(t, err)

		return expected
	})
	require.True(t, errors.Is(err, expected))

	_, err = s.GetPost(ctx, "p1")
	require.Equal(t, storage.ErrNotFound, err)
}
