package postgres

import (
	"context"
)

func (s pg) CountUsers(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM users`)
}

func (s pg) CountPosts(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM post WHERE NOT is_deleted`)
}

func (s pg) CountLikes(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM "like"`)
}

func (s pg) CountFollows(ctx context.Context) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM follow`)
}

func (s pg) CountPostsByUser(ctx context.Context, userID string) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM post WHERE user_id = $1 AND NOT is_deleted`, userID)
}

func (s pg) CountLikesByUser(ctx context.Context, userID string) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM "like" WHERE user_id = $1`, userID)
}

func (s pg) CountLikesReceived(ctx context.Context, userID string) (uint64, error) {
	return s.count(ctx, `
		SELECT COUNT(*) FROM "like" l
		JOIN post p ON p.id = l.post_id
		WHERE p.user_id = $1 AND NOT p.is_deleted
	`, userID)
}

func (s pg) CountBookmarksByUser(ctx context.Context, userID string) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM bookmark WHERE user_id = $1`, userID)
}
