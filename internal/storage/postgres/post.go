package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

type postDTO struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Content   sql.NullString `db:"content"`
	IsDeleted bool           `db:"is_deleted"`
	IsRepost  bool           `db:"is_repost"`
	RepostID  *string        `db:"repost_id"`
	ReplyToID *string        `db:"reply_to_id"`
	CreatedAt time.Time      `db:"created_at"`
}

const postColumns = `id, user_id, content, is_deleted, is_repost, repost_id, reply_to_id, created_at`

func (d postDTO) toPost() *entities.Post {
	return &entities.Post{
		ID:        d.ID,
		UserID:    d.UserID,
		Content:   d.Content.String,
		IsDeleted: d.IsDeleted,
		IsRepost:  d.IsRepost,
		RepostID:  d.RepostID,
		ReplyToID: d.ReplyToID,
		CreatedAt: d.CreatedAt,
	}
}

func postsToEntities(dd []*postDTO) []*entities.Post {
	out := make([]*entities.Post, len(dd))
	for i, v := range dd {
		out[i] = v.toPost()
	}

	return out
}

func (s pg) CreatePost(ctx context.Context, p *storage.CreatePostParams) (*entities.Post, error) {
	content := sql.NullString{String: p.Content, Valid: !p.IsRepost || p.Content != ""}

	rows, err := sqlx.NamedQueryContext(ctx, s.ext,
		`
			INSERT INTO post(id, user_id, content, is_repost, repost_id, reply_to_id, created_at)
			VALUES(:id, :user_id, :content, :is_repost, :repost_id, :reply_to_id, :created_at)
			RETURNING `+postColumns,
		postDTO{
			ID:        p.ID,
			UserID:    p.UserID,
			Content:   content,
			IsRepost:  p.IsRepost,
			RepostID:  p.RepostID,
			ReplyToID: p.ReplyToID,
			CreatedAt: p.CreatedAt.UTC(),
		},
	)
	if err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}
	defer rows.Close()

	var d postDTO
	if !rows.Next() {
		return nil, fmt.Errorf("failed to read inserted post: %w", rows.Err())
	}
	if err := rows.StructScan(&d); err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}

	return d.toPost(), nil
}

func (s pg) GetPost(ctx context.Context, id string) (*entities.Post, error) {
	var d postDTO
	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+postColumns+` FROM post WHERE id = $1 AND NOT is_deleted`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toPost(), nil
}

func (s pg) UpdatePostContent(ctx context.Context, id, content string) (*entities.Post, error) {
	var d postDTO
	if err := sqlx.GetContext(ctx, s.ext, &d,
		`
			UPDATE post SET content = $2
			WHERE id = $1 AND NOT is_deleted
			RETURNING `+postColumns,
		id, content,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	return d.toPost(), nil
}

func (s pg) DeletePost(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE post SET is_deleted = TRUE WHERE id = $1 AND NOT is_deleted`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) ListUserPosts(ctx context.Context, userID string, p storage.ListParams) ([]*entities.Post, error) {
	var dd []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+postColumns+` FROM post
			WHERE user_id = $1 AND NOT is_deleted
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		`, userID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return postsToEntities(dd), nil
}

func (s pg) ListFeed(ctx context.Context, userID string, p storage.ListParams) ([]*entities.Post, error) {
	var dd []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+postColumns+` FROM post
			WHERE NOT is_deleted
				AND (user_id = $1 OR user_id IN (
					SELECT following_id FROM follow WHERE follower_id = $1
				))
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		`, userID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return postsToEntities(dd), nil
}

// trendingWindow bounds the engagement counted towards trending rank.
const trendingWindow = 24 * time.Hour

func (s pg) ListTrendingPosts(ctx context.Context, p storage.ListParams) ([]*entities.Post, error) {
	var dd []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT p.id, p.user_id, p.content, p.is_deleted, p.is_repost, p.repost_id, p.reply_to_id, p.created_at
			FROM post p
			LEFT JOIN "like" l ON l.post_id = p.id AND l.created_at > $1
			LEFT JOIN post r ON r.repost_id = p.id AND r.is_repost AND NOT r.is_deleted AND r.created_at > $1
			WHERE NOT p.is_deleted
			GROUP BY p.id
			ORDER BY COUNT(DISTINCT l.user_id) + COUNT(DISTINCT r.id) DESC, p.created_at DESC, p.id
			LIMIT $2 OFFSET $3
		`, time.Now().UTC().Add(-trendingWindow), p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return postsToEntities(dd), nil
}

func (s pg) ListPostReplies(ctx context.Context, postID string, p storage.ListParams) ([]*entities.Post, error) {
	var dd []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+postColumns+` FROM post
			WHERE reply_to_id = $1 AND NOT is_deleted
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		`, postID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return postsToEntities(dd), nil
}

func (s pg) SearchPosts(ctx context.Context, query string, p storage.ListParams) ([]*entities.Post, error) {
	var dd []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+postColumns+` FROM post
			WHERE NOT is_deleted AND content ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		`, query, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return postsToEntities(dd), nil
}

// ListPostsByHashtag matches '#tag' as a substring of content. A tag that is
// a prefix of a longer tag matches both, the trade-off is a single ILIKE scan.
func (s pg) ListPostsByHashtag(ctx context.Context, tag string, p storage.ListParams) ([]*entities.Post, error) {
	var dd []*postDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+postColumns+` FROM post
			WHERE NOT is_deleted AND content ILIKE '%#' || $1 || '%'
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		`, tag, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return postsToEntities(dd), nil
}
