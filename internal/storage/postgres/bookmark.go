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

type bookmarkDTO struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	PostID    string    `db:"post_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (d bookmarkDTO) toBookmark() *entities.Bookmark {
	return &entities.Bookmark{
		ID:        d.ID,
		UserID:    d.UserID,
		PostID:    d.PostID,
		CreatedAt: d.CreatedAt,
	}
}

// CreateBookmark is idempotent, bookmarking the same post twice returns the
// existing row with its original id.
func (s pg) CreateBookmark(ctx context.Context, p *storage.CreateBookmarkParams) (*entities.Bookmark, error) {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO bookmark(id, user_id, post_id, created_at) VALUES($1, $2, $3, $4)
			ON CONFLICT(user_id, post_id) DO NOTHING
		`, p.ID, p.UserID, p.PostID, p.CreatedAt.UTC(),
	); err != nil {
		if err, ok := err.(*pq.Error); ok && err.Code == foreignKeyViolation {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to exec: %w", err)
	}

	var d bookmarkDTO
	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT id, user_id, post_id, created_at FROM bookmark WHERE user_id = $1 AND post_id = $2`,
		p.UserID, p.PostID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toBookmark(), nil
}

func (s pg) DeleteBookmark(ctx context.Context, userID, postID string) error {
	res, err := s.ext.ExecContext(ctx,
		`DELETE FROM bookmark WHERE user_id = $1 AND post_id = $2`, userID, postID,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) HasBookmarked(ctx context.Context, userID, postID string) (bool, error) {
	var bookmarked bool
	if err := sqlx.GetContext(ctx, s.ext, &bookmarked,
		`SELECT EXISTS(SELECT 1 FROM bookmark WHERE user_id = $1 AND post_id = $2)`,
		userID, postID,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", err)
	}

	return bookmarked, nil
}

func (s pg) ListBookmarks(ctx context.Context, userID string, p storage.ListParams) ([]*entities.Bookmark, error) {
	var dd []*struct {
		bookmarkDTO
		PostID2   string         `db:"p_id"`
		PostUser  string         `db:"p_user_id"`
		Content   sql.NullString `db:"p_content"`
		IsRepost  bool           `db:"p_is_repost"`
		RepostID  *string        `db:"p_repost_id"`
		ReplyToID *string        `db:"p_reply_to_id"`
		PostAt    time.Time      `db:"p_created_at"`
		OwnerID   string         `db:"u_id"`
		Address   string         `db:"u_address"`
		Name      string         `db:"u_display_name"`
		Avatar    string         `db:"u_avatar_url"`
		Tier      string         `db:"u_tier"`
		OwnerAt   time.Time      `db:"u_created_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT
				b.id, b.user_id, b.post_id, b.created_at,
				p.id AS p_id, p.user_id AS p_user_id, p.content AS p_content,
				p.is_repost AS p_is_repost, p.repost_id AS p_repost_id,
				p.reply_to_id AS p_reply_to_id, p.created_at AS p_created_at,
				u.id AS u_id, u.address AS u_address, u.display_name AS u_display_name,
				u.avatar_url AS u_avatar_url, u.tier AS u_tier, u.created_at AS u_created_at
			FROM bookmark b
			JOIN post p ON p.id = b.post_id AND NOT p.is_deleted
			JOIN users u ON u.id = p.user_id
			WHERE b.user_id = $1
			ORDER BY b.created_at DESC, b.id
			LIMIT $2 OFFSET $3
		`, userID, p.Limit, p.Offset,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*entities.Bookmark{}, nil
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Bookmark, len(dd))
	for i, v := range dd {
		b := v.bookmarkDTO.toBookmark()
		b.Post = &entities.Post{
			ID:        v.PostID2,
			UserID:    v.PostUser,
			Content:   v.Content.String,
			IsRepost:  v.IsRepost,
			RepostID:  v.RepostID,
			ReplyToID: v.ReplyToID,
			CreatedAt: v.PostAt,
		}
		b.PostOwner = &entities.User{
			ID:          v.OwnerID,
			Address:     v.Address,
			DisplayName: v.Name,
			AvatarURL:   v.Avatar,
			Tier:        v.Tier,
			CreatedAt:   v.OwnerAt,
		}
		out[i] = b
	}

	return out, nil
}
