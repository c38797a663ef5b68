package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

type notificationDTO struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	ActorID   *string   `db:"actor_id"`
	Type      string    `db:"type"`
	PostID    *string   `db:"post_id"`
	IsRead    bool      `db:"is_read"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}

func (d notificationDTO) toNotification() *entities.Notification {
	return &entities.Notification{
		ID:        d.ID,
		UserID:    d.UserID,
		ActorID:   d.ActorID,
		Type:      entities.NotificationType(d.Type),
		PostID:    d.PostID,
		IsRead:    d.IsRead,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
	}
}

func (s pg) CreateNotification(ctx context.Context, p *storage.CreateNotificationParams) (*entities.Notification, error) {
	rows, err := sqlx.NamedQueryContext(ctx, s.ext,
		`
			INSERT INTO notification(id, user_id, actor_id, type, post_id, message, created_at)
			VALUES(:id, :user_id, :actor_id, :type, :post_id, :message, :created_at)
			RETURNING id, user_id, actor_id, type, post_id, is_read, message, created_at
		`,
		notificationDTO{
			ID:        p.ID,
			UserID:    p.UserID,
			ActorID:   p.ActorID,
			Type:      string(p.Type),
			PostID:    p.PostID,
			Message:   p.Message,
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

	var d notificationDTO
	if !rows.Next() {
		return nil, fmt.Errorf("failed to read inserted notification: %w", rows.Err())
	}
	if err := rows.StructScan(&d); err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}

	return d.toNotification(), nil
}

func (s pg) ListNotifications(ctx context.Context, userID string, p storage.ListParams) ([]*entities.Notification, error) {
	var dd []*struct {
		notificationDTO
		ActorAddress *string         `db:"a_address"`
		ActorName    *string         `db:"a_display_name"`
		ActorAvatar  *string         `db:"a_avatar_url"`
		ActorTier    *string         `db:"a_tier"`
		ActorAt      *time.Time      `db:"a_created_at"`
		PostUserID   *string         `db:"p_user_id"`
		PostContent  sql.NullString  `db:"p_content"`
		PostAt       *time.Time      `db:"p_created_at"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT
				n.id, n.user_id, n.actor_id, n.type, n.post_id, n.is_read, n.message, n.created_at,
				a.address AS a_address, a.display_name AS a_display_name,
				a.avatar_url AS a_avatar_url, a.tier AS a_tier, a.created_at AS a_created_at,
				p.user_id AS p_user_id, p.content AS p_content, p.created_at AS p_created_at
			FROM notification n
			LEFT JOIN users a ON a.id = n.actor_id
			LEFT JOIN post p ON p.id = n.post_id AND NOT p.is_deleted
			WHERE n.user_id = $1
			ORDER BY n.created_at DESC, n.id
			LIMIT $2 OFFSET $3
		`, userID, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.Notification, len(dd))
	for i, v := range dd {
		n := v.notificationDTO.toNotification()
		if v.ActorID != nil && v.ActorAddress != nil {
			n.Actor = &entities.User{
				ID:          *v.ActorID,
				Address:     *v.ActorAddress,
				DisplayName: *v.ActorName,
				AvatarURL:   *v.ActorAvatar,
				Tier:        *v.ActorTier,
				CreatedAt:   *v.ActorAt,
			}
		}
		if v.PostID != nil && v.PostUserID != nil {
			n.Post = &entities.Post{
				ID:        *v.PostID,
				UserID:    *v.PostUserID,
				Content:   v.PostContent.String,
				CreatedAt: *v.PostAt,
			}
		}
		out[i] = n
	}

	return out, nil
}

func (s pg) CountUnreadNotifications(ctx context.Context, userID string) (uint64, error) {
	return s.count(ctx, `SELECT COUNT(*) FROM notification WHERE user_id = $1 AND NOT is_read`, userID)
}

// MarkNotificationRead is idempotent, marking an already-read row succeeds.
func (s pg) MarkNotificationRead(ctx context.Context, id string) error {
	res, err := s.ext.ExecContext(ctx,
		`UPDATE notification SET is_read = TRUE WHERE id = $1`, id,
	)
	if err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	if c, _ := res.RowsAffected(); c == 0 {
		return storage.ErrNotFound
	}

	return nil
}

func (s pg) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	if _, err := s.ext.ExecContext(ctx,
		`UPDATE notification SET is_read = TRUE WHERE user_id = $1 AND NOT is_read`, userID,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}
