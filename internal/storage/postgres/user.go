package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

type userDTO struct {
	ID          string    `db:"id"`
	Address     string    `db:"address"`
	DisplayName string    `db:"display_name"`
	AvatarURL   string    `db:"avatar_url"`
	Tier        string    `db:"tier"`
	CreatedAt   time.Time `db:"created_at"`
}

const userColumns = `id, address, display_name, avatar_url, tier, created_at`

func (d userDTO) toUser() *entities.User {
	return &entities.User{
		ID:          d.ID,
		Address:     d.Address,
		DisplayName: d.DisplayName,
		AvatarURL:   d.AvatarURL,
		Tier:        d.Tier,
		CreatedAt:   d.CreatedAt,
	}
}

func usersToEntities(dd []*userDTO) []*entities.User {
	out := make([]*entities.User, len(dd))
	for i, v := range dd {
		out[i] = v.toUser()
	}

	return out
}

func (s pg) CreateUser(ctx context.Context, p *storage.CreateUserParams) (*entities.User, error) {
	rows, err := sqlx.NamedQueryContext(ctx, s.ext,
		`
			INSERT INTO users(id, address, display_name, avatar_url, tier, created_at)
			VALUES(:id, :address, :display_name, :avatar_url, :tier, :created_at)
			ON CONFLICT(address) DO UPDATE SET
				display_name=excluded.display_name, avatar_url=excluded.avatar_url, tier=excluded.tier
			RETURNING `+userColumns,
		userDTO{
			ID:          p.ID,
			Address:     p.Address,
			DisplayName: p.DisplayName,
			AvatarURL:   p.AvatarURL,
			Tier:        p.Tier,
			CreatedAt:   p.CreatedAt.UTC(),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to exec: %w", err)
	}
	defer rows.Close()

	var d userDTO
	if !rows.Next() {
		return nil, fmt.Errorf("failed to read inserted user: %w", rows.Err())
	}
	if err := rows.StructScan(&d); err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}

	return d.toUser(), nil
}

func (s pg) GetUser(ctx context.Context, id string) (*entities.User, error) {
	var d userDTO
	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toUser(), nil
}

func (s pg) GetUserByAddress(ctx context.Context, address string) (*entities.User, error) {
	var d userDTO
	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT `+userColumns+` FROM users WHERE address = $1`, address,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return d.toUser(), nil
}

func (s pg) SearchUsers(ctx context.Context, query string, p storage.ListParams) ([]*entities.User, error) {
	var dd []*userDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+userColumns+` FROM users
			WHERE display_name ILIKE '%' || $1 || '%' OR address ILIKE '%' || $1 || '%'
			ORDER BY created_at DESC, id
			LIMIT $2 OFFSET $3
		`, query, p.Limit, p.Offset,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return usersToEntities(dd), nil
}

func (s pg) SuggestedUsers(ctx context.Context, forUser string, limit uint16) ([]*entities.User, error) {
	var dd []*userDTO
	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`
			SELECT `+userColumns+` FROM users u
			WHERE u.id <> $1
				AND NOT EXISTS (
					SELECT 1 FROM follow f WHERE f.follower_id = $1 AND f.following_id = u.id
				)
			ORDER BY u.created_at DESC, u.id
			LIMIT $2
		`, forUser, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return usersToEntities(dd), nil
}

func (s pg) GetUserStats(ctx context.Context, id string) (*entities.UserStats, error) {
	var d struct {
		Posts     uint64 `db:"posts"`
		Followers uint64 `db:"followers"`
		Following uint64 `db:"following"`
	}

	if err := sqlx.GetContext(ctx, s.ext, &d,
		`
			SELECT
				(SELECT COUNT(*) FROM post WHERE user_id = u.id AND NOT is_deleted) AS posts,
				(SELECT COUNT(*) FROM follow WHERE following_id = u.id) AS followers,
				(SELECT COUNT(*) FROM follow WHERE follower_id = u.id) AS following
			FROM users u WHERE u.id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.UserStats{
		Posts:     d.Posts,
		Followers: d.Followers,
		Following: d.Following,
	}, nil
}
