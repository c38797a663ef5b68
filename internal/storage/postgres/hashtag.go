package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/base-buzz/hive/internal/entities"
)

// TrendingHashtags reads the trending_hashtag materialized view, ranking is
// entirely backend-side. Ties are broken by tag ascending.
func (s pg) TrendingHashtags(ctx context.Context, limit uint16) ([]*entities.HashtagCount, error) {
	var dd []*struct {
		Tag   string `db:"tag"`
		Usage uint64 `db:"usage"`
	}

	if err := sqlx.SelectContext(ctx, s.ext, &dd,
		`SELECT tag, usage FROM trending_hashtag ORDER BY usage DESC, tag LIMIT $1`, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}

	out := make([]*entities.HashtagCount, len(dd))
	for i, v := range dd {
		out[i] = &entities.HashtagCount{
			Tag:   v.Tag,
			Count: v.Usage,
		}
	}

	return out, nil
}
