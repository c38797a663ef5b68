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

type tokenPriceDTO struct {
	Symbol    string    `db:"symbol"`
	Price     float64   `db:"price"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (s pg) SetTokenPrice(ctx context.Context, p *entities.TokenPrice) error {
	if _, err := s.ext.ExecContext(ctx,
		`
			INSERT INTO token_price(symbol, price, updated_at) VALUES($1, $2, $3)
			ON CONFLICT(symbol) DO UPDATE SET price=excluded.price, updated_at=excluded.updated_at
		`, p.Symbol, p.Price, p.UpdatedAt.UTC(),
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) GetTokenPrice(ctx context.Context, symbol string) (*entities.TokenPrice, error) {
	var d tokenPriceDTO
	if err := sqlx.GetContext(ctx, s.ext, &d,
		`SELECT symbol, price, updated_at FROM token_price WHERE symbol = $1`, symbol,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return &entities.TokenPrice{
		Symbol:    d.Symbol,
		Price:     d.Price,
		UpdatedAt: d.UpdatedAt,
	}, nil
}
