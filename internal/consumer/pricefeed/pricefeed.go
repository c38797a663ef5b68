// Package pricefeed polls an external http price endpoint and stores the
// latest quote.
package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/base-buzz/hive/internal/consumer"
	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
)

var log = logrus.WithField("package", "pricefeed")

type pricefeed struct {
	client *http.Client
	url    string
	symbol string

	interval time.Duration

	s storage.Storage
}

type quoteResponse struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// New returns a consumer which polls url every interval and upserts the
// quote for symbol.
func New(client *http.Client, url, symbol string, interval time.Duration, s storage.Storage) consumer.Consumer {
	return pricefeed{
		client:   client,
		url:      url,
		symbol:   symbol,
		interval: interval,
		s:        s,
	}
}

func (p pricefeed) Run(ctx context.Context) error {
	if err := p.poll(ctx); err != nil {
		log.WithError(err).Error("failed to poll price")
	}

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := p.poll(ctx); err != nil {
				log.WithError(err).Error("failed to poll price")
			}
		}
	}
}

func (p pricefeed) poll(ctx context.Context) error {
	q, err := p.fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch quote: %w", err)
	}

	if err := p.s.SetTokenPrice(ctx, &entities.TokenPrice{
		Symbol:    p.symbol,
		Price:     q.Price,
		UpdatedAt: time.Now().UTC(),
	}); err != nil {
		return fmt.Errorf("failed to store quote: %w", err)
	}

	log.WithField("price", q.Price).Debug("price updated")

	return nil
}

func (p pricefeed) fetch(ctx context.Context) (*quoteResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var q quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &q, nil
}

// Ping reports the freshness of the stored quote.
func (p pricefeed) Ping(ctx context.Context) (interface{}, error) {
	price, err := p.s.GetTokenPrice(ctx, p.symbol)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("no quote stored yet")
		}

		return nil, err
	}

	meta := map[string]interface{}{
		"symbol":     price.Symbol,
		"price":      price.Price,
		"updated_at": price.UpdatedAt,
	}

	if time.Since(price.UpdatedAt) > 3*p.interval {
		return meta, fmt.Errorf("quote is stale")
	}

	return meta, nil
}

func (p pricefeed) Name() string {
	return "pricefeed"
}
