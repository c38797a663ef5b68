package pricefeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/base-buzz/hive/internal/entities"
	"github.com/base-buzz/hive/internal/storage"
	"github.com/base-buzz/hive/internal/storage/mock"
)

func TestPricefeed_poll(t *testing.T) {
	quotes := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"symbol":"BUZZ","price":1.25}`)) // nolint:errcheck
	}))
	defer quotes.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockStorage(ctrl)

	s.EXPECT().SetTokenPrice(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.TokenPrice) error {
		assert.Equal(t, "BUZZ", p.Symbol)
		assert.Equal(t, 1.25, p.Price)
		assert.WithinDuration(t, time.Now().UTC(), p.UpdatedAt, time.Minute)
		return nil
	})

	p := pricefeed{
		client:   quotes.Client(),
		url:      quotes.URL,
		symbol:   "BUZZ",
		interval: time.Minute,
		s:        s,
	}

	require.NoError(t, p.poll(context.Background()))
}

func TestPricefeed_poll_badStatus(t *testing.T) {
	quotes := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer quotes.Close()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockStorage(ctrl)

	p := pricefeed{
		client:   quotes.Client(),
		url:      quotes.URL,
		symbol:   "BUZZ",
		interval: time.Minute,
		s:        s,
	}

	assert.Error(t, p.poll(context.Background()))
}

func TestPricefeed_Ping(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := mock.NewMockStorage(ctrl)

	p := pricefeed{
		symbol:   "BUZZ",
		interval: time.Minute,
		s:        s,
	}

	s.EXPECT().GetTokenPrice(gomock.Any(), "BUZZ").Return(nil, storage.ErrNotFound)

	_, err := p.Ping(context.Background())
	assert.EqualError(t, err, "no quote stored yet")

	s.EXPECT().GetTokenPrice(gomock.Any(), "BUZZ").Return(&entities.TokenPrice{
		Symbol:    "BUZZ",
		Price:     1.25,
		UpdatedAt: time.Now().UTC().Add(-time.Hour),
	}, nil)

	meta, err := p.Ping(context.Background())
	assert.EqualError(t, err, "quote is stale")
	assert.NotNil(t, meta)

	s.EXPECT().GetTokenPrice(gomock.Any(), "BUZZ").Return(&entities.TokenPrice{
		Symbol:    "BUZZ",
		Price:     1.25,
		UpdatedAt: time.Now().UTC(),
	}, nil)

	meta, err = p.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1.25, meta.(map[string]interface{})["price"])
}
