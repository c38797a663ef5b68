// Package consumer contains interface of background data consumers.
package consumer

import (
	"context"

	"github.com/base-buzz/hive/internal/health"
)

//go:generate mockgen -destination=./mock/consumer.go -package=consumer -source=consumer.go

// Consumer pulls data from an external source into storage.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
