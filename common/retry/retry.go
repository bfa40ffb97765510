// Package retry waits for backing services that may come up after the API.
package retry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff"
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	// MaxElapsed stops retrying once this much time has passed; zero retries until ctx is done.
	MaxElapsed time.Duration
}

func DefaultConfig(maxElapsed time.Duration) Config {
	return Config{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		MaxElapsed:      maxElapsed,
	}
}

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

// Connect calls op with exponential backoff until it succeeds, returns a
// Permanent error, the retry budget runs out, or ctx is done.
func Connect(ctx context.Context, name string, cfg Config, op func(ctx context.Context) error) error {
	bo := backoff.NewExponentialBackOff()
	if cfg.InitialInterval > 0 {
		bo.InitialInterval = cfg.InitialInterval
	}
	if cfg.MaxInterval > 0 {
		bo.MaxInterval = cfg.MaxInterval
	}
	bo.MaxElapsedTime = cfg.MaxElapsed

	attempts := 0
	err := backoff.RetryNotify(func() error {
		attempts++
		if err := ctx.Err(); err != nil {
			return backoff.Permanent(err)
		}
		return op(ctx)
	}, backoff.WithContext(bo, ctx), func(err error, wait time.Duration) {
		slog.WarnContext(ctx, "dependency not ready, retrying",
			"dependency", name,
			"attempt", attempts,
			"retry_in", wait.String(),
			"error", err)
	})
	if err != nil {
		return fmt.Errorf("connecting to %s after %d attempts: %w", name, attempts, err)
	}
	return nil
}
