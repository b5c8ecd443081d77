package store

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// RetryingStore decorates a SnapshotStore with exponential backoff on
// Save. A snapshot save sits between an accepted mutation and its
// durability, so transient store errors are worth a few retries before
// the failure is surfaced to the caller.
type RetryingStore struct {
	inner           SnapshotStore
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	maxElapsedTime  time.Duration
	logger          zerolog.Logger
}

// NewRetryingStore wraps inner with default retry settings.
func NewRetryingStore(inner SnapshotStore, logger zerolog.Logger) *RetryingStore {
	return &RetryingStore{
		inner:           inner,
		maxRetries:      3,
		initialInterval: 50 * time.Millisecond,
		maxInterval:     1 * time.Second,
		maxElapsedTime:  10 * time.Second,
		logger:          logger,
	}
}

// Load delegates to the wrapped store.
func (s *RetryingStore) Load(ctx context.Context) ([]byte, error) {
	return s.inner.Load(ctx)
}

// Save writes the snapshot, retrying transient failures with
// exponential backoff. ErrNotFound never occurs on Save; context
// cancellation stops the retry loop.
func (s *RetryingStore) Save(ctx context.Context, data []byte) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.initialInterval
	b.MaxInterval = s.maxInterval
	b.MaxElapsedTime = s.maxElapsedTime

	retryCount := 0

	return backoff.Retry(func() error {
		err := s.inner.Save(ctx, data)
		if err == nil {
			return nil
		}

		retryCount++
		if retryCount > s.maxRetries {
			return backoff.Permanent(err)
		}

		s.logger.Warn().
			Err(err).
			Int("retry", retryCount).
			Msg("snapshot save failed, retrying")

		return err
	}, backoff.WithContext(b, ctx))
}

// Ping delegates to the wrapped store.
func (s *RetryingStore) Ping(ctx context.Context) error {
	return s.inner.Ping(ctx)
}
