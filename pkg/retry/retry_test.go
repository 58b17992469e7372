package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() *Config {
	return &Config{
		MaxRetries:    3,
		BackoffFactor: 2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
	}
}

func TestRetry_SuccessOnFirstTry(t *testing.T) {
	attempts := 0
	err := NewDefaultRetrier().Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_SuccessAfterRetries(t *testing.T) {
	attempts := 0
	err := NewRetrier(fastConfig()).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("connection reset")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
}

func TestRetry_MaxRetriesExceeded(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 2
	last := errors.New("timeout")

	attempts := 0
	err := NewRetrier(cfg).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return last
	})

	assert.ErrorIs(t, err, last)
	assert.Equal(t, 3, attempts, "first try plus two retries")
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := NewDefaultRetrier().Do(ctx, func(ctx context.Context) error {
		cancel()
		return errors.New("send failed")
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRetry_OperationSeesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "chat-42")

	var seen any
	err := NewDefaultRetrier().Do(ctx, func(ctx context.Context) error {
		seen = ctx.Value(key{})
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, "chat-42", seen)
}

func TestRetry_ClassifyStopsOnFinalError(t *testing.T) {
	rejected := errors.New("bot was blocked by the user")
	cfg := fastConfig()
	cfg.Classify = func(err error) Verdict {
		return Verdict{Retry: !errors.Is(err, rejected)}
	}

	attempts := 0
	err := NewRetrier(cfg).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		return rejected
	})

	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, attempts)
}

func TestRetry_ClassifyWaitOverridesBackoff(t *testing.T) {
	cfg := fastConfig()
	cfg.MaxRetries = 1
	cfg.InitialDelay = time.Hour
	cfg.MaxDelay = time.Hour
	cfg.Classify = func(err error) Verdict {
		return Verdict{Retry: true, Wait: 10 * time.Millisecond}
	}

	attempts := 0
	start := time.Now()
	err := NewRetrier(cfg).Do(context.Background(), func(ctx context.Context) error {
		attempts++
		if attempts == 1 {
			return errors.New("too many requests")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestRetry_BackoffIsCapped(t *testing.T) {
	r := NewRetrier(&Config{MaxDelay: 20 * time.Millisecond, Jitter: 5 * time.Millisecond})

	for range 50 {
		d := r.backoff(time.Second)
		assert.GreaterOrEqual(t, d, 20*time.Millisecond)
		assert.Less(t, d, 25*time.Millisecond)
	}
	assert.Equal(t, 3*time.Millisecond, NewRetrier(&Config{MaxDelay: time.Second}).backoff(3*time.Millisecond))
}
