package retry

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/sandevgo/bodai/pkg/log"
)

// Operation is a single attempt.
type Operation = func(ctx context.Context) error

// Verdict is how a failed attempt should be followed up.
type Verdict struct {
	Retry bool
	// Wait replaces the backoff delay when positive, e.g. a server-sent
	// retry-after hint.
	Wait time.Duration
}

type Config struct {
	MaxRetries    int
	BackoffFactor float64
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	Jitter        time.Duration
	// Classify inspects a failed attempt. Nil retries every error on the
	// regular backoff.
	Classify func(err error) Verdict
}

func NewDefaultConfig() *Config {
	return &Config{
		MaxRetries:    5,
		BackoffFactor: 2.15,
		InitialDelay:  300 * time.Millisecond,
		MaxDelay:      20 * time.Second,
		Jitter:        50 * time.Millisecond,
	}
}

type Retrier struct {
	config *Config
}

func NewRetrier(config *Config) *Retrier {
	return &Retrier{
		config: config,
	}
}

func NewDefaultRetrier() *Retrier {
	return NewRetrier(NewDefaultConfig())
}

// Do runs op until it succeeds, the error is classified as final, the
// retries run out or ctx is done. The last attempt's error is returned.
func (r *Retrier) Do(ctx context.Context, op Operation) error {
	var err error
	delay := r.config.InitialDelay

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		err = op(ctx)
		if err == nil {
			return nil
		}
		if attempt == r.config.MaxRetries {
			return err
		}

		verdict := r.classify(err)
		if !verdict.Retry {
			return err
		}

		wait := r.backoff(delay)
		if verdict.Wait > 0 {
			wait = verdict.Wait
		}

		log.FromCtx(ctx).Debug().
			Err(err).
			Int("attempt", attempt+1).
			Dur("wait", wait).
			Msg("retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}

		delay = time.Duration(float64(delay) * r.config.BackoffFactor)
		if delay > r.config.MaxDelay {
			delay = r.config.MaxDelay
		}
	}
	return err
}

func (r *Retrier) classify(err error) Verdict {
	if r.config.Classify == nil {
		return Verdict{Retry: true}
	}
	return r.config.Classify(err)
}

func (r *Retrier) backoff(delay time.Duration) time.Duration {
	var jitter time.Duration
	if r.config.Jitter > 0 {
		jitter = rand.N(r.config.Jitter)
	}
	if delay > r.config.MaxDelay {
		delay = r.config.MaxDelay
	}
	return delay + jitter
}
