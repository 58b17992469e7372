package bot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/metrics"
	"github.com/sandevgo/bodai/internal/service/dialog"
	"github.com/sandevgo/bodai/internal/service/reply"
	"github.com/sandevgo/bodai/pkg/log"
)

type Selector interface {
	Select(ctx context.Context, text string) (reply.Reply, error)
}

// Bot is what every transport talks to. Turns are serialized so the
// context log keeps user and bot entries paired.
type Bot struct {
	selector Selector
	log      *dialog.Log
	metrics  *metrics.Metrics

	mu sync.Mutex
}

func NewBot(selector Selector, log *dialog.Log, m *metrics.Metrics) *Bot {
	return &Bot{
		selector: selector,
		log:      log,
		metrics:  m,
	}
}

func (b *Bot) Reply(ctx context.Context, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", core.ErrEmptyMessage
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	start := time.Now()
	b.log.Append(ctx, core.RoleUser, text)

	r, err := b.selector.Select(ctx, text)
	if err != nil {
		b.metrics.IncFailure()
		return "", err
	}

	b.log.Append(ctx, core.RoleBot, r.Text)
	b.metrics.ObserveReply(r.Stage, time.Since(start))

	log.FromCtx(ctx).Info().
		Str("stage", r.Stage).
		Dur("took", time.Since(start)).
		Msg("replied")

	return r.Text, nil
}

func (b *Bot) Context() []core.ContextEntry {
	return b.log.Entries()
}

func (b *Bot) ClearContext(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.log.Clear(ctx)
}
