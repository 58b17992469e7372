package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/core/coretest"
	"github.com/sandevgo/bodai/internal/metrics"
	"github.com/sandevgo/bodai/internal/service/dialog"
	"github.com/sandevgo/bodai/internal/service/reply"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSelector struct {
	err   error
	calls []string
}

func (s *stubSelector) Select(ctx context.Context, text string) (reply.Reply, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return reply.Reply{}, s.err
	}
	return reply.Reply{Text: "echo: " + text, Stage: reply.StageFallback}, nil
}

func newBot(t *testing.T, sel Selector) (*Bot, *coretest.ContextStore) {
	t.Helper()
	store := &coretest.ContextStore{}
	return NewBot(sel, dialog.NewLog(store, dialog.DefaultCapacity), metrics.MustNewMetrics(prometheus.NewRegistry())), store
}

func TestBot_RejectsEmptyMessage(t *testing.T) {
	sel := &stubSelector{}
	b, store := newBot(t, sel)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := b.Reply(context.Background(), input)
		assert.ErrorIs(t, err, core.ErrEmptyMessage)
	}
	assert.Empty(t, sel.calls)
	assert.Empty(t, b.Context())
	assert.Zero(t, store.Saves)
}

func TestBot_RecordsBothSides(t *testing.T) {
	b, store := newBot(t, &stubSelector{})

	got, err := b.Reply(context.Background(), "  hello  ")
	require.NoError(t, err)
	assert.Equal(t, "echo: hello", got)

	want := []core.ContextEntry{
		{Role: core.RoleUser, Text: "hello"},
		{Role: core.RoleBot, Text: "echo: hello"},
	}
	assert.Equal(t, want, b.Context())
	assert.Equal(t, want, store.Entries)
}

func TestBot_SelectorErrorKeepsUserEntry(t *testing.T) {
	b, _ := newBot(t, &stubSelector{err: errors.New("disk full")})

	_, err := b.Reply(context.Background(), "remember that x")
	require.Error(t, err)
	assert.Equal(t, []core.ContextEntry{{Role: core.RoleUser, Text: "remember that x"}}, b.Context())
}

func TestBot_ContextIsBounded(t *testing.T) {
	b, _ := newBot(t, &stubSelector{})

	for i := 0; i < 8; i++ {
		_, err := b.Reply(context.Background(), fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	entries := b.Context()
	require.Len(t, entries, dialog.DefaultCapacity)
	assert.Equal(t, "m3", entries[0].Text)
	assert.Equal(t, "echo: m7", entries[len(entries)-1].Text)
}

func TestBot_ClearContext(t *testing.T) {
	b, store := newBot(t, &stubSelector{})

	_, err := b.Reply(context.Background(), "hi")
	require.NoError(t, err)
	require.NoError(t, b.ClearContext(context.Background()))

	assert.Empty(t, b.Context())
	assert.Empty(t, store.Entries)
}

func TestBot_ConcurrentRepliesStayPaired(t *testing.T) {
	b, _ := newBot(t, &stubSelector{})

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = b.Reply(context.Background(), fmt.Sprintf("m%d", i))
		}(i)
	}
	wg.Wait()

	entries := b.Context()
	require.Len(t, entries, 10)
	for i := 0; i < len(entries); i += 2 {
		assert.Equal(t, core.RoleUser, entries[i].Role)
		assert.Equal(t, "echo: "+entries[i].Text, entries[i+1].Text)
	}
}

func TestBot_EndToEnd(t *testing.T) {
	memories := coretest.NewMemoryRepo()
	sel := reply.NewSelector(reply.English(), memories, coretest.NewProfileRepo(), nil)
	b, _ := newBot(t, sel)
	ctx := context.Background()

	got, err := b.Reply(ctx, "remember that I like hiking")
	require.NoError(t, err)
	assert.Equal(t, "Noted: I like hiking", got)

	got, err = b.Reply(ctx, "what do I like")
	require.NoError(t, err)
	assert.Contains(t, got, "hiking")
	assert.Len(t, b.Context(), 4)
}
