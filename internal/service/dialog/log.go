package dialog

import (
	"context"
	"sync"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/pkg/log"
)

// DefaultCapacity is the fixed size of the conversation log.
const DefaultCapacity = 10

// Log is a bounded FIFO of recent turns. Every mutation is flushed to the
// store synchronously; flush failures are logged and otherwise ignored.
type Log struct {
	store    core.ContextStore
	capacity int

	mu      sync.Mutex
	entries []core.ContextEntry
}

func NewLog(store core.ContextStore, capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		store:    store,
		capacity: capacity,
		entries:  make([]core.ContextEntry, 0, capacity),
	}
}

// Restore replaces the in-memory log with the persisted snapshot. A broken
// snapshot leaves the log empty.
func (l *Log) Restore(ctx context.Context) {
	entries, err := l.store.Load(ctx)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to load context, starting empty")
		entries = nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = l.entries[:0]
	for _, e := range entries {
		l.push(e)
	}
}

func (l *Log) Append(ctx context.Context, role core.Role, text string) {
	l.mu.Lock()
	l.push(core.ContextEntry{Role: role, Text: text})
	snapshot := l.snapshot()
	l.mu.Unlock()

	if err := l.store.Save(ctx, snapshot); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to save context")
	}
}

// Entries returns a copy of the log, oldest first.
func (l *Log) Entries() []core.ContextEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshot()
}

func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

func (l *Log) Clear(ctx context.Context) error {
	l.mu.Lock()
	l.entries = l.entries[:0]
	l.mu.Unlock()

	return l.store.Clear(ctx)
}

func (l *Log) push(e core.ContextEntry) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, e)
}

func (l *Log) snapshot() []core.ContextEntry {
	out := make([]core.ContextEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
