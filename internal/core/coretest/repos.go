// Package coretest provides in-memory implementations of the core
// repositories for tests.
package coretest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sandevgo/bodai/internal/core"
)

type MemoryRepo struct {
	mu       sync.Mutex
	items    []core.Memory
	nextID   int64
	AddErr   error
	QueryErr error
}

func NewMemoryRepo(texts ...string) *MemoryRepo {
	r := &MemoryRepo{}
	for _, t := range texts {
		_, _ = r.AddMemory(context.Background(), t)
	}
	return r
}

func (r *MemoryRepo) AddMemory(ctx context.Context, text string) (core.Memory, error) {
	if r.AddErr != nil {
		return core.Memory{}, r.AddErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	m := core.Memory{ID: r.nextID, Text: text, Timestamp: time.Now().Unix()}
	r.items = append(r.items, m)
	return m, nil
}

func (r *MemoryRepo) ListMemories(ctx context.Context) ([]core.Memory, error) {
	all, err := r.SearchMemories(ctx)
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, err
}

func (r *MemoryRepo) SearchMemories(ctx context.Context) ([]core.Memory, error) {
	if r.QueryErr != nil {
		return nil, r.QueryErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]core.Memory, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryRepo) UpdateMemory(ctx context.Context, id int64, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Text = text
			return nil
		}
	}
	return fmt.Errorf("id %d: %w", id, core.ErrNotFound)
}

func (r *MemoryRepo) DeleteMemory(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("id %d: %w", id, core.ErrNotFound)
}

// Texts returns the stored texts in insertion order.
func (r *MemoryRepo) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.items))
	for i, m := range r.items {
		out[i] = m.Text
	}
	return out
}

type ProfileRepo struct {
	mu      sync.Mutex
	facts   []core.ProfileFact
	nextID  int64
	ListErr error
}

func NewProfileRepo() *ProfileRepo {
	return &ProfileRepo{}
}

func (r *ProfileRepo) AddFact(ctx context.Context, category core.Category, info string) (core.ProfileFact, error) {
	if !category.Valid() {
		return core.ProfileFact{}, core.ErrInvalidCategory
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	f := core.ProfileFact{ID: r.nextID, Category: category, Info: info, Timestamp: time.Now().Unix()}
	r.facts = append(r.facts, f)
	return f, nil
}

func (r *ProfileRepo) ListFacts(ctx context.Context) ([]core.ProfileFact, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]core.ProfileFact, 0, len(r.facts))
	for i := len(r.facts) - 1; i >= 0; i-- {
		out = append(out, r.facts[i])
	}
	return out, nil
}

func (r *ProfileRepo) UpdateFact(ctx context.Context, id int64, info string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.facts {
		if r.facts[i].ID == id {
			r.facts[i].Info = info
			return nil
		}
	}
	return fmt.Errorf("id %d: %w", id, core.ErrNotFound)
}

func (r *ProfileRepo) DeleteFact(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.facts {
		if r.facts[i].ID == id {
			r.facts = append(r.facts[:i], r.facts[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("id %d: %w", id, core.ErrNotFound)
}

func (r *ProfileRepo) ClearFacts(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.facts = nil
	return nil
}

type ContextStore struct {
	mu      sync.Mutex
	Entries []core.ContextEntry
	Saves   int
	LoadErr error
}

func (s *ContextStore) Load(ctx context.Context) ([]core.ContextEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Entries, s.LoadErr
}

func (s *ContextStore) Save(ctx context.Context, entries []core.ContextEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Saves++
	s.Entries = entries
	return nil
}

func (s *ContextStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Entries = nil
	return nil
}
