package core

import "context"

type MemoryRepository interface {
	AddMemory(ctx context.Context, text string) (Memory, error)
	// ListMemories returns every memory, newest first.
	ListMemories(ctx context.Context) ([]Memory, error)
	// SearchMemories returns the whole corpus in no guaranteed order.
	SearchMemories(ctx context.Context) ([]Memory, error)
	UpdateMemory(ctx context.Context, id int64, text string) error
	DeleteMemory(ctx context.Context, id int64) error
}

type ProfileRepository interface {
	AddFact(ctx context.Context, category Category, info string) (ProfileFact, error)
	// ListFacts returns every profile fact, newest first.
	ListFacts(ctx context.Context) ([]ProfileFact, error)
	UpdateFact(ctx context.Context, id int64, info string) error
	DeleteFact(ctx context.Context, id int64) error
	ClearFacts(ctx context.Context) error
}

type ContextStore interface {
	Load(ctx context.Context) ([]ContextEntry, error)
	Save(ctx context.Context, entries []ContextEntry) error
	Clear(ctx context.Context) error
}
