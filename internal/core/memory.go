package core

import "context"

// Chatter is the single entry point every transport talks to.
type Chatter interface {
	Reply(ctx context.Context, text string) (string, error)
}

// Conversation exposes the recent context log.
type Conversation interface {
	Context() []ContextEntry
	ClearContext(ctx context.Context) error
}
