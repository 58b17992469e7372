package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/core/coretest"
	"github.com/sandevgo/bodai/internal/service/command"
	"github.com/stretchr/testify/assert"
)

type stubChat struct {
	err error
}

func (s stubChat) Reply(ctx context.Context, text string) (string, error) {
	return "echo " + text, s.err
}

type emptyConversation struct{}

func (emptyConversation) Context() []core.ContextEntry        { return nil }
func (emptyConversation) ClearContext(context.Context) error { return nil }

func newTestReadLine(chat core.Chatter) *ReadLine {
	router := command.New(command.NewCommands(coretest.NewMemoryRepo("I like hiking"), coretest.NewProfileRepo(), emptyConversation{}))
	return &ReadLine{chat: chat, router: router}
}

func TestReadLine_HandleChat(t *testing.T) {
	r := newTestReadLine(stubChat{})
	assert.Contains(t, r.handle(context.Background(), "hello"), "echo hello")
}

func TestReadLine_HandleCommandIsPlainText(t *testing.T) {
	r := newTestReadLine(stubChat{})

	out := r.handle(context.Background(), "/memories")
	assert.Contains(t, out, "I like hiking")
	assert.NotContains(t, out, "**")
	assert.NotContains(t, out, "`")
}

func TestReadLine_HandleError(t *testing.T) {
	r := newTestReadLine(stubChat{err: errors.New("boom")})
	assert.Contains(t, r.handle(context.Background(), "hello"), "boom")
}
