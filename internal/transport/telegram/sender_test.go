package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/sandevgo/bodai/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

type fakeSender struct {
	sent []string
	opts [][]interface{}
	errs []error
}

func (f *fakeSender) Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error) {
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	f.sent = append(f.sent, what.(string))
	f.opts = append(f.opts, opts)
	return &tele.Message{}, nil
}

func TestSplitMessage(t *testing.T) {
	assert.Equal(t, []string{"short"}, splitMessage("short", 10))

	text := strings.Repeat("a", 8) + "\n" + strings.Repeat("b", 8)
	assert.Equal(t, []string{strings.Repeat("a", 8), strings.Repeat("b", 8)}, splitMessage(text, 10))

	chunks := splitMessage(strings.Repeat("ț", 20), 7)
	for _, c := range chunks {
		assert.True(t, utf8.ValidString(c), "chunk %q cut inside a rune", c)
		assert.LessOrEqual(t, len(c), 7)
	}
	assert.Equal(t, strings.Repeat("ț", 20), strings.Join(chunks, ""))
}

func TestSender_SendTextIsVerbatim(t *testing.T) {
	fake := &fakeSender{}
	s := newSender(fake)

	require.NoError(t, s.sendText(context.Background(), &tele.User{ID: 1}, "I remember: **not bold**"))
	assert.Equal(t, []string{"I remember: **not bold**"}, fake.sent)
	assert.Empty(t, fake.opts[0])
}

func TestSender_SendMarkdownUsesHTML(t *testing.T) {
	fake := &fakeSender{}
	s := newSender(fake)

	require.NoError(t, s.sendMarkdown(context.Background(), &tele.User{ID: 1}, "**Profile**"))
	assert.Equal(t, []string{"<strong>Profile</strong>"}, fake.sent)
	assert.Equal(t, []interface{}{tele.ModeHTML}, fake.opts[0])
}

func TestSender_DoesNotRetryAPIErrors(t *testing.T) {
	fake := &fakeSender{errs: []error{tele.ErrBlockedByUser}}
	s := newSender(fake)

	err := s.sendText(context.Background(), &tele.User{ID: 1}, "hi")
	assert.ErrorIs(t, err, tele.ErrBlockedByUser)
	assert.Empty(t, fake.sent)
}

func TestSender_RetriesNetworkErrors(t *testing.T) {
	fake := &fakeSender{errs: []error{errors.New("connection reset by peer")}}
	s := newSender(fake)

	require.NoError(t, s.sendText(context.Background(), &tele.User{ID: 1}, "hi"))
	assert.Equal(t, []string{"hi"}, fake.sent)
}

func TestClassifySendError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retry.Verdict
	}{
		{name: "network", err: errors.New("connection reset"), want: retry.Verdict{Retry: true}},
		{name: "blocked", err: tele.ErrBlockedByUser, want: retry.Verdict{}},
		{name: "wrapped blocked", err: fmt.Errorf("send chunk: %w", tele.ErrBlockedByUser), want: retry.Verdict{}},
		{name: "flood", err: tele.FloodError{RetryAfter: 3}, want: retry.Verdict{Retry: true, Wait: 3 * time.Second}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifySendError(tt.err))
		})
	}
}
