package telegram

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sandevgo/bodai/pkg/conv"
	"github.com/sandevgo/bodai/pkg/log"
	"github.com/sandevgo/bodai/pkg/retry"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type messageSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type sender struct {
	bot     messageSender
	retrier *retry.Retrier
}

func newSender(bot messageSender) *sender {
	cfg := retry.NewDefaultConfig()
	cfg.MaxRetries = 3
	cfg.Classify = classifySendError
	return &sender{bot: bot, retrier: retry.NewRetrier(cfg)}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if needed.
func (s *sender) sendMarkdown(ctx context.Context, to tele.Recipient, md string) error {
	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	return s.send(ctx, to, html, tele.ModeHTML)
}

// sendText sends chat replies verbatim: user text must not be read as markup.
func (s *sender) sendText(ctx context.Context, to tele.Recipient, text string) error {
	return s.send(ctx, to, text)
}

func (s *sender) send(ctx context.Context, to tele.Recipient, text string, opts ...interface{}) error {
	logger := log.FromCtx(ctx)

	for i, chunk := range splitMessage(text, maxTelegramMsgLen) {
		err := s.retrier.Do(ctx, func(ctx context.Context) error {
			_, err := s.bot.Send(to, chunk, opts...)
			return err
		})
		if err != nil {
			logger.Error().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("failed to send telegram chunk")
			return err
		}
	}
	return nil
}

// classifySendError retries flood control after the wait Telegram asks for
// and retries network failures on the regular backoff. Other API errors are
// final.
func classifySendError(err error) retry.Verdict {
	var flood tele.FloodError
	if errors.As(err, &flood) {
		return retry.Verdict{Retry: true, Wait: time.Duration(flood.RetryAfter) * time.Second}
	}
	var apiErr *tele.Error
	if errors.As(err, &apiErr) {
		return retry.Verdict{}
	}
	return retry.Verdict{Retry: true}
}

// splitMessage splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}
		// never cut inside a multi-byte rune
		for cut > 0 && !isRuneStart(text[cut]) {
			cut--
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
