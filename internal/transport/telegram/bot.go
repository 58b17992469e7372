package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sandevgo/bodai/internal/config"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

type Bot struct {
	bot     *tele.Bot
	chat    core.Chatter
	router  core.CmdRouter
	sender  *sender
	ownerID int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	chat core.Chatter,
	router core.CmdRouter,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		chat:    chat,
		router:  router,
		sender:  newSender(b),
		ownerID: cfg.OwnerID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: Only allow the owner
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx).With().Int64("chat_id", c.Chat().ID).Logger()
	ctx = logger.WithContext(ctx)

	_ = c.Notify(tele.Typing)

	if out, ok := b.router.Execute(ctx, c.Text()); ok {
		return b.sender.sendMarkdown(ctx, c.Recipient(), out)
	}

	answer, err := b.chat.Reply(ctx, c.Text())
	switch {
	case errors.Is(err, core.ErrEmptyMessage):
		return nil
	case err != nil:
		logger.Error().Err(err).Msg("reply failed")
		return b.sender.sendText(ctx, c.Recipient(), "Something went wrong, please try again.")
	}

	return b.sender.sendText(ctx, c.Recipient(), answer)
}
