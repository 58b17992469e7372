package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/sandevgo/bodai/internal/core"
	"github.com/sandevgo/bodai/internal/service/ui"
	"github.com/sandevgo/bodai/pkg/conv"
	"github.com/sandevgo/bodai/pkg/log"
)

type ReadLine struct {
	chat   core.Chatter
	router core.CmdRouter
	rl     *readline.Instance
	stop   context.CancelFunc
}

// NewReadLine opens a REPL on the terminal. stop is called when the user
// leaves so the rest of the application shuts down with it.
func NewReadLine(chat core.Chatter, router core.CmdRouter, runtimePath string, stop context.CancelFunc) (*ReadLine, error) {
	if err := os.MkdirAll(runtimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ui.PromptStyle.Render("you › "),
		HistoryFile:     filepath.Join(runtimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(router),
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		chat:   chat,
		router: router,
		rl:     rl,
		stop:   stop,
	}, nil
}

func completer(router core.CmdRouter) readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0)
	for _, cmd := range router.ListCommands() {
		items = append(items, readline.PcItem("/"+cmd.Name()))
	}
	return readline.NewPrefixCompleter(items...)
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("chat started, type 'exit' to quit")
	defer r.stop()

	out := r.rl.Stdout()
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		fmt.Fprintln(out, r.handle(ctx, line))
	}
}

func (r *ReadLine) handle(ctx context.Context, line string) string {
	if res, ok := r.router.Execute(ctx, line); ok {
		return conv.MarkdownToText([]byte(res))
	}

	answer, err := r.chat.Reply(ctx, line)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("reply failed")
		return ui.ErrorStyle.Render(fmt.Sprintf("error: %v", err))
	}
	return ui.BotStyle.Render("bodai › ") + answer
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
