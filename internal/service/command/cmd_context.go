package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/bodai/internal/core"
)

type ContextCommand struct {
	conv      core.Conversation
	formatter *ResponseFormatter
}

func NewContextCommand(conv core.Conversation) core.Command {
	return &ContextCommand{
		conv:      conv,
		formatter: NewResponseFormatter(),
	}
}

func (c *ContextCommand) Name() string {
	return "context"
}

func (c *ContextCommand) Description() string {
	return "Show the recent conversation"
}

func (c *ContextCommand) Execute(ctx context.Context, args []string) (string, error) {
	entries := c.conv.Context()
	if len(entries) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Context"),
			c.formatter.Label("Status", "empty"),
		), nil
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = fmt.Sprintf("**%s**: %s", e.Role, e.Text)
	}

	return c.formatter.Combine(
		c.formatter.Info("Context"),
		c.formatter.List(items),
	), nil
}

type ClearCommand struct {
	conv      core.Conversation
	formatter *ResponseFormatter
}

func NewClearCommand(conv core.Conversation) core.Command {
	return &ClearCommand{
		conv:      conv,
		formatter: NewResponseFormatter(),
	}
}

func (c *ClearCommand) Name() string {
	return "clear"
}

func (c *ClearCommand) Description() string {
	return "Forget the recent conversation"
}

func (c *ClearCommand) Execute(ctx context.Context, args []string) (string, error) {
	if err := c.conv.ClearContext(ctx); err != nil {
		return "", err
	}
	return c.formatter.Success("Context cleared"), nil
}
