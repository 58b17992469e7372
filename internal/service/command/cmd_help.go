package command

import (
	"context"
	"fmt"

	"github.com/sandevgo/bodai/internal/core"
)

type HelpCommand struct {
	list      func() []core.Command
	formatter *ResponseFormatter
}

func (c *HelpCommand) Name() string {
	return "help"
}

func (c *HelpCommand) Description() string {
	return "List available commands"
}

func (c *HelpCommand) Execute(ctx context.Context, args []string) (string, error) {
	cmds := c.list()
	lines := make([]string, 0, len(cmds))
	for _, cmd := range cmds {
		lines = append(lines, fmt.Sprintf("`/%s` %s", cmd.Name(), cmd.Description()))
	}

	return c.formatter.Combine(
		c.formatter.Info("Commands"),
		c.formatter.List(lines),
		c.formatter.Tip("anything not starting with / goes to the chat"),
	), nil
}
