package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/bodai/internal/core"
)

type MemoriesCommand struct {
	repo      core.MemoryRepository
	formatter *ResponseFormatter
}

func NewMemoriesCommand(repo core.MemoryRepository) core.Command {
	return &MemoriesCommand{
		repo:      repo,
		formatter: NewResponseFormatter(),
	}
}

func (c *MemoriesCommand) Name() string {
	return "memories"
}

func (c *MemoriesCommand) Description() string {
	return "List, edit or delete saved memories"
}

func (c *MemoriesCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.list(ctx)
	}

	switch args[0] {
	case "delete", "rm":
		id, err := parseID(args[1:])
		if err != nil {
			return c.usage(), nil
		}
		if err := c.repo.DeleteMemory(ctx, id); err != nil {
			return "", err
		}
		return c.formatter.Success(fmt.Sprintf("Memory %d deleted", id)), nil

	case "edit":
		id, err := parseID(args[1:])
		text := strings.TrimSpace(strings.Join(args[min(len(args), 2):], " "))
		if err != nil || text == "" {
			return c.usage(), nil
		}
		if err := c.repo.UpdateMemory(ctx, id, text); err != nil {
			return "", err
		}
		return c.formatter.Success(fmt.Sprintf("Memory %d updated", id)), nil
	}

	return c.usage(), nil
}

func (c *MemoriesCommand) list(ctx context.Context) (string, error) {
	memories, err := c.repo.ListMemories(ctx)
	if err != nil {
		return "", err
	}

	if len(memories) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Memories"),
			c.formatter.Tip("say 'remember that ...' to save something"),
		), nil
	}

	items := make([]string, len(memories))
	for i, m := range memories {
		items[i] = fmt.Sprintf("`%d` %s _(%s)_", m.ID, m.Text, m.CreatedAt().Format("2006-01-02 15:04"))
	}

	return c.formatter.Combine(
		c.formatter.Info("Memories"),
		c.formatter.Label("Saved", strconv.Itoa(len(memories))),
		c.formatter.List(items),
	), nil
}

func (c *MemoriesCommand) usage() string {
	return c.formatter.Usage("/memories\n/memories delete <id>\n/memories edit <id> <text>")
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.ParseInt(args[0], 10, 64)
}
