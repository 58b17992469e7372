package command

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sandevgo/bodai/internal/core"
)

type ProfileCommand struct {
	repo      core.ProfileRepository
	formatter *ResponseFormatter
}

func NewProfileCommand(repo core.ProfileRepository) core.Command {
	return &ProfileCommand{
		repo:      repo,
		formatter: NewResponseFormatter(),
	}
}

func (c *ProfileCommand) Name() string {
	return "profile"
}

func (c *ProfileCommand) Description() string {
	return "Show or prune what I know about you"
}

func (c *ProfileCommand) Execute(ctx context.Context, args []string) (string, error) {
	if len(args) == 0 {
		return c.list(ctx)
	}

	switch args[0] {
	case "delete", "rm":
		id, err := parseID(args[1:])
		if err != nil {
			return c.usage(), nil
		}
		if err := c.repo.DeleteFact(ctx, id); err != nil {
			return "", err
		}
		return c.formatter.Success(fmt.Sprintf("Fact %d deleted", id)), nil

	case "clear":
		if err := c.repo.ClearFacts(ctx); err != nil {
			return "", err
		}
		return c.formatter.Success("Profile cleared"), nil
	}

	return c.usage(), nil
}

func (c *ProfileCommand) list(ctx context.Context) (string, error) {
	facts, err := c.repo.ListFacts(ctx)
	if err != nil {
		return "", err
	}

	if len(facts) == 0 {
		return c.formatter.Combine(
			c.formatter.Info("Profile"),
			c.formatter.Tip("tell me where you live or what your hobby is"),
		), nil
	}

	items := make([]string, len(facts))
	for i, f := range facts {
		items[i] = fmt.Sprintf("`%d` **%s** %s", f.ID, f.Category, f.Info)
	}

	return c.formatter.Combine(
		c.formatter.Info("Profile"),
		c.formatter.Label("Facts", strconv.Itoa(len(facts))),
		c.formatter.List(items),
	), nil
}

func (c *ProfileCommand) usage() string {
	return c.formatter.Usage("/profile\n/profile delete <id>\n/profile clear")
}
