package command

import (
	"github.com/sandevgo/bodai/internal/core"
)

func NewCommands(
	memories core.MemoryRepository,
	profile core.ProfileRepository,
	conv core.Conversation,
) []core.Command {
	return []core.Command{
		NewMemoriesCommand(memories),
		NewProfileCommand(profile),
		NewContextCommand(conv),
		NewClearCommand(conv),
	}
}
