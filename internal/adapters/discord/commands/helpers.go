package commands

import (
	"errors"
	"strconv"
	"strings"

	"gamestatus-bot/internal/adapters/discord/formatting"
	"gamestatus-bot/internal/core/domain"
	"gamestatus-bot/internal/core/services"
)

// parseIndex reads a status position such as "2" or "#2".
func parseIndex(arg string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(arg, "#"))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// replyUserError answers errors caused by the invoker's input. It reports whether err
// was one of them.
func replyUserError(c *CommandContext, err error, option string) (bool, error) {
	var idxErr *services.IndexError
	switch {
	case errors.As(err, &idxErr):
		return true, c.Reply(formatting.MsgInvalidIndex(idxErr.Count))
	case errors.Is(err, domain.ErrUnknownOption):
		return true, c.Reply(formatting.MsgUnknownOption(option))
	case errors.Is(err, domain.ErrInvalidOptionValue):
		return true, c.Reply(formatting.MsgInvalidOptionValue(option))
	}
	return false, nil
}
