package commands

import (
	"context"
	"log/slog"

	"gamestatus-bot/internal/adapters/discord/formatting"
)

type Middleware func(CommandHandler) CommandHandler

// WithCheck answers with a permission error instead of running next when check fails.
func WithCheck(check Check) Middleware {
	return func(next CommandHandler) CommandHandler {
		return func(ctx context.Context, c *CommandContext) error {
			if !check(c) {
				slog.Info("Command denied", "command", c.Name, "user_id", c.AuthorID(), "guild_id", c.GuildID())
				if err := c.Reply(formatting.MsgPermissionDenied); err != nil {
					return err
				}
				return ErrPermissionDenied
			}
			return next(ctx, c)
		}
	}
}

var WithAdmin = WithCheck(IsAdmin)
