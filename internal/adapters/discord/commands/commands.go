package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gamestatus-bot/internal/adapters/discord/formatting"
	"gamestatus-bot/internal/core/domain"
	"gamestatus-bot/internal/core/services"

	"github.com/bwmarrin/discordgo"
)

type BotHandler struct {
	Service *services.StatusService
}

func ReadyHandler(session *discordgo.Session, ready *discordgo.Ready) {
	slog.Info("Game status bot is online!", "user", ready.User.Username, "guilds", len(ready.Guilds))
}

// Status starts monitoring a server in the invoking channel.
func (h *BotHandler) Status(ctx context.Context, c *CommandContext) error {
	if len(c.Args) < 2 || c.Args[0] == "" || c.Args[1] == "" {
		return c.Reply(formatting.MsgStatusUsage)
	}

	game, address := c.Args[0], c.Args[1]
	st, err := h.Service.Create(ctx, c.GuildID(), c.ChannelID(), game, address)
	if errors.Is(err, services.ErrUnsupportedGame) {
		return c.Reply(formatting.MsgUnsupportedGame(game))
	}
	if err != nil {
		return fmt.Errorf("create status: %w", err)
	}

	return c.Reply(formatting.MsgStatusCreated(st))
}

func (h *BotHandler) StatusRemove(ctx context.Context, c *CommandContext) error {
	if len(c.Args) == 0 {
		return c.Reply(formatting.MsgRemoveUsage)
	}

	index, ok := parseIndex(c.Args[0])
	if !ok {
		return c.Reply(formatting.MsgInvalidIndex(len(h.Service.List(c.ChannelID()))))
	}

	st, err := h.Service.Remove(ctx, c.ChannelID(), index)
	if handled, replyErr := replyUserError(c, err, ""); handled {
		return replyErr
	}
	if err != nil {
		return fmt.Errorf("remove status: %w", err)
	}

	return c.Reply(formatting.MsgStatusRemoved(st))
}

// StatusMod lists, inspects or changes the options of the statuses in a channel:
//
//	statusmod                    list statuses
//	statusmod <index>            show the options set on a status
//	statusmod <index> <option>   reset an option
//	statusmod <index> <option> <value...>
func (h *BotHandler) StatusMod(ctx context.Context, c *CommandContext) error {
	channelID := c.ChannelID()

	if len(c.Args) == 0 {
		return c.ReplyEmbed(formatting.StatusListEmbed(h.Service.List(channelID)))
	}

	index, ok := parseIndex(c.Args[0])
	if !ok {
		return c.Reply(formatting.MsgInvalidIndex(len(h.Service.List(channelID))))
	}

	if len(c.Args) == 1 {
		st, err := h.Service.Get(channelID, index)
		if handled, replyErr := replyUserError(c, err, ""); handled {
			return replyErr
		}
		if err != nil {
			return fmt.Errorf("get status: %w", err)
		}
		return c.ReplyEmbed(formatting.StatusOptionsEmbed(index, st))
	}

	name := c.Args[1]

	var (
		st    *domain.Status
		err   error
		embed func(int, *domain.Status, string) *discordgo.MessageEmbed
	)
	if len(c.Args) == 2 {
		st, err = h.Service.ResetOption(ctx, channelID, index, name)
		embed = formatting.OptionResetEmbed
	} else {
		value := strings.Join(c.Args[2:], " ")
		st, err = h.Service.SetOption(ctx, channelID, index, name, value)
		embed = formatting.OptionSetEmbed
	}

	if handled, replyErr := replyUserError(c, err, name); handled {
		return replyErr
	}
	if err != nil {
		return fmt.Errorf("update status option %s: %w", name, err)
	}

	slog.Info("Status option changed", "status_id", st.ID, "channel_id", channelID, "option", name, "reset", len(c.Args) == 2)
	return c.ReplyEmbed(embed(index, st, name))
}
