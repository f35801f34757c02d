package commands

import (
	"context"
	"log/slog"
	"strings"

	"gamestatus-bot/internal/adapters/discord/formatting"
)

func (h *BotHandler) Commands() []Command {
	return []Command{
		{
			Name:    "status",
			Summary: "Post a live status message for a game server in this channel",
			Help: "Post a live status message for a game server in this channel.\n" +
				"Usage: `{prefix}status <game> <address>` (e.g. `{prefix}status minecraft mc.example.com`)\n" +
				"Supported games: `minecraft`, `bedrock`",
			Check:   IsAdmin,
			Handler: h.Status,
		},
		{
			Name:    "statusremove",
			Summary: "Stop updating a status message and delete it",
			Help: "Stop updating a status message and delete it.\n" +
				"Usage: `{prefix}statusremove ID` (e.g. `{prefix}statusremove 0`), IDs are listed by `{prefix}statusmod`",
			Check:   IsAdmin,
			Handler: h.StatusRemove,
		},
		{
			Name:    "statusmod",
			Summary: "Modify status messages in the channel",
			Help:    statusModHelp(),
			Check:   IsAdmin,
			Handler: h.StatusMod,
		},
	}
}

func statusModHelp() string {
	return "Modify status messages in the channel.\nUse cases:\n" +
		"- List statuses in current channel `{prefix}statusmod`\n" +
		"- Get status config `{prefix}statusmod ID` (e.g. `{prefix}statusmod 0`)\n" +
		"- Reset config option `{prefix}statusmod ID option` (e.g. `{prefix}statusmod 0 title`)\n" +
		"- Set config option `{prefix}statusmod ID option value` (e.g. `{prefix}statusmod 0 title Playing {map}`)\n" +
		"Options are converted to the type of their default, so numbers accept things like `0xffe` or `2e3`.\n" +
		"Titles and descriptions may contain formattables that are replaced on every update, " +
		"e.g. `{validplayers}` becomes the number of players shown in the embed.\n" +
		"Options:\n" + formatting.OptionsHelp() +
		"Formattables: " + formatting.FormattablesHelp()
}

// HelpCommand lists the router's commands or shows one command's help text.
func HelpCommand(r *Router) Command {
	return Command{
		Name:    "help",
		Summary: "List commands or show help for one",
		Help:    "Usage: `{prefix}help [command]`",
		Handler: func(ctx context.Context, c *CommandContext) error {
			if len(c.Args) == 0 || c.Args[0] == "" {
				var entries []formatting.HelpEntry
				for _, cmd := range r.Commands() {
					entries = append(entries, formatting.HelpEntry{Name: cmd.Name, Summary: cmd.Summary})
				}
				return c.ReplyEmbed(formatting.HelpListEmbed(c.Prefix, entries))
			}

			name := strings.TrimPrefix(c.Args[0], c.Prefix)
			cmd, ok := r.Lookup(name)
			if !ok {
				return c.Reply(formatting.MsgUnknownCommand(name))
			}
			return c.ReplyEmbed(formatting.HelpCommandEmbed(c.Prefix, cmd.Name, strings.ReplaceAll(cmd.Help, "{prefix}", c.Prefix)))
		},
	}
}

func RegisterCommands(r *Router, commands []Command) {
	for _, cmd := range commands {
		r.Register(cmd)
		slog.Info("Registered command", "name", cmd.Name)
	}
}
