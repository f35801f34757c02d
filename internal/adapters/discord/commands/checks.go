package commands

import "github.com/bwmarrin/discordgo"

// Check decides whether the invoker may run a command.
type Check func(c *CommandContext) bool

func IsAdmin(c *CommandContext) bool {
	if c.Member == nil {
		return false
	}
	return c.MemberPermissions&discordgo.PermissionAdministrator != 0
}

func IsOwner(c *CommandContext) bool {
	if c.Guild == nil {
		return false
	}
	return c.Guild.OwnerID == c.AuthorID()
}

func IsBotOwner(c *CommandContext) bool {
	return c.BotOwnerID != "" && c.BotOwnerID == c.AuthorID()
}
