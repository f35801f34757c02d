package commands

import "github.com/bwmarrin/discordgo"

// CommandContext is one invocation of a prefix command.
type CommandContext struct {
	Session DiscordSession
	Message *discordgo.Message

	// Member and Guild are nil for direct messages. MemberPermissions are the
	// member's resolved permissions in the invoking channel.
	Member            *discordgo.Member
	MemberPermissions int64
	Guild             *discordgo.Guild

	Name       string
	Args       []string
	Prefix     string
	BotOwnerID string
}

func (c *CommandContext) AuthorID() string {
	if c.Message == nil || c.Message.Author == nil {
		return ""
	}
	return c.Message.Author.ID
}

func (c *CommandContext) ChannelID() string {
	return c.Message.ChannelID
}

func (c *CommandContext) GuildID() string {
	return c.Message.GuildID
}

func (c *CommandContext) Reply(content string) error {
	_, err := c.Session.ChannelMessageSend(c.ChannelID(), content)
	return err
}

func (c *CommandContext) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := c.Session.ChannelMessageSendEmbed(c.ChannelID(), embed)
	return err
}
