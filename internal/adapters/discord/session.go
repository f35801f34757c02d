package discord

import (
	"log/slog"

	"gamestatus-bot/internal/config"

	"github.com/bwmarrin/discordgo"
)

// Intents needed to read prefix commands from guild and direct messages.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsDirectMessages |
	discordgo.IntentMessageContent

func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	discord, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		slog.Error("Failed to create discord session", "error", err)
		return nil, err
	}

	discord.Identify.Intents = Intents
	discord.StateEnabled = true

	return discord, nil
}
