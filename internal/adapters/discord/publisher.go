package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"gamestatus-bot/internal/adapters/discord/formatting"
	"gamestatus-bot/internal/adapters/metrics"
	"gamestatus-bot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
)

type DiscordSession interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageEditEmbed(channelID, messageID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	ChannelMessageDelete(channelID, messageID string, options ...discordgo.RequestOption) error
}

// Adapter posts and edits the live status messages.
type Adapter struct {
	session DiscordSession
}

func NewAdapter(session DiscordSession) *Adapter {
	return &Adapter{session: session}
}

// PublishStatus edits the status message in place, or posts a new one when the status
// has none yet or its message was deleted. It returns the ID of the message now showing
// the status.
func (a *Adapter) PublishStatus(status *domain.Status, info *domain.ServerInfo) (string, error) {
	embed := formatting.StatusEmbed(status, info)

	if status.MessageID != "" {
		_, err := a.session.ChannelMessageEditEmbed(status.ChannelID, status.MessageID, embed)
		if err == nil {
			metrics.DiscordMessagesSent.WithLabelValues("edit", "success").Inc()
			return status.MessageID, nil
		}
		if !isUnknownMessage(err) {
			slog.Error("Failed to edit status message", "channel_id", status.ChannelID, "message_id", status.MessageID, "error", err)
			metrics.DiscordMessagesSent.WithLabelValues("edit", "failure").Inc()
			return "", fmt.Errorf("edit status message: %w", err)
		}
		slog.Warn("Status message gone, reposting", "channel_id", status.ChannelID, "message_id", status.MessageID)
	}

	msg, err := a.session.ChannelMessageSendEmbed(status.ChannelID, embed)
	if err != nil {
		slog.Error("Failed to send status message", "channel_id", status.ChannelID, "error", err)
		metrics.DiscordMessagesSent.WithLabelValues("send", "failure").Inc()
		return "", fmt.Errorf("send status message: %w", err)
	}

	metrics.DiscordMessagesSent.WithLabelValues("send", "success").Inc()
	return msg.ID, nil
}

// RemoveStatus deletes the live message. A message that is already gone is not an error.
func (a *Adapter) RemoveStatus(status *domain.Status) error {
	if status.MessageID == "" {
		return nil
	}

	if err := a.session.ChannelMessageDelete(status.ChannelID, status.MessageID); err != nil {
		if isUnknownMessage(err) {
			return nil
		}
		metrics.DiscordMessagesSent.WithLabelValues("delete", "failure").Inc()
		return fmt.Errorf("delete status message: %w", err)
	}

	metrics.DiscordMessagesSent.WithLabelValues("delete", "success").Inc()
	return nil
}

func isUnknownMessage(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) {
		return false
	}
	if restErr.Message != nil {
		return restErr.Message.Code == discordgo.ErrCodeUnknownMessage
	}
	return restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}
