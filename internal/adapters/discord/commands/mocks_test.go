package commands

import (
	"context"
	"time"

	"gamestatus-bot/internal/core/domain"
	"gamestatus-bot/internal/core/services"

	"github.com/bwmarrin/discordgo"
)

type mockStorage struct {
	saveStatusFunc        func(ctx context.Context, status *domain.Status) error
	deleteStatusFunc      func(ctx context.Context, statusID string) error
	saveStatusOptionsFunc func(ctx context.Context, statusID string, options map[string]any) error
}

func (m *mockStorage) SaveStatus(ctx context.Context, status *domain.Status) error {
	if m.saveStatusFunc != nil {
		return m.saveStatusFunc(ctx, status)
	}
	return nil
}

func (m *mockStorage) GetAllStatuses(ctx context.Context) ([]*domain.Status, error) {
	return nil, nil
}

func (m *mockStorage) DeleteStatus(ctx context.Context, statusID string) error {
	if m.deleteStatusFunc != nil {
		return m.deleteStatusFunc(ctx, statusID)
	}
	return nil
}

func (m *mockStorage) SaveStatusOptions(ctx context.Context, statusID string, options map[string]any) error {
	if m.saveStatusOptionsFunc != nil {
		return m.saveStatusOptionsFunc(ctx, statusID, options)
	}
	return nil
}

func (m *mockStorage) UpdateStatusDisplay(ctx context.Context, statusID, messageID, name string, lastSeen time.Time) error {
	return nil
}

func (m *mockStorage) Close() {}

type mockPublisher struct {
	removed []string
}

func (m *mockPublisher) PublishStatus(status *domain.Status, info *domain.ServerInfo) (string, error) {
	if status.MessageID != "" {
		return status.MessageID, nil
	}
	return "live-" + status.Address, nil
}

func (m *mockPublisher) RemoveStatus(status *domain.Status) error {
	m.removed = append(m.removed, status.MessageID)
	return nil
}

type mockQuerier struct{}

func (m *mockQuerier) Query(ctx context.Context, game, address string) (*domain.ServerInfo, error) {
	return &domain.ServerInfo{Online: true, QueriedAt: time.Now()}, nil
}

func (m *mockQuerier) SupportsGame(game string) bool {
	return game == "minecraft" || game == "bedrock"
}

type mockDiscordSession struct {
	guildFunc       func(guildID string) (*discordgo.Guild, error)
	permissionsFunc func(userID, channelID string) (int64, error)
	sendErr         error

	messages []string
	embeds   []*discordgo.MessageEmbed
}

func (m *mockDiscordSession) ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.messages = append(m.messages, content)
	return &discordgo.Message{ChannelID: channelID, Content: content}, m.sendErr
}

func (m *mockDiscordSession) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.embeds = append(m.embeds, embed)
	return &discordgo.Message{ChannelID: channelID}, m.sendErr
}

func (m *mockDiscordSession) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if m.guildFunc != nil {
		return m.guildFunc(guildID)
	}
	return &discordgo.Guild{ID: guildID, OwnerID: "owner-1"}, nil
}

func (m *mockDiscordSession) UserChannelPermissions(userID, channelID string, fetchOptions ...discordgo.RequestOption) (int64, error) {
	if m.permissionsFunc != nil {
		return m.permissionsFunc(userID, channelID)
	}
	return 0, nil
}

func (m *mockDiscordSession) lastMessage() string {
	if len(m.messages) == 0 {
		return ""
	}
	return m.messages[len(m.messages)-1]
}

func (m *mockDiscordSession) lastEmbed() *discordgo.MessageEmbed {
	if len(m.embeds) == 0 {
		return nil
	}
	return m.embeds[len(m.embeds)-1]
}

func (m *mockDiscordSession) replies() int {
	return len(m.messages) + len(m.embeds)
}

func newTestHandler(storage *mockStorage) (*BotHandler, *services.StatusCache, *mockPublisher) {
	cache := services.NewStatusCache()
	pub := &mockPublisher{}
	return &BotHandler{
		Service: services.NewStatusService(cache, storage, pub, &mockQuerier{}),
	}, cache, pub
}

// seedStatuses adds one status per address to channel c1.
func seedStatuses(cache *services.StatusCache, addresses ...string) []*domain.Status {
	out := make([]*domain.Status, 0, len(addresses))
	base := time.Now()
	for i, addr := range addresses {
		st := domain.NewStatus("g1", "c1", "minecraft", addr)
		st.MessageID = "m-" + addr
		st.CreatedAt = base.Add(time.Duration(i) * time.Second)
		cache.Add(st)
		out = append(out, st)
	}
	return out
}

func commandContext(session DiscordSession, args ...string) *CommandContext {
	return &CommandContext{
		Session: session,
		Message: &discordgo.Message{
			ChannelID: "c1",
			GuildID:   "g1",
			Author:    &discordgo.User{ID: "user-1"},
		},
		Member:            &discordgo.Member{},
		MemberPermissions: discordgo.PermissionAdministrator,
		Args:              args,
		Prefix:            "!",
	}
}
