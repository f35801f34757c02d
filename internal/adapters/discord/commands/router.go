package commands

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"gamestatus-bot/internal/adapters/discord/formatting"
	"gamestatus-bot/internal/adapters/metrics"

	"github.com/bwmarrin/discordgo"
)

const commandTimeout = 30 * time.Second

// ErrPermissionDenied is returned by handlers whose check failed. The invoker has
// already been told.
var ErrPermissionDenied = errors.New("permission denied")

type CommandHandler func(ctx context.Context, c *CommandContext) error

type Command struct {
	Name    string
	Summary string
	// Help may contain {prefix}, replaced with the configured command prefix.
	Help    string
	Check   Check
	Handler CommandHandler
}

type Router struct {
	prefix     string
	botOwnerID string
	routes     map[string]Command
}

func NewRouter(prefix, botOwnerID string) *Router {
	slog.Info("Router initialized", "prefix", prefix)
	return &Router{
		prefix:     prefix,
		botOwnerID: botOwnerID,
		routes:     make(map[string]Command),
	}
}

func (r *Router) Register(cmd Command) {
	if cmd.Check != nil {
		cmd.Handler = WithCheck(cmd.Check)(cmd.Handler)
	}
	r.routes[strings.ToLower(cmd.Name)] = cmd
}

// Commands returns the registered commands sorted by name.
func (r *Router) Commands() []Command {
	cmds := make([]Command, 0, len(r.routes))
	for _, cmd := range r.routes {
		cmds = append(cmds, cmd)
	}
	slices.SortFunc(cmds, func(a, b Command) int {
		return strings.Compare(a.Name, b.Name)
	})
	return cmds
}

func (r *Router) Lookup(name string) (Command, bool) {
	cmd, ok := r.routes[strings.ToLower(name)]
	return cmd, ok
}

func (r *Router) Handle(s RouterSession, m *discordgo.MessageCreate) {
	if m.Message == nil || m.Author == nil || m.Author.Bot {
		return
	}
	if !strings.HasPrefix(m.Content, r.prefix) {
		return
	}

	tokens := strings.Split(strings.TrimPrefix(m.Content, r.prefix), " ")
	name := strings.ToLower(tokens[0])

	cmd, ok := r.routes[name]
	if !ok {
		return
	}

	slog.Info("Router received command", "name", name, "user_id", m.Author.ID, "channel_id", m.ChannelID, "guild_id", m.GuildID)

	c := r.buildContext(s, m.Message, name, tokens[1:])

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	err := cmd.Handler(ctx, c)
	switch {
	case err == nil:
		metrics.CommandsHandled.WithLabelValues(name, "success").Inc()
	case errors.Is(err, ErrPermissionDenied):
		metrics.CommandsHandled.WithLabelValues(name, "denied").Inc()
	default:
		slog.Error("Command failed", "name", name, "channel_id", m.ChannelID, "error", err)
		metrics.CommandsHandled.WithLabelValues(name, "error").Inc()
		if replyErr := c.Reply(formatting.MsgCommandError); replyErr != nil {
			slog.Error("Failed to send error reply", "channel_id", m.ChannelID, "error", replyErr)
		}
	}
}

func (r *Router) buildContext(s RouterSession, m *discordgo.Message, name string, args []string) *CommandContext {
	c := &CommandContext{
		Session:    s,
		Message:    m,
		Name:       name,
		Args:       args,
		Prefix:     r.prefix,
		BotOwnerID: r.botOwnerID,
	}

	if m.GuildID == "" {
		return c
	}

	guild, err := s.Guild(m.GuildID)
	if err != nil {
		slog.Warn("Failed to resolve guild", "guild_id", m.GuildID, "error", err)
	} else {
		c.Guild = guild
	}

	c.Member = m.Member
	if c.Member != nil {
		perms, err := s.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			slog.Warn("Failed to resolve member permissions", "user_id", m.Author.ID, "channel_id", m.ChannelID, "error", err)
		} else {
			c.MemberPermissions = perms
		}
	}

	return c
}

func (r *Router) HandleFunc() func(*discordgo.Session, *discordgo.MessageCreate) {
	return func(s *discordgo.Session, m *discordgo.MessageCreate) {
		r.Handle(stateSession{s}, m)
	}
}

// stateSession serves guilds from the gateway state before falling back to REST.
type stateSession struct {
	*discordgo.Session
}

func (s stateSession) Guild(guildID string, options ...discordgo.RequestOption) (*discordgo.Guild, error) {
	if s.State != nil {
		if g, err := s.State.Guild(guildID); err == nil {
			return g, nil
		}
	}
	return s.Session.Guild(guildID, options...)
}
