package domain

import (
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

const messageLinkFormat = "https://discord.com/channels/%s/%s/%s"

// Status is one monitored game server and the live message showing it.
type Status struct {
	ID        string
	GuildID   string
	ChannelID string
	MessageID string
	Game      string
	Address   string
	Name      string
	CreatedAt time.Time
	LastSeen  time.Time

	options map[string]any
}

func NewStatus(guildID, channelID, game, address string) *Status {
	return &Status{
		ID:        uuid.NewString(),
		GuildID:   guildID,
		ChannelID: channelID,
		Game:      game,
		Address:   address,
		Name:      address,
		CreatedAt: time.Now(),
		options:   make(map[string]any),
	}
}

// Options returns a copy of the options explicitly set on the status.
func (s *Status) Options() map[string]any {
	return maps.Clone(s.nonNilOptions())
}

// Option returns the effective value of a known option, falling back to its default.
func (s *Status) Option(name string) any {
	if v, ok := s.options[name]; ok {
		return v
	}
	if spec, ok := LookupOption(name); ok {
		return spec.Default
	}
	return nil
}

// SetOption converts raw to the option's type and stores it.
func (s *Status) SetOption(name, raw string) error {
	spec, ok := LookupOption(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}

	v, err := spec.Kind.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOptionValue, name, err)
	}

	s.nonNilOptions()[name] = v
	return nil
}

// DeleteOption resets an option to its default.
func (s *Status) DeleteOption(name string) error {
	if _, ok := LookupOption(name); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	delete(s.options, name)
	return nil
}

// LoadOptions replaces the overrides with stored values. Unknown names and values that
// no longer fit their option type are dropped.
func (s *Status) LoadOptions(stored map[string]any) []string {
	s.options = make(map[string]any, len(stored))

	var dropped []string
	for name, v := range stored {
		spec, ok := LookupOption(name)
		if !ok {
			dropped = append(dropped, name)
			continue
		}
		nv, err := spec.Kind.Normalize(v)
		if err != nil {
			dropped = append(dropped, name)
			continue
		}
		s.options[name] = nv
	}
	return dropped
}

func (s *Status) MessageLink() string {
	guild := s.GuildID
	if guild == "" {
		guild = "@me"
	}
	return fmt.Sprintf(messageLinkFormat, guild, s.ChannelID, s.MessageID)
}

// Clone returns a deep copy safe to read outside the cache lock.
func (s *Status) Clone() *Status {
	c := *s
	c.options = make(map[string]any, len(s.options))
	for k, v := range s.options {
		if list, ok := v.([]string); ok {
			v = append([]string(nil), list...)
		}
		c.options[k] = v
	}
	return &c
}

func (s *Status) nonNilOptions() map[string]any {
	if s.options == nil {
		s.options = make(map[string]any)
	}
	return s.options
}

// ServerInfo is the result of one query against a game server.
type ServerInfo struct {
	Online     bool
	Name       string
	Game       string
	Map        string
	Version    string
	MOTD       string
	Connect    string
	NumPlayers int
	NumBots    int
	MaxPlayers int
	Ping       time.Duration
	Players    []Player
	QueriedAt  time.Time
}

type Player struct {
	Name string
	Bot  bool
}

// ValidPlayers counts players that reported a name and are not bots.
func (i *ServerInfo) ValidPlayers() int {
	n := 0
	for _, p := range i.Players {
		if p.Name != "" && !p.Bot {
			n++
		}
	}
	return n
}
