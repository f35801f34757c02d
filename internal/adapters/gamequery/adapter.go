package gamequery

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"gamestatus-bot/internal/adapters/gamequery/api"
	"gamestatus-bot/internal/core/domain"
)

const (
	GameMinecraft = "minecraft"
	GameBedrock   = "bedrock"
)

var defaultPorts = map[string]int{
	GameMinecraft: 25565,
	GameBedrock:   19132,
}

// Adapter answers server queries through the mcsrvstat.us status API.
type Adapter struct {
	client *api.Client
}

func NewAdapter(client *api.Client) *Adapter {
	return &Adapter{client: client}
}

func (a *Adapter) SupportsGame(game string) bool {
	_, ok := defaultPorts[strings.ToLower(game)]
	return ok
}

// SupportedGames lists the games accepted by SupportsGame.
func SupportedGames() []string {
	return []string{GameMinecraft, GameBedrock}
}

func (a *Adapter) Query(ctx context.Context, game, address string) (*domain.ServerInfo, error) {
	game = strings.ToLower(game)

	var (
		resp *api.StatusResponse
		err  error
	)
	switch game {
	case GameMinecraft:
		resp, err = a.client.GetJavaStatus(ctx, address)
	case GameBedrock:
		resp, err = a.client.GetBedrockStatus(ctx, address)
	default:
		return nil, fmt.Errorf("query %s: unsupported game", game)
	}
	if err != nil {
		return nil, err
	}

	return mapStatus(game, address, resp), nil
}

func mapStatus(game, address string, resp *api.StatusResponse) *domain.ServerInfo {
	info := &domain.ServerInfo{
		Online:    resp.Online,
		Game:      game,
		Connect:   connectAddress(game, address, resp),
		QueriedAt: time.Now(),
	}
	if !resp.Online {
		return info
	}

	motd := motdLines(resp.MOTD)
	info.MOTD = strings.Join(motd, "\n")
	if len(motd) > 0 {
		info.Name = motd[0]
	}
	if info.Name == "" {
		info.Name = resp.Hostname
	}

	info.Map = resp.Map.Clean
	if info.Map == "" {
		info.Map = HTMLText(resp.Map.HTML)
	}
	info.Version = resp.Version
	info.NumPlayers = resp.Players.Online
	info.MaxPlayers = resp.Players.Max

	for _, p := range resp.Players.List {
		info.Players = append(info.Players, domain.Player{Name: p.Name})
	}

	return info
}

// connectAddress is what players type to join: the hostname, with the port only when
// it differs from the game's default.
func connectAddress(game, address string, resp *api.StatusResponse) string {
	host := resp.Hostname
	if host == "" {
		host = resp.IP
	}
	if host == "" {
		return address
	}
	if resp.Port == 0 || resp.Port == defaultPorts[game] {
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(resp.Port))
}

func motdLines(motd api.Lines) []string {
	var lines []string
	if len(motd.HTML) > 0 {
		for _, l := range motd.HTML {
			lines = append(lines, HTMLText(l))
		}
	} else {
		for _, l := range motd.Clean {
			lines = append(lines, strings.TrimSpace(l))
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
