package gamequery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamestatus-bot/internal/adapters/gamequery/api"
)

func newTestAdapter(t *testing.T, body string) *Adapter {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewAdapter(api.NewTestClient(server.URL))
}

func TestAdapter_SupportsGame(t *testing.T) {
	adapter := NewAdapter(nil)

	for _, game := range []string{"minecraft", "Minecraft", "bedrock"} {
		if !adapter.SupportsGame(game) {
			t.Errorf("expected %s supported", game)
		}
	}
	for _, game := range []string{"", "quake", "csgo"} {
		if adapter.SupportsGame(game) {
			t.Errorf("expected %s unsupported", game)
		}
	}
	for _, game := range SupportedGames() {
		if !adapter.SupportsGame(game) {
			t.Errorf("SupportedGames lists %s but it is rejected", game)
		}
	}
}

func TestAdapter_Query_Online(t *testing.T) {
	adapter := newTestAdapter(t, `{
		"online": true,
		"hostname": "mc.example.com",
		"port": 25565,
		"version": "1.21.1",
		"map": {"clean": "world"},
		"motd": {"html": ["<span>Survival &amp; Friends</span>", "  second line  ", ""]},
		"players": {"online": 3, "max": 20, "list": [{"name": "alice"}, {"name": "bob"}]}
	}`)

	info, err := adapter.Query(context.Background(), "minecraft", "mc.example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !info.Online || info.Game != "minecraft" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Name != "Survival & Friends" {
		t.Errorf("expected name from MOTD, got '%s'", info.Name)
	}
	if info.MOTD != "Survival & Friends\nsecond line" {
		t.Errorf("unexpected MOTD %q", info.MOTD)
	}
	if info.Connect != "mc.example.com" {
		t.Errorf("default port must be omitted, got '%s'", info.Connect)
	}
	if info.Map != "world" || info.Version != "1.21.1" {
		t.Errorf("unexpected map/version %+v", info)
	}
	if info.NumPlayers != 3 || info.MaxPlayers != 20 || len(info.Players) != 2 {
		t.Errorf("unexpected players %+v", info)
	}
	if info.QueriedAt.IsZero() {
		t.Error("expected QueriedAt to be set")
	}
}

func TestAdapter_Query_Offline(t *testing.T) {
	adapter := newTestAdapter(t, `{"online": false, "hostname": "pe.example.com", "port": 19133}`)

	info, err := adapter.Query(context.Background(), "bedrock", "pe.example.com:19133")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if info.Online || info.Name != "" {
		t.Errorf("unexpected info %+v", info)
	}
	if info.Connect != "pe.example.com:19133" {
		t.Errorf("expected non-default port kept, got '%s'", info.Connect)
	}
}

func TestAdapter_Query_UnsupportedGame(t *testing.T) {
	adapter := NewAdapter(nil)

	if _, err := adapter.Query(context.Background(), "quake", "host"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAdapter_Query_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewAdapter(api.NewTestClient(server.URL))
	if _, err := adapter.Query(context.Background(), "minecraft", "host"); err == nil {
		t.Fatal("expected error")
	}
}

func TestMapStatus_NameFallsBackToHostname(t *testing.T) {
	info := mapStatus("minecraft", "mc.example.com", &api.StatusResponse{
		Online:   true,
		Hostname: "mc.example.com",
		MOTD:     api.Lines{Clean: []string{""}},
	})

	if info.Name != "mc.example.com" {
		t.Errorf("expected hostname fallback, got '%s'", info.Name)
	}
}

func TestConnectAddress(t *testing.T) {
	tests := []struct {
		name     string
		game     string
		address  string
		resp     api.StatusResponse
		expected string
	}{
		{"hostname default port", "minecraft", "x", api.StatusResponse{Hostname: "mc.example.com", Port: 25565}, "mc.example.com"},
		{"hostname custom port", "minecraft", "x", api.StatusResponse{Hostname: "mc.example.com", Port: 25570}, "mc.example.com:25570"},
		{"ip only", "bedrock", "x", api.StatusResponse{IP: "203.0.113.7", Port: 19132}, "203.0.113.7"},
		{"ipv6 custom port", "minecraft", "x", api.StatusResponse{IP: "2001:db8::1", Port: 25570}, "[2001:db8::1]:25570"},
		{"nothing known", "minecraft", "typed.example.com", api.StatusResponse{}, "typed.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := connectAddress(tt.game, tt.address, &tt.resp); got != tt.expected {
				t.Errorf("expected '%s', got '%s'", tt.expected, got)
			}
		})
	}
}
