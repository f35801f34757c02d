package main

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"gamestatus-bot/internal/config"
	"gamestatus-bot/internal/core/ports"
)

type mockStore struct {
	ports.StatusRepository
	closed bool
}

func (m *mockStore) Close() {
	m.closed = true
}

func TestApp_Shutdown(t *testing.T) {
	cfg := &config.Config{}
	store := &mockStore{}

	updaterCtx, updaterCancel := context.WithCancel(context.Background())
	updaterDone := make(chan struct{})
	go func() {
		<-updaterCtx.Done()
		close(updaterDone)
	}()

	metricsServer := &http.Server{Addr: "127.0.0.1:0"}
	go func() {
		_ = metricsServer.ListenAndServe()
	}()
	time.Sleep(10 * time.Millisecond)

	app := &App{
		config:        cfg,
		store:         store,
		metricsServer: metricsServer,
		updaterCtx:    updaterCtx,
		updaterCancel: updaterCancel,
		updaterDone:   updaterDone,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	if !store.closed {
		t.Error("Store was not closed")
	}

	select {
	case <-updaterDone:
	default:
		t.Error("Updater was not stopped")
	}
}

func TestApp_Shutdown_UpdaterStuck(t *testing.T) {
	store := &mockStore{}
	_, updaterCancel := context.WithCancel(context.Background())

	app := &App{
		config:        &config.Config{},
		store:         store,
		updaterCancel: updaterCancel,
		updaterDone:   make(chan struct{}),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := app.Shutdown(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected deadline error, got %v", err)
	}
	if !store.closed {
		t.Error("Store must be closed even when the updater does not stop")
	}
}

func TestApp_Shutdown_NilComponents(t *testing.T) {
	app := &App{
		config: &config.Config{},
	}

	ctx := context.Background()
	if err := app.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown failed with nil components: %v", err)
	}
}

func TestStartMetricsServer(t *testing.T) {
	app := &App{
		config: &config.Config{MetricsAddr: "127.0.0.1:0"},
	}

	app.startMetricsServer()

	if app.metricsServer == nil {
		t.Fatal("Metrics server not initialized")
	}
	if app.metricsServer.Addr != "127.0.0.1:0" {
		t.Errorf("Expected configured address, got %s", app.metricsServer.Addr)
	}

	_ = app.metricsServer.Close()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"debug", "DEBUG"},
		{"WARN", "WARN"},
		{"warning", "WARN"},
		{" error ", "ERROR"},
		{"info", "INFO"},
		{"", "INFO"},
		{"verbose", "INFO"},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in).String(); got != tt.expected {
			t.Errorf("parseLevel(%q): expected %s, got %s", tt.in, tt.expected, got)
		}
	}
}
