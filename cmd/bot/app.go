package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gamestatus-bot/internal/adapters/discord"
	"gamestatus-bot/internal/adapters/discord/commands"
	"gamestatus-bot/internal/adapters/gamequery"
	"gamestatus-bot/internal/adapters/gamequery/api"
	"gamestatus-bot/internal/adapters/storage/postgres"
	"gamestatus-bot/internal/config"
	"gamestatus-bot/internal/core/ports"
	"gamestatus-bot/internal/core/services"
	"gamestatus-bot/internal/core/services/updater"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	config        *config.Config
	store         ports.StatusRepository
	discord       *discordgo.Session
	statuses      *services.StatusService
	updater       *updater.Service
	router        *commands.Router
	metricsServer *http.Server
	updaterCtx    context.Context
	updaterCancel context.CancelFunc
	updaterDone   chan struct{}
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := postgres.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to storage: %w", err)
	}

	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}

	session, err := discord.NewSession(cfg)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	publisher := discord.NewAdapter(session)
	querier := gamequery.NewAdapter(api.NewClient(cfg.QueryRateLimit))
	cache := services.NewStatusCache()
	statusService := services.NewStatusService(cache, store, publisher, querier)

	count, err := statusService.Load(ctx)
	if err != nil {
		store.Close()
		return nil, err
	}
	slog.Info("Loaded statuses", "count", count)

	updaterService := updater.NewService(updater.Dependencies{
		Config:    cfg,
		Cache:     cache,
		Storage:   store,
		Querier:   querier,
		Publisher: publisher,
	})

	handler := &commands.BotHandler{Service: statusService}
	router := commands.NewRouter(cfg.Prefix, cfg.BotOwnerID)
	commands.RegisterCommands(router, handler.Commands())
	commands.RegisterCommands(router, []commands.Command{commands.HelpCommand(router)})

	session.AddHandler(commands.ReadyHandler)
	session.AddHandler(router.HandleFunc())

	return &App{
		config:   cfg,
		store:    store,
		discord:  session,
		statuses: statusService,
		updater:  updaterService,
		router:   router,
	}, nil
}

func (a *App) Run() error {
	a.startMetricsServer()

	if err := a.discord.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}

	a.startUpdater()
	return nil
}

func (a *App) startUpdater() {
	a.updaterCtx, a.updaterCancel = context.WithCancel(context.Background())
	a.updaterDone = make(chan struct{})

	go func() {
		defer close(a.updaterDone)
		a.updater.Start(a.updaterCtx)
	}()
}

func (a *App) startMetricsServer() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	a.metricsServer = &http.Server{
		Addr:              a.config.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func(server *http.Server) {
		slog.Info("Metrics server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Metrics server failed", "error", err)
		}
	}(a.metricsServer)
}

// Shutdown stops the updater before closing the session and the pool.
func (a *App) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down...")

	var errs []error

	if a.updaterCancel != nil {
		a.updaterCancel()
	}
	if a.updaterDone != nil {
		select {
		case <-a.updaterDone:
		case <-ctx.Done():
			errs = append(errs, fmt.Errorf("wait for updater: %w", ctx.Err()))
		}
	}

	if a.discord != nil {
		if err := a.discord.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close discord session: %w", err))
		}
	}

	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown metrics server: %w", err))
		}
	}

	if a.store != nil {
		a.store.Close()
	}

	return errors.Join(errs...)
}
