package updater

import (
	"context"
	"log/slog"
	"time"

	"gamestatus-bot/internal/adapters/metrics"
	"gamestatus-bot/internal/config"
	"gamestatus-bot/internal/core/domain"
	"gamestatus-bot/internal/core/ports"
	"gamestatus-bot/internal/core/services"
)

type Dependencies struct {
	Config    *config.Config
	Cache     *services.StatusCache
	Storage   ports.StatusRepository
	Querier   ports.ServerQuerier
	Publisher ports.StatusPublisher
}

// Service periodically queries every cached status and refreshes its message.
type Service struct {
	config    *config.Config
	cache     *services.StatusCache
	storage   ports.StatusRepository
	querier   ports.ServerQuerier
	publisher ports.StatusPublisher
}

func NewService(deps Dependencies) *Service {
	return &Service{
		config:    deps.Config,
		cache:     deps.Cache,
		storage:   deps.Storage,
		querier:   deps.Querier,
		publisher: deps.Publisher,
	}
}

func (s *Service) Start(ctx context.Context) {
	ticker := time.NewTicker(s.config.UpdateInterval)
	defer ticker.Stop()

	slog.Info("Status updater started", "interval", s.config.UpdateInterval, "workers", s.config.WorkerPoolSize)

	s.runCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Status updater stopped")
			return
		case <-ticker.C:
			s.runCycle(ctx)
		}
	}
}

func (s *Service) runCycle(ctx context.Context) {
	statuses := s.collectStatuses()
	if len(statuses) == 0 {
		return
	}

	start := time.Now()
	s.processAll(ctx, statuses)
	elapsed := time.Since(start)

	metrics.UpdateCycleDuration.Observe(elapsed.Seconds())
	slog.Info("Finished status update cycle", "statuses", len(statuses), "duration", elapsed)
}

func (s *Service) collectStatuses() []*domain.Status {
	var statuses []*domain.Status
	for _, channelID := range s.cache.Channels() {
		statuses = append(statuses, s.cache.Snapshot(channelID)...)
	}
	return statuses
}
