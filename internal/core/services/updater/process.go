package updater

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"gamestatus-bot/internal/adapters/metrics"
	"gamestatus-bot/internal/core/domain"
	"gamestatus-bot/internal/core/services"
)

func (s *Service) processAll(ctx context.Context, statuses []*domain.Status) {
	workers := min(max(s.config.WorkerPoolSize, 1), len(statuses))
	jobs := make(chan *domain.Status)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for st := range jobs {
				s.updateStatus(ctx, st)
			}
		}()
	}

dispatch:
	for _, st := range statuses {
		select {
		case <-ctx.Done():
			break dispatch
		case jobs <- st:
		}
	}
	close(jobs)
	wg.Wait()
}

// updateStatus refreshes one status. snapshot is a copy taken before the cycle; all
// writes go back to the cache by ID.
func (s *Service) updateStatus(ctx context.Context, snapshot *domain.Status) {
	info := s.query(ctx, snapshot)

	var current *domain.Status
	err := s.cache.Update(snapshot.ChannelID, snapshot.ID, func(live *domain.Status) error {
		if info.Online {
			if info.Name != "" {
				live.Name = info.Name
			}
			live.LastSeen = info.QueriedAt
		}
		current = live.Clone()
		return nil
	})
	if errors.Is(err, services.ErrStatusNotFound) {
		slog.Debug("Status removed before refresh", "status_id", snapshot.ID)
		return
	}

	messageID, err := s.publisher.PublishStatus(current, info)
	if err != nil {
		slog.Error("Failed to publish status", "status_id", current.ID, "channel_id", current.ChannelID, "error", err)
		metrics.StatusUpdates.WithLabelValues("failure").Inc()
		return
	}

	if messageID != current.MessageID {
		err := s.cache.Update(current.ChannelID, current.ID, func(live *domain.Status) error {
			live.MessageID = messageID
			return nil
		})
		if errors.Is(err, services.ErrStatusNotFound) {
			// Removed while we were reposting; drop the fresh message too.
			current.MessageID = messageID
			if rmErr := s.publisher.RemoveStatus(current); rmErr != nil {
				slog.Warn("Failed to remove reposted message", "message_id", messageID, "error", rmErr)
			}
			return
		}
		slog.Info("Status message reposted", "status_id", current.ID, "message_id", messageID)
		current.MessageID = messageID
	}

	if current.MessageID != snapshot.MessageID || current.Name != snapshot.Name || !current.LastSeen.Equal(snapshot.LastSeen) {
		if err := s.storage.UpdateStatusDisplay(ctx, current.ID, current.MessageID, current.Name, current.LastSeen); err != nil {
			slog.Error("Failed to persist status display", "status_id", current.ID, "error", err)
		}
	}

	if info.Online {
		metrics.StatusUpdates.WithLabelValues("online").Inc()
	} else {
		metrics.StatusUpdates.WithLabelValues("offline").Inc()
	}
}

func (s *Service) query(ctx context.Context, st *domain.Status) *domain.ServerInfo {
	qctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	info, err := s.querier.Query(qctx, st.Game, st.Address)
	if err != nil {
		slog.Warn("Server query failed", "status_id", st.ID, "game", st.Game, "address", st.Address, "error", err)
		return &domain.ServerInfo{Online: false, QueriedAt: time.Now()}
	}
	if info == nil {
		return &domain.ServerInfo{Online: false, QueriedAt: time.Now()}
	}
	return info
}
