package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gamestatus-bot/internal/adapters/metrics"
	"gamestatus-bot/internal/core/domain"
	"gamestatus-bot/internal/core/ports"
)

var ErrUnsupportedGame = errors.New("unsupported game")

type StatusService struct {
	cache     *StatusCache
	repo      ports.StatusRepository
	publisher ports.StatusPublisher
	querier   ports.ServerQuerier
}

func NewStatusService(cache *StatusCache, repo ports.StatusRepository, publisher ports.StatusPublisher, querier ports.ServerQuerier) *StatusService {
	return &StatusService{
		cache:     cache,
		repo:      repo,
		publisher: publisher,
		querier:   querier,
	}
}

// Load replaces the cache with every persisted status.
func (s *StatusService) Load(ctx context.Context) (int, error) {
	statuses, err := s.repo.GetAllStatuses(ctx)
	if err != nil {
		return 0, fmt.Errorf("load statuses: %w", err)
	}

	s.cache.Replace(statuses)
	metrics.TrackedStatuses.Set(float64(len(statuses)))
	return len(statuses), nil
}

func (s *StatusService) List(channelID string) []*domain.Status {
	return s.cache.Snapshot(channelID)
}

func (s *StatusService) Get(channelID string, index int) (*domain.Status, error) {
	var out *domain.Status
	err := s.cache.WithChannel(channelID, func(list *StatusList) error {
		st, err := list.At(index)
		if err != nil {
			return err
		}
		out = st.Clone()
		return nil
	})
	return out, err
}

// SetOption sets an option on the status at index and waits for it to be persisted.
func (s *StatusService) SetOption(ctx context.Context, channelID string, index int, name, value string) (*domain.Status, error) {
	return s.mutateOptions(ctx, channelID, index, func(st *domain.Status) error {
		return st.SetOption(name, value)
	})
}

// ResetOption restores an option to its default and waits for it to be persisted.
func (s *StatusService) ResetOption(ctx context.Context, channelID string, index int, name string) (*domain.Status, error) {
	return s.mutateOptions(ctx, channelID, index, func(st *domain.Status) error {
		return st.DeleteOption(name)
	})
}

func (s *StatusService) mutateOptions(ctx context.Context, channelID string, index int, mutate func(*domain.Status) error) (*domain.Status, error) {
	var out *domain.Status
	err := s.cache.WithChannel(channelID, func(list *StatusList) error {
		st, err := list.At(index)
		if err != nil {
			return err
		}

		previous := st.Options()
		if err := mutate(st); err != nil {
			return err
		}

		if err := s.repo.SaveStatusOptions(ctx, st.ID, st.Options()); err != nil {
			st.LoadOptions(previous)
			return fmt.Errorf("save status options: %w", err)
		}

		out = st.Clone()
		return nil
	})
	return out, err
}

// Create starts monitoring a server in a channel and posts its first status message.
func (s *StatusService) Create(ctx context.Context, guildID, channelID, game, address string) (*domain.Status, error) {
	game = strings.ToLower(game)
	if !s.querier.SupportsGame(game) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGame, game)
	}

	st := domain.NewStatus(guildID, channelID, game, address)

	info, err := s.querier.Query(ctx, game, address)
	if err != nil {
		slog.Warn("Initial server query failed", "game", game, "address", address, "error", err)
		info = nil
	}
	applyServerInfo(st, info)

	messageID, err := s.publisher.PublishStatus(st, info)
	if err != nil {
		return nil, fmt.Errorf("publish status: %w", err)
	}
	st.MessageID = messageID

	if err := s.repo.SaveStatus(ctx, st); err != nil {
		if rmErr := s.publisher.RemoveStatus(st); rmErr != nil {
			slog.Warn("Failed to remove orphaned status message", "message_id", messageID, "error", rmErr)
		}
		return nil, fmt.Errorf("save status: %w", err)
	}

	s.cache.Add(st)
	metrics.TrackedStatuses.Inc()
	slog.Info("Status created", "status_id", st.ID, "channel_id", channelID, "game", game, "address", address)

	return st.Clone(), nil
}

// Remove stops monitoring the status at index and deletes its message.
func (s *StatusService) Remove(ctx context.Context, channelID string, index int) (*domain.Status, error) {
	var removed *domain.Status
	err := s.cache.WithChannel(channelID, func(list *StatusList) error {
		st, err := list.At(index)
		if err != nil {
			return err
		}

		if err := s.repo.DeleteStatus(ctx, st.ID); err != nil {
			return fmt.Errorf("delete status: %w", err)
		}

		removed = list.RemoveAt(index)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.TrackedStatuses.Dec()
	if err := s.publisher.RemoveStatus(removed); err != nil {
		slog.Warn("Failed to delete status message", "status_id", removed.ID, "message_id", removed.MessageID, "error", err)
	}
	slog.Info("Status removed", "status_id", removed.ID, "channel_id", channelID)

	return removed, nil
}

func applyServerInfo(st *domain.Status, info *domain.ServerInfo) {
	if info == nil || !info.Online {
		return
	}
	if info.Name != "" {
		st.Name = info.Name
	}
	st.LastSeen = info.QueriedAt
}
