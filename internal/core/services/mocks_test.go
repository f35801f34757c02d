package services

import (
	"context"
	"sync"
	"time"

	"gamestatus-bot/internal/core/domain"
)

type mockRepository struct {
	mu sync.Mutex

	saveStatusFunc          func(ctx context.Context, status *domain.Status) error
	getAllStatusesFunc      func(ctx context.Context) ([]*domain.Status, error)
	deleteStatusFunc        func(ctx context.Context, statusID string) error
	saveStatusOptionsFunc   func(ctx context.Context, statusID string, options map[string]any) error
	updateStatusDisplayFunc func(ctx context.Context, statusID, messageID, name string, lastSeen time.Time) error

	savedOptions map[string]map[string]any
}

func (m *mockRepository) SaveStatus(ctx context.Context, status *domain.Status) error {
	if m.saveStatusFunc != nil {
		return m.saveStatusFunc(ctx, status)
	}
	return nil
}

func (m *mockRepository) GetAllStatuses(ctx context.Context) ([]*domain.Status, error) {
	if m.getAllStatusesFunc != nil {
		return m.getAllStatusesFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepository) DeleteStatus(ctx context.Context, statusID string) error {
	if m.deleteStatusFunc != nil {
		return m.deleteStatusFunc(ctx, statusID)
	}
	return nil
}

func (m *mockRepository) SaveStatusOptions(ctx context.Context, statusID string, options map[string]any) error {
	if m.saveStatusOptionsFunc != nil {
		return m.saveStatusOptionsFunc(ctx, statusID, options)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.savedOptions == nil {
		m.savedOptions = make(map[string]map[string]any)
	}
	m.savedOptions[statusID] = options
	return nil
}

func (m *mockRepository) UpdateStatusDisplay(ctx context.Context, statusID, messageID, name string, lastSeen time.Time) error {
	if m.updateStatusDisplayFunc != nil {
		return m.updateStatusDisplayFunc(ctx, statusID, messageID, name, lastSeen)
	}
	return nil
}

func (m *mockRepository) Close() {}

type mockPublisher struct {
	publishStatusFunc func(status *domain.Status, info *domain.ServerInfo) (string, error)
	removeStatusFunc  func(status *domain.Status) error

	removed []string
}

func (m *mockPublisher) PublishStatus(status *domain.Status, info *domain.ServerInfo) (string, error) {
	if m.publishStatusFunc != nil {
		return m.publishStatusFunc(status, info)
	}
	return "msg-1", nil
}

func (m *mockPublisher) RemoveStatus(status *domain.Status) error {
	m.removed = append(m.removed, status.ID)
	if m.removeStatusFunc != nil {
		return m.removeStatusFunc(status)
	}
	return nil
}

type mockQuerier struct {
	queryFunc func(ctx context.Context, game, address string) (*domain.ServerInfo, error)
	games     []string
}

func (m *mockQuerier) Query(ctx context.Context, game, address string) (*domain.ServerInfo, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, game, address)
	}
	return &domain.ServerInfo{Online: true, QueriedAt: time.Now()}, nil
}

func (m *mockQuerier) SupportsGame(game string) bool {
	if m.games == nil {
		return game == "minecraft"
	}
	for _, g := range m.games {
		if g == game {
			return true
		}
	}
	return false
}

func seedChannel(cache *StatusCache, channelID string, addresses ...string) []*domain.Status {
	var out []*domain.Status
	for _, addr := range addresses {
		s := domain.NewStatus("guild-1", channelID, "minecraft", addr)
		cache.Add(s)
		out = append(out, s)
	}
	return out
}
