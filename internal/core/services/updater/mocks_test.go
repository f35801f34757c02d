package updater

import (
	"context"
	"sync"
	"time"

	"gamestatus-bot/internal/core/domain"
)

type displayUpdate struct {
	statusID  string
	messageID string
	name      string
	lastSeen  time.Time
}

type mockStorage struct {
	mu      sync.Mutex
	updates []displayUpdate
	err     error
}

func (m *mockStorage) SaveStatus(ctx context.Context, status *domain.Status) error { return nil }

func (m *mockStorage) GetAllStatuses(ctx context.Context) ([]*domain.Status, error) {
	return nil, nil
}

func (m *mockStorage) DeleteStatus(ctx context.Context, statusID string) error { return nil }

func (m *mockStorage) SaveStatusOptions(ctx context.Context, statusID string, options map[string]any) error {
	return nil
}

func (m *mockStorage) UpdateStatusDisplay(ctx context.Context, statusID, messageID, name string, lastSeen time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updates = append(m.updates, displayUpdate{statusID, messageID, name, lastSeen})
	return m.err
}

func (m *mockStorage) Close() {}

type mockQuerier struct {
	queryFunc func(ctx context.Context, game, address string) (*domain.ServerInfo, error)
}

func (m *mockQuerier) Query(ctx context.Context, game, address string) (*domain.ServerInfo, error) {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, game, address)
	}
	return &domain.ServerInfo{Online: true, QueriedAt: time.Now()}, nil
}

func (m *mockQuerier) SupportsGame(game string) bool { return true }

type publishCall struct {
	status *domain.Status
	info   *domain.ServerInfo
}

type mockPublisher struct {
	mu                sync.Mutex
	calls             []publishCall
	removed           []string
	publishStatusFunc func(status *domain.Status, info *domain.ServerInfo) (string, error)
}

func (m *mockPublisher) PublishStatus(status *domain.Status, info *domain.ServerInfo) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, publishCall{status, info})
	m.mu.Unlock()
	if m.publishStatusFunc != nil {
		return m.publishStatusFunc(status, info)
	}
	return status.MessageID, nil
}

func (m *mockPublisher) RemoveStatus(status *domain.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.removed = append(m.removed, status.MessageID)
	return nil
}

func (m *mockPublisher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}
