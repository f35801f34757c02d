package ports

import (
	"context"
	"time"

	"gamestatus-bot/internal/core/domain"
)

type StatusRepository interface {
	SaveStatus(ctx context.Context, status *domain.Status) error
	GetAllStatuses(ctx context.Context) ([]*domain.Status, error)
	DeleteStatus(ctx context.Context, statusID string) error
	SaveStatusOptions(ctx context.Context, statusID string, options map[string]any) error
	UpdateStatusDisplay(ctx context.Context, statusID, messageID, name string, lastSeen time.Time) error
	Close()
}

type ServerQuerier interface {
	Query(ctx context.Context, game, address string) (*domain.ServerInfo, error)
	SupportsGame(game string) bool
}

// StatusPublisher renders statuses into chat messages. PublishStatus edits the existing
// message or posts a new one and returns the resulting message ID.
type StatusPublisher interface {
	PublishStatus(status *domain.Status, info *domain.ServerInfo) (string, error)
	RemoveStatus(status *domain.Status) error
}
