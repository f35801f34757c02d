package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gamestatus-bot/internal/adapters/storage/postgres/db"
	"gamestatus-bot/internal/core/domain"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrStatusNotFound = errors.New("status not stored")

type PostgresStore struct {
	pool *pgxpool.Pool
	q    *db.Queries
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{
		pool: pool,
		q:    db.New(pool),
	}, nil
}

func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if err := s.q.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SaveStatus(ctx context.Context, status *domain.Status) error {
	options, err := json.Marshal(status.Options())
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	err = s.q.CreateStatus(ctx, db.CreateStatusParams{
		ID:        status.ID,
		GuildID:   status.GuildID,
		ChannelID: status.ChannelID,
		MessageID: status.MessageID,
		Game:      status.Game,
		Address:   status.Address,
		Name:      status.Name,
		Options:   options,
		CreatedAt: timestamptz(status.CreatedAt),
	})
	if err != nil {
		return fmt.Errorf("create status: %w", err)
	}
	return nil
}

// GetAllStatuses returns every stored status ordered by channel and creation time.
// Stored options that are unknown or no longer valid are dropped with a warning.
func (s *PostgresStore) GetAllStatuses(ctx context.Context) ([]*domain.Status, error) {
	rows, err := s.q.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}

	result := make([]*domain.Status, 0, len(rows))
	for _, row := range rows {
		st := &domain.Status{
			ID:        row.ID,
			GuildID:   row.GuildID,
			ChannelID: row.ChannelID,
			MessageID: row.MessageID,
			Game:      row.Game,
			Address:   row.Address,
			Name:      row.Name,
			CreatedAt: row.CreatedAt.Time,
		}
		if row.LastSeen.Valid {
			st.LastSeen = row.LastSeen.Time
		}

		stored, err := decodeOptions(row.Options)
		if err != nil {
			slog.Warn("Discarding unreadable options", "status_id", row.ID, "error", err)
		}
		if dropped := st.LoadOptions(stored); len(dropped) > 0 {
			slog.Warn("Dropped stored options", "status_id", row.ID, "options", dropped)
		}

		result = append(result, st)
	}
	return result, nil
}

func (s *PostgresStore) DeleteStatus(ctx context.Context, statusID string) error {
	tag, err := s.q.DeleteStatus(ctx, statusID)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		slog.Debug("Deleted status was not stored", "status_id", statusID)
	}
	return nil
}

func (s *PostgresStore) SaveStatusOptions(ctx context.Context, statusID string, options map[string]any) error {
	if options == nil {
		options = map[string]any{}
	}
	encoded, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	tag, err := s.q.UpdateStatusOptions(ctx, db.UpdateStatusOptionsParams{
		ID:      statusID,
		Options: encoded,
	})
	if err != nil {
		return fmt.Errorf("update status options: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update status options %s: %w", statusID, ErrStatusNotFound)
	}
	return nil
}

func (s *PostgresStore) UpdateStatusDisplay(ctx context.Context, statusID, messageID, name string, lastSeen time.Time) error {
	tag, err := s.q.UpdateStatusDisplay(ctx, db.UpdateStatusDisplayParams{
		ID:        statusID,
		MessageID: messageID,
		Name:      name,
		LastSeen:  timestamptz(lastSeen),
	})
	if err != nil {
		return fmt.Errorf("update status display: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update status display %s: %w", statusID, ErrStatusNotFound)
	}
	return nil
}

func decodeOptions(raw []byte) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Zero times are stored as NULL.
func timestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t, Valid: true}
}
