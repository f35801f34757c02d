package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const createStatus = `-- name: CreateStatus :exec
INSERT INTO statuses (id, guild_id, channel_id, message_id, game, address, name, options, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, now()))
`

type CreateStatusParams struct {
	ID        string
	GuildID   string
	ChannelID string
	MessageID string
	Game      string
	Address   string
	Name      string
	Options   []byte
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateStatus(ctx context.Context, arg CreateStatusParams) error {
	_, err := q.db.Exec(ctx, createStatus,
		arg.ID,
		arg.GuildID,
		arg.ChannelID,
		arg.MessageID,
		arg.Game,
		arg.Address,
		arg.Name,
		arg.Options,
		arg.CreatedAt,
	)
	return err
}

const listStatuses = `-- name: ListStatuses :many
SELECT id, guild_id, channel_id, message_id, game, address, name, options, last_seen, created_at
FROM statuses
ORDER BY channel_id, created_at, id
`

type ListStatusesRow struct {
	ID        string
	GuildID   string
	ChannelID string
	MessageID string
	Game      string
	Address   string
	Name      string
	Options   []byte
	LastSeen  pgtype.Timestamptz
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) ListStatuses(ctx context.Context) ([]ListStatusesRow, error) {
	rows, err := q.db.Query(ctx, listStatuses)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListStatusesRow
	for rows.Next() {
		var i ListStatusesRow
		if err := rows.Scan(
			&i.ID,
			&i.GuildID,
			&i.ChannelID,
			&i.MessageID,
			&i.Game,
			&i.Address,
			&i.Name,
			&i.Options,
			&i.LastSeen,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteStatus = `-- name: DeleteStatus :execresult
DELETE FROM statuses WHERE id = $1
`

func (q *Queries) DeleteStatus(ctx context.Context, id string) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, deleteStatus, id)
}

const updateStatusOptions = `-- name: UpdateStatusOptions :execresult
UPDATE statuses SET options = $2, updated_at = now() WHERE id = $1
`

type UpdateStatusOptionsParams struct {
	ID      string
	Options []byte
}

func (q *Queries) UpdateStatusOptions(ctx context.Context, arg UpdateStatusOptionsParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, updateStatusOptions, arg.ID, arg.Options)
}

const updateStatusDisplay = `-- name: UpdateStatusDisplay :execresult
UPDATE statuses
SET message_id = $2, name = $3, last_seen = $4, updated_at = now()
WHERE id = $1
`

type UpdateStatusDisplayParams struct {
	ID        string
	MessageID string
	Name      string
	LastSeen  pgtype.Timestamptz
}

func (q *Queries) UpdateStatusDisplay(ctx context.Context, arg UpdateStatusDisplayParams) (pgconn.CommandTag, error) {
	return q.db.Exec(ctx, updateStatusDisplay,
		arg.ID,
		arg.MessageID,
		arg.Name,
		arg.LastSeen,
	)
}
