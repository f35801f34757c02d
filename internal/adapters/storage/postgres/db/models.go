package db

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Status struct {
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
	UpdatedAt pgtype.Timestamptz
}
