package postgres

import (
	"database/sql"
	"time"
)

type teamTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	Name      string         `db:"name"`
	Short     sql.NullString `db:"short"`
	Wins      int            `db:"wins"`
	Draws     int            `db:"draws"`
	Losses    int            `db:"losses"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}
