package postgres

import "time"

type matchdayTableModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Open        bool       `db:"open"`
	AutoCloseAt *time.Time `db:"auto_close_at"`
	Current     bool       `db:"current"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}
