package postgres

import "time"

type profileTableModel struct {
	UserID            string    `db:"user_id"`
	DisplayName       string    `db:"display_name"`
	Role              string    `db:"role"`
	ParticipationMode string    `db:"participation_mode"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}
