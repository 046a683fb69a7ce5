package models

import "time"

// UserSettings is a row of the user_settings table. Configs is the JSONB
// document of visibility overrides.
type UserSettings struct {
	UserID        string    `db:"user_id"`
	Configs       []byte    `db:"configs"`
	Currency      string    `db:"currency"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
