package entity

import (
	"database/sql"
	"time"
)

// Click represents the clicks table
type Click struct {
	ID          string        `db:"id"`
	PublisherID int64         `db:"publisher_id"`
	OfferID     int64         `db:"offer_id"`
	LinkID      sql.NullInt64 `db:"link_id"`
	Geo         string        `db:"geo"`
	Device      string        `db:"device"`
	Browser     string        `db:"browser"`
	IsUnique    bool          `db:"is_unique"`
	CreatedAt   time.Time     `db:"created_at"`
}
