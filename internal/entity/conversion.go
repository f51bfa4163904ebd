package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type ConversionStatus string

const (
	ConversionPending  ConversionStatus = "pending"
	ConversionApproved ConversionStatus = "approved"
	ConversionRejected ConversionStatus = "rejected"
)

// Conversion represents the conversions table.
// CommissionAmount is computed at conversion time and is never adjusted by reports.
type Conversion struct {
	ID               string           `db:"id"`
	ClickID          string           `db:"click_id"`
	OfferID          int64            `db:"offer_id"`
	PublisherID      int64            `db:"publisher_id"`
	Amount           decimal.Decimal  `db:"amount"`
	CommissionAmount decimal.Decimal  `db:"commission_amount"`
	Status           ConversionStatus `db:"status"`
	CreatedAt        time.Time        `db:"created_at"`
}
