package entity

import (
	"github.com/shopspring/decimal"
)

// CommissionAgreement represents the commission_agreements table.
// There is at most one agreement per (offer, publisher) pair.
type CommissionAgreement struct {
	OfferID           int64               `db:"offer_id"`
	PublisherID       int64               `db:"publisher_id"`
	CommissionPercent decimal.NullDecimal `db:"commission_percent"`
	CommissionCut     decimal.NullDecimal `db:"commission_cut"`
}

// CommissionCut is the cut configured for one (offer, publisher) pair, NULL already resolved to 0.
type CommissionCut struct {
	OfferID     int64           `db:"offer_id"`
	PublisherID int64           `db:"publisher_id"`
	Cut         decimal.Decimal `db:"cut"`
}
