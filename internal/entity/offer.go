package entity

type Offer struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

type Publisher struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// UnknownOfferName labels offer-keyed rows whose offer cannot be resolved.
const UnknownOfferName = "Unknown"
