// Package commission applies per (offer, publisher) cuts to raw counts.
package commission

import (
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Key identifies a commission agreement.
type Key struct {
	OfferID     int64
	PublisherID int64
}

// Cuts resolves the cut percent for an (offer, publisher) pair.
// Pairs without an agreement have a cut of 0.
type Cuts map[Key]decimal.Decimal

// NewCuts builds a lookup from agreement rows. Later rows for the same pair win.
func NewCuts(rows []entity.CommissionCut) Cuts {
	c := make(Cuts, len(rows))
	for _, r := range rows {
		c[Key{OfferID: r.OfferID, PublisherID: r.PublisherID}] = r.Cut
	}
	return c
}

// Cut returns the configured cut or 0.
func (c Cuts) Cut(offerID, publisherID int64) decimal.Decimal {
	if cut, ok := c[Key{OfferID: offerID, PublisherID: publisherID}]; ok {
		return cut
	}
	return decimal.Zero
}

// Shave returns round(raw * (1 - cut/100)). Negative raw counts count as 0.
// The cut is applied as given, values outside [0, 100] are not clamped.
func Shave(raw int64, cut decimal.Decimal) int64 {
	return shaved(raw, cut).Round(0).IntPart()
}

func shaved(raw int64, cut decimal.Decimal) decimal.Decimal {
	if raw < 0 {
		raw = 0
	}
	return decimal.NewFromInt(raw).Mul(decimal.NewFromInt(1).Sub(cut.Div(hundred)))
}

// CountItem is a raw event count of one (offer, publisher) pair.
type CountItem struct {
	OfferID     int64
	PublisherID int64
	Raw         int64
}

// CountTotals sums shaved CountItems.
type CountTotals struct {
	Raw            int64
	Shaved         int64
	WeightedAvgCut decimal.Decimal
}

// AggregateCounts shaves every item, rounding each one before summing.
// WeightedAvgCut is sum(raw*cut)/sum(raw), 0 when there is nothing to weigh.
func AggregateCounts(items []CountItem, cuts Cuts) CountTotals {
	var t CountTotals
	weighted := decimal.Zero
	for _, it := range items {
		raw := max(it.Raw, 0)
		cut := cuts.Cut(it.OfferID, it.PublisherID)
		t.Raw += raw
		t.Shaved += Shave(raw, cut)
		weighted = weighted.Add(decimal.NewFromInt(raw).Mul(cut))
	}
	t.WeightedAvgCut = decimal.Zero
	if t.Raw > 0 {
		t.WeightedAvgCut = weighted.Div(decimal.NewFromInt(t.Raw))
	}
	return t
}

// ClickItem holds the raw unique and total clicks of one (offer, publisher) pair.
type ClickItem struct {
	OfferID     int64
	PublisherID int64
	Unique      int64
	Total       int64
}

// ClickTotals sums raw and shaved ClickItems.
type ClickTotals struct {
	RawUnique int64
	NetUnique int64
	RawTotal  int64
	NetTotal  int64
}

// AggregateClicks shaves unique and total clicks independently and rounds each sum once,
// after summation. This differs from AggregateCounts on purpose: displayed click totals
// have always been rounded on the sum.
func AggregateClicks(items []ClickItem, cuts Cuts) ClickTotals {
	var t ClickTotals
	netUnique, netTotal := decimal.Zero, decimal.Zero
	for _, it := range items {
		cut := cuts.Cut(it.OfferID, it.PublisherID)
		t.RawUnique += max(it.Unique, 0)
		t.RawTotal += max(it.Total, 0)
		netUnique = netUnique.Add(shaved(it.Unique, cut))
		netTotal = netTotal.Add(shaved(it.Total, cut))
	}
	t.NetUnique = netUnique.Round(0).IntPart()
	t.NetTotal = netTotal.Round(0).IntPart()
	return t
}

// ConversionRate is conversions / uniqueClicks * 100 rounded to 2 places, 0 without unique clicks.
func ConversionRate(conversions, uniqueClicks int64) decimal.Decimal {
	if uniqueClicks <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(conversions).
		Div(decimal.NewFromInt(uniqueClicks)).
		Mul(hundred).
		Round(2)
}
