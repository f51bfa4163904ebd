// Package seed generates deterministic demo traffic for local dashboards.
package seed

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
)

// Writer is the subset of the store the seeder needs.
type Writer interface {
	InsertOffers(ctx context.Context, offers []entity.Offer) error
	InsertPublishers(ctx context.Context, publishers []entity.Publisher) error
	PutAgreement(ctx context.Context, a entity.CommissionAgreement) error
	InsertClicks(ctx context.Context, clicks []entity.Click) error
	InsertConversions(ctx context.Context, conversions []entity.Conversion) error
}

type Options struct {
	Publishers   int
	Offers       int
	Days         int
	ClicksPerDay int
	Seed         uint64
}

func (o Options) withDefaults() Options {
	if o.Publishers <= 0 {
		o.Publishers = 3
	}
	if o.Offers <= 0 {
		o.Offers = 4
	}
	if o.Days <= 0 {
		o.Days = 60
	}
	if o.ClicksPerDay <= 0 {
		o.ClicksPerDay = 40
	}
	return o
}

type Dataset struct {
	Offers      []entity.Offer
	Publishers  []entity.Publisher
	Agreements  []entity.CommissionAgreement
	Clicks      []entity.Click
	Conversions []entity.Conversion
}

var (
	geos     = []string{"US", "DE", "GB", "FR", "CA", "BR", "IN", ""}
	devices  = []string{"desktop", "mobile", "tablet"}
	browsers = []string{"chrome", "safari", "firefox", "edge"}
	cuts     = []string{"0", "5", "10", "20", "35"}
)

// Generate builds Days worth of events ending at now. The same Options and now always
// produce the same events.
func Generate(now time.Time, o Options) Dataset {
	o = o.withDefaults()
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], o.Seed)
	src := rand.NewChaCha8(key)
	r := rand.New(src)
	ids := func() string {
		return uuid.Must(uuid.NewRandomFromReader(src)).String()
	}

	var d Dataset
	for i := 1; i <= o.Offers; i++ {
		d.Offers = append(d.Offers, entity.Offer{ID: int64(i), Name: fmt.Sprintf("Offer %d", i)})
	}
	for i := 1; i <= o.Publishers; i++ {
		d.Publishers = append(d.Publishers, entity.Publisher{ID: int64(i), Name: fmt.Sprintf("Publisher %d", i)})
	}

	percents := make(map[[2]int64]decimal.Decimal)
	for _, p := range d.Publishers {
		for _, of := range d.Offers {
			percent := decimal.NewFromInt(int64(10 + r.IntN(21)))
			percents[[2]int64{of.ID, p.ID}] = percent
			a := entity.CommissionAgreement{
				OfferID:           of.ID,
				PublisherID:       p.ID,
				CommissionPercent: decimal.NewNullDecimal(percent),
			}
			// some pairs have no cut configured
			if r.IntN(5) > 0 {
				a.CommissionCut = decimal.NewNullDecimal(decimal.RequireFromString(cuts[r.IntN(len(cuts))]))
			}
			d.Agreements = append(d.Agreements, a)
		}
	}

	start := now.AddDate(0, 0, -o.Days)
	span := now.Sub(start)
	for _, p := range d.Publishers {
		for _, of := range d.Offers {
			n := o.Days * (o.ClicksPerDay/2 + r.IntN(o.ClicksPerDay+1))
			for range n {
				at := start.Add(time.Duration(r.Int64N(int64(span)))).Truncate(time.Millisecond)
				c := entity.Click{
					ID:          ids(),
					PublisherID: p.ID,
					OfferID:     of.ID,
					Geo:         geos[r.IntN(len(geos))],
					Device:      devices[r.IntN(len(devices))],
					Browser:     browsers[r.IntN(len(browsers))],
					IsUnique:    r.IntN(10) < 7,
					CreatedAt:   at,
				}
				d.Clicks = append(d.Clicks, c)

				if r.IntN(100) >= 6 {
					continue
				}
				amount := decimal.NewFromInt(int64(20 + r.IntN(181)))
				d.Conversions = append(d.Conversions, entity.Conversion{
					ID:               ids(),
					ClickID:          c.ID,
					OfferID:          of.ID,
					PublisherID:      p.ID,
					Amount:           amount,
					CommissionAmount: amount.Mul(percents[[2]int64{of.ID, p.ID}]).Div(decimal.NewFromInt(100)).Round(2),
					Status:           []entity.ConversionStatus{entity.ConversionPending, entity.ConversionApproved, entity.ConversionRejected}[r.IntN(3)],
					CreatedAt:        c.CreatedAt.Add(time.Duration(r.IntN(3600)) * time.Second),
				})
			}
		}
	}
	// conversions can never land after now
	for i := range d.Conversions {
		if !d.Conversions[i].CreatedAt.Before(now) {
			d.Conversions[i].CreatedAt = now.Add(-time.Second)
		}
	}
	return d
}

// Load writes d through w.
func Load(ctx context.Context, w Writer, d Dataset) error {
	if err := w.InsertOffers(ctx, d.Offers); err != nil {
		return fmt.Errorf("offers: %w", err)
	}
	if err := w.InsertPublishers(ctx, d.Publishers); err != nil {
		return fmt.Errorf("publishers: %w", err)
	}
	for _, a := range d.Agreements {
		if err := w.PutAgreement(ctx, a); err != nil {
			return fmt.Errorf("agreement %d/%d: %w", a.OfferID, a.PublisherID, err)
		}
	}
	if err := w.InsertClicks(ctx, d.Clicks); err != nil {
		return fmt.Errorf("clicks: %w", err)
	}
	if err := w.InsertConversions(ctx, d.Conversions); err != nil {
		return fmt.Errorf("conversions: %w", err)
	}
	return nil
}
