package seed

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/jekabolt/affiliate-dashboard/internal/store"
)

var now = time.Date(2026, 10, 15, 14, 37, 12, 0, time.UTC)

func TestGenerateDeterministic(t *testing.T) {
	o := Options{Publishers: 2, Offers: 2, Days: 10, ClicksPerDay: 6, Seed: 42}

	a := Generate(now, o)
	b := Generate(now, o)
	assert.Equal(t, a, b)

	c := Generate(now, Options{Publishers: 2, Offers: 2, Days: 10, ClicksPerDay: 6, Seed: 43})
	assert.NotEqual(t, a.Clicks, c.Clicks)
}

func TestGenerateShape(t *testing.T) {
	d := Generate(now, Options{Publishers: 3, Offers: 2, Days: 30, ClicksPerDay: 10, Seed: 7})

	assert.Len(t, d.Offers, 2)
	assert.Len(t, d.Publishers, 3)
	assert.Len(t, d.Agreements, 6)
	require.NotEmpty(t, d.Clicks)

	from := now.AddDate(0, 0, -30)
	ids := make(map[string]struct{}, len(d.Clicks))
	for _, c := range d.Clicks {
		assert.False(t, c.CreatedAt.Before(from))
		assert.True(t, c.CreatedAt.Before(now))
		ids[c.ID] = struct{}{}
	}
	assert.Len(t, ids, len(d.Clicks))

	for _, c := range d.Conversions {
		assert.True(t, c.CreatedAt.Before(now))
		assert.Contains(t, ids, c.ClickID)
		assert.True(t, c.CommissionAmount.IsPositive())
		assert.True(t, c.CommissionAmount.LessThan(c.Amount))
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	s, err := store.New(ctx, store.Config{
		Driver:             store.DriverSQLite,
		DSN:                filepath.Join(t.TempDir(), "seed.db"),
		Automigrate:        true,
		MaxOpenConnections: 1,
	})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	d := Generate(now, Options{Publishers: 2, Offers: 3, Days: 5, ClicksPerDay: 4, Seed: 1})
	require.NoError(t, Load(ctx, s, d))

	rows, err := s.Reports().ClicksByOffer(ctx, entity.Scope{}, entity.TimeRange{})
	require.NoError(t, err)
	var total int64
	for _, r := range rows {
		total += r.Total
	}
	assert.Equal(t, int64(len(d.Clicks)), total)

	offers, err := s.Reports().OfferNames(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 3)
}
