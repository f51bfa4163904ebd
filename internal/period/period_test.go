package period

import (
	"testing"
	"time"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestResolveMonths(t *testing.T) {
	now := time.Date(2026, time.March, 15, 13, 45, 0, 0, time.UTC)
	r := Resolve(now, nil, nil)

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), r.ThisMonth.Start)
	assert.Equal(t, time.Date(2026, time.March, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), r.ThisMonth.End)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), r.PreviousMonth.Start)
	assert.Equal(t, time.Date(2026, time.February, 28, 23, 59, 59, int(999*time.Millisecond), time.UTC), r.PreviousMonth.End)

	assert.False(t, r.Custom)
	assert.Equal(t, r.ThisMonth.Range(), r.Effective)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), r.Effective.To)
}

func TestResolvePreviousMonthAcrossYear(t *testing.T) {
	now := time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC)
	r := Resolve(now, nil, nil)

	assert.Equal(t, time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC), r.PreviousMonth.Start)
	assert.Equal(t, time.Date(2026, time.December, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), r.PreviousMonth.End)
}

func TestResolveEffectiveWindow(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)

	t.Run("both dates", func(t *testing.T) {
		r := Resolve(now, date(2026, time.September, 1), date(2026, time.September, 10))
		assert.True(t, r.Custom)
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), r.Effective.From)
		assert.Equal(t, time.Date(2026, time.September, 11, 0, 0, 0, 0, time.UTC), r.Effective.To)
		// month cards are untouched by the custom window
		assert.Equal(t, time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), r.ThisMonth.Start)
	})

	t.Run("single day", func(t *testing.T) {
		r := Resolve(now, date(2026, time.October, 2), date(2026, time.October, 2))
		assert.Equal(t, time.Date(2026, time.October, 2, 0, 0, 0, 0, time.UTC), r.Effective.From)
		assert.Equal(t, time.Date(2026, time.October, 3, 0, 0, 0, 0, time.UTC), r.Effective.To)
	})

	t.Run("only one date falls back to month", func(t *testing.T) {
		r := Resolve(now, date(2026, time.October, 2), nil)
		assert.False(t, r.Custom)
		assert.Equal(t, r.ThisMonth.Range(), r.Effective)

		r = Resolve(now, nil, date(2026, time.October, 2))
		assert.False(t, r.Custom)
	})

	t.Run("reversed dates fall back to month", func(t *testing.T) {
		r := Resolve(now, date(2026, time.October, 9), date(2026, time.October, 2))
		assert.False(t, r.Custom)
		assert.Equal(t, r.ThisMonth.Range(), r.Effective)
	})
}

func TestResolveWeek(t *testing.T) {
	// 2026-10-15 is a Thursday
	r := Resolve(time.Date(2026, time.October, 15, 22, 0, 0, 0, time.UTC), nil, nil)
	assert.Equal(t, time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC), r.Week.From)
	assert.Equal(t, time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC), r.Week.To)

	// Sunday belongs to the week that started on the previous Monday
	r = Resolve(time.Date(2026, time.October, 18, 10, 0, 0, 0, time.UTC), nil, nil)
	assert.Equal(t, time.Date(2026, time.October, 12, 0, 0, 0, 0, time.UTC), r.Week.From)
}

func TestParseDate(t *testing.T) {
	got := ParseDate("2026-02-03", time.UTC)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC), *got)

	got = ParseDate("2026-02-03T18:30:00Z", time.UTC)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC), *got)

	assert.Nil(t, ParseDate("", time.UTC))
	assert.Nil(t, ParseDate("yesterday", time.UTC))
	assert.Nil(t, ParseDate("2026-13-45", time.UTC))
}

func TestFixedClock(t *testing.T) {
	now := time.Date(2026, time.October, 15, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, now, Fixed(now).Now())
	assert.Equal(t, time.UTC, System(nil).Now().Location())
}

func TestCapped(t *testing.T) {
	now := time.Date(2026, time.October, 15, 14, 0, 0, 0, time.UTC)
	month := entity.TimeRange{
		From: time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("within the cap", func(t *testing.T) {
		r := Resolve(now, date(2025, time.October, 16), date(2026, time.October, 15)).Capped(366)
		assert.True(t, r.Custom)
		assert.Equal(t, 365, Days(r.Effective.From, r.Effective.To))
	})

	t.Run("over the cap falls back to the month", func(t *testing.T) {
		r := Resolve(now, date(1, time.January, 1), date(9999, time.December, 31)).Capped(366)
		assert.False(t, r.Custom)
		assert.Equal(t, month, r.Effective)
	})

	t.Run("zero disables the cap", func(t *testing.T) {
		r := Resolve(now, date(2000, time.January, 1), date(2026, time.January, 1)).Capped(0)
		assert.True(t, r.Custom)
	})
}

func TestDays(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	tests := []struct {
		name     string
		from, to time.Time
		want     int
	}{
		{"empty", *date(2026, time.October, 2), *date(2026, time.October, 2), 0},
		{"reversed", *date(2026, time.October, 3), *date(2026, time.October, 2), 0},
		{"one day", *date(2026, time.October, 2), *date(2026, time.October, 3), 1},
		{"partial last day", *date(2026, time.October, 2), date(2026, time.October, 3).Add(time.Hour), 2},
		{"25 hour day", time.Date(2026, time.November, 1, 0, 0, 0, 0, ny), time.Date(2026, time.November, 2, 0, 0, 0, 0, ny), 1},
		{"23 hour day", time.Date(2026, time.March, 8, 0, 0, 0, 0, ny), time.Date(2026, time.March, 9, 0, 0, 0, 0, ny), 1},
		{"all of time", *date(1, time.January, 1), *date(9999, time.December, 31), 3652058},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Days(tt.from, tt.to))
		})
	}
}
