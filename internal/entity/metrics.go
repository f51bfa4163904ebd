package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MetricsGranularity controls time bucket size for grouped series (hour, day).
type MetricsGranularity int

const (
	MetricsGranularityDay  MetricsGranularity = 1
	MetricsGranularityHour MetricsGranularity = 2
)

// TimeRange is a half-open interval [From, To). A zero TimeRange means no time filter.
type TimeRange struct {
	From time.Time
	To   time.Time
}

func (tr TimeRange) IsZero() bool {
	return tr.From.IsZero() && tr.To.IsZero()
}

// MonthRange is a calendar month with an inclusive end (last day 23:59:59.999).
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// Range returns the half-open query interval covering the whole month.
func (m MonthRange) Range() TimeRange {
	return TimeRange{From: m.Start, To: m.Start.AddDate(0, 1, 0)}
}

// Scope selects whose events a report covers. PublisherID 0 is the platform-wide scope.
type Scope struct {
	PublisherID int64
}

func (s Scope) IsPlatform() bool {
	return s.PublisherID == 0
}

// OfferClicks is clicks grouped by (offer, publisher).
type OfferClicks struct {
	OfferID     int64 `db:"offer_id"`
	PublisherID int64 `db:"publisher_id"`
	Unique      int64 `db:"unique_clicks"`
	Total       int64 `db:"total_clicks"`
}

// OfferConversions is conversions grouped by (offer, publisher).
type OfferConversions struct {
	OfferID     int64           `db:"offer_id"`
	PublisherID int64           `db:"publisher_id"`
	Conversions int64           `db:"conversions"`
	Commission  decimal.Decimal `db:"commission"`
}

// PeriodValue is one grouped row keyed by a period key ("2006-01-02" or "2006-01-02 15-0700").
type PeriodValue struct {
	Period string          `db:"period"`
	Count  int64           `db:"cnt"`
	Value  decimal.Decimal `db:"value"`
}

type GeoClicks struct {
	Geo    string `db:"geo"`
	Clicks int64  `db:"clicks"`
}

// TimeSeriesPoint is one bucket of a chart series. Key is the canonical period key used to
// match aggregated rows, Label is what charts display.
type TimeSeriesPoint struct {
	Date  time.Time
	Key   string
	Label string
	Value decimal.Decimal
	Count int64
}

// Report contains everything the dashboard renders for one scope.
type Report struct {
	Scope  Scope
	Period ReportPeriod

	Totals Totals

	ThisMonth      MonthStats
	PreviousMonth  MonthStats
	MonthOverMonth MonthChange

	WeeklyClicks   []WeekdayPoint
	TrafficSources []GeoClicks

	// Series over the effective window
	ClicksOverTime   []TimeSeriesPoint
	ConversionTrend  []TimeSeriesPoint
	EarningsOverTime []TimeSeriesPoint

	ConversionsByOffer []OfferConversionMetric

	// Recent is nil when the caller opted out of recency windows.
	Recent *RecentActivity
}

type ReportPeriod struct {
	Now           time.Time
	ThisMonth     MonthRange
	PreviousMonth MonthRange
	Effective     TimeRange
	Custom        bool
}

type Totals struct {
	// All-time
	TotalClicks           int64
	TotalConversions      int64
	RawTotalConversions   int64
	ConversionsDifference int64
	TotalEarnings         decimal.Decimal
	AvgCommissionCut      decimal.Decimal

	// Effective window
	RawClicks       int64
	NetClicks       int64
	RawUniqueClicks int64
	NetUniqueClicks int64
	Conversions     int64
	RawConversions  int64
	ConversionRate  decimal.Decimal
}

type MonthStats struct {
	Clicks         int64
	Conversions    int64
	RawConversions int64
	Earnings       decimal.Decimal
}

type MonthChange struct {
	ClicksPct      *float64
	ConversionsPct *float64
	EarningsPct    *float64
}

type WeekdayPoint struct {
	Day    string
	Date   time.Time
	Clicks int64
}

type OfferConversionMetric struct {
	OfferID        int64
	OfferName      string
	Conversions    int64
	RawConversions int64
}

type RecentActivity struct {
	Last24Hours []TimeSeriesPoint
	Last7Days   []TimeSeriesPoint
	Last30Days  []TimeSeriesPoint
}

// ReportQuery is the caller's request. Dates are "2006-01-02" or RFC3339; empty or malformed
// values are treated as absent.
type ReportQuery struct {
	StartDate     string
	EndDate       string
	IncludeRecent bool
}
