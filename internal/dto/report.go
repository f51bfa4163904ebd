package dto

import (
	"time"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Dashboard is the JSON body of the dashboard endpoints. Money is a string with two decimals,
// percentages are numbers.
type Dashboard struct {
	Scope              string             `json:"scope"`
	PublisherID        int64              `json:"publisherId,omitempty"`
	Period             Period             `json:"period"`
	Totals             Totals             `json:"totals"`
	ThisMonth          MonthStats         `json:"thisMonth"`
	PreviousMonth      MonthStats         `json:"previousMonth"`
	MonthOverMonth     MonthChange        `json:"monthOverMonth"`
	WeeklyClicks       []WeekdayPoint     `json:"weeklyClicks"`
	TrafficSources     []TrafficSource    `json:"trafficSources"`
	ClicksOverTime     []CountPoint       `json:"clicksOverTime"`
	ConversionTrend    []CountPoint       `json:"conversionTrend"`
	EarningsOverTime   []AmountPoint      `json:"earningsOverTime"`
	ConversionsByOffer []OfferConversions `json:"conversionsByOffer"`
	Recent             *Recent            `json:"recent,omitempty"`
}

type Period struct {
	GeneratedAt       time.Time `json:"generatedAt"`
	StartDate         string    `json:"startDate"`
	EndDate           string    `json:"endDate"`
	Custom            bool      `json:"custom"`
	ThisMonthStart    string    `json:"thisMonthStart"`
	PreviousMonthFrom string    `json:"previousMonthStart"`
}

type Totals struct {
	TotalClicks           int64   `json:"totalClicks"`
	TotalConversions      int64   `json:"totalConversions"`
	RawTotalConversions   int64   `json:"rawTotalConversions"`
	ConversionsDifference int64   `json:"conversionsDifference"`
	TotalEarnings         string  `json:"totalEarnings"`
	AvgCommissionCut      float64 `json:"avgCommissionCut"`

	RawClicks       int64   `json:"rawClicks"`
	NetClicks       int64   `json:"netClicks"`
	RawUniqueClicks int64   `json:"rawUniqueClicks"`
	NetUniqueClicks int64   `json:"netUniqueClicks"`
	Conversions     int64   `json:"conversions"`
	RawConversions  int64   `json:"rawConversions"`
	ConversionRate  float64 `json:"conversionRate"`
}

type MonthStats struct {
	Clicks         int64  `json:"clicks"`
	Conversions    int64  `json:"conversions"`
	RawConversions int64  `json:"rawConversions"`
	Earnings       string `json:"earnings"`
}

// MonthChange values are null when the previous month is zero.
type MonthChange struct {
	ClicksPct      *float64 `json:"clicksPct"`
	ConversionsPct *float64 `json:"conversionsPct"`
	EarningsPct    *float64 `json:"earningsPct"`
}

type WeekdayPoint struct {
	Day    string `json:"day"`
	Date   string `json:"date"`
	Clicks int64  `json:"clicks"`
}

type TrafficSource struct {
	Geo    string `json:"geo"`
	Clicks int64  `json:"clicks"`
}

type CountPoint struct {
	Period string `json:"period"`
	Count  int64  `json:"count"`
}

type AmountPoint struct {
	Period string `json:"period"`
	Amount string `json:"amount"`
}

type OfferConversions struct {
	OfferID        int64  `json:"offerId"`
	OfferName      string `json:"offerName"`
	Conversions    int64  `json:"conversions"`
	RawConversions int64  `json:"rawConversions"`
}

type Recent struct {
	Last24Hours []CountPoint `json:"last24Hours"`
	Last7Days   []CountPoint `json:"last7Days"`
	Last30Days  []CountPoint `json:"last30Days"`
}

func ConvertEntityReportToDashboard(r *entity.Report) *Dashboard {
	if r == nil {
		return nil
	}
	d := &Dashboard{
		Scope:              "publisher",
		PublisherID:        r.Scope.PublisherID,
		Period:             periodToDto(r.Period),
		Totals:             totalsToDto(r.Totals),
		ThisMonth:          monthStatsToDto(r.ThisMonth),
		PreviousMonth:      monthStatsToDto(r.PreviousMonth),
		MonthOverMonth:     MonthChange(r.MonthOverMonth),
		WeeklyClicks:       weekdaysToDto(r.WeeklyClicks),
		TrafficSources:     trafficSourcesToDto(r.TrafficSources),
		ClicksOverTime:     countPointsToDto(r.ClicksOverTime),
		ConversionTrend:    countPointsToDto(r.ConversionTrend),
		EarningsOverTime:   amountPointsToDto(r.EarningsOverTime),
		ConversionsByOffer: offerConversionsToDto(r.ConversionsByOffer),
	}
	if r.Scope.IsPlatform() {
		d.Scope = "platform"
	}
	if r.Recent != nil {
		d.Recent = &Recent{
			Last24Hours: countPointsToDto(r.Recent.Last24Hours),
			Last7Days:   countPointsToDto(r.Recent.Last7Days),
			Last30Days:  countPointsToDto(r.Recent.Last30Days),
		}
	}
	return d
}

func periodToDto(p entity.ReportPeriod) Period {
	return Period{
		GeneratedAt:       p.Now,
		StartDate:         p.Effective.From.Format(dateLayout),
		EndDate:           p.Effective.To.AddDate(0, 0, -1).Format(dateLayout),
		Custom:            p.Custom,
		ThisMonthStart:    p.ThisMonth.Start.Format(dateLayout),
		PreviousMonthFrom: p.PreviousMonth.Start.Format(dateLayout),
	}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func float(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func totalsToDto(t entity.Totals) Totals {
	return Totals{
		TotalClicks:           t.TotalClicks,
		TotalConversions:      t.TotalConversions,
		RawTotalConversions:   t.RawTotalConversions,
		ConversionsDifference: t.ConversionsDifference,
		TotalEarnings:         money(t.TotalEarnings),
		AvgCommissionCut:      float(t.AvgCommissionCut),
		RawClicks:             t.RawClicks,
		NetClicks:             t.NetClicks,
		RawUniqueClicks:       t.RawUniqueClicks,
		NetUniqueClicks:       t.NetUniqueClicks,
		Conversions:           t.Conversions,
		RawConversions:        t.RawConversions,
		ConversionRate:        float(t.ConversionRate),
	}
}

func monthStatsToDto(m entity.MonthStats) MonthStats {
	return MonthStats{
		Clicks:         m.Clicks,
		Conversions:    m.Conversions,
		RawConversions: m.RawConversions,
		Earnings:       money(m.Earnings),
	}
}

func weekdaysToDto(points []entity.WeekdayPoint) []WeekdayPoint {
	out := make([]WeekdayPoint, 0, len(points))
	for _, p := range points {
		out = append(out, WeekdayPoint{Day: p.Day, Date: p.Date.Format(dateLayout), Clicks: p.Clicks})
	}
	return out
}

func trafficSourcesToDto(rows []entity.GeoClicks) []TrafficSource {
	out := make([]TrafficSource, 0, len(rows))
	for _, r := range rows {
		out = append(out, TrafficSource(r))
	}
	return out
}

func countPointsToDto(points []entity.TimeSeriesPoint) []CountPoint {
	out := make([]CountPoint, 0, len(points))
	for _, p := range points {
		out = append(out, CountPoint{Period: p.Label, Count: p.Count})
	}
	return out
}

func amountPointsToDto(points []entity.TimeSeriesPoint) []AmountPoint {
	out := make([]AmountPoint, 0, len(points))
	for _, p := range points {
		out = append(out, AmountPoint{Period: p.Label, Amount: money(p.Value)})
	}
	return out
}

func offerConversionsToDto(rows []entity.OfferConversionMetric) []OfferConversions {
	out := make([]OfferConversions, 0, len(rows))
	for _, r := range rows {
		out = append(out, OfferConversions(r))
	}
	return out
}
