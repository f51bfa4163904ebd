package report

import (
	"cmp"
	"slices"
	"sort"

	"github.com/jekabolt/affiliate-dashboard/internal/commission"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/jekabolt/affiliate-dashboard/internal/series"
	"github.com/shopspring/decimal"
)

func (e *Engine) assemble(scope entity.Scope, w windows, cuts commission.Cuts, f *fetched, recent bool) *entity.Report {
	global := commission.AggregateCounts(countItems(f.convGlobal), cuts)
	thisMonth := commission.AggregateCounts(countItems(f.convThisMonth), cuts)
	prevMonth := commission.AggregateCounts(countItems(f.convPrevMonth), cuts)
	effective := commission.AggregateCounts(countItems(f.convEffective), cuts)
	clicks := commission.AggregateClicks(clickItems(f.clicksEffective), cuts)

	r := &entity.Report{
		Scope: scope,
		Period: entity.ReportPeriod{
			Now:           w.Now,
			ThisMonth:     w.ThisMonth,
			PreviousMonth: w.PreviousMonth,
			Effective:     w.Effective,
			Custom:        w.Custom,
		},
		Totals: entity.Totals{
			TotalClicks:           totalClicks(f.clicksGlobal),
			TotalConversions:      global.Shaved,
			RawTotalConversions:   global.Raw,
			ConversionsDifference: global.Raw - global.Shaved,
			TotalEarnings:         earnings(f.convGlobal),
			AvgCommissionCut:      global.WeightedAvgCut.Round(2),

			RawClicks:       clicks.RawTotal,
			NetClicks:       clicks.NetTotal,
			RawUniqueClicks: clicks.RawUnique,
			NetUniqueClicks: clicks.NetUnique,
			Conversions:     effective.Shaved,
			RawConversions:  effective.Raw,
			ConversionRate:  commission.ConversionRate(effective.Shaved, clicks.NetUnique),
		},
		ThisMonth:          monthStats(f.clicksThisMonth, f.convThisMonth, thisMonth),
		PreviousMonth:      monthStats(f.clicksPrevMonth, f.convPrevMonth, prevMonth),
		WeeklyClicks:       weekly(w, f.weekly),
		TrafficSources:     topTrafficSources(f.geo, e.c.TrafficSourceLimit),
		ClicksOverTime:     w.custom.Fill(f.clicksByDay),
		ConversionTrend:    w.custom.Fill(f.convByDay),
		EarningsOverTime:   w.custom.Fill(f.commissionByDay),
		ConversionsByOffer: conversionsByOffer(f.convEffective, f.offers, cuts),
	}
	r.MonthOverMonth = monthChange(r.ThisMonth, r.PreviousMonth)

	if recent {
		r.Recent = &entity.RecentActivity{
			Last24Hours: w.last24h.Fill(f.last24h),
			Last7Days:   w.last7d.Fill(f.last7d),
			Last30Days:  w.last30d.Fill(f.last30d),
		}
	}
	return r
}

func countItems(rows []entity.OfferConversions) []commission.CountItem {
	items := make([]commission.CountItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, commission.CountItem{OfferID: r.OfferID, PublisherID: r.PublisherID, Raw: r.Conversions})
	}
	return items
}

func clickItems(rows []entity.OfferClicks) []commission.ClickItem {
	items := make([]commission.ClickItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, commission.ClickItem{
			OfferID:     r.OfferID,
			PublisherID: r.PublisherID,
			Unique:      r.Unique,
			Total:       r.Total,
		})
	}
	return items
}

func totalClicks(rows []entity.OfferClicks) int64 {
	var n int64
	for _, r := range rows {
		n += r.Total
	}
	return n
}

func earnings(rows []entity.OfferConversions) decimal.Decimal {
	sum := decimal.Zero
	for _, r := range rows {
		sum = sum.Add(r.Commission)
	}
	return sum
}

func monthStats(clicks []entity.OfferClicks, conv []entity.OfferConversions, shaved commission.CountTotals) entity.MonthStats {
	return entity.MonthStats{
		Clicks:         totalClicks(clicks),
		Conversions:    shaved.Shaved,
		RawConversions: shaved.Raw,
		Earnings:       earnings(conv),
	}
}

func monthChange(cur, prev entity.MonthStats) entity.MonthChange {
	return entity.MonthChange{
		ClicksPct:      changePctInt(cur.Clicks, prev.Clicks),
		ConversionsPct: changePctInt(cur.Conversions, prev.Conversions),
		EarningsPct:    changePct(cur.Earnings, prev.Earnings),
	}
}

func changePct(current, previous decimal.Decimal) *float64 {
	if previous.IsZero() {
		return nil
	}
	diff := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
	f, _ := diff.Float64()
	return &f
}

func changePctInt(current, previous int64) *float64 {
	return changePct(decimal.NewFromInt(current), decimal.NewFromInt(previous))
}

// weekly left-joins daily clicks onto the Monday..Sunday template of the current week.
func weekly(w windows, rows []entity.PeriodValue) []entity.WeekdayPoint {
	week := series.Spec{Start: w.Week.From, Count: 7, Granularity: entity.MetricsGranularityDay}
	points := make([]entity.WeekdayPoint, 0, week.Count)
	for _, p := range week.Fill(rows) {
		points = append(points, entity.WeekdayPoint{
			Day:    p.Date.Format("Mon"),
			Date:   p.Date,
			Clicks: p.Count,
		})
	}
	return points
}

// topTrafficSources ranks geos by clicks, ties keep the incoming order.
func topTrafficSources(rows []entity.GeoClicks, limit int) []entity.GeoClicks {
	ranked := slices.Clone(rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Clicks > ranked[j].Clicks
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	if ranked == nil {
		ranked = []entity.GeoClicks{}
	}
	return ranked
}

// conversionsByOffer merges (offer, publisher) rows per offer. Each pair is shaved with its own
// cut and rounded before being added to the offer's total.
func conversionsByOffer(rows []entity.OfferConversions, offers []entity.Offer, cuts commission.Cuts) []entity.OfferConversionMetric {
	names := make(map[int64]string, len(offers))
	for _, o := range offers {
		names[o.ID] = o.Name
	}

	byOffer := map[int64]*entity.OfferConversionMetric{}
	for _, r := range rows {
		m, ok := byOffer[r.OfferID]
		if !ok {
			name, known := names[r.OfferID]
			if !known {
				name = entity.UnknownOfferName
			}
			m = &entity.OfferConversionMetric{OfferID: r.OfferID, OfferName: name}
			byOffer[r.OfferID] = m
		}
		m.RawConversions += max(r.Conversions, 0)
		m.Conversions += commission.Shave(r.Conversions, cuts.Cut(r.OfferID, r.PublisherID))
	}

	result := make([]entity.OfferConversionMetric, 0, len(byOffer))
	for _, m := range byOffer {
		result = append(result, *m)
	}
	slices.SortFunc(result, func(a, b entity.OfferConversionMetric) int {
		if c := cmp.Compare(b.Conversions, a.Conversions); c != 0 {
			return c
		}
		return cmp.Compare(a.OfferID, b.OfferID)
	})
	return result
}
