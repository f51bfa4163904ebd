package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
)

type reportsStore struct {
	*SQLStore
}

// Reports returns an object implementing the dependency.Reports interface
func (ms *SQLStore) Reports() dependency.Reports {
	return &reportsStore{
		SQLStore: ms,
	}
}

// eventFilter renders the WHERE clause shared by clicks and conversions.
// Platform scope drops the publisher predicate and a zero range drops the time predicates.
func eventFilter(scope entity.Scope, tr entity.TimeRange) (string, map[string]any) {
	params := map[string]any{}
	clauses := []string{"1 = 1"}
	if !scope.IsPlatform() {
		clauses = append(clauses, "publisher_id = :publisherId")
		params["publisherId"] = scope.PublisherID
	}
	if !tr.From.IsZero() {
		clauses = append(clauses, "created_at >= :from")
		params["from"] = tr.From.UTC()
	}
	if !tr.To.IsZero() {
		clauses = append(clauses, "created_at < :to")
		params["to"] = tr.To.UTC()
	}
	return strings.Join(clauses, " AND "), params
}

func (ms *reportsStore) CommissionCuts(ctx context.Context, scope entity.Scope) ([]entity.CommissionCut, error) {
	where, params := eventFilter(scope, entity.TimeRange{})
	query := fmt.Sprintf(`
		SELECT offer_id, publisher_id, COALESCE(commission_cut, 0) AS cut
		FROM commission_agreements
		WHERE %s
		ORDER BY offer_id, publisher_id`, where)

	cuts, err := QueryListNamed[entity.CommissionCut](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("commission cuts: %w", err)
	}
	return cuts, nil
}

func (ms *reportsStore) OfferNames(ctx context.Context) ([]entity.Offer, error) {
	offers, err := QueryListNamed[entity.Offer](ctx, ms.db, `SELECT id, name FROM offers ORDER BY id`, nil)
	if err != nil {
		return nil, fmt.Errorf("offer names: %w", err)
	}
	return offers, nil
}

func (ms *reportsStore) ClicksByOffer(ctx context.Context, scope entity.Scope, tr entity.TimeRange) ([]entity.OfferClicks, error) {
	where, params := eventFilter(scope, tr)
	query := fmt.Sprintf(`
		SELECT
			offer_id,
			publisher_id,
			COALESCE(SUM(CASE WHEN is_unique THEN 1 ELSE 0 END), 0) AS unique_clicks,
			COUNT(*) AS total_clicks
		FROM clicks
		WHERE %s
		GROUP BY offer_id, publisher_id
		ORDER BY offer_id, publisher_id`, where)

	rows, err := QueryListNamed[entity.OfferClicks](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("clicks by offer: %w", err)
	}
	return rows, nil
}

func (ms *reportsStore) ConversionsByOffer(ctx context.Context, scope entity.Scope, tr entity.TimeRange) ([]entity.OfferConversions, error) {
	where, params := eventFilter(scope, tr)
	query := fmt.Sprintf(`
		SELECT
			offer_id,
			publisher_id,
			COUNT(*) AS conversions,
			COALESCE(SUM(commission_amount), 0) AS commission
		FROM conversions
		WHERE %s
		GROUP BY offer_id, publisher_id
		ORDER BY offer_id, publisher_id`, where)

	rows, err := QueryListNamed[entity.OfferConversions](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("conversions by offer: %w", err)
	}
	return rows, nil
}

// zoneSegment is a part of a range over which its location keeps one UTC offset.
type zoneSegment struct {
	tr    entity.TimeRange
	shift int
	zone  string
}

// zoneSegments splits tr wherever the UTC offset of tr.From's location changes.
// An open range is a single segment at the offset of its start.
func zoneSegments(tr entity.TimeRange) []zoneSegment {
	if tr.From.IsZero() {
		return []zoneSegment{{tr: tr, zone: "+0000"}}
	}
	var segs []zoneSegment
	from := tr.From
	for {
		_, offset := from.Zone()
		seg := zoneSegment{
			tr:    entity.TimeRange{From: from, To: tr.To},
			shift: offset,
			zone:  from.Format("-0700"),
		}
		_, end := from.ZoneBounds()
		if tr.To.IsZero() || end.IsZero() || !end.Before(tr.To) {
			return append(segs, seg)
		}
		seg.tr.To = end
		segs = append(segs, seg)
		from = end
	}
}

// byPeriod groups a table by period key in the location of tr; value is the SQL aggregate
// summed per bucket. Each offset segment is queried on its own and a day split by an
// offset change is merged back into one row.
func (ms *reportsStore) byPeriod(ctx context.Context, table, value string, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error) {
	key := ms.dialect.periodKey("created_at", g)

	var result []entity.PeriodValue
	for _, seg := range zoneSegments(tr) {
		where, params := eventFilter(scope, seg.tr)
		params["shift"] = seg.shift
		params["zone"] = seg.zone
		query := fmt.Sprintf(`
			SELECT %s AS period, COUNT(*) AS cnt, %s AS value
			FROM %s
			WHERE %s
			GROUP BY period
			ORDER BY period`, key, value, table, where)

		rows, err := QueryListNamed[entity.PeriodValue](ctx, ms.db, query, params)
		if err != nil {
			return nil, err
		}
		for _, r := range rows {
			if n := len(result); n > 0 && result[n-1].Period == r.Period {
				result[n-1].Count += r.Count
				result[n-1].Value = result[n-1].Value.Add(r.Value)
				continue
			}
			result = append(result, r)
		}
	}
	return result, nil
}

func (ms *reportsStore) ClicksByPeriod(ctx context.Context, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error) {
	rows, err := ms.byPeriod(ctx, "clicks", "0", scope, tr, g)
	if err != nil {
		return nil, fmt.Errorf("clicks by period: %w", err)
	}
	return rows, nil
}

func (ms *reportsStore) ConversionsByPeriod(ctx context.Context, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error) {
	rows, err := ms.byPeriod(ctx, "conversions", "0", scope, tr, g)
	if err != nil {
		return nil, fmt.Errorf("conversions by period: %w", err)
	}
	return rows, nil
}

func (ms *reportsStore) CommissionByPeriod(ctx context.Context, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error) {
	rows, err := ms.byPeriod(ctx, "conversions", "COALESCE(SUM(commission_amount), 0)", scope, tr, g)
	if err != nil {
		return nil, fmt.Errorf("commission by period: %w", err)
	}
	return rows, nil
}

func (ms *reportsStore) ClicksByGeo(ctx context.Context, scope entity.Scope, tr entity.TimeRange) ([]entity.GeoClicks, error) {
	where, params := eventFilter(scope, tr)
	query := fmt.Sprintf(`
		SELECT COALESCE(geo, '') AS geo, COUNT(*) AS clicks
		FROM clicks
		WHERE %s
		GROUP BY COALESCE(geo, '')
		ORDER BY geo`, where)

	rows, err := QueryListNamed[entity.GeoClicks](ctx, ms.db, query, params)
	if err != nil {
		return nil, fmt.Errorf("clicks by geo: %w", err)
	}
	return rows, nil
}
