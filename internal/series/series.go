// Package series generates contiguous, zero-filled time buckets for chart series.
package series

import (
	"iter"
	"time"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/jekabolt/affiliate-dashboard/internal/period"
	"github.com/shopspring/decimal"
)

// Period key layouts. Aggregated rows must use the same layouts to land in a bucket.
// Hour keys carry the UTC offset so the repeated hour of a DST fall-back stays distinct.
const (
	DayKeyLayout  = "2006-01-02"
	HourKeyLayout = "2006-01-02 15-0700"

	hourLabelLayout         = "15:00"
	repeatedHourLabelLayout = "15:00 MST"
)

type Mode int

const (
	// Hourly24 covers the 24 hours ending at the current hour.
	Hourly24 Mode = iota + 1
	// Daily7 covers the 7 days ending today.
	Daily7
	// Daily30 covers the 30 days ending today.
	Daily30
	// CustomDaily covers the effective window, one bucket per calendar day.
	CustomDaily
)

// Spec describes a finite run of buckets.
type Spec struct {
	Start       time.Time
	Count       int
	Granularity entity.MetricsGranularity
}

// For returns the bucket spec of mode relative to now. effective is only used by CustomDaily.
func For(mode Mode, now time.Time, effective entity.TimeRange) Spec {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch mode {
	case Hourly24:
		hour := time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
		return Spec{Start: hour.Add(-23 * time.Hour), Count: 24, Granularity: entity.MetricsGranularityHour}
	case Daily7:
		return Spec{Start: today.AddDate(0, 0, -6), Count: 7, Granularity: entity.MetricsGranularityDay}
	case Daily30:
		return Spec{Start: today.AddDate(0, 0, -29), Count: 30, Granularity: entity.MetricsGranularityDay}
	default:
		return Spec{Start: effective.From, Count: period.Days(effective.From, effective.To), Granularity: entity.MetricsGranularityDay}
	}
}

func (s Spec) at(i int) time.Time {
	if s.Granularity == entity.MetricsGranularityHour {
		return s.Start.Add(time.Duration(i) * time.Hour)
	}
	return s.Start.AddDate(0, 0, i)
}

// Window is the half-open query range covered by the buckets.
func (s Spec) Window() entity.TimeRange {
	return entity.TimeRange{From: s.Start, To: s.at(s.Count)}
}

// Key formats t the way aggregated rows of this granularity are keyed.
func (s Spec) Key(t time.Time) string {
	if s.Granularity == entity.MetricsGranularityHour {
		return t.Format(HourKeyLayout)
	}
	return t.Format(DayKeyLayout)
}

func (s Spec) label(t time.Time) string {
	if s.Granularity == entity.MetricsGranularityHour {
		return t.Format(hourLabelLayout)
	}
	return t.Format(DayKeyLayout)
}

// Buckets yields zero-valued buckets in chronological order. The sequence is computed lazily
// and can be ranged over any number of times. A wall-clock hour that repeats on a DST
// fall-back gets its zone abbreviation appended to the label.
func (s Spec) Buckets() iter.Seq[entity.TimeSeriesPoint] {
	return func(yield func(entity.TimeSeriesPoint) bool) {
		prevLabel := ""
		for i := 0; i < s.Count; i++ {
			t := s.at(i)
			label := s.label(t)
			if label == prevLabel && s.Granularity == entity.MetricsGranularityHour {
				label = t.Format(repeatedHourLabelLayout)
			}
			prevLabel = s.label(t)
			p := entity.TimeSeriesPoint{
				Date:  t,
				Key:   s.Key(t),
				Label: label,
				Value: decimal.Zero,
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Fill materializes the buckets and merges rows into them by exact key. Rows whose key
// matches no bucket are dropped.
func (s Spec) Fill(rows []entity.PeriodValue) []entity.TimeSeriesPoint {
	byKey := make(map[string]entity.PeriodValue, len(rows))
	for _, r := range rows {
		if prev, ok := byKey[r.Period]; ok {
			r.Count += prev.Count
			r.Value = r.Value.Add(prev.Value)
		}
		byKey[r.Period] = r
	}
	result := make([]entity.TimeSeriesPoint, 0, s.Count)
	for p := range s.Buckets() {
		if r, ok := byKey[p.Key]; ok {
			p.Count = r.Count
			p.Value = r.Value
		}
		result = append(result, p)
	}
	return result
}
