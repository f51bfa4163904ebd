// Package period derives the calendar boundaries a report is computed over.
package period

import (
	"strings"
	"time"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
)

const dateLayout = "2006-01-02"

// Clock supplies "now". Everything that depends on the current time takes it from a Clock.
type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// System returns the wall clock in loc.
func System(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return ClockFunc(func() time.Time { return time.Now().In(loc) })
}

// Fixed always returns t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Resolved holds the fixed month boundaries and the effective query window of one request.
// ThisMonth/PreviousMonth feed month-over-month cards, Effective feeds every range-filterable chart.
type Resolved struct {
	Now           time.Time
	ThisMonth     entity.MonthRange
	PreviousMonth entity.MonthRange
	Week          entity.TimeRange
	Effective     entity.TimeRange
	// Custom is true when Effective came from caller supplied dates.
	Custom bool
}

// Resolve computes boundaries relative to now. When both start and end are given the effective
// window is [start, end+1 day), otherwise it is the current calendar month. A range whose end is
// before its start is treated as absent.
func Resolve(now time.Time, start, end *time.Time) Resolved {
	thisMonth := StartOfMonth(now)
	r := Resolved{
		Now:           now,
		ThisMonth:     monthOf(thisMonth),
		PreviousMonth: monthOf(thisMonth.AddDate(0, -1, 0)),
		Week:          weekOf(now),
	}
	r.Effective = r.ThisMonth.Range()

	if start != nil && end != nil {
		from := StartOfDay(start.In(now.Location()))
		to := StartOfDay(end.In(now.Location())).AddDate(0, 0, 1)
		if to.After(from) {
			r.Effective = entity.TimeRange{From: from, To: to}
			r.Custom = true
		}
	}
	return r
}

// Capped falls back to the current month when a caller supplied window spans more than
// maxDays days. maxDays <= 0 disables the cap.
func (r Resolved) Capped(maxDays int) Resolved {
	if !r.Custom || maxDays <= 0 || Days(r.Effective.From, r.Effective.To) <= maxDays {
		return r
	}
	r.Effective = r.ThisMonth.Range()
	r.Custom = false
	return r
}

// Days counts the calendar days touched by [from, to) in from's location.
func Days(from, to time.Time) int {
	if !to.After(from) {
		return 0
	}
	to = to.In(from.Location())
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	n := int((b.Unix() - a.Unix()) / 86400)
	// a partial last day still gets a bucket
	if !to.Equal(StartOfDay(to)) {
		n++
	}
	return n
}

func monthOf(start time.Time) entity.MonthRange {
	return entity.MonthRange{
		Start: start,
		End:   start.AddDate(0, 1, 0).Add(-time.Millisecond),
	}
}

// weekOf returns Monday 00:00 of t's week up to the following Monday.
func weekOf(t time.Time) entity.TimeRange {
	daysBack := (int(t.Weekday()) + 6) % 7
	monday := StartOfDay(t).AddDate(0, 0, -daysBack)
	return entity.TimeRange{From: monday, To: monday.AddDate(0, 0, 7)}
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseDate parses a calendar date in loc. It accepts YYYY-MM-DD and RFC 3339 (date part only).
// Empty or malformed input yields nil, which callers treat as "not supplied".
func ParseDate(s string, loc *time.Location) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
		return &d
	}
	return nil
}
