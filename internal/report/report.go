// Package report builds dashboard reports for one publisher or for the whole platform.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jekabolt/affiliate-dashboard/internal/commission"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	gerr "github.com/jekabolt/affiliate-dashboard/internal/errors"
	"github.com/jekabolt/affiliate-dashboard/internal/period"
	"github.com/jekabolt/affiliate-dashboard/internal/series"
	"golang.org/x/sync/errgroup"
)

const (
	defaultTrafficSourceLimit = 5
	defaultMaxRangeDays       = 366
)

type Config struct {
	Timezone           string `mapstructure:"timezone"`
	MaxParallelQueries int    `mapstructure:"max_parallel_queries"`
	TrafficSourceLimit int    `mapstructure:"traffic_source_limit"`
	// MaxRangeDays bounds a custom date range; longer ranges fall back to the current month.
	MaxRangeDays int `mapstructure:"max_range_days"`
}

// Engine computes reports. It holds no per-request state and is safe for concurrent use.
type Engine struct {
	c     Config
	rep   dependency.Reports
	clock period.Clock
	loc   *time.Location
}

// New creates an Engine. A nil clock means the wall clock in the configured timezone.
func New(c *Config, rep dependency.Reports, clock period.Clock) (*Engine, error) {
	cfg := Config{}
	if c != nil {
		cfg = *c
	}
	if cfg.TrafficSourceLimit <= 0 {
		cfg.TrafficSourceLimit = defaultTrafficSourceLimit
	}
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = defaultMaxRangeDays
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		l, err := time.LoadLocation(cfg.Timezone)
		if err != nil {
			return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
		}
		loc = l
	}
	if clock == nil {
		clock = period.System(loc)
	}

	return &Engine{
		c:     cfg,
		rep:   rep,
		clock: clock,
		loc:   loc,
	}, nil
}

// Publisher builds the report scoped to one publisher's events and agreements.
func (e *Engine) Publisher(ctx context.Context, publisherID int64, q entity.ReportQuery) (*entity.Report, error) {
	if publisherID <= 0 {
		return nil, gerr.ErrPublisherRequired
	}
	return e.build(ctx, entity.Scope{PublisherID: publisherID}, q)
}

// Platform builds the unscoped report across all publishers.
func (e *Engine) Platform(ctx context.Context, q entity.ReportQuery) (*entity.Report, error) {
	return e.build(ctx, entity.Scope{}, q)
}

// fetched holds the raw result of every aggregate read. Each field is written by exactly one goroutine.
type fetched struct {
	clicksGlobal    []entity.OfferClicks
	clicksThisMonth []entity.OfferClicks
	clicksPrevMonth []entity.OfferClicks
	clicksEffective []entity.OfferClicks

	convGlobal    []entity.OfferConversions
	convThisMonth []entity.OfferConversions
	convPrevMonth []entity.OfferConversions
	convEffective []entity.OfferConversions

	weekly []entity.PeriodValue
	geo    []entity.GeoClicks

	clicksByDay     []entity.PeriodValue
	convByDay       []entity.PeriodValue
	commissionByDay []entity.PeriodValue

	last24h []entity.PeriodValue
	last7d  []entity.PeriodValue
	last30d []entity.PeriodValue

	offers []entity.Offer
}

type windows struct {
	period.Resolved

	custom  series.Spec
	last24h series.Spec
	last7d  series.Spec
	last30d series.Spec
}

func (e *Engine) windows(q entity.ReportQuery) windows {
	now := e.clock.Now().In(e.loc)
	r := period.Resolve(now, period.ParseDate(q.StartDate, e.loc), period.ParseDate(q.EndDate, e.loc)).
		Capped(e.c.MaxRangeDays)
	return windows{
		Resolved: r,
		custom:   series.For(series.CustomDaily, now, r.Effective),
		last24h:  series.For(series.Hourly24, now, r.Effective),
		last7d:   series.For(series.Daily7, now, r.Effective),
		last30d:  series.For(series.Daily30, now, r.Effective),
	}
}

func (e *Engine) build(ctx context.Context, scope entity.Scope, q entity.ReportQuery) (*entity.Report, error) {
	w := e.windows(q)

	rows, err := e.rep.CommissionCuts(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.ErrReportFailed, err)
	}
	cuts := commission.NewCuts(rows)

	f, err := e.fetch(ctx, scope, w, q.IncludeRecent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gerr.ErrReportFailed, err)
	}

	return e.assemble(scope, w, cuts, f, q.IncludeRecent), nil
}

func (e *Engine) fetch(ctx context.Context, scope entity.Scope, w windows, recent bool) (*fetched, error) {
	f := &fetched{}
	g, ctx := errgroup.WithContext(ctx)
	if e.c.MaxParallelQueries > 0 {
		g.SetLimit(e.c.MaxParallelQueries)
	}

	thisMonth := w.ThisMonth.Range()
	prevMonth := w.PreviousMonth.Range()
	day := entity.MetricsGranularityDay

	clicksByOffer := func(dst *[]entity.OfferClicks, tr entity.TimeRange, name string) {
		g.Go(func() error {
			var err error
			*dst, err = e.rep.ClicksByOffer(ctx, scope, tr)
			if err != nil {
				return fmt.Errorf("can't get %s clicks by offer: %w", name, err)
			}
			return nil
		})
	}
	conversionsByOffer := func(dst *[]entity.OfferConversions, tr entity.TimeRange, name string) {
		g.Go(func() error {
			var err error
			*dst, err = e.rep.ConversionsByOffer(ctx, scope, tr)
			if err != nil {
				return fmt.Errorf("can't get %s conversions by offer: %w", name, err)
			}
			return nil
		})
	}
	clicksByPeriod := func(dst *[]entity.PeriodValue, tr entity.TimeRange, gr entity.MetricsGranularity, name string) {
		g.Go(func() error {
			var err error
			*dst, err = e.rep.ClicksByPeriod(ctx, scope, tr, gr)
			if err != nil {
				return fmt.Errorf("can't get %s clicks: %w", name, err)
			}
			return nil
		})
	}

	clicksByOffer(&f.clicksGlobal, entity.TimeRange{}, "global")
	clicksByOffer(&f.clicksThisMonth, thisMonth, "this month")
	clicksByOffer(&f.clicksPrevMonth, prevMonth, "previous month")
	clicksByOffer(&f.clicksEffective, w.Effective, "effective window")

	conversionsByOffer(&f.convGlobal, entity.TimeRange{}, "global")
	conversionsByOffer(&f.convThisMonth, thisMonth, "this month")
	conversionsByOffer(&f.convPrevMonth, prevMonth, "previous month")
	conversionsByOffer(&f.convEffective, w.Effective, "effective window")

	clicksByPeriod(&f.weekly, w.Week, day, "weekly")
	clicksByPeriod(&f.clicksByDay, w.custom.Window(), day, "daily")

	g.Go(func() error {
		var err error
		f.geo, err = e.rep.ClicksByGeo(ctx, scope, w.Effective)
		if err != nil {
			return fmt.Errorf("can't get clicks by geo: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		f.convByDay, err = e.rep.ConversionsByPeriod(ctx, scope, w.custom.Window(), day)
		if err != nil {
			return fmt.Errorf("can't get daily conversions: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		f.commissionByDay, err = e.rep.CommissionByPeriod(ctx, scope, w.custom.Window(), day)
		if err != nil {
			return fmt.Errorf("can't get daily commission: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		f.offers, err = e.rep.OfferNames(ctx)
		if err != nil {
			return fmt.Errorf("can't get offer names: %w", err)
		}
		return nil
	})

	if recent {
		clicksByPeriod(&f.last24h, w.last24h.Window(), w.last24h.Granularity, "last 24h")
		clicksByPeriod(&f.last7d, w.last7d.Window(), w.last7d.Granularity, "last 7d")
		clicksByPeriod(&f.last30d, w.last30d.Window(), w.last30d.Granularity, "last 30d")
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return f, nil
}
