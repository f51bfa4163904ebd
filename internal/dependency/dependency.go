package dependency

import (
	"context"
	"database/sql"

	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	Reports interface {
		// CommissionCuts returns the configured cut per (offer, publisher) pair in scope.
		CommissionCuts(ctx context.Context, scope entity.Scope) ([]entity.CommissionCut, error)
		// OfferNames returns every known offer.
		OfferNames(ctx context.Context) ([]entity.Offer, error)
		// ClicksByOffer returns unique and total clicks grouped by (offer, publisher).
		ClicksByOffer(ctx context.Context, scope entity.Scope, tr entity.TimeRange) ([]entity.OfferClicks, error)
		// ConversionsByOffer returns conversion counts and commission sums grouped by (offer, publisher).
		ConversionsByOffer(ctx context.Context, scope entity.Scope, tr entity.TimeRange) ([]entity.OfferConversions, error)
		ClicksByPeriod(ctx context.Context, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error)
		ConversionsByPeriod(ctx context.Context, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error)
		CommissionByPeriod(ctx context.Context, scope entity.Scope, tr entity.TimeRange, g entity.MetricsGranularity) ([]entity.PeriodValue, error)
		// ClicksByGeo returns clicks grouped by geo, ordered by geo.
		ClicksByGeo(ctx context.Context, scope entity.Scope, tr entity.TimeRange) ([]entity.GeoClicks, error)
	}

	Repository interface {
		Reports() Reports
		DB() DB
		Ping(ctx context.Context) error
		Close()
	}

	Reporter interface {
		Publisher(ctx context.Context, publisherID int64, q entity.ReportQuery) (*entity.Report, error)
		Platform(ctx context.Context, q entity.ReportQuery) (*entity.Report, error)
	}

	DB interface {
		ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
		Rebind(query string) string
	}
)
