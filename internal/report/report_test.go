package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/affiliate-dashboard/internal/commission"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency/mocks"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	gerr "github.com/jekabolt/affiliate-dashboard/internal/errors"
	"github.com/jekabolt/affiliate-dashboard/internal/period"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 14, 37, 12, 0, time.UTC)

func newMockEngine(t *testing.T) (*Engine, *mocks.Reports) {
	rep := mocks.NewReports(t)
	e, err := New(&Config{}, rep, period.Fixed(testNow))
	require.NoError(t, err)
	return e, rep
}

// expectEmpty makes every aggregate return no rows.
func expectEmpty(rep *mocks.Reports, periodCalls int) {
	rep.EXPECT().CommissionCuts(mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().ClicksByOffer(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(4)
	rep.EXPECT().ConversionsByOffer(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(4)
	rep.EXPECT().ClicksByPeriod(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Times(periodCalls)
	rep.EXPECT().ConversionsByPeriod(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().CommissionByPeriod(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().ClicksByGeo(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().OfferNames(mock.Anything).Return(nil, nil).Once()
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	_, err := New(&Config{Timezone: "Mars/Olympus"}, mocks.NewReports(t), nil)
	assert.Error(t, err)
}

func TestPublisherRequired(t *testing.T) {
	e, _ := newMockEngine(t)

	_, err := e.Publisher(context.Background(), 0, entity.ReportQuery{})
	assert.ErrorIs(t, err, gerr.ErrPublisherRequired)

	_, err = e.Publisher(context.Background(), -3, entity.ReportQuery{})
	assert.ErrorIs(t, err, gerr.ErrPublisherRequired)
}

func TestCommissionCutsFailureAbortsBeforeFanOut(t *testing.T) {
	e, rep := newMockEngine(t)
	boom := errors.New("connection refused")
	rep.EXPECT().CommissionCuts(mock.Anything, entity.Scope{PublisherID: 7}).Return(nil, boom).Once()

	r, err := e.Publisher(context.Background(), 7, entity.ReportQuery{})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, gerr.ErrReportFailed)
	assert.ErrorIs(t, err, boom)
}

func TestAggregateFailureAbortsReport(t *testing.T) {
	e, rep := newMockEngine(t)
	boom := errors.New("deadlock")
	rep.EXPECT().CommissionCuts(mock.Anything, mock.Anything).Return(nil, nil)
	rep.EXPECT().ClicksByOffer(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	rep.EXPECT().ConversionsByOffer(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	rep.EXPECT().ClicksByPeriod(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	rep.EXPECT().ConversionsByPeriod(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	rep.EXPECT().CommissionByPeriod(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	rep.EXPECT().OfferNames(mock.Anything).Return(nil, nil).Maybe()
	rep.EXPECT().ClicksByGeo(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

	r, err := e.Platform(context.Background(), entity.ReportQuery{IncludeRecent: true})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, gerr.ErrReportFailed)
	assert.ErrorIs(t, err, boom)
}

func TestScopeIsPassedToEveryRead(t *testing.T) {
	e, rep := newMockEngine(t)
	scope := entity.Scope{PublisherID: 42}

	rep.EXPECT().CommissionCuts(mock.Anything, scope).Return(nil, nil).Once()
	rep.EXPECT().ClicksByOffer(mock.Anything, scope, mock.Anything).Return(nil, nil).Times(4)
	rep.EXPECT().ConversionsByOffer(mock.Anything, scope, mock.Anything).Return(nil, nil).Times(4)
	rep.EXPECT().ClicksByPeriod(mock.Anything, scope, mock.Anything, mock.Anything).Return(nil, nil).Times(5)
	rep.EXPECT().ConversionsByPeriod(mock.Anything, scope, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().CommissionByPeriod(mock.Anything, scope, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().ClicksByGeo(mock.Anything, scope, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().OfferNames(mock.Anything).Return(nil, nil).Once()

	r, err := e.Publisher(context.Background(), 42, entity.ReportQuery{IncludeRecent: true})
	require.NoError(t, err)
	assert.Equal(t, scope, r.Scope)
}

func TestEmptyScope(t *testing.T) {
	e, rep := newMockEngine(t)
	expectEmpty(rep, 5)

	r, err := e.Publisher(context.Background(), 1, entity.ReportQuery{IncludeRecent: true})
	require.NoError(t, err)

	assert.Zero(t, r.Totals.TotalClicks)
	assert.Zero(t, r.Totals.TotalConversions)
	assert.Zero(t, r.Totals.NetUniqueClicks)
	assert.True(t, r.Totals.ConversionRate.IsZero())
	assert.True(t, r.Totals.TotalEarnings.IsZero())
	assert.True(t, r.Totals.AvgCommissionCut.IsZero())
	assert.Nil(t, r.MonthOverMonth.ClicksPct)
	assert.Nil(t, r.MonthOverMonth.EarningsPct)

	assert.Len(t, r.ClicksOverTime, 31)
	assert.Len(t, r.ConversionTrend, 31)
	assert.Len(t, r.EarningsOverTime, 31)
	assert.Len(t, r.WeeklyClicks, 7)
	assert.Empty(t, r.TrafficSources)
	assert.NotNil(t, r.TrafficSources)
	assert.Empty(t, r.ConversionsByOffer)

	require.NotNil(t, r.Recent)
	assert.Len(t, r.Recent.Last24Hours, 24)
	assert.Len(t, r.Recent.Last7Days, 7)
	assert.Len(t, r.Recent.Last30Days, 30)
	for _, p := range r.ClicksOverTime {
		assert.Zero(t, p.Count)
	}
}

func TestRecentOptOutSkipsRecencyReads(t *testing.T) {
	e, rep := newMockEngine(t)
	// weekly + daily only
	expectEmpty(rep, 2)

	r, err := e.Platform(context.Background(), entity.ReportQuery{})
	require.NoError(t, err)
	assert.Nil(t, r.Recent)
}

func TestScenarioAWithMocks(t *testing.T) {
	e, rep := newMockEngine(t)
	scope := entity.Scope{PublisherID: 5}

	rep.EXPECT().CommissionCuts(mock.Anything, scope).Return([]entity.CommissionCut{
		{OfferID: 1, PublisherID: 5, Cut: decimal.NewFromInt(20)},
	}, nil).Once()
	rep.EXPECT().ClicksByOffer(mock.Anything, scope, mock.Anything).Return([]entity.OfferClicks{
		{OfferID: 1, PublisherID: 5, Unique: 60, Total: 100},
	}, nil).Times(4)
	rep.EXPECT().ConversionsByOffer(mock.Anything, scope, mock.Anything).Return([]entity.OfferConversions{
		{OfferID: 1, PublisherID: 5, Conversions: 10, Commission: decimal.NewFromInt(30)},
	}, nil).Times(4)
	rep.EXPECT().ClicksByPeriod(mock.Anything, scope, mock.Anything, mock.Anything).Return(nil, nil).Times(2)
	rep.EXPECT().ConversionsByPeriod(mock.Anything, scope, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().CommissionByPeriod(mock.Anything, scope, mock.Anything, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().ClicksByGeo(mock.Anything, scope, mock.Anything).Return(nil, nil).Once()
	rep.EXPECT().OfferNames(mock.Anything).Return(nil, nil).Once()

	r, err := e.Publisher(context.Background(), 5, entity.ReportQuery{})
	require.NoError(t, err)

	assert.Equal(t, int64(8), r.Totals.Conversions)
	assert.Equal(t, int64(48), r.Totals.NetUniqueClicks)
	assert.Equal(t, int64(80), r.Totals.NetClicks)
	assert.Equal(t, "16.67", r.Totals.ConversionRate.String())
	assert.Equal(t, "20", r.Totals.AvgCommissionCut.String())
	assert.Equal(t, int64(2), r.Totals.ConversionsDifference)

	require.Len(t, r.ConversionsByOffer, 1)
	assert.Equal(t, entity.UnknownOfferName, r.ConversionsByOffer[0].OfferName)

	// identical months
	require.NotNil(t, r.MonthOverMonth.ClicksPct)
	assert.Equal(t, 0.0, *r.MonthOverMonth.ClicksPct)
}

func TestTopTrafficSources(t *testing.T) {
	rows := []entity.GeoClicks{
		{Geo: "AU", Clicks: 3},
		{Geo: "BR", Clicks: 9},
		{Geo: "CA", Clicks: 3},
		{Geo: "DE", Clicks: 1},
		{Geo: "ES", Clicks: 3},
		{Geo: "FR", Clicks: 7},
		{Geo: "GB", Clicks: 3},
	}
	got := topTrafficSources(rows, 5)
	assert.Equal(t, []entity.GeoClicks{
		{Geo: "BR", Clicks: 9},
		{Geo: "FR", Clicks: 7},
		{Geo: "AU", Clicks: 3},
		{Geo: "CA", Clicks: 3},
		{Geo: "ES", Clicks: 3},
	}, got)
	// input untouched
	assert.Equal(t, "AU", rows[0].Geo)
}

func TestConversionsByOfferMergesPairs(t *testing.T) {
	rows := []entity.OfferConversions{
		{OfferID: 1, PublisherID: 10, Conversions: 3},
		{OfferID: 1, PublisherID: 20, Conversions: 3},
		{OfferID: 2, PublisherID: 10, Conversions: 5},
		{OfferID: 3, PublisherID: 10, Conversions: 5},
	}
	offers := []entity.Offer{{ID: 1, Name: "One"}, {ID: 3, Name: "Three"}}
	got := conversionsByOffer(rows, offers, commission.NewCuts([]entity.CommissionCut{
		{OfferID: 1, PublisherID: 10, Cut: decimal.NewFromInt(50)},
		{OfferID: 1, PublisherID: 20, Cut: decimal.NewFromInt(50)},
	}))

	assert.Equal(t, []entity.OfferConversionMetric{
		{OfferID: 2, OfferName: entity.UnknownOfferName, Conversions: 5, RawConversions: 5},
		{OfferID: 3, OfferName: "Three", Conversions: 5, RawConversions: 5},
		// round(1.5) twice, per pair
		{OfferID: 1, OfferName: "One", Conversions: 4, RawConversions: 6},
	}, got)
}

func TestChangePct(t *testing.T) {
	assert.Nil(t, changePctInt(10, 0))
	assert.Equal(t, 100.0, *changePctInt(8, 4))
	assert.Equal(t, -50.0, *changePctInt(2, 4))
	assert.Equal(t, 33.33, *changePct(decimal.NewFromInt(4), decimal.NewFromInt(3)))
}
