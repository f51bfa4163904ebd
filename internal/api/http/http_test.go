package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jekabolt/affiliate-dashboard/internal/auth/jwt"
	"github.com/jekabolt/affiliate-dashboard/internal/dependency/mocks"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	gerr "github.com/jekabolt/affiliate-dashboard/internal/errors"
	"github.com/jekabolt/affiliate-dashboard/internal/ratelimit"
)

type testServer struct {
	srv      *Server
	handler  http.Handler
	ja       *jwtauth.JWTAuth
	reporter *mocks.Reporter
	repo     *mocks.Repository
}

func newTestServer(t *testing.T, c *Config) *testServer {
	t.Helper()
	ja, err := jwt.New(&jwt.Config{JWTSecret: "test-secret"})
	require.NoError(t, err)

	reporter := mocks.NewReporter(t)
	repo := mocks.NewRepository(t)
	srv := New(c, reporter, repo, ja)
	t.Cleanup(srv.limiter.Stop)

	return &testServer{srv: srv, handler: srv.Handler(), ja: ja, reporter: reporter, repo: repo}
}

func (ts *testServer) publisherToken(t *testing.T, id int64) string {
	t.Helper()
	tok, err := jwt.NewPublisherToken(ts.ja, time.Hour, id)
	require.NoError(t, err)
	return tok
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewToken(ts.ja, time.Hour, jwt.Claims{Subject: "ops", Role: jwt.RoleAdmin})
	require.NoError(t, err)
	return tok
}

func (ts *testServer) get(target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestPublisherDashboard(t *testing.T) {
	ts := newTestServer(t, &Config{})

	ts.reporter.EXPECT().
		Publisher(mock.Anything, int64(10), entity.ReportQuery{
			StartDate:     "2026-10-01",
			EndDate:       "2026-10-07",
			IncludeRecent: false,
		}).
		Return(&entity.Report{Scope: entity.Scope{PublisherID: 10}}, nil).
		Once()

	rec := ts.get("/api/dashboard?startDate=2026-10-01&endDate=2026-10-07&recent=false", ts.publisherToken(t, 10))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	assert.Equal(t, "publisher", body["scope"])
	assert.Equal(t, float64(10), body["publisherId"])
	assert.NotContains(t, body, "recent")
}

func TestPublisherDashboardRecentDefaultsToTrue(t *testing.T) {
	ts := newTestServer(t, &Config{})

	ts.reporter.EXPECT().
		Publisher(mock.Anything, int64(3), entity.ReportQuery{IncludeRecent: true}).
		Return(&entity.Report{Scope: entity.Scope{PublisherID: 3}}, nil).
		Twice()

	assert.Equal(t, http.StatusOK, ts.get("/api/dashboard", ts.publisherToken(t, 3)).Code)
	assert.Equal(t, http.StatusOK, ts.get("/api/dashboard?recent=maybe", ts.publisherToken(t, 3)).Code)
}

func TestDashboardAuth(t *testing.T) {
	ts := newTestServer(t, &Config{})

	t.Run("no token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, ts.get("/api/dashboard", "").Code)
		assert.Equal(t, http.StatusUnauthorized, ts.get("/api/admin/dashboard", "").Code)
	})

	t.Run("foreign signature", func(t *testing.T) {
		other, err := jwt.New(&jwt.Config{JWTSecret: "other"})
		require.NoError(t, err)
		tok, err := jwt.NewPublisherToken(other, time.Hour, 10)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, ts.get("/api/dashboard", tok).Code)
	})

	t.Run("non numeric subject", func(t *testing.T) {
		rec := ts.get("/api/dashboard", ts.adminToken(t))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, gerr.ErrPublisherRequired.Error(), decodeBody(t, rec)["error"])
	})

	t.Run("publisher on admin route", func(t *testing.T) {
		rec := ts.get("/api/admin/dashboard", ts.publisherToken(t, 10))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestPlatformDashboard(t *testing.T) {
	ts := newTestServer(t, &Config{})

	ts.reporter.EXPECT().
		Platform(mock.Anything, entity.ReportQuery{StartDate: "2026-09-01", IncludeRecent: true}).
		Return(&entity.Report{}, nil).
		Once()

	rec := ts.get("/api/admin/dashboard?startDate=2026-09-01", ts.adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "platform", decodeBody(t, rec)["scope"])
}

func TestPlatformDashboardForPublisher(t *testing.T) {
	ts := newTestServer(t, &Config{})

	ts.reporter.EXPECT().
		Publisher(mock.Anything, int64(7), entity.ReportQuery{IncludeRecent: true}).
		Return(&entity.Report{Scope: entity.Scope{PublisherID: 7}}, nil).
		Once()

	rec := ts.get("/api/admin/dashboard?publisherId=7", ts.adminToken(t))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["publisherId"])

	assert.Equal(t, http.StatusBadRequest, ts.get("/api/admin/dashboard?publisherId=-1", ts.adminToken(t)).Code)
}

func TestDashboardReportFailure(t *testing.T) {
	ts := newTestServer(t, &Config{})

	ts.reporter.EXPECT().
		Publisher(mock.Anything, int64(10), mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", gerr.ErrReportFailed, errors.New("connection reset"))).
		Once()

	rec := ts.get("/api/dashboard", ts.publisherToken(t, 10))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// the cause is logged, not returned
	assert.Equal(t, gerr.ErrReportFailed.Error(), decodeBody(t, rec)["error"])
}

func TestDashboardRateLimit(t *testing.T) {
	ts := newTestServer(t, &Config{RateLimit: ratelimit.Config{PublisherPerMinute: 1}})

	ts.reporter.EXPECT().
		Publisher(mock.Anything, int64(10), mock.Anything).
		Return(&entity.Report{Scope: entity.Scope{PublisherID: 10}}, nil).
		Once()
	ts.reporter.EXPECT().
		Publisher(mock.Anything, int64(11), mock.Anything).
		Return(&entity.Report{Scope: entity.Scope{PublisherID: 11}}, nil).
		Once()

	assert.Equal(t, http.StatusOK, ts.get("/api/dashboard", ts.publisherToken(t, 10)).Code)
	assert.Equal(t, http.StatusTooManyRequests, ts.get("/api/dashboard", ts.publisherToken(t, 10)).Code)
	assert.Equal(t, http.StatusOK, ts.get("/api/dashboard", ts.publisherToken(t, 11)).Code)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, &Config{})

	ts.repo.EXPECT().Ping(mock.Anything).Return(nil).Once()
	rec := ts.get("/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	ts.repo.EXPECT().Ping(mock.Anything).Return(errors.New("dial tcp: refused")).Once()
	rec = ts.get("/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, &Config{AllowedOrigins: []string{"https://dash.example.com"}})

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/dashboard", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		rec := httptest.NewRecorder()
		ts.handler.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, "https://dash.example.com", preflight("https://dash.example.com").Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "http://localhost:3000", preflight("http://localhost:3000").Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, preflight("https://evil.example.com").Header().Get("Access-Control-Allow-Origin"))
}

func TestIsOriginAllowed(t *testing.T) {
	allowed := []string{"https://dash.example.com"}
	tests := []struct {
		origin string
		want   bool
	}{
		{"https://dash.example.com", true},
		{"http://localhost:5173", true},
		{"https://localhost:8443", true},
		{"http://localhost.evil.com", false},
		{"https://dash.example.com.evil.com", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isOriginAllowed(tt.origin, allowed), tt.origin)
	}
}

func TestReportQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?startDate=a&endDate=b&recent=0", nil)
	assert.Equal(t, entity.ReportQuery{StartDate: "a", EndDate: "b", IncludeRecent: false}, reportQuery(req))
}
