package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jekabolt/affiliate-dashboard/internal/auth/jwt"
	"github.com/jekabolt/affiliate-dashboard/internal/dto"
	"github.com/jekabolt/affiliate-dashboard/internal/entity"
	gerr "github.com/jekabolt/affiliate-dashboard/internal/errors"
	"github.com/jekabolt/affiliate-dashboard/internal/middleware"
)

type errorResponse struct {
	Error string `json:"error"`
}

// publisherDashboard serves the report of the publisher the token was issued to.
func (s *Server) publisherDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		writeError(w, http.StatusUnauthorized, gerr.ErrUnauthorized)
		return
	}
	publisherID, ok := claims.PublisherID()
	if !ok {
		writeError(w, http.StatusBadRequest, gerr.ErrPublisherRequired)
		return
	}
	if err := s.limiter.CheckReport(middleware.GetClientIP(ctx), claims.Subject); err != nil {
		writeError(w, http.StatusTooManyRequests, err)
		return
	}

	rep, err := s.reporter.Publisher(ctx, publisherID, reportQuery(r))
	s.writeReport(w, r, rep, err)
}

// platformDashboard serves the unscoped report, or a single publisher's report when
// publisherId is given. Admin only.
func (s *Server) platformDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	claims, err := jwt.FromContext(ctx)
	if err != nil {
		writeError(w, http.StatusUnauthorized, gerr.ErrUnauthorized)
		return
	}
	if !claims.IsAdmin() {
		writeError(w, http.StatusForbidden, gerr.ErrForbidden)
		return
	}
	if err := s.limiter.CheckReport(middleware.GetClientIP(ctx), ""); err != nil {
		writeError(w, http.StatusTooManyRequests, err)
		return
	}

	q := reportQuery(r)
	if raw := r.URL.Query().Get("publisherId"); raw != "" {
		publisherID, ok := jwt.Claims{Subject: raw}.PublisherID()
		if !ok {
			writeError(w, http.StatusBadRequest, gerr.ErrPublisherRequired)
			return
		}
		rep, err := s.reporter.Publisher(ctx, publisherID, q)
		s.writeReport(w, r, rep, err)
		return
	}

	rep, err := s.reporter.Platform(ctx, q)
	s.writeReport(w, r, rep, err)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	if err := s.repo.Ping(r.Context()); err != nil {
		slog.Default().ErrorContext(r.Context(), "health check failed", slog.String("err", err.Error()))
		writeError(w, http.StatusServiceUnavailable, errors.New("database unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// reportQuery reads startDate, endDate and recent. recent defaults to true.
func reportQuery(r *http.Request) entity.ReportQuery {
	v := r.URL.Query()
	q := entity.ReportQuery{
		StartDate:     v.Get("startDate"),
		EndDate:       v.Get("endDate"),
		IncludeRecent: true,
	}
	if raw := v.Get("recent"); raw != "" {
		if recent, err := strconv.ParseBool(raw); err == nil {
			q.IncludeRecent = recent
		}
	}
	return q
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, rep *entity.Report, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, dto.ConvertEntityReportToDashboard(rep))
	case errors.Is(err, gerr.ErrPublisherRequired):
		writeError(w, http.StatusBadRequest, gerr.ErrPublisherRequired)
	default:
		slog.Default().ErrorContext(r.Context(), "can't build report",
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, gerr.ErrReportFailed)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Error("can't write response", slog.String("err", err.Error()))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
