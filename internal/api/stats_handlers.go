package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	errorvalues "github.com/limbo/healthlog/internal/error_values"
	"github.com/limbo/healthlog/pkg/entity"
	"github.com/limbo/healthlog/pkg/httputil"
)

// Window used by statistics routes when ?from= is omitted.
const defaultWindowDays = 30

type ComplianceResponse struct {
	ActivityType   string    `json:"activity_type"`
	ComplianceRate float64   `json:"compliance_rate"`
	From           time.Time `json:"from"`
	To             time.Time `json:"to"`
}

// Summary leaves absent bounds open, unlike the other statistics routes.
func (s *Server) Summary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	activityType, ok := requireType(w, r, logger, "summary")
	if !ok {
		return
	}
	q := r.URL.Query()
	start, err := httputil.OptionalTime(q, "from")
	if err != nil {
		badWindow(w, logger, "summary", err)
		return
	}
	end, err := httputil.OptionalTime(q, "to")
	if err != nil {
		badWindow(w, logger, "summary", err)
		return
	}
	if end != nil {
		e := httputil.EndOfDayIfDate(q.Get("to"), *end)
		end = &e
	}
	if start != nil && end != nil && start.After(*end) {
		badWindow(w, logger, "summary", errorvalues.ErrInvalidDateRange)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.statsService.Summary(activityType, start, end))
}

func (s *Server) DetailedStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	activityType, ok := requireType(w, r, logger, "detailed statistics")
	if !ok {
		return
	}
	period := entity.PeriodDaily
	if raw := r.URL.Query().Get("period"); raw != "" {
		period, ok = entity.ParseReportPeriod(raw)
		if !ok {
			writeServiceError(w, logger, "detailed statistics", errorvalues.ErrUnknownPeriod)
			return
		}
	}
	start, end, err := window(r, defaultWindowDays)
	if err != nil {
		badWindow(w, logger, "detailed statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"activity_type": activityType,
		"period":        period.String(),
		"statistics":    s.statsService.DetailedStatistics(activityType, period, start, end),
	})
}

func (s *Server) OverallSummary(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	start, end, err := window(r, defaultWindowDays)
	if err != nil {
		badWindow(w, logger, "overall summary", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.statsService.OverallSummary(start, end))
}

func (s *Server) TrendAnalysis(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	activityType, ok := requireType(w, r, logger, "trend analysis")
	if !ok {
		return
	}
	start, end, err := window(r, defaultWindowDays)
	if err != nil {
		badWindow(w, logger, "trend analysis", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"activity_type": activityType,
		"trend":         s.statsService.TrendAnalysis(activityType, start, end),
	})
}

func (s *Server) ComplianceRate(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	activityType, ok := requireType(w, r, logger, "compliance rate")
	if !ok {
		return
	}
	start, end, err := window(r, defaultWindowDays)
	if err != nil {
		badWindow(w, logger, "compliance rate", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ComplianceResponse{
		ActivityType:   activityType,
		ComplianceRate: s.statsService.ComplianceRate(activityType, start, end),
		From:           start,
		To:             end,
	})
}

func (s *Server) ComplianceOverview(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	start, end, err := window(r, defaultWindowDays)
	if err != nil {
		badWindow(w, logger, "compliance overview", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.statsService.ComplianceOverview(start, end))
}

// Correlations expects ?types= with at least two comma separated names.
func (s *Server) Correlations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	types := make([]string, 0)
	for _, name := range strings.Split(r.URL.Query().Get("types"), ",") {
		if name = strings.TrimSpace(name); name != "" {
			types = append(types, name)
		}
	}
	if len(types) < 2 {
		logger.Error("correlations error: less than two types")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "at least two activity types are required", nil)
		return
	}
	start, end, err := window(r, defaultWindowDays)
	if err != nil {
		badWindow(w, logger, "correlations", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"correlations": s.statsService.Correlations(types, start, end),
	})
}

func requireType(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (string, bool) {
	activityType := strings.TrimSpace(r.URL.Query().Get("type"))
	if activityType == "" {
		logger.Error(op + " error: missing activity type")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "activity type is required", nil)
		return "", false
	}
	return activityType, true
}

// window reads ?from= and ?to=. Missing "to" means now and missing "from"
// means defaultDays before "to". A plain "to" date covers its whole day.
func window(r *http.Request, defaultDays int) (time.Time, time.Time, error) {
	q := r.URL.Query()
	end, err := httputil.TimeOr(q, "to", time.Now())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end = httputil.EndOfDayIfDate(q.Get("to"), end)
	start, err := httputil.TimeOr(q, "from", end.AddDate(0, 0, -defaultDays))
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidDateRange
	}
	return start, end, nil
}

func badWindow(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Error(op+" error: invalid date window", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", err)
}
