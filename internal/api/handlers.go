package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/healthlog/internal/error_values"
	"github.com/limbo/healthlog/internal/service"
	"github.com/limbo/healthlog/pkg/entity"
	"github.com/limbo/healthlog/pkg/httputil"
)

const defaultRecentCount = 10

type ActivityRequest struct {
	ActivityType    string   `json:"activity_type"`
	Date            string   `json:"date"`
	Value           float64  `json:"value"`
	Notes           string   `json:"notes"`
	DurationMinutes *float64 `json:"duration_minutes"`
	Intensity       int      `json:"intensity"`
}

type ActivitiesResponse struct {
	Count      int                    `json:"count"`
	Activities []service.ActivityView `json:"activities"`
}

// toServiceRequest defaults a missing date to the current moment.
func (req ActivityRequest) toServiceRequest() (service.ActivityRequest, error) {
	date := time.Now()
	if strings.TrimSpace(req.Date) != "" {
		parsed, err := httputil.ParseTime(req.Date)
		if err != nil {
			return service.ActivityRequest{}, err
		}
		date = parsed
	}
	var duration *time.Duration
	if req.DurationMinutes != nil {
		d := time.Duration(*req.DurationMinutes * float64(time.Minute))
		duration = &d
	}
	return service.ActivityRequest{
		ActivityType: req.ActivityType,
		Date:         date,
		Value:        req.Value,
		Notes:        req.Notes,
		Duration:     duration,
		Intensity:    req.Intensity,
	}, nil
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":     "ok",
		"activities": s.activityService.Count(),
	})
}

func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	req, err := decodeActivityRequest(r)
	if err != nil {
		logger.Error("create activity error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	res, err := s.activityService.AddActivity(req)
	if err != nil {
		writeServiceError(w, logger, "create activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("activity created", slog.Int("id", res.Activity.ID))
}

func (s *Server) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		logger.Error("update activity error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	req, err := decodeActivityRequest(r)
	if err != nil {
		logger.Error("update activity error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	res, err := s.activityService.UpdateActivity(id, req)
	if err != nil {
		writeServiceError(w, logger, "update activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("activity updated", slog.Int("id", id))
}

func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		logger.Error("activity deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	if err = s.activityService.DeleteActivity(id); err != nil {
		writeServiceError(w, logger, "activity deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("activity deleted", slog.Int("id", id))
}

func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		logger.Error("get activity error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	view, err := s.activityService.GetActivity(id)
	if err != nil {
		writeServiceError(w, logger, "get activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, view)
}

// ListActivities lists every record, or only those of ?type= when given.
func (s *Server) ListActivities(w http.ResponseWriter, r *http.Request) {
	var activities []service.ActivityView
	if activityType := strings.TrimSpace(r.URL.Query().Get("type")); activityType != "" {
		activities = s.activityService.ActivitiesByType(activityType)
	} else {
		activities = s.activityService.ListActivities()
	}
	writeActivities(w, activities)
}

func (s *Server) SearchActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	activities, err := s.activityService.SearchActivities(r.URL.Query().Get("q"))
	if err != nil {
		writeServiceError(w, logger, "search activities", err)
		return
	}
	writeActivities(w, activities)
}

func (s *Server) RecentActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	count := defaultRecentCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			logger.Error("recent activities error: invalid count")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "count must be an integer", nil)
			return
		}
		count = parsed
	}
	activities, err := s.activityService.RecentActivities(count)
	if err != nil {
		writeServiceError(w, logger, "recent activities", err)
		return
	}
	writeActivities(w, activities)
}

func (s *Server) ActivitiesByRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		logger.Error("activities by range error: missing bounds")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "both from and to are required", nil)
		return
	}
	start, end, err := window(r, 0)
	if err != nil {
		logger.Error("activities by range error: invalid bounds", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date range", err)
		return
	}
	activities, err := s.activityService.ActivitiesByDateRange(start, end)
	if err != nil {
		writeServiceError(w, logger, "activities by range", err)
		return
	}
	writeActivities(w, activities)
}

func (s *Server) ActivitiesByCategory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	category, ok := entity.ParseCategory(r.PathValue("category"))
	if !ok {
		writeServiceError(w, logger, "activities by category", errorvalues.ErrUnknownCategory)
		return
	}
	writeActivities(w, s.activityService.ActivitiesByCategory(category))
}

func (s *Server) ListTypes(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"types": s.activityService.ActivityTypes(),
	})
}

func (s *Server) PredefinedTypes(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"types": s.activityService.PredefinedTypes(),
	})
}

func (s *Server) TypeInfo(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.activityService.TypeInfo(r.PathValue("name")))
}

func decodeActivityRequest(r *http.Request) (service.ActivityRequest, error) {
	var req ActivityRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		return service.ActivityRequest{}, err
	}
	return req.toServiceRequest()
}

func writeActivities(w http.ResponseWriter, activities []service.ActivityView) {
	httputil.WriteJSONResponse(w, http.StatusOK, ActivitiesResponse{
		Count:      len(activities),
		Activities: activities,
	})
}

func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrActivityNotFound):
		logger.Error(op + " error: unexist activity")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrInvalidActivity),
		errors.Is(err, errorvalues.ErrDateOutOfRange),
		errors.Is(err, errorvalues.ErrInvalidDateRange),
		errors.Is(err, errorvalues.ErrEmptySearchTerm),
		errors.Is(err, errorvalues.ErrInvalidCount),
		errors.Is(err, errorvalues.ErrUnknownCategory),
		errors.Is(err, errorvalues.ErrUnknownPeriod):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during "+op, nil)
	}
}
