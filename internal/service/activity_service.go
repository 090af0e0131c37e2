package service

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/healthlog/internal/error_values"
	"github.com/limbo/healthlog/internal/observability"
	"github.com/limbo/healthlog/internal/repository"
	"github.com/limbo/healthlog/pkg/entity"
)

type ActivityService struct {
	repo  repository.ActivityRepositoryI
	types ActivityCatalog
	now   func() time.Time
}

func NewActivityService(activityRepo repository.ActivityRepositoryI, types ActivityCatalog) *ActivityService {
	return NewActivityServiceWithClock(activityRepo, types, time.Now)
}

// NewActivityServiceWithClock is NewActivityService with a custom "now" used
// to check activity dates.
func NewActivityServiceWithClock(activityRepo repository.ActivityRepositoryI, types ActivityCatalog, now func() time.Time) *ActivityService {
	if activityRepo == nil || types == nil {
		log.Fatal("provided nil activityRepo or type catalog")
	}
	if now == nil {
		now = time.Now
	}
	InitValidator()
	return &ActivityService{
		repo:  activityRepo,
		types: types,
		now:   now,
	}
}

func (as *ActivityService) AddActivity(req ActivityRequest) (*ActivityResult, error) {
	if err := as.validateRequest(req); err != nil {
		return nil, err
	}
	id := as.repo.Add(recordFromRequest(req))
	stored, ok := as.repo.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("activity %d vanished right after creation: %w", id, errorvalues.ErrActivityNotFound)
	}
	observability.RecordMutation("add")
	slog.Debug("activity added", slog.Int("id", id), slog.String("type", stored.ActivityType))
	return as.result(stored), nil
}

func (as *ActivityService) UpdateActivity(id int, req ActivityRequest) (*ActivityResult, error) {
	if err := as.validateRequest(req); err != nil {
		return nil, err
	}
	if !as.repo.Update(id, recordFromRequest(req)) {
		return nil, errorvalues.ErrActivityNotFound
	}
	stored, ok := as.repo.GetByID(id)
	if !ok {
		return nil, errorvalues.ErrActivityNotFound
	}
	observability.RecordMutation("update")
	slog.Debug("activity updated", slog.Int("id", id))
	return as.result(stored), nil
}

func (as *ActivityService) DeleteActivity(id int) error {
	if !as.repo.Delete(id) {
		return errorvalues.ErrActivityNotFound
	}
	observability.RecordMutation("delete")
	slog.Debug("activity deleted", slog.Int("id", id))
	return nil
}

func (as *ActivityService) GetActivity(id int) (*ActivityView, error) {
	record, ok := as.repo.GetByID(id)
	if !ok {
		return nil, errorvalues.ErrActivityNotFound
	}
	view := as.view(record)
	return &view, nil
}

func (as *ActivityService) ListActivities() []ActivityView {
	return as.views(as.repo.GetAll())
}

func (as *ActivityService) ActivitiesByDateRange(start, end time.Time) ([]ActivityView, error) {
	if start.After(end) {
		return nil, errorvalues.ErrInvalidDateRange
	}
	return as.views(as.repo.GetByDateRange(start, end)), nil
}

func (as *ActivityService) ActivitiesByType(activityType string) []ActivityView {
	return as.views(as.repo.GetByType(activityType))
}

func (as *ActivityService) ActivitiesByCategory(category entity.Category) []ActivityView {
	return as.views(as.repo.GetByCategory(category))
}

func (as *ActivityService) SearchActivities(term string) ([]ActivityView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, errorvalues.ErrEmptySearchTerm
	}
	return as.views(as.repo.Search(term)), nil
}

func (as *ActivityService) RecentActivities(count int) ([]ActivityView, error) {
	if count < 1 || count > MaxRecentCount {
		return nil, errorvalues.ErrInvalidCount
	}
	return as.views(as.repo.GetRecent(count)), nil
}

func (as *ActivityService) ActivityTypes() []string {
	return as.repo.GetDistinctTypes()
}

func (as *ActivityService) TypeInfo(name string) entity.ActivityTypeInfo {
	return as.types.Resolve(name)
}

func (as *ActivityService) PredefinedTypes() []entity.ActivityTypeInfo {
	return as.types.Predefined()
}

func (as *ActivityService) Count() int {
	return as.repo.Count()
}

func (as *ActivityService) validateRequest(req ActivityRequest) error {
	err := validate.Struct(req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errorvalues.ErrInvalidActivity
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return err
		}
		return errors.New("validation unexpected error: " + err.Error())
	}
	if !dateAllowed(req.Date, as.now()) {
		return errorvalues.ErrDateOutOfRange
	}
	return nil
}

func (as *ActivityService) view(record entity.ActivityRecord) ActivityView {
	info := as.types.Resolve(record.ActivityType)
	return ActivityView{
		ActivityRecord:       record,
		Unit:                 info.Unit,
		WithinRecommendation: info.InRange(record.Value),
	}
}

func (as *ActivityService) views(records []entity.ActivityRecord) []ActivityView {
	result := make([]ActivityView, len(records))
	for i, r := range records {
		result[i] = as.view(r)
	}
	return result
}

func (as *ActivityService) result(record entity.ActivityRecord) *ActivityResult {
	info := as.types.Resolve(record.ActivityType)
	res := &ActivityResult{Activity: as.view(record)}
	if !info.InRange(record.Value) {
		res.Warnings = append(res.Warnings, fmt.Sprintf("value is outside recommended range (%g-%g %s)", info.RecommendedMin, info.RecommendedMax, info.Unit))
	}
	if record.Value == 0 {
		res.Warnings = append(res.Warnings, "value is zero")
	}
	return res
}

func recordFromRequest(req ActivityRequest) entity.ActivityRecord {
	return entity.ActivityRecord{
		ActivityType: strings.TrimSpace(req.ActivityType),
		Date:         req.Date,
		Value:        req.Value,
		Notes:        strings.TrimSpace(req.Notes),
		Duration:     req.Duration,
		Intensity:    req.Intensity,
	}
}

var _ ActivityServiceI = (*ActivityService)(nil)
var _ StatisticsServiceI = (*StatisticsService)(nil)
