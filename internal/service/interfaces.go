package service

import (
	"time"

	"github.com/limbo/healthlog/internal/repository"
	"github.com/limbo/healthlog/pkg/entity"
)

type ActivityRequest struct {
	ActivityType string         `validate:"notblank,max=100"`
	Date         time.Time      `validate:"required"`
	Value        float64        `validate:"gte=0,lte=10000"`
	Notes        string         `validate:"max=500"`
	Duration     *time.Duration `validate:"omitempty,daylength"`
	Intensity    int            `validate:"gte=1,lte=10"`
}

// ActivityView is a stored record enriched with what its type says about it.
type ActivityView struct {
	entity.ActivityRecord
	Unit                 string `json:"unit"`
	WithinRecommendation bool   `json:"within_recommendation"`
}

type ActivityResult struct {
	Activity ActivityView `json:"activity"`
	Warnings []string     `json:"warnings,omitempty"`
}

// ActivityCatalog is the part of the type catalog the services rely on.
type ActivityCatalog interface {
	repository.TypeResolver
	Predefined() []entity.ActivityTypeInfo
}

type ActivityServiceI interface {
	// Validates request and stores new record. Result carries warnings about the value
	AddActivity(req ActivityRequest) (*ActivityResult, error)
	// Validates request and replaces record's data, keeping its id and creation time
	UpdateActivity(id int, req ActivityRequest) (*ActivityResult, error)
	DeleteActivity(id int) error
	GetActivity(id int) (*ActivityView, error)
	ListActivities() []ActivityView
	// Lists records with start <= date <= end
	ActivitiesByDateRange(start, end time.Time) ([]ActivityView, error)
	ActivitiesByType(activityType string) []ActivityView
	ActivitiesByCategory(category entity.Category) []ActivityView
	// Case-insensitive substring search over type names and notes
	SearchActivities(term string) ([]ActivityView, error)
	// Latest count records, count must be within 1..1000
	RecentActivities(count int) ([]ActivityView, error)
	// Predefined names followed by custom names present in the log
	ActivityTypes() []string
	TypeInfo(name string) entity.ActivityTypeInfo
	PredefinedTypes() []entity.ActivityTypeInfo
	Count() int
}

type StatisticsServiceI interface {
	// Aggregates records of type within optional inclusive bounds
	Summary(activityType string, start, end *time.Time) entity.StatisticsSummary
	// Totals per calendar period within [start, end]
	DetailedStatistics(activityType string, period entity.ReportPeriod, start, end time.Time) []entity.PeriodStatistic
	// Summary of every known type, keyed by type name
	OverallSummary(start, end time.Time) map[string]entity.StatisticsSummary
	// Day-over-day changes of daily totals
	TrendAnalysis(activityType string, start, end time.Time) []entity.PeriodStatistic
	// Percentage of records within recommended range
	ComplianceRate(activityType string, start, end time.Time) float64
	// Pearson coefficients of daily totals keyed "typeA-typeB"
	Correlations(activityTypes []string, start, end time.Time) map[string]float64
	ComplianceOverview(start, end time.Time) entity.ComplianceOverview
}
