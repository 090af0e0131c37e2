package entity

import (
	"strings"
	"time"
)

type ActivityRecord struct {
	ID           int            `json:"id"`
	ActivityType string         `json:"activity_type"`
	Date         time.Time      `json:"date"`
	Value        float64        `json:"value"`
	Notes        string         `json:"notes,omitempty"`
	Duration     *time.Duration `json:"duration,omitempty"`
	Intensity    int            `json:"intensity"` // 1–10 scale
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    *time.Time     `json:"updated_at,omitempty"`
}

// Clone returns a copy that shares no pointers with r.
func (r ActivityRecord) Clone() ActivityRecord {
	c := r
	if r.Duration != nil {
		d := *r.Duration
		c.Duration = &d
	}
	if r.UpdatedAt != nil {
		u := *r.UpdatedAt
		c.UpdatedAt = &u
	}
	return c
}

type Category int

const (
	CategoryExercise Category = iota
	CategoryNutrition
	CategorySleep
	CategoryMentalHealth
	CategoryHydration
	CategoryMedical
	CategoryLifestyle
)

var categoryNames = [...]string{
	CategoryExercise:     "Exercise",
	CategoryNutrition:    "Nutrition",
	CategorySleep:        "Sleep",
	CategoryMentalHealth: "MentalHealth",
	CategoryHydration:    "Hydration",
	CategoryMedical:      "Medical",
	CategoryLifestyle:    "Lifestyle",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory matches a category name case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Category(i), true
		}
	}
	return 0, false
}

type ActivityTypeInfo struct {
	Name           string   `json:"name"`
	Unit           string   `json:"unit"`
	Description    string   `json:"description"`
	RecommendedMin float64  `json:"recommended_min"`
	RecommendedMax float64  `json:"recommended_max"`
	Category       Category `json:"category"`
}

// InRange reports whether v lies within the recommended range, bounds included.
func (t ActivityTypeInfo) InRange(v float64) bool {
	return v >= t.RecommendedMin && v <= t.RecommendedMax
}

type ReportPeriod int

const (
	PeriodDaily ReportPeriod = iota
	PeriodWeekly
	PeriodMonthly
	PeriodYearly
	PeriodCustom
)

var periodNames = [...]string{
	PeriodDaily:   "daily",
	PeriodWeekly:  "weekly",
	PeriodMonthly: "monthly",
	PeriodYearly:  "yearly",
	PeriodCustom:  "custom",
}

func (p ReportPeriod) String() string {
	if p < 0 || int(p) >= len(periodNames) {
		return "unknown"
	}
	return periodNames[p]
}

func ParseReportPeriod(s string) (ReportPeriod, bool) {
	for i, name := range periodNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return ReportPeriod(i), true
		}
	}
	return 0, false
}

type StatisticType int

const (
	StatTotal StatisticType = iota
	StatAverage
	StatMaximum
	StatMinimum
	StatTrend
	StatCompliance
)

var statisticNames = [...]string{
	StatTotal:      "total",
	StatAverage:    "average",
	StatMaximum:    "maximum",
	StatMinimum:    "minimum",
	StatTrend:      "trend",
	StatCompliance: "compliance",
}

func (s StatisticType) String() string {
	if s < 0 || int(s) >= len(statisticNames) {
		return "unknown"
	}
	return statisticNames[s]
}

func (s StatisticType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type StatisticsSummary struct {
	ActivityType   string  `json:"activity_type"`
	Unit           string  `json:"unit"`
	Total          float64 `json:"total"`
	Average        float64 `json:"average"`
	Maximum        float64 `json:"maximum"`
	Minimum        float64 `json:"minimum"`
	Count          int     `json:"count"`
	Trend          float64 `json:"trend"`
	ComplianceRate float64 `json:"compliance_rate"`
}

type PeriodStatistic struct {
	ActivityType      string             `json:"activity_type"`
	Type              StatisticType      `json:"type"`
	Value             float64            `json:"value"`
	Unit              string             `json:"unit"`
	PeriodStart       time.Time          `json:"period_start"`
	PeriodEnd         time.Time          `json:"period_end"`
	DataPoints        int                `json:"data_points"`
	PercentageChange  float64            `json:"percentage_change"`
	AdditionalMetrics map[string]float64 `json:"additional_metrics,omitempty"`
}

type ComplianceEntry struct {
	ActivityType   string  `json:"activity_type"`
	ComplianceRate float64 `json:"compliance_rate"`
	Count          int     `json:"count"`
}

type ComplianceOverview struct {
	Compliant      []ComplianceEntry `json:"compliant"`
	NeedsAttention []ComplianceEntry `json:"needs_attention"`
	AverageRate    float64           `json:"average_rate"`
}

// StartOfDay strips the time of day. The calendar date is read in the
// location of t and the result is always UTC, so equal dates compare equal as
// map keys whatever zone they were recorded in.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
