package service

import (
	"fmt"
	"log"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/limbo/healthlog/internal/observability"
	"github.com/limbo/healthlog/internal/repository"
	"github.com/limbo/healthlog/pkg/entity"
	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// Compliance rate from which a type counts as compliant in the overview.
const CompliantThreshold = 80.0

type StatisticsOpts struct {
	// Upper bound of summaries computed in parallel by OverallSummary
	Workers int
	// Source of "now" for open-ended compliance windows
	Now func() time.Time
}

// StatisticsService derives numbers from repository snapshots. It holds no
// lock of its own: results combining several repository calls may reflect
// mutations that happened between those calls.
type StatisticsService struct {
	repo    repository.ActivityRepositoryI
	types   repository.TypeResolver
	workers int
	now     func() time.Time
}

func NewStatisticsService(repo repository.ActivityRepositoryI, types repository.TypeResolver, opts StatisticsOpts) *StatisticsService {
	if repo == nil || types == nil {
		log.Fatal("on statistics service provided nil repo or type resolver")
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &StatisticsService{
		repo:    repo,
		types:   types,
		workers: opts.Workers,
		now:     opts.Now,
	}
}

// Summary aggregates records of activityType within the optional inclusive
// bounds. With no matching records only ActivityType and Unit are set.
func (ss *StatisticsService) Summary(activityType string, start, end *time.Time) entity.StatisticsSummary {
	observability.RecordStatisticsQuery("summary")
	return ss.summary(activityType, start, end)
}

func (ss *StatisticsService) summary(activityType string, start, end *time.Time) entity.StatisticsSummary {
	info := ss.types.Resolve(activityType)
	activities := ss.filtered(activityType, start, end)
	result := entity.StatisticsSummary{
		ActivityType: activityType,
		Unit:         info.Unit,
	}
	if len(activities) == 0 {
		return result
	}

	values := valuesOf(activities)
	result.Total, _ = stats.Sum(values)
	result.Average, _ = stats.Mean(values)
	result.Maximum, _ = stats.Max(values)
	result.Minimum, _ = stats.Min(values)
	result.Count = len(activities)
	result.Trend = trendSlope(activities)

	windowStart := earliest(activities)
	if start != nil {
		windowStart = *start
	}
	windowEnd := ss.now()
	if end != nil {
		windowEnd = *end
	}
	result.ComplianceRate = ss.complianceRate(activityType, windowStart, windowEnd)
	return result
}

// DetailedStatistics groups records within [start, end] into calendar buckets
// and emits one total per bucket. Buckets come out in the order their first
// record was stored.
func (ss *StatisticsService) DetailedStatistics(activityType string, period entity.ReportPeriod, start, end time.Time) []entity.PeriodStatistic {
	observability.RecordStatisticsQuery("detailed")
	activities := ss.filtered(activityType, &start, &end)
	result := make([]entity.PeriodStatistic, 0)
	if len(activities) == 0 {
		return result
	}

	unit := ss.types.Resolve(activityType).Unit
	bucket := bucketFor(period)
	keys, groups := groupBy(activities, func(a entity.ActivityRecord) time.Time {
		return bucket.key(a.Date)
	})
	for _, key := range keys {
		group := groups[key]
		total, _ := stats.Sum(valuesOf(group))
		intensity, _ := stats.Mean(intensitiesOf(group))
		result = append(result, entity.PeriodStatistic{
			ActivityType: activityType,
			Type:         entity.StatTotal,
			Value:        total,
			Unit:         unit,
			PeriodStart:  key,
			PeriodEnd:    bucket.end(key),
			DataPoints:   len(group),
			AdditionalMetrics: map[string]float64{
				"average_intensity": intensity,
			},
		})
	}
	return result
}

// OverallSummary computes Summary for every known type over [start, end].
func (ss *StatisticsService) OverallSummary(start, end time.Time) map[string]entity.StatisticsSummary {
	observability.RecordStatisticsQuery("overall")
	types := ss.repo.GetDistinctTypes()
	result := make(map[string]entity.StatisticsSummary, len(types))

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(ss.workers)
	for _, activityType := range types {
		g.Go(func() error {
			s := ss.summary(activityType, &start, &end)
			mu.Lock()
			result[activityType] = s
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	slog.Debug("overall summary computed", slog.Int("types", len(types)))
	return result
}

// TrendAnalysis reports day-over-day changes of daily totals. Fewer than two
// days with data give an empty result.
func (ss *StatisticsService) TrendAnalysis(activityType string, start, end time.Time) []entity.PeriodStatistic {
	observability.RecordStatisticsQuery("trend")
	totals := ss.repo.GetDailyTotals(activityType, start, end)
	result := make([]entity.PeriodStatistic, 0)
	if len(totals) < 2 {
		return result
	}

	unit := ss.types.Resolve(activityType).Unit
	dates := sortedDates(totals)
	for i := 1; i < len(dates); i++ {
		prev, cur := totals[dates[i-1]], totals[dates[i]]
		change := cur - prev
		pct := 0.0
		if prev != 0 {
			pct = change / prev * 100
		}
		result = append(result, entity.PeriodStatistic{
			ActivityType:     activityType,
			Type:             entity.StatTrend,
			Value:            change,
			Unit:             unit,
			PeriodStart:      dates[i-1],
			PeriodEnd:        dates[i],
			DataPoints:       2,
			PercentageChange: pct,
		})
	}
	return result
}

// ComplianceRate is the percentage of records within [start, end] whose value
// lies in the recommended range of the type. No records give 0.
func (ss *StatisticsService) ComplianceRate(activityType string, start, end time.Time) float64 {
	observability.RecordStatisticsQuery("compliance")
	return ss.complianceRate(activityType, start, end)
}

func (ss *StatisticsService) complianceRate(activityType string, start, end time.Time) float64 {
	info := ss.types.Resolve(activityType)
	activities := ss.filtered(activityType, &start, &end)
	if len(activities) == 0 {
		return 0
	}
	compliant := 0
	for _, a := range activities {
		if info.InRange(a.Value) {
			compliant++
		}
	}
	return float64(compliant) / float64(len(activities)) * 100
}

// Correlations computes the Pearson coefficient of daily totals for every
// pair of types, keyed "first-second" in argument order. Pairs with fewer
// than two common days, or with a constant series, are left out.
func (ss *StatisticsService) Correlations(activityTypes []string, start, end time.Time) map[string]float64 {
	observability.RecordStatisticsQuery("correlations")
	daily := make([]map[time.Time]float64, len(activityTypes))
	for i, activityType := range activityTypes {
		daily[i] = ss.repo.GetDailyTotals(activityType, start, end)
	}

	result := make(map[string]float64)
	for i := 0; i < len(activityTypes); i++ {
		for j := i + 1; j < len(activityTypes); j++ {
			xs, ys := alignDaily(daily[i], daily[j])
			if len(xs) < 2 {
				continue
			}
			r, ok := pearson(xs, ys)
			if !ok {
				continue
			}
			result[fmt.Sprintf("%s-%s", activityTypes[i], activityTypes[j])] = r
		}
	}
	return result
}

// ComplianceOverview ranks every type with data in [start, end] by compliance
// rate, split at CompliantThreshold.
func (ss *StatisticsService) ComplianceOverview(start, end time.Time) entity.ComplianceOverview {
	observability.RecordStatisticsQuery("compliance_overview")
	overview := entity.ComplianceOverview{
		Compliant:      make([]entity.ComplianceEntry, 0),
		NeedsAttention: make([]entity.ComplianceEntry, 0),
	}
	rates := make([]float64, 0)
	for _, activityType := range ss.repo.GetDistinctTypes() {
		activities := ss.filtered(activityType, &start, &end)
		if len(activities) == 0 {
			continue
		}
		entry := entity.ComplianceEntry{
			ActivityType:   activityType,
			ComplianceRate: ss.complianceRate(activityType, start, end),
			Count:          len(activities),
		}
		rates = append(rates, entry.ComplianceRate)
		if entry.ComplianceRate >= CompliantThreshold {
			overview.Compliant = append(overview.Compliant, entry)
		} else {
			overview.NeedsAttention = append(overview.NeedsAttention, entry)
		}
	}
	sort.SliceStable(overview.Compliant, func(i, j int) bool {
		return overview.Compliant[i].ComplianceRate > overview.Compliant[j].ComplianceRate
	})
	sort.SliceStable(overview.NeedsAttention, func(i, j int) bool {
		return overview.NeedsAttention[i].ComplianceRate < overview.NeedsAttention[j].ComplianceRate
	})
	if len(rates) > 0 {
		overview.AverageRate, _ = stats.Mean(rates)
	}
	return overview
}

func (ss *StatisticsService) filtered(activityType string, start, end *time.Time) []entity.ActivityRecord {
	activities := ss.repo.GetByType(activityType)
	result := make([]entity.ActivityRecord, 0, len(activities))
	for _, a := range activities {
		if start != nil && a.Date.Before(*start) {
			continue
		}
		if end != nil && a.Date.After(*end) {
			continue
		}
		result = append(result, a)
	}
	return result
}
