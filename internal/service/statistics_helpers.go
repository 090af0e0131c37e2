package service

import (
	"sort"
	"time"

	"github.com/limbo/healthlog/pkg/entity"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// periodBucket maps a record date to the UTC start of its calendar period.
type periodBucket struct {
	key func(time.Time) time.Time
	end func(time.Time) time.Time
}

func spanEnd(years, months, days int) func(time.Time) time.Time {
	return func(start time.Time) time.Time {
		return start.AddDate(years, months, days).Add(-time.Second)
	}
}

var (
	dailyBucket = periodBucket{
		key: entity.StartOfDay,
		end: spanEnd(0, 0, 1),
	}
	weeklyBucket = periodBucket{
		key: func(t time.Time) time.Time {
			diff := (7 + int(t.Weekday()) - int(time.Monday)) % 7
			return entity.StartOfDay(t).AddDate(0, 0, -diff)
		},
		end: spanEnd(0, 0, 7),
	}
	monthlyBucket = periodBucket{
		key: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		},
		end: spanEnd(0, 1, 0),
	}
	yearlyBucket = periodBucket{
		key: func(t time.Time) time.Time {
			return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		},
		end: spanEnd(1, 0, 0),
	}
)

// bucketFor falls back to daily buckets for custom periods.
func bucketFor(period entity.ReportPeriod) periodBucket {
	switch period {
	case entity.PeriodWeekly:
		return weeklyBucket
	case entity.PeriodMonthly:
		return monthlyBucket
	case entity.PeriodYearly:
		return yearlyBucket
	default:
		return dailyBucket
	}
}

// groupBy returns the distinct keys in first-seen order together with the
// grouped items.
func groupBy[K comparable, V any](items []V, key func(V) K) ([]K, map[K][]V) {
	order := make([]K, 0)
	groups := make(map[K][]V)
	for _, item := range items {
		k := key(item)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], item)
	}
	return order, groups
}

func valuesOf(activities []entity.ActivityRecord) stats.Float64Data {
	values := make(stats.Float64Data, len(activities))
	for i, a := range activities {
		values[i] = a.Value
	}
	return values
}

func intensitiesOf(activities []entity.ActivityRecord) stats.Float64Data {
	values := make(stats.Float64Data, len(activities))
	for i, a := range activities {
		values[i] = float64(a.Intensity)
	}
	return values
}

func earliest(activities []entity.ActivityRecord) time.Time {
	first := activities[0].Date
	for _, a := range activities[1:] {
		if a.Date.Before(first) {
			first = a.Date
		}
	}
	return first
}

// trendSlope fits value against the position of each record once sorted by
// date, so the slope is a change per record and not per day.
func trendSlope(activities []entity.ActivityRecord) float64 {
	if len(activities) < 2 {
		return 0
	}
	sorted := make([]entity.ActivityRecord, len(activities))
	copy(sorted, activities)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, a := range sorted {
		xs[i] = float64(i)
		ys[i] = a.Value
	}
	_, beta := stat.LinearRegression(xs, ys, nil, false)
	return beta
}

func sortedDates(totals map[time.Time]float64) []time.Time {
	dates := make([]time.Time, 0, len(totals))
	for d := range totals {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// alignDaily pairs the totals of the days present in both maps, ordered by day.
func alignDaily(a, b map[time.Time]float64) ([]float64, []float64) {
	common := make(map[time.Time]float64)
	for d, v := range a {
		if _, ok := b[d]; ok {
			common[d] = v
		}
	}
	xs := make([]float64, 0, len(common))
	ys := make([]float64, 0, len(common))
	for _, d := range sortedDates(common) {
		xs = append(xs, a[d])
		ys = append(ys, b[d])
	}
	return xs, ys
}

// pearson reports false when either series is constant, where the
// coefficient is undefined.
func pearson(xs, ys []float64) (float64, bool) {
	vx, err := stats.PopulationVariance(xs)
	if err != nil || vx == 0 {
		return 0, false
	}
	vy, err := stats.PopulationVariance(ys)
	if err != nil || vy == 0 {
		return 0, false
	}
	return stat.Correlation(xs, ys, nil), true
}
