package repository

import (
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/limbo/healthlog/internal/observability"
	"github.com/limbo/healthlog/pkg/entity"
)

// ActivityRepository keeps every record in process memory. A single lock
// guards both the records and the id counter; no reference to a stored record
// ever leaves the repository.
type ActivityRepository struct {
	mu         sync.RWMutex
	activities []*entity.ActivityRecord
	nextID     int
	types      TypeResolver
	now        func() time.Time
}

func NewActivityRepo(types TypeResolver) *ActivityRepository {
	return NewActivityRepoWithClock(types, time.Now)
}

// NewActivityRepoWithClock is NewActivityRepo with a custom source of
// creation and update timestamps.
func NewActivityRepoWithClock(types TypeResolver, now func() time.Time) *ActivityRepository {
	if types == nil {
		log.Fatal("activity repository: provided nil type resolver")
	}
	if now == nil {
		now = time.Now
	}
	return &ActivityRepository{
		activities: make([]*entity.ActivityRecord, 0, 64),
		nextID:     1,
		types:      types,
		now:        now,
	}
}

func (repo *ActivityRepository) Add(record entity.ActivityRecord) int {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	stored := record.Clone()
	stored.ID = repo.nextID
	stored.CreatedAt = repo.now()
	stored.UpdatedAt = nil
	repo.nextID++
	repo.activities = append(repo.activities, &stored)
	observability.RecordStored(len(repo.activities))
	return stored.ID
}

func (repo *ActivityRepository) GetByID(id int) (entity.ActivityRecord, bool) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if i := repo.indexOf(id); i >= 0 {
		return repo.activities[i].Clone(), true
	}
	return entity.ActivityRecord{}, false
}

func (repo *ActivityRepository) Update(id int, record entity.ActivityRecord) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return false
	}
	existing := repo.activities[i]
	fresh := record.Clone()
	existing.ActivityType = fresh.ActivityType
	existing.Date = fresh.Date
	existing.Value = fresh.Value
	existing.Notes = fresh.Notes
	existing.Duration = fresh.Duration
	existing.Intensity = fresh.Intensity
	updated := repo.now()
	existing.UpdatedAt = &updated
	return true
}

func (repo *ActivityRepository) Delete(id int) bool {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	i := repo.indexOf(id)
	if i < 0 {
		return false
	}
	repo.activities = append(repo.activities[:i], repo.activities[i+1:]...)
	observability.RecordStored(len(repo.activities))
	return true
}

func (repo *ActivityRepository) GetAll() []entity.ActivityRecord {
	return repo.filter(func(*entity.ActivityRecord) bool { return true })
}

func (repo *ActivityRepository) GetByType(activityType string) []entity.ActivityRecord {
	return repo.filter(func(a *entity.ActivityRecord) bool {
		return strings.EqualFold(a.ActivityType, activityType)
	})
}

func (repo *ActivityRepository) GetByDateRange(start, end time.Time) []entity.ActivityRecord {
	return repo.filter(func(a *entity.ActivityRecord) bool {
		return inRange(a.Date, start, end)
	})
}

func (repo *ActivityRepository) GetByCategory(category entity.Category) []entity.ActivityRecord {
	return repo.filter(func(a *entity.ActivityRecord) bool {
		return repo.types.Resolve(a.ActivityType).Category == category
	})
}

func (repo *ActivityRepository) GetRecent(n int) []entity.ActivityRecord {
	all := repo.GetAll()
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID > all[j].ID
	})
	if n < 0 {
		n = 0
	}
	if n < len(all) {
		all = all[:n]
	}
	return all
}

func (repo *ActivityRepository) Search(term string) []entity.ActivityRecord {
	needle := strings.ToLower(term)
	return repo.filter(func(a *entity.ActivityRecord) bool {
		return strings.Contains(strings.ToLower(a.ActivityType), needle) ||
			strings.Contains(strings.ToLower(a.Notes), needle)
	})
}

func (repo *ActivityRepository) GetDailyTotals(activityType string, start, end time.Time) map[time.Time]float64 {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	totals := make(map[time.Time]float64)
	for _, a := range repo.activities {
		if !strings.EqualFold(a.ActivityType, activityType) || !inRange(a.Date, start, end) {
			continue
		}
		totals[entity.StartOfDay(a.Date)] += a.Value
	}
	return totals
}

func (repo *ActivityRepository) GetDistinctTypes() []string {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	seen := make(map[string]struct{})
	types := make([]string, 0)
	add := func(name string) {
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		types = append(types, name)
	}
	for _, name := range repo.types.PredefinedNames() {
		add(name)
	}
	for _, a := range repo.activities {
		if !repo.types.IsPredefined(a.ActivityType) {
			add(a.ActivityType)
		}
	}
	return types
}

func (repo *ActivityRepository) Count() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return len(repo.activities)
}

func (repo *ActivityRepository) Exists(id int) bool {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.indexOf(id) >= 0
}

func (repo *ActivityRepository) NextID() int {
	repo.mu.RLock()
	defer repo.mu.RUnlock()
	return repo.nextID
}

func (repo *ActivityRepository) filter(keep func(*entity.ActivityRecord) bool) []entity.ActivityRecord {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	result := make([]entity.ActivityRecord, 0)
	for _, a := range repo.activities {
		if keep(a) {
			result = append(result, a.Clone())
		}
	}
	return result
}

// indexOf must be called with the lock held. Records are appended with
// increasing ids and deletion keeps order, so the slice stays sorted by id.
func (repo *ActivityRepository) indexOf(id int) int {
	i := sort.Search(len(repo.activities), func(i int) bool {
		return repo.activities[i].ID >= id
	})
	if i < len(repo.activities) && repo.activities[i].ID == id {
		return i
	}
	return -1
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

var _ ActivityRepositoryI = (*ActivityRepository)(nil)
