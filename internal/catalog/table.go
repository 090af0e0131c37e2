package catalog

import "github.com/limbo/healthlog/pkg/entity"

var predefined = []entity.ActivityTypeInfo{
	{Name: "Exercise", Unit: "minutes", Description: "Physical activity", RecommendedMin: 30, RecommendedMax: 180, Category: entity.CategoryExercise},
	{Name: "Water", Unit: "liters", Description: "Hydration", RecommendedMin: 2, RecommendedMax: 4, Category: entity.CategoryHydration},
	{Name: "Sleep", Unit: "hours", Description: "Night rest", RecommendedMin: 6, RecommendedMax: 9, Category: entity.CategorySleep},
	{Name: "Meditation", Unit: "minutes", Description: "Mindfulness practice", RecommendedMin: 5, RecommendedMax: 60, Category: entity.CategoryMentalHealth},
	{Name: "Walking", Unit: "minutes", Description: "Light to moderate walk", RecommendedMin: 20, RecommendedMax: 120, Category: entity.CategoryExercise},
	{Name: "Stretching", Unit: "minutes", Description: "Flexibility exercises", RecommendedMin: 10, RecommendedMax: 30, Category: entity.CategoryExercise},
	{Name: "Yoga", Unit: "minutes", Description: "Yoga practice", RecommendedMin: 15, RecommendedMax: 90, Category: entity.CategoryExercise},
	{Name: "Swimming", Unit: "minutes", Description: "Recreational or competitive swimming", RecommendedMin: 20, RecommendedMax: 120, Category: entity.CategoryExercise},
	{Name: "Running", Unit: "minutes", Description: "Light to intense running", RecommendedMin: 15, RecommendedMax: 60, Category: entity.CategoryExercise},
	{Name: "Cycling", Unit: "minutes", Description: "Recreational cycling", RecommendedMin: 30, RecommendedMax: 120, Category: entity.CategoryExercise},
}

// Table is an exact-match lookup over a fixed set of entries. It is read-only
// after construction.
type Table struct {
	order  []entity.ActivityTypeInfo
	byName map[string]entity.ActivityTypeInfo
}

func NewTable(entries []entity.ActivityTypeInfo) *Table {
	t := &Table{
		order:  make([]entity.ActivityTypeInfo, len(entries)),
		byName: make(map[string]entity.ActivityTypeInfo, len(entries)),
	}
	copy(t.order, entries)
	for _, e := range entries {
		t.byName[e.Name] = e
	}
	return t
}

// Resolve matches the canonical key case-sensitively.
func (t *Table) Resolve(name string) (entity.ActivityTypeInfo, bool) {
	info, ok := t.byName[name]
	return info, ok
}

func (t *Table) Entries() []entity.ActivityTypeInfo {
	out := make([]entity.ActivityTypeInfo, len(t.order))
	copy(out, t.order)
	return out
}
