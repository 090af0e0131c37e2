package repository

import (
	"time"

	"github.com/limbo/healthlog/pkg/entity"
)

type ActivityRepositoryI interface {
	// Assigns the next id and creation time, stores a copy of the record. Returns assigned id
	Add(record entity.ActivityRecord) int
	// Looks up record by id. ok is false if there is no such record
	GetByID(id int) (entity.ActivityRecord, bool)
	// Replaces every field except ID and CreatedAt, sets UpdatedAt. False if id doesn't exist
	Update(id int, record entity.ActivityRecord) bool
	// Removes record with id. False if id doesn't exist
	Delete(id int) bool
	// Provides independent snapshot of all records in insertion order
	GetAll() []entity.ActivityRecord
	// Lists records of given type, matched case-insensitively
	GetByType(activityType string) []entity.ActivityRecord
	// Lists records dated within [start, end]
	GetByDateRange(start, end time.Time) []entity.ActivityRecord
	// Lists records whose type resolves to category, predefined or custom
	GetByCategory(category entity.Category) []entity.ActivityRecord
	// Lists up to n newest records by date, then creation time
	GetRecent(n int) []entity.ActivityRecord
	// Case-insensitive substring search over type and notes
	Search(term string) []entity.ActivityRecord
	// Sums values per calendar day for type within [start, end]. Days without records are absent
	GetDailyTotals(activityType string, start, end time.Time) map[time.Time]float64
	// Predefined type names followed by custom names seen in records
	GetDistinctTypes() []string
	Count() int
	Exists(id int) bool
	// Returns id the next Add will assign
	NextID() int
}

// TypeResolver is the part of the catalog the repository and services depend on.
type TypeResolver interface {
	Resolve(name string) entity.ActivityTypeInfo
	IsPredefined(name string) bool
	PredefinedNames() []string
}
