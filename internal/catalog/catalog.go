// Package catalog resolves activity type names to their unit, recommended
// range and category. Names from the predefined table resolve to the stored
// metadata; any other name is classified by ordered keyword rules.
package catalog

import (
	"github.com/limbo/healthlog/pkg/entity"
)

const (
	DefaultUnit        = "units"
	CustomDescription  = "custom activity"
	DefaultRecommended = 100.0
)

// Resolver turns a type name into metadata. ok is false when the resolver has
// nothing to say about the name and the next resolver should be asked.
type Resolver interface {
	Resolve(name string) (info entity.ActivityTypeInfo, ok bool)
}

type Catalog struct {
	table *Table
	chain []Resolver
}

// New builds the catalog over the predefined table with keyword rules as the
// fallback.
func New() *Catalog {
	table := NewTable(predefined)
	return &Catalog{
		table: table,
		chain: []Resolver{table, Rules{}},
	}
}

// Resolve never fails: the rule resolver always produces an answer.
func (c *Catalog) Resolve(name string) entity.ActivityTypeInfo {
	for _, r := range c.chain {
		if info, ok := r.Resolve(name); ok {
			return info
		}
	}
	return fallback(name)
}

func (c *Catalog) IsPredefined(name string) bool {
	_, ok := c.table.Resolve(name)
	return ok
}

// Predefined lists the predefined entries in declaration order.
func (c *Catalog) Predefined() []entity.ActivityTypeInfo {
	return c.table.Entries()
}

func (c *Catalog) PredefinedNames() []string {
	entries := c.table.Entries()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func fallback(name string) entity.ActivityTypeInfo {
	return entity.ActivityTypeInfo{
		Name:           name,
		Unit:           DefaultUnit,
		Description:    CustomDescription,
		RecommendedMin: 0,
		RecommendedMax: DefaultRecommended,
		Category:       entity.CategoryLifestyle,
	}
}
