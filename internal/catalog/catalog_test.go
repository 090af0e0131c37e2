package catalog_test

import (
	"testing"

	"github.com/limbo/healthlog/internal/catalog"
	"github.com/limbo/healthlog/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestResolvePredefined(t *testing.T) {
	c := catalog.New()
	info := c.Resolve("Exercise")
	assert.Equal(t, "minutes", info.Unit)
	assert.Equal(t, 30.0, info.RecommendedMin)
	assert.Equal(t, 180.0, info.RecommendedMax)
	assert.Equal(t, entity.CategoryExercise, info.Category)
	assert.True(t, c.IsPredefined("Water"))
	// predefined keys are exact literals
	assert.False(t, c.IsPredefined("water"))
}

func TestResolveCustom(t *testing.T) {
	c := catalog.New()
	testCases := []struct {
		Desc     string
		Name     string
		Unit     string
		Category entity.Category
	}{
		{Desc: "portuguese run", Name: "corrida matinal", Unit: "minutes", Category: entity.CategoryExercise},
		{Desc: "lower-cased predefined name", Name: "water", Unit: "liters", Category: entity.CategoryHydration},
		{Desc: "sleep keyword", Name: "Sono da tarde", Unit: "hours", Category: entity.CategorySleep},
		{Desc: "weight has unit but no category", Name: "Peso corporal", Unit: "kg", Category: entity.CategoryLifestyle},
		{Desc: "pressure is medical", Name: "Pressão arterial", Unit: "mmHg", Category: entity.CategoryMedical},
		{Desc: "glucose is medical", Name: "blood glucose", Unit: "mg/dL", Category: entity.CategoryMedical},
		{Desc: "mental health has default unit", Name: "Respiração guiada", Unit: "units", Category: entity.CategoryMentalHealth},
		{Desc: "nutrition", Name: "Calories per meal", Unit: "units", Category: entity.CategoryNutrition},
		{Desc: "exercise beats hydration", Name: "swim and drink", Unit: "minutes", Category: entity.CategoryExercise},
		{Desc: "hydration beats sleep", Name: "water before sleep", Unit: "liters", Category: entity.CategoryHydration},
		{Desc: "vitamins", Name: "Vitamina D", Unit: "units", Category: entity.CategoryMedical},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			info := c.Resolve(tc.Name)
			assert.Equal(t, tc.Name, info.Name)
			assert.Equal(t, tc.Unit, info.Unit)
			assert.Equal(t, tc.Category, info.Category)
			assert.Equal(t, catalog.CustomDescription, info.Description)
			assert.Equal(t, 0.0, info.RecommendedMin)
			assert.Equal(t, 100.0, info.RecommendedMax)
		})
	}
}

func TestResolveNoKeyword(t *testing.T) {
	c := catalog.New()
	info := c.Resolve("Reading")
	assert.Equal(t, "units", info.Unit)
	assert.Equal(t, entity.CategoryLifestyle, info.Category)
	assert.Equal(t, 0.0, info.RecommendedMin)
	assert.Equal(t, 100.0, info.RecommendedMax)
	// derivation is pure
	assert.Equal(t, info, c.Resolve("Reading"))
}

func TestPredefinedOrder(t *testing.T) {
	c := catalog.New()
	names := c.PredefinedNames()
	assert.Equal(t, []string{
		"Exercise", "Water", "Sleep", "Meditation", "Walking",
		"Stretching", "Yoga", "Swimming", "Running", "Cycling",
	}, names)

	entries := c.Predefined()
	entries[0].Unit = "tampered"
	assert.Equal(t, "minutes", c.Resolve("Exercise").Unit)
	for _, e := range c.Predefined() {
		assert.LessOrEqual(t, e.RecommendedMin, e.RecommendedMax, e.Name)
	}
}
