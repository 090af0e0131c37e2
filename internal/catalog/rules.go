package catalog

import (
	"strings"

	"github.com/limbo/healthlog/pkg/entity"
)

// rule maps a set of substrings to a result. The first rule with any matching
// substring wins, so order inside a rule list matters.
type rule[T any] struct {
	keywords []string
	result   T
}

var (
	exerciseWords = []string{
		"exercício", "exercicio", "exercise", "corrida", "running", "jog",
		"caminhada", "walk", "yoga", "musculação", "musculacao", "natação",
		"natacao", "swim", "academia", "gym", "fitness", "workout",
	}
	hydrationWords = []string{
		"água", "agua", "water", "líquido", "liquido", "bebida", "drink",
		"hidratação", "hidratacao", "hydration",
	}
	sleepWords = []string{
		"sono", "sleep", "dormir", "descanso", "repouso",
	}
	weightWords = []string{
		"peso", "weight", "balança", "balanca",
	}
	pressureWords = []string{
		"pressão", "pressao", "pressure", "sanguínea", "sanguinea",
	}
	glucoseWords = []string{
		"glicose", "glucose", "açúcar", "acucar", "sugar",
	}
	mentalWords = []string{
		"meditação", "meditacao", "meditation", "mindfulness", "relaxamento",
		"relaxation", "respiração", "respiracao", "breathing",
	}
	nutritionWords = []string{
		"comida", "food", "alimento", "refeição", "refeicao", "meal", "dieta",
		"diet", "caloria", "calorie",
	}
	medicalWords = concat(pressureWords, glucoseWords, []string{
		"medicamento", "medication", "vitamina", "vitamin", "suplemento",
		"supplement",
	})
)

var unitRules = []rule[string]{
	{keywords: exerciseWords, result: "minutes"},
	{keywords: hydrationWords, result: "liters"},
	{keywords: sleepWords, result: "hours"},
	{keywords: weightWords, result: "kg"},
	{keywords: pressureWords, result: "mmHg"},
	{keywords: glucoseWords, result: "mg/dL"},
}

var categoryRules = []rule[entity.Category]{
	{keywords: exerciseWords, result: entity.CategoryExercise},
	{keywords: hydrationWords, result: entity.CategoryHydration},
	{keywords: sleepWords, result: entity.CategorySleep},
	{keywords: mentalWords, result: entity.CategoryMentalHealth},
	{keywords: nutritionWords, result: entity.CategoryNutrition},
	{keywords: medicalWords, result: entity.CategoryMedical},
}

// Rules derives metadata for names outside the predefined table. It holds no
// state: the same name always yields the same info.
type Rules struct{}

func (Rules) Resolve(name string) (entity.ActivityTypeInfo, bool) {
	info := fallback(name)
	info.Unit = InferUnit(name)
	info.Category = InferCategory(name)
	return info, true
}

func InferUnit(name string) string {
	return firstMatch(unitRules, strings.ToLower(name), DefaultUnit)
}

func InferCategory(name string) entity.Category {
	return firstMatch(categoryRules, strings.ToLower(name), entity.CategoryLifestyle)
}

func firstMatch[T any](rules []rule[T], lower string, def T) T {
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.result
			}
		}
	}
	return def
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
