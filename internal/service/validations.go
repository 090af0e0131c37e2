package service

import (
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const (
	MaxRecentCount  = 1000
	maxFutureOffset = 24 * time.Hour
	maxHistoryYears = 10
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		// Duration of a single activity can't exceed a day
		validate.RegisterValidation("daylength", func(fl validator.FieldLevel) bool {
			d := time.Duration(fl.Field().Int())
			return d >= 0 && d <= 24*time.Hour
		})
	})
}

// dateAllowed accepts dates from ten years ago up to one day ahead of now.
func dateAllowed(date, now time.Time) bool {
	if date.After(now.Add(maxFutureOffset)) {
		return false
	}
	return !date.Before(now.AddDate(-maxHistoryYears, 0, 0))
}
