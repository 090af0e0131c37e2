package httputil

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// ParseTime accepts RFC 3339 timestamps and plain dates. Plain dates are
// taken as midnight UTC.
func ParseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is neither RFC 3339 nor %s", value, DateLayout)
	}
	return t, nil
}

// OptionalTime returns nil when the query parameter is absent.
func OptionalTime(q url.Values, key string) (*time.Time, error) {
	raw := q.Get(key)
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	t, err := ParseTime(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s: %w", key, err)
	}
	return &t, nil
}

// TimeOr parses the query parameter, using fallback when it is absent.
func TimeOr(q url.Values, key string, fallback time.Time) (time.Time, error) {
	t, err := OptionalTime(q, key)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return fallback, nil
	}
	return *t, nil
}

// EndOfDayIfDate moves plain dates to the last second of that day so that
// a "to" bound covers the whole day.
func EndOfDayIfDate(raw string, t time.Time) time.Time {
	if _, err := time.Parse(DateLayout, strings.TrimSpace(raw)); err == nil {
		return t.AddDate(0, 0, 1).Add(-time.Second)
	}
	return t
}
