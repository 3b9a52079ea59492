package model

import (
	"fmt"
	"time"
)

// Layouts accepted for date inputs on the view and complete endpoints,
// tried in order.
var isoDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseISODate parses an ISO-8601 date or datetime string in UTC. The
// time-of-day, when present, is kept as parsed; callers that need a day
// boundary normalize with Midnight themselves.
func ParseISODate(s string) (time.Time, error) {
	for _, layout := range isoDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", s)
}

// Midnight returns the start of t's calendar day in UTC.
func Midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
