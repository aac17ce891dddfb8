package filtering

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.DateOnly,
	"02/01/2006",
}

// ParseDate reads the date formats emitted by the upstream API. Values
// without an offset are interpreted in loc.
func ParseDate(raw string, loc *time.Location) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, loc); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// DateRange is an inclusive calendar range. From starts at 00:00:00.000 and
// To ends at 23:59:59.999; an empty bound leaves that side open.
type DateRange struct {
	From     string
	To       string
	Location *time.Location
}

// IsSet reports whether at least one usable bound is present.
func (r DateRange) IsSet() bool {
	_, hasFrom := r.lower()
	_, hasTo := r.upper()
	return hasFrom || hasTo
}

// Contains reports whether the record date falls inside the range. When a
// bound is set, records without a readable date are excluded.
func (r DateRange) Contains(raw string) bool {
	if !r.IsSet() {
		return true
	}
	value, ok := ParseDate(raw, r.Location)
	if !ok {
		return false
	}
	if lower, ok := r.lower(); ok && value.Before(lower) {
		return false
	}
	if upper, ok := r.upper(); ok && value.After(upper) {
		return false
	}
	return true
}

func (r DateRange) lower() (time.Time, bool) {
	parsed, ok := ParseDate(r.From, r.Location)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, parsed.Location()), true
}

func (r DateRange) upper() (time.Time, bool) {
	parsed, ok := ParseDate(r.To, r.Location)
	if !ok {
		return time.Time{}, false
	}
	y, m, d := parsed.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), parsed.Location()), true
}
