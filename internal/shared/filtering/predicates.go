package filtering

import "strings"

// InSet reports whether value belongs to set. An empty set does not filter.
func InSet[T comparable](value T, set []T) bool {
	if len(set) == 0 {
		return true
	}
	for _, candidate := range set {
		if candidate == value {
			return true
		}
	}
	return false
}

// MatchesID compares identifiers; a non-positive criterion is unset.
func MatchesID(value, criterion int) bool {
	return criterion <= 0 || value == criterion
}

// Completeness narrows records by their completeness flag.
type Completeness string

const (
	CompletenessAll        Completeness = "all"
	CompletenessComplete   Completeness = "complete"
	CompletenessIncomplete Completeness = "incomplete"
)

// ParseCompleteness maps user input to a Completeness, defaulting to all.
func ParseCompleteness(raw string) Completeness {
	switch Completeness(strings.ToLower(strings.TrimSpace(raw))) {
	case CompletenessComplete:
		return CompletenessComplete
	case CompletenessIncomplete:
		return CompletenessIncomplete
	default:
		return CompletenessAll
	}
}

func (c Completeness) Matches(complete bool) bool {
	switch c {
	case CompletenessComplete:
		return complete
	case CompletenessIncomplete:
		return !complete
	default:
		return true
	}
}

// RequireFlag only filters when required is true.
func RequireFlag(required, actual bool) bool {
	return !required || actual
}
