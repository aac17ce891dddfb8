package filtering

import (
	"strings"

	"golang.org/x/text/cases"
)

// NormalizeText folds case, trims and collapses internal whitespace so
// "  Juan   PÉREZ " and "juan pérez" compare equal.
func NormalizeText(value string) string {
	collapsed := strings.Join(strings.Fields(value), " ")
	if collapsed == "" {
		return ""
	}
	return cases.Fold().String(collapsed)
}

// MatchesText reports whether any field contains term after normalization.
// An empty term matches everything.
func MatchesText(term string, fields ...string) bool {
	needle := NormalizeText(term)
	if needle == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(NormalizeText(field), needle) {
			return true
		}
	}
	return false
}
