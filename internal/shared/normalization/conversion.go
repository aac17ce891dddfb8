package normalization

import (
	"math"
	"strconv"
	"strings"
)

// AsString trims and returns the string representation of value when possible.
// Numbers are rendered without exponent so upstream codes like 1024 survive.
func AsString(value any) string {
	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		if typed == math.Trunc(typed) {
			return strconv.FormatInt(int64(typed), 10)
		}
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	default:
		return ""
	}
}

// AsInt coerces numeric values supported by the REST layer into Go ints.
func AsInt(value any) int {
	switch typed := value.(type) {
	case float64:
		return int(typed)
	case float32:
		return int(typed)
	case int:
		return typed
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return parsed
		}
	}
	return 0
}

// AsBool accepts JSON booleans and the textual/numeric flags some endpoints emit.
func AsBool(value any) bool {
	switch typed := value.(type) {
	case bool:
		return typed
	case float64:
		return typed != 0
	case int:
		return typed != 0
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "true", "1", "si", "sí", "yes":
			return true
		}
	}
	return false
}

// StrictTrue reports whether value is exactly the boolean literal true.
func StrictTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

// AsInterfaceSlice normalizes different collection types into a []any.
func AsInterfaceSlice(value any) []any {
	switch typed := value.(type) {
	case []any:
		return typed
	case []map[string]any:
		items := make([]any, 0, len(typed))
		for _, entry := range typed {
			items = append(items, entry)
		}
		return items
	default:
		return nil
	}
}

// AsStringSlice keeps the non-empty trimmed string entries of a collection.
func AsStringSlice(value any) []string {
	raw := AsInterfaceSlice(value)
	if len(raw) == 0 {
		return nil
	}
	result := make([]string, 0, len(raw))
	for _, item := range raw {
		if s := AsString(item); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// MapFromPayload unwraps common envelope structures (e.g. {"data": {...}})
// into a plain map for normalization routines.
func MapFromPayload(value any) map[string]any {
	if value == nil {
		return nil
	}
	if typed, ok := value.(map[string]any); ok {
		if data, ok := typed["data"].(map[string]any); ok {
			return data
		}
		return typed
	}
	return nil
}

// ItemsFromPayload unwraps list envelopes: a bare array, {"data": [...]},
// {"items": [...]} or {"data": {"items": [...]}}.
func ItemsFromPayload(value any, aliases ...string) []any {
	if items := AsInterfaceSlice(value); items != nil {
		return items
	}
	container, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	keys := append([]string{"data", "items"}, aliases...)
	for _, key := range keys {
		switch nested := container[key].(type) {
		case []any:
			return nested
		case map[string]any:
			if items := ItemsFromPayload(nested, aliases...); items != nil {
				return items
			}
		}
	}
	return nil
}

// ParseIdentifier coerces a caller-supplied identifier into a positive integer.
// Integral numbers and numeric strings are accepted; zero, negatives, fractions,
// NaN and anything non-numeric are rejected.
func ParseIdentifier(value any) (int, bool) {
	var number float64
	switch typed := value.(type) {
	case int:
		number = float64(typed)
	case int32:
		number = float64(typed)
	case int64:
		number = float64(typed)
	case uint:
		number = float64(typed)
	case float32:
		number = float64(typed)
	case float64:
		number = typed
	case string:
		trimmed := strings.TrimSpace(typed)
		if trimmed == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		number = parsed
	default:
		return 0, false
	}
	if math.IsNaN(number) || math.IsInf(number, 0) || number != math.Trunc(number) || number <= 0 || number > math.MaxInt32 {
		return 0, false
	}
	return int(number), true
}
