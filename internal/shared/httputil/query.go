package httputil

import (
	"net/url"
	"strconv"
	"strings"
)

// The Query* helpers turn list query parameters into filter patch fields.
// A nil result means the parameter was absent and the criterion is kept.

func QueryString(values url.Values, key string) *string {
	if !values.Has(key) {
		return nil
	}
	value := strings.TrimSpace(values.Get(key))
	return &value
}

// QueryInt treats unparseable numbers as 0, which leaves id filters unset.
func QueryInt(values url.Values, key string) *int {
	raw := QueryString(values, key)
	if raw == nil {
		return nil
	}
	parsed, err := strconv.Atoi(*raw)
	if err != nil {
		parsed = 0
	}
	return &parsed
}

func QueryBool(values url.Values, key string) *bool {
	raw := QueryString(values, key)
	if raw == nil {
		return nil
	}
	parsed, err := strconv.ParseBool(*raw)
	if err != nil {
		parsed = false
	}
	return &parsed
}

// QueryList accepts repeated keys and comma separated values; entries are
// trimmed and upper-cased the way status enums are spelled.
func QueryList[T ~string](values url.Values, key string) *[]T {
	if !values.Has(key) {
		return nil
	}
	result := make([]T, 0)
	for _, raw := range values[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.ToUpper(strings.TrimSpace(part)); trimmed != "" {
				result = append(result, T(trimmed))
			}
		}
	}
	return &result
}
