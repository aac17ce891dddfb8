package validation

import "strings"

// RequireText trims value and fails when nothing is left.
func RequireText(field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", Required(field)
	}
	return trimmed, nil
}

// RequireID fails unless id is a positive identifier.
func RequireID(field string, id int) (int, error) {
	if id <= 0 {
		return 0, Required(field)
	}
	return id, nil
}

// RequireOneOf trims value, requires it and checks it against allowed.
// Comparison is exact after trimming.
func RequireOneOf[T ~string](field, value string, allowed ...T) (T, error) {
	trimmed, err := RequireText(field, value)
	if err != nil {
		return "", err
	}
	for _, candidate := range allowed {
		if string(candidate) == trimmed {
			return candidate, nil
		}
	}
	names := make([]string, 0, len(allowed))
	for _, candidate := range allowed {
		names = append(names, string(candidate))
	}
	return "", NotAllowed(field, trimmed, names)
}

// Optional trims value; absent values become the empty string.
func Optional(value string) string {
	return strings.TrimSpace(value)
}

// StrictTrue reports whether value is exactly the boolean literal true.
func StrictTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}
