package filtering

import "strings"

// Column maps a record to one exported cell.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// ExportDelimited renders a header row followed by one row per record. Every
// record cell is double-quoted and every row ends with a newline. ok is false
// when there is nothing to export.
func ExportDelimited[T any](items []T, columns []Column[T]) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	var builder strings.Builder
	for index, column := range columns {
		if index > 0 {
			builder.WriteByte(',')
		}
		builder.WriteString(column.Header)
	}
	builder.WriteByte('\n')
	for _, item := range items {
		for index, column := range columns {
			if index > 0 {
				builder.WriteByte(',')
			}
			builder.WriteByte('"')
			builder.WriteString(strings.ReplaceAll(column.Value(item), `"`, `""`))
			builder.WriteByte('"')
		}
		builder.WriteByte('\n')
	}
	return builder.String(), true
}
