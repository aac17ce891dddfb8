package validation

import (
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListEntry is either a StringEntry or a ValueEntry. A nil ListEntry stands
// for an entry whose shape was not recognized.
type ListEntry interface {
	entryValue() (string, bool)
}

// StringEntry is a plain text list item.
type StringEntry string

func (e StringEntry) entryValue() (string, bool) { return string(e), true }

// ValueEntry is a catalog item as sent by selectors: {"id": 3, "value": "..."}.
type ValueEntry struct {
	ID    any    `json:"id,omitempty"`
	Value string `json:"value"`
}

func (e ValueEntry) entryValue() (string, bool) { return e.Value, true }

// NormalizeEntry reduces an entry to its trimmed text. Unknown shapes and
// blank values report false.
func NormalizeEntry(entry ListEntry) (string, bool) {
	if entry == nil {
		return "", false
	}
	value, ok := entry.entryValue()
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}

// NormalizeEntries keeps the usable entries in order and drops the rest.
func NormalizeEntries(entries []ListEntry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if value, ok := NormalizeEntry(entry); ok {
			result = append(result, value)
		}
	}
	return result
}

// ListEntries decodes a JSON array mixing strings and {"value": ...} objects.
type ListEntries []ListEntry

func (l *ListEntries) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	entries := make(ListEntries, 0, len(raw))
	for _, item := range raw {
		entries = append(entries, entryFromAny(item))
	}
	*l = entries
	return nil
}

func entryFromAny(item any) ListEntry {
	switch typed := item.(type) {
	case string:
		return StringEntry(typed)
	case map[string]any:
		value, ok := typed["value"].(string)
		if !ok {
			return nil
		}
		return ValueEntry{ID: typed["id"], Value: value}
	default:
		return nil
	}
}

// Normalize is a convenience wrapper around NormalizeEntries.
func (l ListEntries) Normalize() []string {
	return NormalizeEntries(l)
}
