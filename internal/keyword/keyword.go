// Package keyword implements case-insensitive substring matching across designated record fields.
package keyword

import (
	"strings"
)

// Keyword is a parsed free-text search term.
// The zero value is disabled and matches everything.
type Keyword struct {
	text   string
	needle string
}

// Parse trims raw and lower-cases it once for matching.
// Empty or whitespace-only input yields a disabled keyword.
func Parse(raw string) Keyword {
	text := strings.TrimSpace(raw)
	return Keyword{text: text, needle: strings.ToLower(text)}
}

// Disabled reports whether the keyword imposes no constraint.
func (k Keyword) Disabled() bool {
	return k.needle == ""
}

// String returns the trimmed keyword as the user typed it.
func (k Keyword) String() string {
	return k.text
}

// Contains reports whether value contains the keyword, ignoring case.
func (k Keyword) Contains(value string) bool {
	return strings.Contains(strings.ToLower(value), k.needle)
}

// Field is a searchable accessor over records of type T.
// Exactly one of text or list is set.
type Field[T any] struct {
	name string
	text func(T) string
	list func(T) []string
}

// Text creates a searchable scalar field.
func Text[T any](name string, get func(T) string) Field[T] {
	return Field[T]{name: name, text: get}
}

// List creates a searchable sequence field; it matches when any element does.
func List[T any](name string, get func(T) []string) Field[T] {
	return Field[T]{name: name, list: get}
}

// Name returns the field name reported in match details.
func (f Field[T]) Name() string { return f.name }

// Match reports whether this field of record contains the keyword.
func (f Field[T]) Match(record T, k Keyword) bool {
	if f.list != nil {
		for _, item := range f.list(record) {
			if k.Contains(item) {
				return true
			}
		}
		return false
	}
	return k.Contains(f.text(record))
}

// Match reports whether any of the fields of record contains the keyword.
// A disabled keyword matches every record.
func Match[T any](record T, fields []Field[T], k Keyword) bool {
	if k.Disabled() {
		return true
	}
	for _, f := range fields {
		if f.Match(record, k) {
			return true
		}
	}
	return false
}

// MatchedFields returns the names of the fields of record that contain the keyword,
// in field order. A disabled keyword reports no fields.
func MatchedFields[T any](record T, fields []Field[T], k Keyword) []string {
	matched := make([]string, 0)
	if k.Disabled() {
		return matched
	}
	for _, f := range fields {
		if f.Match(record, k) {
			matched = append(matched, f.name)
		}
	}
	return matched
}

// Filter returns the records matching the keyword, preserving source order.
func Filter[T any](records []T, fields []Field[T], k Keyword) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if Match(record, fields, k) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
