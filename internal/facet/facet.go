// Package facet implements discrete equality filters over typed record collections.
//
// A Facet pairs a name with a pure accessor. Scalar facets compare one field for exact,
// case-sensitive equality; tag facets test membership in a string sequence. All active
// facets of a State are combined with AND, and filtering never reorders records.
package facet

import (
	"slices"
)

// Kind distinguishes scalar facets from tag-membership facets.
type Kind int

const (
	// Scalar facets match when the field equals the selected value.
	Scalar Kind = iota
	// Membership facets match when the selected value is one of the record's tags.
	Membership
)

func (k Kind) String() string {
	if k == Membership {
		return "membership"
	}
	return "scalar"
}

// Facet is a typed filter dimension over records of type T.
type Facet[T any] struct {
	name   string
	kind   Kind
	scalar func(T) string
	tags   func(T) []string
}

// Field creates a scalar facet bound to a single string field.
func Field[T any](name string, get func(T) string) Facet[T] {
	return Facet[T]{name: name, kind: Scalar, scalar: get}
}

// Tags creates a membership facet bound to a tag sequence.
func Tags[T any](name string, get func(T) []string) Facet[T] {
	return Facet[T]{name: name, kind: Membership, tags: get}
}

// Name returns the facet identifier used in a State.
func (f Facet[T]) Name() string { return f.name }

// Kind returns whether the facet is scalar or membership based.
func (f Facet[T]) Kind() Kind { return f.kind }

// Match reports whether record satisfies the selection.
// An unconstrained selection matches every record.
func (f Facet[T]) Match(record T, sel Selection) bool {
	want, ok := sel.Value()
	if !ok {
		return true
	}
	if f.kind == Membership {
		return slices.Contains(f.tags(record), want)
	}
	return f.scalar(record) == want
}

// Values returns the distinct values the facet takes across records, sorted.
func (f Facet[T]) Values(records []T) []string {
	seen := make(map[string]struct{})
	values := make([]string, 0)
	add := func(v string) {
		if _, dup := seen[v]; !dup {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}

	for _, record := range records {
		if f.kind == Membership {
			for _, tag := range f.tags(record) {
				add(tag)
			}
			continue
		}
		add(f.scalar(record))
	}

	slices.Sort(values)
	return values
}

// Options returns the selectable values for this facet.
func (f Facet[T]) Options(records []T) Options {
	return Options{Name: f.name, Kind: f.kind.String(), Values: f.Values(records)}
}

// Options is the presentation-ready value list of one facet.
// Views render it with a leading "no constraint" entry.
type Options struct {
	Name   string   `json:"name"`
	Kind   string   `json:"kind"`
	Values []string `json:"values"`
}

// Merge unions several sorted value sets into one sorted, duplicate-free set.
func Merge(sets ...[]string) []string {
	seen := make(map[string]struct{})
	merged := make([]string, 0)
	for _, set := range sets {
		for _, v := range set {
			if _, dup := seen[v]; !dup {
				seen[v] = struct{}{}
				merged = append(merged, v)
			}
		}
	}
	slices.Sort(merged)
	return merged
}

// Active returns the facets that state constrains, in facet order.
// Selections for names that none of the facets carry are not reported.
func Active[T any](facets []Facet[T], state State) []Facet[T] {
	active := make([]Facet[T], 0, len(facets))
	for _, f := range facets {
		if state.Get(f.name).Active() {
			active = append(active, f)
		}
	}
	return active
}

// Filter returns the records matching every active selection in state, in source order.
// Selections for names that none of the facets carry are ignored. The input is never modified.
func Filter[T any](records []T, facets []Facet[T], state State) []T {
	active := Active(facets, state)

	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if matchesAll(record, active, state) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func matchesAll[T any](record T, facets []Facet[T], state State) bool {
	for _, f := range facets {
		if !f.Match(record, state.Get(f.name)) {
			return false
		}
	}
	return true
}
