package search

import (
	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/services"
)

// View describes one list view: the facets it offers and the fields its keyword box searches.
type View[T any] struct {
	Name   string
	Facets []facet.Facet[T]
	Fields []keyword.Field[T]
}

// Apply narrows records to those passing every active facet and, when the keyword is
// enabled, containing it in at least one searchable field. Source order is preserved.
func (v View[T]) Apply(records []T, q services.ViewQuery) services.ViewResult[T] {
	items := keyword.Filter(facet.Filter(records, v.Facets, q.Facets), v.Fields, q.Keyword)

	return services.ViewResult[T]{
		Items:          items,
		Total:          len(items),
		Empty:          len(items) == 0,
		Keyword:        q.Keyword.String(),
		KeywordActive:  !q.Keyword.Disabled(),
		ActiveFacets:   len(facet.Active(v.Facets, q.Facets)),
		CollectionSize: len(records),
	}
}

// Options returns the selectable values of every facet of the view, in facet order.
func (v View[T]) Options(records []T) []facet.Options {
	options := make([]facet.Options, 0, len(v.Facets))
	for _, f := range v.Facets {
		options = append(options, f.Options(records))
	}
	return options
}

// FacetNames returns the names of the view's facets, in facet order.
func (v View[T]) FacetNames() []string {
	names := make([]string, 0, len(v.Facets))
	for _, f := range v.Facets {
		names = append(names, f.Name())
	}
	return names
}
