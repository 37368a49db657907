// Package api provides the gin HTTP handlers for the directory.
package api

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/services"
)

// KeywordParam is the query parameter carrying a list view's keyword.
const KeywordParam = "q"

// ValidationResult holds the result of validation operations
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []*errors.ValidationError `json:"errors,omitempty"`
}

// AddError adds a validation error to the result
func (vr *ValidationResult) AddError(field, message string) {
	vr.Valid = false
	vr.Errors = append(vr.Errors, errors.NewValidationError(field, message))
}

// HasErrors returns true if there are validation errors
func (vr *ValidationResult) HasErrors() bool {
	return len(vr.Errors) > 0
}

// ParseViewQuery turns list view query parameters into a view query.
// Every parameter named after one of facetNames constrains that facet, even when its value is empty;
// the keyword parameter feeds the keyword box. Any other parameter is rejected.
func ParseViewQuery(params url.Values, facetNames []string) (services.ViewQuery, *ValidationResult) {
	result := &ValidationResult{Valid: true}
	query := services.ViewQuery{Facets: facet.State{}}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		values := params[name]
		if len(values) > 1 {
			result.AddError(name, fmt.Sprintf("Parameter '%s' accepts a single value", name))
			continue
		}

		switch {
		case name == KeywordParam:
			query.Keyword = keyword.Parse(values[0])
		case slices.Contains(facetNames, name):
			query.Facets = query.Facets.With(name, facet.Is(values[0]))
		default:
			result.AddError(name, fmt.Sprintf("Unknown parameter '%s'; allowed: %s", name,
				strings.Join(append(slices.Clone(facetNames), KeywordParam), ", ")))
		}
	}

	return query, result
}

// ValidateRecordID validates a detail page id parameter.
// Only a missing id is rejected; whether a present id names a record is left to the lookup.
func ValidateRecordID(id string) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if id == "" {
		result.AddError("id", "ID is required")
	}

	return result
}
