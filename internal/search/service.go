// Package search implements the directory's list views and its cross-collection search.
//
// Every operation is a pure function of the read-only dataset and the caller's query:
// results are new slices in source order and nothing is cached between calls.
package search

import (
	"fmt"

	"github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
	"github.com/gcbaptista/go-directory/store"
)

// Service provides view filtering and global search over a dataset.
type Service struct {
	dataset *store.Dataset
}

var _ services.Directory = (*Service)(nil)

// NewService creates a new search service over dataset.
func NewService(dataset *store.Dataset) (*Service, error) {
	if dataset == nil {
		return nil, fmt.Errorf("dataset cannot be nil")
	}
	return &Service{dataset: dataset}, nil
}

// Dataset returns the dataset the service reads from.
func (s *Service) Dataset() *store.Dataset {
	return s.dataset
}

// Experts filters the expert list view.
func (s *Service) Experts(q services.ViewQuery) services.ViewResult[model.Expert] {
	return ExpertsView.Apply(s.dataset.Experts(), q)
}

// Institutions filters the institution list view.
func (s *Service) Institutions(q services.ViewQuery) services.ViewResult[model.Institution] {
	return InstitutionsView.Apply(s.dataset.Institutions(), q)
}

// Lawcase filters laws and cases with the same category selection and keyword.
func (s *Service) Lawcase(q services.ViewQuery) services.LawcaseResult {
	return services.LawcaseResult{
		Laws:  LawsView.Apply(s.dataset.Laws(), q),
		Cases: CasesView.Apply(s.dataset.Cases(), q),
	}
}

// Reports filters the report list view.
func (s *Service) Reports(q services.ViewQuery) services.ViewResult[model.Report] {
	return ReportsView.Apply(s.dataset.Reports(), q)
}

// Facets returns the option lists a view offers for its facet selectors.
// The law/case view has one category facet whose values span both collections.
func (s *Service) Facets(view string) ([]facet.Options, error) {
	switch view {
	case services.ViewExperts:
		return ExpertsView.Options(s.dataset.Experts()), nil
	case services.ViewInstitutions:
		return InstitutionsView.Options(s.dataset.Institutions()), nil
	case services.ViewLawcase:
		laws := LawsView.Options(s.dataset.Laws())
		cases := CasesView.Options(s.dataset.Cases())
		merged := make([]facet.Options, len(laws))
		for i := range laws {
			merged[i] = laws[i]
			merged[i].Values = facet.Merge(laws[i].Values, cases[i].Values)
		}
		return merged, nil
	case services.ViewReports:
		return ReportsView.Options(s.dataset.Reports()), nil
	default:
		return nil, errors.NewUnknownViewError(view)
	}
}

// FacetNames returns the facet names a view accepts, or an error for an unknown view.
func FacetNames(view string) ([]string, error) {
	switch view {
	case services.ViewExperts:
		return ExpertsView.FacetNames(), nil
	case services.ViewInstitutions:
		return InstitutionsView.FacetNames(), nil
	case services.ViewLawcase:
		return LawsView.FacetNames(), nil
	case services.ViewReports:
		return ReportsView.FacetNames(), nil
	default:
		return nil, errors.NewUnknownViewError(view)
	}
}

// Views lists the names of all list views.
func Views() []string {
	return []string{services.ViewExperts, services.ViewInstitutions, services.ViewLawcase, services.ViewReports}
}
