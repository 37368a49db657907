package search

import (
	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
)

// Facet names shared with the HTTP query parameters of each view.
const (
	FacetNationality = "nationality"
	FacetInstitution = "institution"
	FacetResearch    = "research"
	FacetCountry     = "country"
	FacetField       = "field"
	FacetCategory    = "category"
)

// entry is satisfied by Law, Case and Report through their embedded Publication.
type entry interface {
	Entry() model.Publication
}

var expertNationality = facet.Field(FacetNationality, func(e model.Expert) string { return e.Nationality })
var expertInstitution = facet.Field(FacetInstitution, func(e model.Expert) string { return e.Institution })
var expertResearch = facet.Tags(FacetResearch, func(e model.Expert) []string { return e.ResearchTags })

var expertNameCN = keyword.Text("name_cn", func(e model.Expert) string { return e.NameCN })
var expertNameEN = keyword.Text("name_en", func(e model.Expert) string { return e.NameEN })
var expertTags = keyword.List("research_tags", func(e model.Expert) []string { return e.ResearchTags })

// ExpertsView filters experts by nationality, institution and research tag.
var ExpertsView = View[model.Expert]{
	Name:   services.ViewExperts,
	Facets: []facet.Facet[model.Expert]{expertNationality, expertInstitution, expertResearch},
	Fields: []keyword.Field[model.Expert]{expertNameCN, expertNameEN, expertTags},
}

// InstitutionsView filters institutions by country and field.
var InstitutionsView = View[model.Institution]{
	Name: services.ViewInstitutions,
	Facets: []facet.Facet[model.Institution]{
		facet.Field(FacetCountry, func(i model.Institution) string { return i.Country }),
		facet.Field(FacetField, func(i model.Institution) string { return i.Field }),
	},
	Fields: []keyword.Field[model.Institution]{
		keyword.Text("name", func(i model.Institution) string { return i.Name }),
		keyword.Text("description", func(i model.Institution) string { return i.Description }),
	},
}

// LawsView and CasesView make up the law/case page; they share the category facet.
var LawsView = publicationView[model.Law](services.ViewLawcase)

// CasesView is the case half of the law/case page.
var CasesView = publicationView[model.Case](services.ViewLawcase)

// ReportsView filters reports by category.
var ReportsView = publicationView[model.Report](services.ViewReports)

func publicationView[T entry](name string) View[T] {
	return View[T]{
		Name:   name,
		Facets: []facet.Facet[T]{facet.Field(FacetCategory, publicationText[T](func(p model.Publication) string { return p.Category }))},
		Fields: []keyword.Field[T]{
			keyword.Text("title", publicationText[T](func(p model.Publication) string { return p.Title })),
			keyword.Text("summary", publicationText[T](func(p model.Publication) string { return p.Summary })),
		},
	}
}

// Global search field lists. They differ from the list views: experts are also matched on
// institution and nationality, institutions on country and field, publications on category.
var (
	globalExpertFields = []keyword.Field[model.Expert]{
		expertNameCN,
		expertNameEN,
		keyword.Text("institution", func(e model.Expert) string { return e.Institution }),
		keyword.Text("nationality", func(e model.Expert) string { return e.Nationality }),
		expertTags,
	}

	globalInstitutionFields = []keyword.Field[model.Institution]{
		keyword.Text("name", func(i model.Institution) string { return i.Name }),
		keyword.Text("country", func(i model.Institution) string { return i.Country }),
		keyword.Text("field", func(i model.Institution) string { return i.Field }),
		keyword.Text("description", func(i model.Institution) string { return i.Description }),
	}

	globalLawFields    = publicationFields[model.Law]()
	globalCaseFields   = publicationFields[model.Case]()
	globalReportFields = publicationFields[model.Report]()
)

func publicationFields[T entry]() []keyword.Field[T] {
	return []keyword.Field[T]{
		keyword.Text("title", publicationText[T](func(p model.Publication) string { return p.Title })),
		keyword.Text("summary", publicationText[T](func(p model.Publication) string { return p.Summary })),
		keyword.Text("category", publicationText[T](func(p model.Publication) string { return p.Category })),
	}
}

func publicationText[T entry](get func(model.Publication) string) func(T) string {
	return func(record T) string { return get(record.Entry()) }
}
