package services

import (
	"time"

	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/store"
)

// View names accepted by Facets and the /facets route.
const (
	ViewExperts      = "experts"
	ViewInstitutions = "institutions"
	ViewLawcase      = "lawcase"
	ViewReports      = "reports"
)

// Partition names of a global search, in presentation order.
const (
	PartitionExperts      = "experts"
	PartitionInstitutions = "institutions"
	PartitionLaws         = "laws"
	PartitionCases        = "cases"
	PartitionReports      = "reports"
)

// ViewQuery is the state of one list view: its facet selections and its keyword box.
type ViewQuery struct {
	Facets  facet.State
	Keyword keyword.Keyword
}

// ViewResult is the filtered subsequence of one collection.
type ViewResult[T any] struct {
	Items          []T    `json:"items"`
	Total          int    `json:"total"`
	Empty          bool   `json:"empty"`           // nothing matched; views show a "no data" notice
	Keyword        string `json:"keyword"`         // trimmed keyword, "" when the keyword filter is disabled
	KeywordActive  bool   `json:"keyword_active"`  // false when the keyword was empty or whitespace-only
	ActiveFacets   int    `json:"active_facets"`   // number of constrained facets
	CollectionSize int    `json:"collection_size"` // size of the unfiltered collection
}

// LawcaseResult holds the two partitions of the law/case view, filtered by one shared state.
type LawcaseResult struct {
	Laws  ViewResult[model.Law]  `json:"laws"`
	Cases ViewResult[model.Case] `json:"cases"`
}

// Hit is a single record in a global search partition,
// along with the names of the fields that contained the keyword.
type Hit[T any] struct {
	Record       T        `json:"record"`
	FieldMatches []string `json:"field_matches"`
}

// Partition is the result of a global search within one collection.
type Partition[T any] struct {
	Name  string   `json:"name"`
	Title string   `json:"title"`
	Hits  []Hit[T] `json:"hits"`
	Total int      `json:"total"`
}

// GlobalSearchResult holds one independent, source-ordered partition per collection.
// Prompt is set when the keyword was empty: every partition is then empty and the
// caller should ask the user for input instead of showing results.
type GlobalSearchResult struct {
	Query        string                       `json:"query"`
	Prompt       bool                         `json:"prompt"`
	Experts      Partition[model.Expert]      `json:"experts"`
	Institutions Partition[model.Institution] `json:"institutions"`
	Laws         Partition[model.Law]         `json:"laws"`
	Cases        Partition[model.Case]        `json:"cases"`
	Reports      Partition[model.Report]      `json:"reports"`
	Took         time.Duration                `json:"took"`
	QueryID      string                       `json:"query_id"` // unique UUID for this search
}

// Counts returns the number of hits per partition name.
func (r GlobalSearchResult) Counts() map[string]int {
	return map[string]int{
		PartitionExperts:      r.Experts.Total,
		PartitionInstitutions: r.Institutions.Total,
		PartitionLaws:         r.Laws.Total,
		PartitionCases:        r.Cases.Total,
		PartitionReports:      r.Reports.Total,
	}
}

// MapMarker is a country pin on the world map page.
type MapMarker struct {
	Country string  `json:"country"`
	Count   int     `json:"count"`
	X       float64 `json:"x"` // percent from the left edge
	Y       float64 `json:"y"` // percent from the top edge
}

// Lister defines the filtered list views
type Lister interface {
	Experts(q ViewQuery) ViewResult[model.Expert]
	Institutions(q ViewQuery) ViewResult[model.Institution]
	Lawcase(q ViewQuery) LawcaseResult
	Reports(q ViewQuery) ViewResult[model.Report]
}

// Searcher defines the cross-collection keyword search
type Searcher interface {
	Search(k keyword.Keyword) GlobalSearchResult
}

// FacetProvider exposes the selectable facet values of each view
type FacetProvider interface {
	Facets(view string) ([]facet.Options, error)
}

// Directory combines every read operation the presentation layer needs.
type Directory interface {
	Lister
	Searcher
	FacetProvider
	MapMarkers() []MapMarker
	Dataset() *store.Dataset
}
