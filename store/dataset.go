// Package store holds the directory's read-only dataset.
//
// A Dataset is built once from a Data value, enriched once, and then shared by reference
// between every view. Nothing in the process mutates it afterwards, so concurrent readers
// need no locking.
package store

import (
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/model"
)

// Collection names used in lookups and error messages.
const (
	CollectionExpert      = "expert"
	CollectionInstitution = "institution"
	CollectionLaw         = "law"
	CollectionCase        = "case"
	CollectionReport      = "report"
)

// Data is the raw shape of the directory as it is decoded from a data file.
type Data struct {
	Experts      []model.Expert      `json:"experts" yaml:"experts"`
	Institutions []model.Institution `json:"institutions" yaml:"institutions"`
	Laws         []model.Law         `json:"laws" yaml:"laws"`
	Cases        []model.Case        `json:"cases" yaml:"cases"`
	Reports      []model.Report      `json:"reports" yaml:"reports"`
	News         []model.News        `json:"news" yaml:"news"`
}

// Dataset is the immutable directory context.
type Dataset struct {
	experts      []model.Expert
	institutions []model.Institution
	laws         []model.Law
	cases        []model.Case
	reports      []model.Report
	news         []model.News
}

// New enriches data and wraps it in a Dataset. The caller's slices are not retained.
func New(data Data) *Dataset {
	enriched, unresolved := Enrich(data)
	for _, id := range unresolved {
		slog.Warn("expert references unknown institution",
			slog.Int("expert_id", id))
	}

	return &Dataset{
		experts:      enriched.Experts,
		institutions: enriched.Institutions,
		laws:         slices.Clone(data.Laws),
		cases:        slices.Clone(data.Cases),
		reports:      slices.Clone(data.Reports),
		news:         slices.Clone(data.News),
	}
}

// Enrich performs the load-time denormalization pass.
// Each expert's Institution is set to the name of the institution whose id equals
// InstitutionID, or to "" when there is none; such experts are kept and their ids returned.
// Institutions without related-law or related-case lists get empty lists.
// The returned experts and institutions share no slices with data, which is not modified.
func Enrich(data Data) (Data, []int) {
	names := make(map[int]string, len(data.Institutions))
	institutions := make([]model.Institution, len(data.Institutions))
	for i, inst := range data.Institutions {
		inst = cloneInstitution(inst)
		if _, dup := names[inst.ID]; !dup {
			names[inst.ID] = inst.Name
		}
		if inst.RelatedLaws == nil {
			inst.RelatedLaws = []int{}
		}
		if inst.RelatedCases == nil {
			inst.RelatedCases = []int{}
		}
		institutions[i] = inst
	}

	unresolved := make([]int, 0)
	experts := make([]model.Expert, len(data.Experts))
	for i, expert := range data.Experts {
		expert = cloneExpert(expert)
		name, ok := names[expert.InstitutionID]
		if !ok {
			unresolved = append(unresolved, expert.ID)
		}
		expert.Institution = name
		experts[i] = expert
	}

	enriched := data
	enriched.Experts = experts
	enriched.Institutions = institutions
	return enriched, unresolved
}

// Data returns a copy of the dataset in its raw shape, for export.
func (d *Dataset) Data() Data {
	return Data{
		Experts:      d.Experts(),
		Institutions: d.Institutions(),
		Laws:         d.Laws(),
		Cases:        d.Cases(),
		Reports:      d.Reports(),
		News:         d.News(),
	}
}

// Experts returns the expert collection in source order.
func (d *Dataset) Experts() []model.Expert { return cloneAll(d.experts, cloneExpert) }

// Institutions returns the institution collection in source order.
func (d *Dataset) Institutions() []model.Institution {
	return cloneAll(d.institutions, cloneInstitution)
}

// Laws returns the law collection in source order.
func (d *Dataset) Laws() []model.Law { return slices.Clone(d.laws) }

// Cases returns the case collection in source order.
func (d *Dataset) Cases() []model.Case { return slices.Clone(d.cases) }

// Reports returns the report collection in source order.
func (d *Dataset) Reports() []model.Report { return slices.Clone(d.reports) }

// News returns the news items in source order.
func (d *Dataset) News() []model.News { return slices.Clone(d.news) }

// Expert looks up an expert by its id as it appears in a URL.
func (d *Dataset) Expert(ref string) (model.Expert, error) {
	expert, err := find(d.experts, CollectionExpert, ref, func(e model.Expert) int { return e.ID })
	return cloneExpert(expert), err
}

// Institution looks up an institution by id.
func (d *Dataset) Institution(ref string) (model.Institution, error) {
	inst, err := find(d.institutions, CollectionInstitution, ref, func(i model.Institution) int { return i.ID })
	return cloneInstitution(inst), err
}

// Law looks up a law by id.
func (d *Dataset) Law(ref string) (model.Law, error) {
	return find(d.laws, CollectionLaw, ref, func(l model.Law) int { return l.ID })
}

// Case looks up a case by id.
func (d *Dataset) Case(ref string) (model.Case, error) {
	return find(d.cases, CollectionCase, ref, func(c model.Case) int { return c.ID })
}

// Report looks up a report by id.
func (d *Dataset) Report(ref string) (model.Report, error) {
	return find(d.reports, CollectionReport, ref, func(r model.Report) int { return r.ID })
}

// find returns the first record whose id equals ref.
// Refs that are not integers can never match and are reported as not found.
func find[T any](records []T, collection, ref string, idOf func(T) int) (T, error) {
	var zero T
	id, err := strconv.Atoi(strings.TrimSpace(ref))
	if err != nil {
		return zero, errors.NewRecordNotFoundError(collection, ref)
	}
	for _, record := range records {
		if idOf(record) == id {
			return record, nil
		}
	}
	return zero, errors.NewRecordNotFoundError(collection, ref)
}

// cloneAll copies records with clone, keeping a nil input nil.
func cloneAll[T any](records []T, clone func(T) T) []T {
	if records == nil {
		return nil
	}
	out := make([]T, len(records))
	for i, record := range records {
		out[i] = clone(record)
	}
	return out
}

func cloneExpert(e model.Expert) model.Expert {
	e.ResearchTags = slices.Clone(e.ResearchTags)
	e.Outputs = slices.Clone(e.Outputs)
	e.Projects = slices.Clone(e.Projects)
	e.Media = slices.Clone(e.Media)
	return e
}

func cloneInstitution(i model.Institution) model.Institution {
	i.Leaders = slices.Clone(i.Leaders)
	i.RelatedLaws = slices.Clone(i.RelatedLaws)
	i.RelatedCases = slices.Clone(i.RelatedCases)
	return i
}
