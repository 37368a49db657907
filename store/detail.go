package store

import (
	"slices"

	"github.com/gcbaptista/go-directory/model"
)

// InstitutionDetail is an institution together with the laws and cases it references.
type InstitutionDetail struct {
	model.Institution
	Laws  []model.Law  `json:"laws"`
	Cases []model.Case `json:"cases"`
}

// InstitutionDetail resolves an institution's related law and case ids.
// Related records keep the order of their own collections; ids that match nothing are dropped.
func (d *Dataset) InstitutionDetail(ref string) (InstitutionDetail, error) {
	inst, err := d.Institution(ref)
	if err != nil {
		return InstitutionDetail{}, err
	}

	detail := InstitutionDetail{
		Institution: inst,
		Laws:        make([]model.Law, 0),
		Cases:       make([]model.Case, 0),
	}
	for _, law := range d.laws {
		if slices.Contains(inst.RelatedLaws, law.ID) {
			detail.Laws = append(detail.Laws, law)
		}
	}
	for _, c := range d.cases {
		if slices.Contains(inst.RelatedCases, c.ID) {
			detail.Cases = append(detail.Cases, c)
		}
	}
	return detail, nil
}

// Metric is one labelled count on the home page overview.
type Metric struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Overview returns the home page summary counts. Laws and cases are counted together.
func (d *Dataset) Overview() []Metric {
	return []Metric{
		{Label: "专家数量", Value: len(d.experts)},
		{Label: "机构数量", Value: len(d.institutions)},
		{Label: "法规案例数量", Value: len(d.laws) + len(d.cases)},
		{Label: "报告数量", Value: len(d.reports)},
	}
}
