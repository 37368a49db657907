// Package testutil provides fixtures and table-test helpers for the directory packages.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
	"github.com/gcbaptista/go-directory/store"
)

// SeedDataset loads the embedded demonstration dataset.
func SeedDataset(t *testing.T) *store.Dataset {
	t.Helper()
	ds, err := store.LoadSeed()
	require.NoError(t, err, "Failed to load seed dataset")
	return ds
}

// NewDataset enriches data into a dataset.
func NewDataset(t *testing.T, data store.Data) *store.Dataset {
	t.Helper()
	return store.New(data)
}

// Expert builds an expert with the fields the facets and keyword fields read.
func Expert(id int, nameCN, nationality string, institutionID int, tags ...string) model.Expert {
	return model.Expert{
		ID:            id,
		NameCN:        nameCN,
		Nationality:   nationality,
		InstitutionID: institutionID,
		ResearchTags:  tags,
	}
}

// Institution builds an institution.
func Institution(id int, name, country, field, description string) model.Institution {
	return model.Institution{
		ID:          id,
		Name:        name,
		Country:     country,
		Field:       field,
		Description: description,
	}
}

// Publication builds the shared shape of a law, case or report with a placeholder link.
func Publication(id int, category, title, summary string) model.Publication {
	return model.Publication{
		ID:       id,
		Category: category,
		Title:    title,
		Summary:  summary,
		Link:     model.NoLink,
	}
}

// ScenarioData is a small dataset covering the documented filter and search examples.
func ScenarioData() store.Data {
	return store.Data{
		Experts: []model.Expert{
			Expert(1, "张三", "中国", 1, "反垄断", "竞争政策"),
			Expert(2, "李四", "美国", 2, "数字经济"),
			Expert(3, "无名", "英国", 99),
		},
		Institutions: []model.Institution{
			Institution(1, "中国社会科学院", "中国", "经济学研究", "综合研究中心"),
			Institution(2, "斯坦福大学", "美国", "反垄断研究", "Antitrust research"),
		},
		Laws: []model.Law{
			{Publication: Publication(1, "中国", "中华人民共和国反垄断法", "规范市场竞争行为")},
			{Publication: Publication(2, "欧盟", "欧盟竞争条例", "统一市场公平竞争")},
		},
		Cases: []model.Case{
			{Publication: Publication(1, "平台经济", "二选一案", "滥用市场支配地位")},
		},
		Reports: []model.Report{
			{Publication: Publication(1, "年度报告", "全球竞争报告", "政策趋势")},
		},
	}
}

// ViewTestCase represents a test case for a list view
type ViewTestCase struct {
	Name         string
	Query        services.ViewQuery
	ExpectedIDs  []int
	ValidateFunc func(t *testing.T, result any)
}

// RunViewTests runs a suite of view tests; id extracts the record id compared against ExpectedIDs.
func RunViewTests[T any](t *testing.T, apply func(services.ViewQuery) services.ViewResult[T], id func(T) int, tests []ViewTestCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			result := apply(tt.Query)

			AssertIDs(t, tt.ExpectedIDs, result.Items, id)
			assert.Equal(t, len(tt.ExpectedIDs), result.Total, "Result count should match")
			assert.Equal(t, len(tt.ExpectedIDs) == 0, result.Empty, "Empty flag should match")

			if tt.ValidateFunc != nil {
				tt.ValidateFunc(t, result)
			}
		})
	}
}

// AssertIDs checks that records carry exactly the expected ids, in order.
func AssertIDs[T any](t *testing.T, expected []int, records []T, id func(T) int) {
	t.Helper()
	got := make([]int, 0, len(records))
	for _, r := range records {
		got = append(got, id(r))
	}
	if expected == nil {
		expected = []int{}
	}
	assert.Equal(t, expected, got, "Record ids should match in source order")
}

// ExpertID returns an expert's id.
func ExpertID(e model.Expert) int { return e.ID }

// InstitutionID returns an institution's id.
func InstitutionID(i model.Institution) int { return i.ID }

// EntryID returns the id of a law, case or report.
func EntryID[T interface{ Entry() model.Publication }](r T) int { return r.Entry().ID }
