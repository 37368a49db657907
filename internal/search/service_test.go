package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/gcbaptista/go-directory/internal/errors"
	"github.com/gcbaptista/go-directory/internal/facet"
	"github.com/gcbaptista/go-directory/internal/keyword"
	testutil "github.com/gcbaptista/go-directory/internal/testing"
	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
)

// --- Test Helpers ---

func setupTestSearchService(t *testing.T) *Service {
	t.Helper()
	service, err := NewService(testutil.SeedDataset(t))
	require.NoError(t, err, "Failed to create search service")
	return service
}

func expertIDs(experts []model.Expert) []int {
	ids := make([]int, 0, len(experts))
	for _, e := range experts {
		ids = append(ids, e.ID)
	}
	return ids
}

func institutionIDs(institutions []model.Institution) []int {
	ids := make([]int, 0, len(institutions))
	for _, i := range institutions {
		ids = append(ids, i.ID)
	}
	return ids
}

func entryIDs[T entry](records []T) []int {
	ids := make([]int, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.Entry().ID)
	}
	return ids
}

// --- Test Cases ---

func TestNewService(t *testing.T) {
	t.Run("nil dataset", func(t *testing.T) {
		_, err := NewService(nil)
		if err == nil {
			t.Error("NewService() with nil dataset, wantErr, got nil")
		}
	})
}

func TestExperts(t *testing.T) {
	service := setupTestSearchService(t)

	tests := []struct {
		name  string
		query services.ViewQuery
		want  []int
	}{
		{name: "unconstrained", query: services.ViewQuery{}, want: []int{1, 2, 3, 4}},
		{name: "nationality", query: services.ViewQuery{Facets: facet.State{FacetNationality: facet.Is("中国")}}, want: []int{1}},
		{name: "institution", query: services.ViewQuery{Facets: facet.State{FacetInstitution: facet.Is("英国竞争与市场管理局")}}, want: []int{3, 4}},
		{name: "research tag", query: services.ViewQuery{Facets: facet.State{FacetResearch: facet.Is("反垄断")}}, want: []int{1, 4}},
		{
			name: "facets combine with AND",
			query: services.ViewQuery{Facets: facet.State{
				FacetResearch:    facet.Is("反垄断"),
				FacetInstitution: facet.Is("英国竞争与市场管理局"),
			}},
			want: []int{4},
		},
		{name: "keyword on english name", query: services.ViewQuery{Keyword: keyword.Parse("ZHANG")}, want: []int{1}},
		{name: "keyword on tags", query: services.ViewQuery{Keyword: keyword.Parse("数字")}, want: []int{2, 4}},
		{name: "keyword ignores institution in list view", query: services.ViewQuery{Keyword: keyword.Parse("英国竞争")}, want: []int{}},
		{
			name:  "facet and keyword",
			query: services.ViewQuery{Facets: facet.State{FacetResearch: facet.Is("反垄断")}, Keyword: keyword.Parse("zhao")},
			want:  []int{4},
		},
		{name: "no match", query: services.ViewQuery{Facets: facet.State{FacetNationality: facet.Is("日本")}}, want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.Experts(tt.query)
			assert.Equal(t, tt.want, expertIDs(result.Items))
			assert.Equal(t, len(tt.want), result.Total)
			assert.Equal(t, len(tt.want) == 0, result.Empty)
			assert.Equal(t, 4, result.CollectionSize)
		})
	}
}

func TestExperts_ResultMetadata(t *testing.T) {
	service := setupTestSearchService(t)

	result := service.Experts(services.ViewQuery{
		Facets:  facet.State{FacetNationality: facet.Is("中国"), "unknown": facet.Is("x")},
		Keyword: keyword.Parse("  张 "),
	})

	assert.Equal(t, "张", result.Keyword)
	assert.True(t, result.KeywordActive)
	assert.Equal(t, 1, result.ActiveFacets, "selections for facets the view lacks are not counted")

	disabled := service.Experts(services.ViewQuery{Keyword: keyword.Parse("   ")})
	assert.False(t, disabled.KeywordActive)
	assert.Equal(t, "", disabled.Keyword)
	assert.Len(t, disabled.Items, 4)
}

func TestInstitutions(t *testing.T) {
	service := setupTestSearchService(t)

	assert.Equal(t, []int{3}, institutionIDs(service.Institutions(services.ViewQuery{
		Facets: facet.State{FacetCountry: facet.Is("英国")},
	}).Items))
	assert.Equal(t, []int{2}, institutionIDs(service.Institutions(services.ViewQuery{
		Facets: facet.State{FacetField: facet.Is("反垄断研究")},
	}).Items))
	assert.Equal(t, []int{1}, institutionIDs(service.Institutions(services.ViewQuery{
		Keyword: keyword.Parse("社会科学"),
	}).Items))
	assert.Equal(t, []int{3}, institutionIDs(service.Institutions(services.ViewQuery{
		Keyword: keyword.Parse("cma"),
	}).Items), "description is searched case-insensitively")
}

func TestLawcase(t *testing.T) {
	service := setupTestSearchService(t)

	t.Run("category applies to both partitions", func(t *testing.T) {
		result := service.Lawcase(services.ViewQuery{Facets: facet.State{FacetCategory: facet.Is("中国")}})
		assert.Equal(t, []int{1}, entryIDs(result.Laws.Items))
		assert.Empty(t, result.Cases.Items)
		assert.True(t, result.Cases.Empty)
	})

	t.Run("keyword searches title and summary", func(t *testing.T) {
		result := service.Lawcase(services.ViewQuery{Keyword: keyword.Parse("垄断")})
		assert.Equal(t, []int{1, 3}, entryIDs(result.Laws.Items))
		assert.Equal(t, []int{2, 3}, entryIDs(result.Cases.Items))
	})
}

func TestReports(t *testing.T) {
	service := setupTestSearchService(t)

	assert.Equal(t, []int{1}, entryIDs(service.Reports(services.ViewQuery{
		Facets: facet.State{FacetCategory: facet.Is("年度报告")},
	}).Items))
	assert.Equal(t, []int{2}, entryIDs(service.Reports(services.ViewQuery{
		Keyword: keyword.Parse("数字"),
	}).Items))
	assert.Equal(t, []int{}, entryIDs(service.Reports(services.ViewQuery{
		Facets:  facet.State{FacetCategory: facet.Is("年度报告")},
		Keyword: keyword.Parse("数字"),
	}).Items))
}

func TestFacets(t *testing.T) {
	service := setupTestSearchService(t)

	t.Run("experts", func(t *testing.T) {
		options, err := service.Facets(services.ViewExperts)
		require.NoError(t, err)
		require.Len(t, options, 3)

		assert.Equal(t, FacetNationality, options[0].Name)
		assert.Equal(t, []string{"中国", "法国", "美国", "英国"}, options[0].Values)
		assert.Equal(t, []string{"中国社会科学院", "斯坦福大学反垄断研究中心", "英国竞争与市场管理局"}, options[1].Values)
		assert.Equal(t, "membership", options[2].Kind)
		assert.Equal(t, []string{"反垄断", "国际贸易", "数字平台", "数字经济", "数据治理", "竞争政策", "竞争法"}, options[2].Values)
	})

	t.Run("institutions", func(t *testing.T) {
		options, err := service.Facets(services.ViewInstitutions)
		require.NoError(t, err)
		require.Len(t, options, 2)
		assert.Equal(t, []string{"反垄断研究", "监管机构", "经济学研究"}, options[1].Values)
	})

	t.Run("lawcase merges law and case categories", func(t *testing.T) {
		options, err := service.Facets(services.ViewLawcase)
		require.NoError(t, err)
		require.Len(t, options, 1)
		assert.Equal(t, FacetCategory, options[0].Name)
		assert.Equal(t, []string{"中国", "价格垄断", "平台经济", "并购审查", "欧盟", "美国"}, options[0].Values)
	})

	t.Run("reports", func(t *testing.T) {
		options, err := service.Facets(services.ViewReports)
		require.NoError(t, err)
		assert.Equal(t, []string{"专题分析", "年度报告", "案例集"}, options[0].Values)
	})

	t.Run("unknown view", func(t *testing.T) {
		_, err := service.Facets("patents")
		assert.True(t, errors.Is(err, internalErrors.ErrUnknownView))
	})
}

func TestFacetNames(t *testing.T) {
	names, err := FacetNames(services.ViewExperts)
	require.NoError(t, err)
	assert.Equal(t, []string{FacetNationality, FacetInstitution, FacetResearch}, names)

	for _, view := range Views() {
		_, err := FacetNames(view)
		assert.NoError(t, err, "view %s", view)
	}

	_, err = FacetNames("map")
	assert.Error(t, err)
}

func TestViews_Idempotent(t *testing.T) {
	service := setupTestSearchService(t)
	query := services.ViewQuery{Facets: facet.State{FacetResearch: facet.Is("反垄断")}, Keyword: keyword.Parse("z")}

	first := service.Experts(query)
	second := service.Experts(query)

	assert.Equal(t, first, second)
}
