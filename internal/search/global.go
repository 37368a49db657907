package search

import (
	"time"

	"github.com/google/uuid"

	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/services"
)

// Section titles of the search results page.
const (
	titleExperts      = "专家"
	titleInstitutions = "机构"
	titleLaws         = "法规"
	titleCases        = "案例"
	titleReports      = "报告"
)

// Search runs the keyword independently over every collection.
// A disabled keyword returns five empty partitions with Prompt set: an empty search never
// returns unfiltered data.
func (s *Service) Search(k keyword.Keyword) services.GlobalSearchResult {
	startTime := time.Now()

	result := services.GlobalSearchResult{
		Query:        k.String(),
		Prompt:       k.Disabled(),
		Experts:      partition(services.PartitionExperts, titleExperts, s.dataset.Experts(), globalExpertFields, k),
		Institutions: partition(services.PartitionInstitutions, titleInstitutions, s.dataset.Institutions(), globalInstitutionFields, k),
		Laws:         partition(services.PartitionLaws, titleLaws, s.dataset.Laws(), globalLawFields, k),
		Cases:        partition(services.PartitionCases, titleCases, s.dataset.Cases(), globalCaseFields, k),
		Reports:      partition(services.PartitionReports, titleReports, s.dataset.Reports(), globalReportFields, k),
		QueryID:      uuid.New().String(),
	}
	result.Took = time.Since(startTime)
	return result
}

// partition collects the records of one collection that contain the keyword,
// with the fields each one matched in. A disabled keyword yields no hits.
func partition[T any](name, title string, records []T, fields []keyword.Field[T], k keyword.Keyword) services.Partition[T] {
	hits := make([]services.Hit[T], 0)
	if !k.Disabled() {
		for _, record := range records {
			matched := keyword.MatchedFields(record, fields, k)
			if len(matched) > 0 {
				hits = append(hits, services.Hit[T]{Record: record, FieldMatches: matched})
			}
		}
	}
	return services.Partition[T]{Name: name, Title: title, Hits: hits, Total: len(hits)}
}
