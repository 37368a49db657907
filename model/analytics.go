package model

import "time"

// SearchEvent represents a single global search for analytics tracking
type SearchEvent struct {
	Query        string         `json:"query"`
	Prompted     bool           `json:"prompted"` // true when the keyword was empty and no search ran
	ResponseTime time.Duration  `json:"response_time"`
	ResultCounts map[string]int `json:"result_counts"` // partition name -> matched records
	Timestamp    time.Time      `json:"timestamp"`
}

// TotalResults sums the per-partition counts.
func (e SearchEvent) TotalResults() int {
	total := 0
	for _, n := range e.ResultCounts {
		total += n
	}
	return total
}

// PopularSearch represents aggregated data for popular search terms
type PopularSearch struct {
	Query       string `json:"query"`
	SearchCount int    `json:"search_count"`
}

// PartitionStats represents how often a collection contributed hits
type PartitionStats struct {
	Partition   string `json:"partition"`
	HitSearches int    `json:"hit_searches"` // searches where this partition was non-empty
	TotalHits   int    `json:"total_hits"`
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	TotalSearches     int              `json:"total_searches"`
	PromptedSearches  int              `json:"prompted_searches"`
	AvgResponseTime   int64            `json:"avg_response_time_us"` // in microseconds
	PopularSearches   []PopularSearch  `json:"popular_searches"`
	ZeroResultQueries []PopularSearch  `json:"zero_result_queries"`
	PartitionUsage    []PartitionStats `json:"partition_usage"`
}
