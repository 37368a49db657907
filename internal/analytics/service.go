package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
)

const (
	// DefaultMaxEvents bounds the in-memory event buffer
	DefaultMaxEvents = 10000
	topQueries       = 5
)

// Service tracks global searches in memory and aggregates them for the dashboard.
// Events are never written to disk; a restart starts from an empty buffer.
type Service struct {
	mutex     sync.RWMutex
	events    []model.SearchEvent
	maxEvents int
	now       func() time.Time
}

// NewService creates a new analytics service keeping at most maxEvents events.
// A non-positive maxEvents uses DefaultMaxEvents.
func NewService(maxEvents int) *Service {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}
	return &Service{
		events:    make([]model.SearchEvent, 0),
		maxEvents: maxEvents,
		now:       time.Now,
	}
}

// TrackSearchEvent records a new search event
func (s *Service) TrackSearchEvent(event model.SearchEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > s.maxEvents {
		s.events = s.events[len(s.events)-s.maxEvents:]
	}
}

// TrackSearch records the outcome of a global search.
func (s *Service) TrackSearch(result services.GlobalSearchResult) {
	s.TrackSearchEvent(model.SearchEvent{
		Query:        result.Query,
		Prompted:     result.Prompt,
		ResponseTime: result.Took,
		ResultCounts: result.Counts(),
	})
}

// EventCount returns the number of buffered events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData aggregates the buffered events
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	executed := make([]model.SearchEvent, 0, len(s.events))
	prompted := 0
	for _, event := range s.events {
		if event.Prompted {
			prompted++
			continue
		}
		executed = append(executed, event)
	}

	zeroResult := make([]model.SearchEvent, 0)
	for _, event := range executed {
		if event.TotalResults() == 0 {
			zeroResult = append(zeroResult, event)
		}
	}

	return model.AnalyticsDashboard{
		TotalSearches:     len(executed),
		PromptedSearches:  prompted,
		AvgResponseTime:   calculateAvgResponseTime(executed),
		PopularSearches:   getPopularSearches(executed),
		ZeroResultQueries: getPopularSearches(zeroResult),
		PartitionUsage:    getPartitionUsage(executed),
	}
}

// calculateAvgResponseTime calculates the average response time in microseconds
func calculateAvgResponseTime(events []model.SearchEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Microseconds()
}

// getPopularSearches returns the most frequent queries, ties broken alphabetically
func getPopularSearches(events []model.SearchEvent) []model.PopularSearch {
	queryCounts := make(map[string]int)
	for _, event := range events {
		if event.Query != "" {
			queryCounts[event.Query]++
		}
	}

	popular := make([]model.PopularSearch, 0, len(queryCounts))
	for query, count := range queryCounts {
		popular = append(popular, model.PopularSearch{Query: query, SearchCount: count})
	}

	sort.Slice(popular, func(i, j int) bool {
		if popular[i].SearchCount != popular[j].SearchCount {
			return popular[i].SearchCount > popular[j].SearchCount
		}
		return popular[i].Query < popular[j].Query
	})

	if len(popular) > topQueries {
		popular = popular[:topQueries]
	}
	return popular
}

// getPartitionUsage reports, per partition, how many searches it answered and how many hits it produced
func getPartitionUsage(events []model.SearchEvent) []model.PartitionStats {
	order := []string{
		services.PartitionExperts,
		services.PartitionInstitutions,
		services.PartitionLaws,
		services.PartitionCases,
		services.PartitionReports,
	}

	usage := make([]model.PartitionStats, 0, len(order))
	for _, partition := range order {
		stats := model.PartitionStats{Partition: partition}
		for _, event := range events {
			if n := event.ResultCounts[partition]; n > 0 {
				stats.HitSearches++
				stats.TotalHits += n
			}
		}
		usage = append(usage, stats)
	}
	return usage
}
