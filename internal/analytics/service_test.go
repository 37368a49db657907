package analytics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/go-directory/model"
	"github.com/gcbaptista/go-directory/services"
)

func TestAnalyticsService_TrackSearchEvent(t *testing.T) {
	service := NewService(0)
	fixed := time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return fixed }

	event := model.SearchEvent{
		Query:        "反垄断",
		ResponseTime: 50 * time.Microsecond,
		ResultCounts: map[string]int{services.PartitionLaws: 2},
	}
	service.TrackSearchEvent(event)

	// Verify event was stored
	if len(service.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(service.events))
	}

	storedEvent := service.events[0]
	if storedEvent.Query != event.Query {
		t.Errorf("Expected Query %s, got %s", event.Query, storedEvent.Query)
	}
	if !storedEvent.Timestamp.Equal(fixed) {
		t.Errorf("Expected Timestamp %v, got %v", fixed, storedEvent.Timestamp)
	}
	if storedEvent.TotalResults() != 2 {
		t.Errorf("Expected 2 total results, got %d", storedEvent.TotalResults())
	}
}

func TestAnalyticsService_BoundedBuffer(t *testing.T) {
	service := NewService(3)

	for _, q := range []string{"a", "b", "c", "d", "e"} {
		service.TrackSearchEvent(model.SearchEvent{Query: q})
	}

	require.Equal(t, 3, service.EventCount())
	assert.Equal(t, "c", service.events[0].Query, "oldest events are dropped first")
	assert.Equal(t, "e", service.events[2].Query)
}

func TestAnalyticsService_TrackSearch(t *testing.T) {
	service := NewService(10)

	service.TrackSearch(services.GlobalSearchResult{
		Query: "竞争",
		Took:  120 * time.Microsecond,
		Laws:  services.Partition[model.Law]{Total: 2},
	})
	service.TrackSearch(services.GlobalSearchResult{Prompt: true})

	require.Equal(t, 2, service.EventCount())
	assert.Equal(t, 2, service.events[0].ResultCounts[services.PartitionLaws])
	assert.True(t, service.events[1].Prompted)
}

func TestAnalyticsService_GetDashboardData(t *testing.T) {
	service := NewService(100)

	events := []model.SearchEvent{
		{Query: "反垄断", ResponseTime: 100 * time.Microsecond, ResultCounts: map[string]int{services.PartitionExperts: 3, services.PartitionLaws: 2}},
		{Query: "反垄断", ResponseTime: 300 * time.Microsecond, ResultCounts: map[string]int{services.PartitionExperts: 3}},
		{Query: "zhang", ResponseTime: 200 * time.Microsecond, ResultCounts: map[string]int{services.PartitionExperts: 1}},
		{Query: "专利", ResponseTime: 200 * time.Microsecond, ResultCounts: map[string]int{}},
		{Query: "", Prompted: true},
	}
	for _, event := range events {
		service.TrackSearchEvent(event)
	}

	dashboard := service.GetDashboardData()

	assert.Equal(t, 4, dashboard.TotalSearches)
	assert.Equal(t, 1, dashboard.PromptedSearches)
	assert.Equal(t, int64(200), dashboard.AvgResponseTime)

	require.NotEmpty(t, dashboard.PopularSearches)
	assert.Equal(t, model.PopularSearch{Query: "反垄断", SearchCount: 2}, dashboard.PopularSearches[0])
	assert.Equal(t, "zhang", dashboard.PopularSearches[1].Query)

	assert.Equal(t, []model.PopularSearch{{Query: "专利", SearchCount: 1}}, dashboard.ZeroResultQueries)

	require.Len(t, dashboard.PartitionUsage, 5)
	assert.Equal(t, model.PartitionStats{Partition: services.PartitionExperts, HitSearches: 3, TotalHits: 7}, dashboard.PartitionUsage[0])
	assert.Equal(t, model.PartitionStats{Partition: services.PartitionLaws, HitSearches: 1, TotalHits: 2}, dashboard.PartitionUsage[2])
	assert.Zero(t, dashboard.PartitionUsage[4].HitSearches)
}

func TestAnalyticsService_EmptyDashboard(t *testing.T) {
	dashboard := NewService(10).GetDashboardData()

	assert.Zero(t, dashboard.TotalSearches)
	assert.Zero(t, dashboard.AvgResponseTime)
	assert.Empty(t, dashboard.PopularSearches)
	assert.NotNil(t, dashboard.PopularSearches)
}

func TestAnalyticsService_ConcurrentTracking(t *testing.T) {
	service := NewService(1000)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.TrackSearchEvent(model.SearchEvent{Query: "并发"})
			_ = service.GetDashboardData()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, service.EventCount())
}
