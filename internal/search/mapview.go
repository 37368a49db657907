package search

import (
	"github.com/gcbaptista/go-directory/services"
)

type mapPosition struct {
	x, y float64
}

// mapPositions places country pins on the world map image, in percent.
var mapPositions = map[string]mapPosition{
	"中国": {x: 70, y: 55},
	"美国": {x: 25, y: 50},
	"英国": {x: 46, y: 38},
	"日本": {x: 80, y: 45},
	"法国": {x: 45, y: 45},
	"德国": {x: 48, y: 42},
}

// MapMarkers counts experts by nationality and institutions by country.
// Markers come in order of first appearance (experts first); countries without a
// map position are counted but not returned.
func (s *Service) MapMarkers() []services.MapMarker {
	counts := make(map[string]int)
	order := make([]string, 0)
	add := func(country string) {
		if _, seen := counts[country]; !seen {
			order = append(order, country)
		}
		counts[country]++
	}

	for _, e := range s.dataset.Experts() {
		add(e.Nationality)
	}
	for _, i := range s.dataset.Institutions() {
		add(i.Country)
	}

	markers := make([]services.MapMarker, 0, len(order))
	for _, country := range order {
		pos, ok := mapPositions[country]
		if !ok {
			continue
		}
		markers = append(markers, services.MapMarker{Country: country, Count: counts[country], X: pos.x, Y: pos.y})
	}
	return markers
}
