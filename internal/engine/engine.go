// Package engine wires the dataset, the search service and the search analytics together.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gcbaptista/go-directory/internal/analytics"
	"github.com/gcbaptista/go-directory/internal/keyword"
	"github.com/gcbaptista/go-directory/internal/search"
	"github.com/gcbaptista/go-directory/services"
	"github.com/gcbaptista/go-directory/store"
)

// Options configures NewEngine.
type Options struct {
	// DataFile is a YAML, JSON or gob dataset. Empty serves the embedded seed.
	DataFile string
	// MaxEvents bounds the analytics buffer.
	MaxEvents int
}

// Engine serves the directory views over one immutable dataset and records global searches.
// It implements the services.Directory interface.
type Engine struct {
	*search.Service
	analytics *analytics.Service
	source    string
	loadedAt  time.Time
}

var _ services.Directory = (*Engine)(nil)

// NewEngine loads the dataset and creates the engine.
func NewEngine(opts Options) (*Engine, error) {
	dataset, err := store.Load(opts.DataFile)
	if err != nil {
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return FromDataset(dataset, sourceName(opts.DataFile), opts.MaxEvents)
}

// FromDataset creates an engine over an already loaded dataset.
func FromDataset(dataset *store.Dataset, source string, maxEvents int) (*Engine, error) {
	svc, err := search.NewService(dataset)
	if err != nil {
		return nil, fmt.Errorf("creating search service: %w", err)
	}

	eng := &Engine{
		Service:   svc,
		analytics: analytics.NewService(maxEvents),
		source:    source,
		loadedAt:  time.Now(),
	}

	slog.Info("dataset loaded",
		"source", source,
		"experts", len(dataset.Experts()),
		"institutions", len(dataset.Institutions()),
		"laws", len(dataset.Laws()),
		"cases", len(dataset.Cases()),
		"reports", len(dataset.Reports()),
		"news", len(dataset.News()))
	return eng, nil
}

// Search runs the global search and records it in the analytics buffer.
func (e *Engine) Search(k keyword.Keyword) services.GlobalSearchResult {
	result := e.Service.Search(k)
	e.analytics.TrackSearch(result)
	slog.Debug("global search",
		"query", result.Query,
		"query_id", result.QueryID,
		"prompt", result.Prompt,
		"took", result.Took)
	return result
}

// Analytics returns the search analytics service.
func (e *Engine) Analytics() *analytics.Service {
	return e.analytics
}

// Source describes where the dataset came from.
func (e *Engine) Source() string {
	return e.source
}

// LoadedAt returns the time the engine was created.
func (e *Engine) LoadedAt() time.Time {
	return e.loadedAt
}

// Export writes the current dataset as a gob snapshot.
func (e *Engine) Export(path string) error {
	if err := store.SaveSnapshot(path, e.Dataset()); err != nil {
		return err
	}
	slog.Info("dataset exported", "path", path)
	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "embedded seed"
	}
	return path
}
