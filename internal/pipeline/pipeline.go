package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/qscrape/qscrape/internal/types"
)

// Middleware processes a record and returns the (possibly modified)
// record. Return nil to drop the record from the pipeline.
type Middleware interface {
	// Name returns the middleware's identifier.
	Name() string

	// Process transforms a record. Return nil to drop the record.
	Process(rec *types.Record) (*types.Record, error)
}

// Pipeline chains middleware processors together.
type Pipeline struct {
	middlewares []Middleware
	logger      *slog.Logger
}

// New creates a new Pipeline.
func New(logger *slog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger.With("component", "pipeline"),
	}
}

// Use adds a middleware to the pipeline chain.
func (p *Pipeline) Use(mw Middleware) {
	p.middlewares = append(p.middlewares, mw)
	p.logger.Debug("middleware added", "name", mw.Name(), "position", len(p.middlewares))
}

// Process runs the record through all middleware in order.
func (p *Pipeline) Process(rec *types.Record) (*types.Record, error) {
	current := rec

	for _, mw := range p.middlewares {
		result, err := mw.Process(current)
		if err != nil {
			return nil, fmt.Errorf("pipeline stage %q: %w", mw.Name(), err)
		}
		if result == nil {
			// Record dropped by middleware
			p.logger.Debug("record dropped", "stage", mw.Name(), "url", rec.URL)
			return nil, nil
		}
		current = result
	}

	return current, nil
}

// Len returns the number of registered middlewares.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}
