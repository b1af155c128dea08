package solve

import (
	"context"

	"github.com/go-logr/logr"
)

// Config holds the settings of a single search.
type Config struct {
	// Log receives a summary of every search at V(1)
	// and a line per expanded node at V(2).
	Log logr.Logger
	// MaxDepth stops nodes at this depth from being expanded.
	// 0 means unlimited.
	MaxDepth int
	// MaxExpansions aborts the search after this many expansions.
	// 0 means unlimited.
	MaxExpansions int
	// Record keeps every generated node in Result.Nodes.
	Record bool
}

// Option configures a search.
type Option interface {
	ConfigureSearch(*Config)
}

func (c *Config) Option(opts ...Option) {
	for _, opt := range opts {
		opt.ConfigureSearch(c)
	}
}

// Default fills in a logger from ctx if none was given.
func (c *Config) Default(ctx context.Context) {
	if c.Log.GetSink() == nil {
		c.Log = logr.FromContextOrDiscard(ctx)
	}
}

// WithLog sets the logger.
type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigureSearch(c *Config) {
	c.Log = w.Log
}

// WithMaxDepth sets Config.MaxDepth.
type WithMaxDepth int

func (w WithMaxDepth) ConfigureSearch(c *Config) {
	c.MaxDepth = int(w)
}

// WithMaxExpansions sets Config.MaxExpansions.
type WithMaxExpansions int

func (w WithMaxExpansions) ConfigureSearch(c *Config) {
	c.MaxExpansions = int(w)
}

// WithRecord sets Config.Record.
type WithRecord bool

func (w WithRecord) ConfigureSearch(c *Config) {
	c.Record = bool(w)
}
