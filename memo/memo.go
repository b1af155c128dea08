// Package memo caches heuristic values of search problems.
package memo

import (
	"go.lepak.sg/treesearch/search"
)

// Problem is a search.Problem whose Heuristic results are cached.
// It is safe for concurrent use if the wrapped problem is, so one
// Problem can be shared by the searches of solve.Compare.
type Problem[S comparable, A any] struct {
	search.Problem[S, A]
	cache *Cache[S, float64]
}

// Heuristic wraps p, caching the heuristic values of up to max
// states. See NewCache for the meaning of max <= 0.
func Heuristic[S comparable, A any](p search.Problem[S, A], max int) *Problem[S, A] {
	return &Problem[S, A]{
		Problem: p,
		cache:   NewCache[S, float64](max),
	}
}

func (p *Problem[S, A]) Heuristic(s S) float64 {
	if h, ok := p.cache.Get(s); ok {
		return h
	}
	h := p.Problem.Heuristic(s)
	p.cache.Add(s, h)
	return h
}

// Successors uses the wrapped problem's successor generator, if any.
func (p *Problem[S, A]) Successors(s S) search.Iterator[search.Successor[S, A]] {
	return search.Successors(p.Problem, s)
}

// Stats returns the cache hits and misses so far.
func (p *Problem[S, A]) Stats() (hits, misses int) {
	return p.cache.Stats()
}
