// Package solve drives tree searches: it combines a search.Problem
// with a frontier and repeatedly pops, goal-tests and expands nodes.
//
// Like package search, it does not detect repeated states. A problem
// whose state space has cycles needs WithMaxDepth or WithMaxExpansions
// (or a cancellable context) with strategies that can loop forever,
// such as DepthFirst.
package solve

import (
	"context"
	"errors"
	"fmt"

	"go.lepak.sg/treesearch/frontier"
	"go.lepak.sg/treesearch/search"
)

var (
	// ErrNoSolution means the frontier ran out without reaching a goal.
	ErrNoSolution = errors.New("no solution")
	// ErrCutoff means no goal was found, but a depth or expansion limit
	// cut the search short, so one may exist.
	ErrCutoff = errors.New("search cut off")
)

// Stats counts the work done by a search.
type Stats struct {
	// Expanded is the number of nodes whose children were generated.
	Expanded int
	// Generated is the number of nodes created, including the root.
	Generated int
	// MaxFrontier is the largest frontier size seen.
	MaxFrontier int
}

// Result is the outcome of a search.
type Result[S, A any] struct {
	// Goal is the goal node found, or nil.
	Goal *search.Node[S, A]
	// Nodes holds every generated node in generation order, root first,
	// if the search was run with WithRecord(true).
	Nodes []*search.Node[S, A]
	Stats Stats
}

// Actions returns the actions from the initial state to the goal,
// or nil if there is no goal.
func (r *Result[S, A]) Actions() []A {
	if r.Goal == nil {
		return nil
	}
	return r.Goal.PathActions()
}

// Cost returns the path cost of the goal, or 0 if there is no goal.
func (r *Result[S, A]) Cost() float64 {
	if r.Goal == nil {
		return 0
	}
	return r.Goal.PathCost()
}

// TreeSearch searches p using f, which should be empty. The goal test
// is applied when a node is popped, so with a frontier ordered by path
// cost the first goal found is a cheapest one.
//
// The returned Result is never nil; on error it holds the statistics
// gathered until then. The error is ErrNoSolution, ErrCutoff, or the
// context's error if ctx is done before the search ends.
func TreeSearch[S, A any](
	ctx context.Context, p search.Problem[S, A],
	f frontier.Frontier[*search.Node[S, A]], opts ...Option,
) (*Result[S, A], error) {
	var cfg Config
	cfg.Option(opts...)
	cfg.Default(ctx)

	log := cfg.Log
	verboseLog := log.V(2)

	res := &Result[S, A]{}
	generated := func(n *search.Node[S, A]) {
		res.Stats.Generated++
		if cfg.Record {
			res.Nodes = append(res.Nodes, n)
		}
	}

	root := search.NewRoot[S, A](p.InitState())
	generated(root)
	f.Push(root)

	cutoff := false
	for !f.Empty() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if l := f.Len(); l > res.Stats.MaxFrontier {
			res.Stats.MaxFrontier = l
		}

		n, err := f.Pop()
		if err != nil {
			return res, fmt.Errorf("popping frontier: %w", err)
		}

		if p.IsGoal(n.State()) {
			res.Goal = n
			log.V(1).Info("goal found",
				"state", n.String(), "depth", n.Depth(), "cost", n.PathCost(),
				"expanded", res.Stats.Expanded, "generated", res.Stats.Generated)
			return res, nil
		}

		if cfg.MaxDepth > 0 && n.Depth() >= cfg.MaxDepth {
			cutoff = true
			continue
		}
		if cfg.MaxExpansions > 0 && res.Stats.Expanded >= cfg.MaxExpansions {
			log.V(1).Info("expansion limit reached", "limit", cfg.MaxExpansions)
			return res, fmt.Errorf("%w: reached %d expansions", ErrCutoff, cfg.MaxExpansions)
		}

		if verboseLog.Enabled() {
			verboseLog.Info("expanding",
				"state", n.String(), "depth", n.Depth(), "cost", n.PathCost())
		}
		res.Stats.Expanded++

		children := n.Expand(p)
		for children.Next() {
			c := children.Item()
			generated(c)
			f.Push(c)
		}
	}

	log.V(1).Info("frontier exhausted", "cutoff", cutoff,
		"expanded", res.Stats.Expanded, "generated", res.Stats.Generated)
	if cutoff {
		return res, fmt.Errorf("%w: depth limit %d", ErrCutoff, cfg.MaxDepth)
	}
	return res, ErrNoSolution
}

// Search runs TreeSearch with a new frontier for strategy s.
// The logger, whether from WithLog or ctx, is tagged with the
// strategy name.
func Search[S, A any](
	ctx context.Context, s Strategy, p search.Problem[S, A], opts ...Option,
) (*Result[S, A], error) {
	f, err := NewFrontier(s, p)
	if err != nil {
		return nil, err
	}

	var cfg Config
	cfg.Option(opts...)
	cfg.Default(ctx)
	opts = append(opts[:len(opts):len(opts)],
		WithLog{Log: cfg.Log.WithValues("strategy", s.String())})

	return TreeSearch(ctx, p, f, opts...)
}
