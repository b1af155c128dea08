package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"go.lepak.sg/treesearch/memo"
	"go.lepak.sg/treesearch/render"
	"go.lepak.sg/treesearch/search"
	"go.lepak.sg/treesearch/solve"
)

const strategyAll = "all"

// searchOptions are the flags shared by every problem command.
type searchOptions struct {
	Strategy      string
	MaxDepth      int
	MaxExpansions int
	Tree          bool
	CacheSize     int

	strategies []solve.Strategy
}

func (o *searchOptions) AddFlags(flags *pflag.FlagSet) {
	const (
		strategyUse      = "one of bfs, dfs, ucs, greedy, astar, or all to compare every strategy"
		maxDepthUse      = "do not expand nodes at this depth. 0 means unlimited"
		maxExpansionsUse = "give up after expanding this many nodes. 0 means unlimited"
		treeUse          = "print every generated node as a tree. Not available with --strategy all"
		cacheSizeUse     = "number of states whose heuristic value is cached. 0 uses the default size"
	)

	flags.StringVarP(&o.Strategy, "strategy", "s", o.Strategy, strategyUse)
	flags.IntVar(&o.MaxDepth, "max-depth", o.MaxDepth, maxDepthUse)
	flags.IntVar(&o.MaxExpansions, "max-expansions", o.MaxExpansions, maxExpansionsUse)
	flags.BoolVar(&o.Tree, "tree", o.Tree, treeUse)
	flags.IntVar(&o.CacheSize, "heuristic-cache", o.CacheSize, cacheSizeUse)
}

func (o *searchOptions) Complete() error {
	switch {
	case o.MaxDepth < 0:
		return fmt.Errorf("%w: --max-depth must not be negative", ErrInvalidArgs)
	case o.MaxExpansions < 0:
		return fmt.Errorf("%w: --max-expansions must not be negative", ErrInvalidArgs)
	case o.CacheSize < 0:
		return fmt.Errorf("%w: --heuristic-cache must not be negative", ErrInvalidArgs)
	}

	if strings.EqualFold(o.Strategy, strategyAll) {
		if o.Tree {
			return fmt.Errorf("%w: --tree needs a single strategy", ErrInvalidArgs)
		}
		o.strategies = solve.Strategies
		return nil
	}

	s, err := solve.ParseStrategy(o.Strategy)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	o.strategies = []solve.Strategy{s}
	return nil
}

func (o *searchOptions) solveOptions() []solve.Option {
	return []solve.Option{
		solve.WithMaxDepth(o.MaxDepth),
		solve.WithMaxExpansions(o.MaxExpansions),
		solve.WithRecord(o.Tree),
	}
}

// runSearch solves p with the configured strategies and prints a line
// per strategy to out. Heuristic values are cached across strategies.
func runSearch[S comparable, A any](ctx context.Context, out io.Writer, sp search.Problem[S, A], o searchOptions) error {
	log := logr.FromContextOrDiscard(ctx)

	p := memo.Heuristic(sp, o.CacheSize)
	defer func() {
		hits, misses := p.Stats()
		log.V(1).Info("heuristic cache", "hits", hits, "misses", misses)
	}()

	if len(o.strategies) == 1 {
		s := o.strategies[0]
		res, err := solve.Search[S, A](ctx, s, p, o.solveOptions()...)
		if res == nil {
			return err
		}
		printResult(out, s, res, err)
		if o.Tree && len(res.Nodes) > 0 {
			fmt.Fprint(out, render.Tree(res.Nodes[0], res.Nodes))
		}
		return err
	}

	outcomes, err := solve.Compare[S, A](ctx, p, o.strategies, o.solveOptions()...)
	var failed []error
	for _, oc := range outcomes {
		if oc.Err != nil {
			failed = append(failed, fmt.Errorf("%s: %w", oc.Strategy, oc.Err))
		}
		if oc.Result == nil {
			fmt.Fprintf(out, "%s: %v\n", oc.Strategy, oc.Err)
			continue
		}
		printResult(out, oc.Strategy, oc.Result, oc.Err)
		log.V(1).Info("strategy finished", "strategy", oc.Strategy.String(), "elapsed", oc.Elapsed)
	}
	if err != nil {
		return err
	}
	return errors.Join(failed...)
}

func printResult[S, A any](out io.Writer, s solve.Strategy, res *solve.Result[S, A], err error) {
	st := res.Stats
	if err != nil {
		fmt.Fprintf(out, "%s: %v (expanded=%d generated=%d)\n", s, err, st.Expanded, st.Generated)
		return
	}
	fmt.Fprintf(out, "%s: cost=%g depth=%d expanded=%d generated=%d max-frontier=%d actions=[%s]\n",
		s, res.Cost(), res.Goal.Depth(), st.Expanded, st.Generated, st.MaxFrontier,
		joinActions(res.Actions()))
}

func joinActions[A any](actions []A) string {
	parts := make([]string, len(actions))
	for i, a := range actions {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
