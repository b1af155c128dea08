package solve

import (
	"errors"
	"fmt"
	"strings"

	"go.lepak.sg/treesearch/frontier"
	"go.lepak.sg/treesearch/search"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy selects the frontier a tree search uses, and so the order
// in which nodes are expanded.
type Strategy int

const (
	// BreadthFirst expands the shallowest node first (FIFO).
	BreadthFirst Strategy = iota
	// DepthFirst expands the deepest node first (LIFO).
	DepthFirst
	// UniformCost expands the node with the lowest path cost g.
	UniformCost
	// Greedy expands the node with the lowest heuristic h.
	Greedy
	// AStar expands the node with the lowest g + h.
	AStar
)

// Strategies lists every strategy, in declaration order.
var Strategies = []Strategy{BreadthFirst, DepthFirst, UniformCost, Greedy, AStar}

func (s Strategy) String() string {
	switch s {
	case BreadthFirst:
		return "bfs"
	case DepthFirst:
		return "dfs"
	case UniformCost:
		return "ucs"
	case Greedy:
		return "greedy"
	case AStar:
		return "astar"
	default:
		return "<invalid solve.Strategy>"
	}
}

// ParseStrategy is the inverse of Strategy.String. It is case-insensitive.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// NewFrontier returns an empty frontier implementing strategy s for p.
func NewFrontier[S, A any](s Strategy, p search.Problem[S, A]) (frontier.Frontier[*search.Node[S, A]], error) {
	switch s {
	case BreadthFirst:
		return frontier.NewFIFO[*search.Node[S, A]](), nil
	case DepthFirst:
		return frontier.NewLIFO[*search.Node[S, A]](), nil
	case UniformCost:
		return frontier.NewPriority(func(n *search.Node[S, A]) float64 {
			return n.PathCost()
		}), nil
	case Greedy:
		return frontier.NewPriority(func(n *search.Node[S, A]) float64 {
			return p.Heuristic(n.State())
		}), nil
	case AStar:
		return frontier.NewPriority(func(n *search.Node[S, A]) float64 {
			return n.PathCost() + p.Heuristic(n.State())
		}), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}
