package graph

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Edge is an outgoing edge of a vertex.
type Edge[V comparable] struct {
	To   V
	Cost float64
}

// WeightedDigraph is a directed graph with weighted edges that uses
// an adjacency list representation.
// V should be a small type (int-sized, one machine word)
// for best performance.
// Neighbours are kept in the order their edges were added, so a search
// that walks them is deterministic.
// Multiple edges between the same pair of vertices are not supported.
type WeightedDigraph[V comparable] struct {
	adj map[V][]Edge[V]
}

func NewWeightedDigraph[V comparable]() *WeightedDigraph[V] {
	return &WeightedDigraph[V]{
		adj: make(map[V][]Edge[V]),
	}
}

// AddNode tries to add a vertex to the graph, unconnected to any other vertex.
// It returns true if the node didn't exist and was successfully added.
func (g *WeightedDigraph[V]) AddNode(node V) bool {
	_, ok := g.adj[node]
	if !ok {
		g.adj[node] = nil
	}

	return !ok
}

// AddEdge adds an edge to the graph. If the edge already exists,
// its cost is replaced and its position among the neighbours is kept.
func (g *WeightedDigraph[V]) AddEdge(from, to V, cost float64) {
	g.AddNode(to)

	l := g.adj[from]
	if i := indexOf(l, to); i != -1 {
		l[i].Cost = cost
		return
	}

	g.adj[from] = append(l, Edge[V]{To: to, Cost: cost})
}

func indexOf[V comparable](l []Edge[V], to V) int {
	return slices.IndexFunc(l, func(e Edge[V]) bool {
		return e.To == to
	})
}

// RemoveNode removes a vertex from the graph. It will
// also remove all edges that start or end from this vertex.
// It returns true if the vertex exists and was removed.
func (g *WeightedDigraph[V]) RemoveNode(node V) bool {
	_, ok := g.adj[node]
	if !ok {
		return false
	}

	// removes node and its out-edges
	delete(g.adj, node)

	// need to search the entire graph for in-edges
	for n, l := range g.adj {
		if i := indexOf(l, node); i != -1 {
			g.adj[n] = slices.Delete(l, i, i+1)
		}
	}

	return true
}

// RemoveEdge removes an edge from the graph. It returns true
// if the edge exists and was removed.
func (g *WeightedDigraph[V]) RemoveEdge(from, to V) bool {
	l, ok := g.adj[from]
	if !ok {
		return false
	}

	i := indexOf(l, to)
	if i == -1 {
		return false
	}

	// order matters here, unlike in an unweighted adjacency set
	g.adj[from] = slices.Delete(l, i, i+1)
	return true
}

// Nodes returns all vertices in the graph, in no particular order.
func (g *WeightedDigraph[V]) Nodes() []V {
	nodes := make([]V, 0, len(g.adj))

	for n := range g.adj {
		nodes = append(nodes, n)
	}

	return nodes
}

// Edges returns a copy of the out-edges of every vertex that has any,
// keyed by tail.
func (g *WeightedDigraph[V]) Edges() map[V][]Edge[V] {
	edges := make(map[V][]Edge[V], len(g.adj))

	for from, list := range g.adj {
		if len(list) > 0 {
			edges[from] = slices.Clone(list)
		}
	}

	return edges
}

// Has returns true if the vertex provided is in the graph.
func (g *WeightedDigraph[V]) Has(node V) bool {
	_, ok := g.adj[node]
	return ok
}

// Neighbours returns the out-edges of the vertex, in insertion order.
// (nil, false) is returned if the vertex is not in the graph.
func (g *WeightedDigraph[V]) Neighbours(node V) ([]Edge[V], bool) {
	if l, ok := g.adj[node]; !ok {
		return nil, false
	} else if len(l) == 0 {
		return nil, true
	} else {
		return slices.Clone(l), true
	}
}

// Cost returns the cost of the edge from -> to.
// ok is false if there is no such edge.
func (g *WeightedDigraph[V]) Cost(from, to V) (cost float64, ok bool) {
	l := g.adj[from]
	if i := indexOf(l, to); i != -1 {
		return l[i].Cost, true
	}
	return 0, false
}

type line struct {
	node string
	outs []string
}

// String returns a string representation of the graph.
// If V implements [fmt.Stringer], it will be used, otherwise
// the default format for its underlying type is used.
// Lines are sorted in lexicographic order of their nodes.
// Each neighbour is followed by the edge cost in parentheses,
// in insertion order.
func (g *WeightedDigraph[V]) String() string {
	var lines []line

	for node, to := range g.adj {
		toStr := make([]string, len(to))
		for i, e := range to {
			toStr[i] = fmt.Sprint(e.To) + "(" +
				strconv.FormatFloat(e.Cost, 'g', -1, 64) + ")"
		}

		lines = append(lines, line{
			node: fmt.Sprint(node),
			outs: toStr,
		})
	}

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].node < lines[j].node
	})

	var sb strings.Builder
	for i, line := range lines {
		sb.WriteString(line.node)
		sb.WriteString(" ->")
		for _, neighbour := range line.outs {
			sb.WriteRune(' ')
			sb.WriteString(neighbour)
		}
		if i < len(lines)-1 {
			sb.WriteRune('\n')
		}
	}

	return sb.String()
}

// ShortestDistance takes a node in the graph and returns a map of
// all nodes reachable from the first node to their shortest distance
// in edges (ignoring costs) from that node.
// If the node doesn't exist, only that node is returned in the map
// with distance 0.
// This works with cyclic graphs as well.
func (g *WeightedDigraph[V]) ShortestDistance(from V) map[V]int {
	// BFS as described in CLRS

	distances := make(map[V]int) // presence in this map = node is "greyed"
	distances[from] = 0
	q := []V{from}

	for len(q) != 0 {
		current := q[0]
		q = q[1:]

		for _, e := range g.adj[current] {
			_, ok := distances[e.To]
			if !ok {
				distances[e.To] = distances[current] + 1
				q = append(q, e.To)
			}
		}
	}

	return distances
}
