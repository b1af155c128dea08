// Package route is a route-finding search problem over a road map:
// states are location names and the action taken at each step is the
// name of the next location.
package route

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"go.lepak.sg/treesearch/graph"
	"go.lepak.sg/treesearch/search"
)

var ErrUnknownLocation = errors.New("unknown location")

// Point is a location's position, used for the straight-line heuristic.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Map is a road map: a weighted digraph of locations, some of which
// may have coordinates.
type Map struct {
	Roads  *graph.WeightedDigraph[string]
	Coords map[string]Point
}

func NewMap() *Map {
	return &Map{
		Roads:  graph.NewWeightedDigraph[string](),
		Coords: make(map[string]Point),
	}
}

// AddRoad adds a road from -> to. If undirected is true, the road
// to -> from is added too, with the same cost.
func (m *Map) AddRoad(from, to string, cost float64, undirected bool) {
	m.Roads.AddEdge(from, to, cost)
	if undirected {
		m.Roads.AddEdge(to, from, cost)
	}
}

// Distance is the straight-line distance between two locations.
// ok is false if either location has no coordinates.
func (m *Map) Distance(a, b string) (d float64, ok bool) {
	pa, ok := m.Coords[a]
	if !ok {
		return 0, false
	}
	pb, ok := m.Coords[b]
	if !ok {
		return 0, false
	}
	return math.Hypot(pa.X-pb.X, pa.Y-pb.Y), true
}

type road struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Cost float64 `yaml:"cost"`
}

type document struct {
	Undirected bool             `yaml:"undirected"`
	Locations  map[string]Point `yaml:"locations"`
	Roads      []road           `yaml:"roads"`
}

// LoadMap reads a map from a YAML document of the form:
//
//	undirected: true
//	locations:
//	  S: {x: 0, y: 0}
//	roads:
//	  - {from: S, to: A, cost: 1}
//
// Roads are added in document order, which fixes the order of
// actions in every state.
func LoadMap(r io.Reader) (*Map, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding map: %w", err)
	}

	m := NewMap()
	for name, p := range doc.Locations {
		m.Roads.AddNode(name)
		m.Coords[name] = p
	}
	for i, rd := range doc.Roads {
		if rd.From == "" || rd.To == "" {
			return nil, fmt.Errorf("road %d: from and to are required", i)
		}
		if rd.Cost < 0 {
			return nil, fmt.Errorf("road %d (%s -> %s): negative cost %v",
				i, rd.From, rd.To, rd.Cost)
		}
		m.AddRoad(rd.From, rd.To, rd.Cost, doc.Undirected)
	}

	return m, nil
}

// Problem is the problem of getting from one location to another.
type Problem struct {
	search.Base[string, string]

	m        *Map
	from, to string
}

var _ search.Problem[string, string] = (*Problem)(nil)

// NewProblem returns the problem of getting from -> to on m.
func NewProblem(m *Map, from, to string) (*Problem, error) {
	for _, loc := range []string{from, to} {
		if !m.Roads.Has(loc) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, loc)
		}
	}
	return &Problem{m: m, from: from, to: to}, nil
}

func (p *Problem) InitState() string {
	return p.from
}

func (p *Problem) IsGoal(s string) bool {
	return s == p.to
}

// Actions returns the neighbouring locations of s in the order the
// roads were added.
func (p *Problem) Actions(s string) []string {
	edges, _ := p.m.Roads.Neighbours(s)
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.To
	}
	return out
}

func (p *Problem) Result(_ string, a string) string {
	return a
}

func (p *Problem) ActionCost(from, _ string, to string) float64 {
	c, ok := p.m.Roads.Cost(from, to)
	if !ok {
		panic(fmt.Sprintf("no road %s -> %s", from, to))
	}
	return c
}

// Heuristic is the straight-line distance to the destination, or 0 when
// coordinates are missing. It is admissible as long as no road is
// shorter than the straight line between its ends.
func (p *Problem) Heuristic(s string) float64 {
	d, _ := p.m.Distance(s, p.to)
	return d
}

// Successors walks the adjacency list once instead of looking up
// every edge cost separately.
func (p *Problem) Successors(s string) search.Iterator[search.Successor[string, string]] {
	edges, _ := p.m.Roads.Neighbours(s)
	return &successors{edges: edges, i: -1}
}

type successors struct {
	edges []graph.Edge[string]
	i     int
}

func (it *successors) Next() bool {
	if it.i+1 >= len(it.edges) {
		return false
	}
	it.i++
	return true
}

func (it *successors) Item() search.Successor[string, string] {
	e := it.edges[it.i]
	return search.Successor[string, string]{
		Action: e.To,
		State:  e.To,
		Cost:   e.Cost,
	}
}
