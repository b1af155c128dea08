package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeightedDigraph_Create(t *testing.T) {
	g := NewWeightedDigraph[string]()

	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 2.5)
	g.AddEdge("b", "a", 1)
	g.AddEdge("c", "d", 4)

	g.AddNode("z")

	assert.ElementsMatch(t,
		g.Nodes(),
		[]string{"a", "b", "c", "d", "z"})

	assert.Equal(t,
		map[string][]Edge[string]{
			"a": {{"b", 1}, {"c", 2.5}},
			"b": {{"a", 1}},
			"c": {{"d", 4}},
		},
		g.Edges())

	assert.Equal(t, "a -> b(1) c(2.5)\nb -> a(1)\nc -> d(4)\nd ->\nz ->", g.String())
}

func TestWeightedDigraph_AddEdgeReplacesCost(t *testing.T) {
	g := NewWeightedDigraph[int]()
	g.AddEdge(1, 2, 5)
	g.AddEdge(1, 3, 1)
	g.AddEdge(1, 2, 7)

	n, ok := g.Neighbours(1)
	assert.True(t, ok)
	assert.Equal(t, []Edge[int]{{2, 7}, {3, 1}}, n)

	c, ok := g.Cost(1, 2)
	assert.True(t, ok)
	assert.Equal(t, 7.0, c)

	_, ok = g.Cost(2, 1)
	assert.False(t, ok)
}

func TestWeightedDigraph_Neighbours(t *testing.T) {
	g := NewWeightedDigraph[int]()
	g.AddEdge(1, 2, 1)
	g.AddNode(3)

	n, ok := g.Neighbours(2)
	assert.True(t, ok)
	assert.Nil(t, n)

	_, ok = g.Neighbours(4)
	assert.False(t, ok)

	// returned slice is a copy
	n, _ = g.Neighbours(1)
	n[0].Cost = 100
	c, _ := g.Cost(1, 2)
	assert.Equal(t, 1.0, c)
}

func TestWeightedDigraph_Remove(t *testing.T) {
	g := clrs1()

	assert.True(t, g.RemoveEdge(1, 2))
	assert.False(t, g.RemoveEdge(1, 2))
	assert.False(t, g.RemoveEdge(9, 2))

	assert.True(t, g.RemoveNode(4))
	assert.False(t, g.RemoveNode(4))
	assert.False(t, g.Has(4))

	for from, edges := range g.Edges() {
		for _, e := range edges {
			assert.NotEqual(t, 4, e.To, "edge %d -> 4 survived", from)
		}
	}

	n, _ := g.Neighbours(3)
	assert.Equal(t, []Edge[int]{{5, 1}, {6, 1}}, n)
}

func clrs1() *WeightedDigraph[int] {
	g := NewWeightedDigraph[int]()

	g.AddEdge(1, 2, 1)
	g.AddEdge(1, 4, 1)
	g.AddEdge(2, 5, 1)
	g.AddEdge(3, 5, 1)
	g.AddEdge(3, 6, 1)
	g.AddEdge(4, 2, 1)
	g.AddEdge(5, 4, 1)
	g.AddEdge(6, 6, 1)

	return g
}

func TestWeightedDigraph_ShortestDistance(t *testing.T) {
	g := clrs1()

	assert.Equal(t, map[int]int{
		1: 0,
		2: 1,
		4: 1,
		5: 2,
	}, g.ShortestDistance(1))

	assert.Equal(t, map[int]int{
		3: 0,
		5: 1,
		6: 1,
		4: 2,
		2: 3,
	}, g.ShortestDistance(3))

	assert.Equal(t, map[int]int{42: 0}, g.ShortestDistance(42))
}
