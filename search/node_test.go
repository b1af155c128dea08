package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.lepak.sg/treesearch/testutils"
)

type edge struct {
	action string
	to     string
	cost   float64
}

// table is a problem given by an explicit transition table.
// It counts calls to Result so laziness can be observed.
type table struct {
	Base[string, string]
	init    string
	goal    string
	edges   map[string][]edge
	results int
}

var _ Problem[string, string] = (*table)(nil)

func (p *table) InitState() string {
	return p.init
}

func (p *table) IsGoal(s string) bool {
	return s == p.goal
}

func (p *table) Actions(s string) []string {
	var out []string
	for _, e := range p.edges[s] {
		out = append(out, e.action)
	}
	return out
}

func (p *table) find(s, a string) edge {
	for _, e := range p.edges[s] {
		if e.action == a {
			return e
		}
	}
	panic("illegal action " + a + " in " + s)
}

func (p *table) Result(s, a string) string {
	p.results++
	return p.find(s, a).to
}

func (p *table) ActionCost(from, a, _ string) float64 {
	return p.find(from, a).cost
}

func sabg() *table {
	return &table{
		init: "S",
		goal: "G",
		edges: map[string][]edge{
			"S": {{"go_A", "A", 1}, {"go_B", "B", 5}},
			"A": {{"go_G", "G", 1}},
			"B": {{"go_G", "G", 1}},
		},
	}
}

func chain() *table {
	return &table{
		init: "0",
		goal: "3",
		edges: map[string][]edge{
			"0": {{"a1", "1", 2}},
			"1": {{"a2", "2", 3.5}},
			"2": {{"a3", "3", 0.5}},
		},
	}
}

func TestNewRoot(t *testing.T) {
	root := NewRoot[string, string]("S")

	assert.Equal(t, "S", root.State())
	_, ok := root.Action()
	assert.False(t, ok)
	assert.Nil(t, root.Parent())
	assert.True(t, root.IsRoot())
	assert.Equal(t, 0.0, root.PathCost())
	assert.Equal(t, 0, root.Depth())
	assert.Empty(t, root.PathActions())
	assert.Equal(t, []string{"S"}, root.PathStates())
	assert.Equal(t, []*Node[string, string]{root}, root.Path())
	assert.Equal(t, "S", root.String())
}

func TestNewNode(t *testing.T) {
	root := NewRoot[string, string]("S")
	n := NewNode("A", "go_A", root, 7, 1)

	a, ok := n.Action()
	assert.True(t, ok)
	assert.Equal(t, "go_A", a)
	assert.Same(t, root, n.Parent())
	assert.Equal(t, 7.0, n.PathCost())

	orphan := NewNode[string, string]("X", "ignored", nil, 0, 0)
	_, ok = orphan.Action()
	assert.False(t, ok)
	assert.True(t, orphan.IsRoot())
}

func TestExpand(t *testing.T) {
	p := sabg()
	root := NewRoot[string, string](p.InitState())

	children := root.Children(p)
	require.Len(t, children, 2)

	for i, want := range []struct {
		action, state string
		cost          float64
	}{
		{"go_A", "A", 1},
		{"go_B", "B", 5},
	} {
		c := children[i]
		a, ok := c.Action()
		assert.True(t, ok)
		assert.Equal(t, want.action, a)
		assert.Equal(t, want.state, c.State())
		assert.Equal(t, want.cost, c.PathCost())
		assert.Equal(t, 1, c.Depth())
		assert.Same(t, root, c.Parent())
	}

	// nodes are distinct even with equal states
	again := root.Children(p)
	assert.NotSame(t, children[0], again[0])
	assert.Equal(t, children[0].State(), again[0].State())
}

func TestExpand_Lazy(t *testing.T) {
	p := sabg()
	root := NewRoot[string, string](p.InitState())

	e := root.Expand(p)
	assert.Equal(t, 0, p.results)

	require.True(t, e.Next())
	assert.Equal(t, "A", e.Item().State())
	assert.Equal(t, 1, p.results)

	// abandon here: go_B is never generated
	assert.Equal(t, 1, p.results)

	e = root.Expand(p)
	assert.Equal(t, []string{"A", "B"},
		testutils.Collect[*Node[string, string]](e, (*Node[string, string]).State))
	assert.False(t, e.Next())
	assert.Nil(t, e.Item())
}

func TestExpand_DeadEnd(t *testing.T) {
	p := sabg()
	assert.Empty(t, NewRoot[string, string]("G").Children(p))
}

func TestPathInvariants(t *testing.T) {
	p := chain()
	n := NewRoot[string, string](p.InitState())
	for i := 0; i < 3; i++ {
		children := n.Children(p)
		require.Len(t, children, 1)
		n = children[0]
	}

	assert.Equal(t, 3, n.Depth())
	assert.Equal(t, []string{"a1", "a2", "a3"}, n.PathActions())
	assert.Equal(t, []string{"0", "1", "2", "3"}, n.PathStates())
	assert.Equal(t, 6.0, n.PathCost())
	assert.True(t, p.IsGoal(n.State()))

	path := n.Path()
	require.Len(t, path, 4)
	for i := 1; i < len(path); i++ {
		assert.Same(t, path[i-1], path[i].Parent())
		assert.Equal(t, path[i-1].Depth()+1, path[i].Depth())
	}
}

func TestBase_NotImplemented(t *testing.T) {
	var p Problem[int, int] = Base[int, int]{}

	calls := map[string]func(){
		"InitState":  func() { p.InitState() },
		"IsGoal":     func() { p.IsGoal(0) },
		"Actions":    func() { p.Actions(0) },
		"Result":     func() { p.Result(0, 0) },
		"ActionCost": func() { p.ActionCost(0, 0, 0) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				require.True(t, ok, "panic value %v", r)
				assert.True(t, errors.Is(err, ErrNotImplemented))
				assert.Contains(t, err.Error(), name)
			}()
			call()
		})
	}

	assert.Equal(t, 0.0, p.Heuristic(5))
}
