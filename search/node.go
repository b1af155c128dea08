package search

import "fmt"

// Node is a node in a search tree. A Node is never modified after it
// is created, so children may share their parent freely and a node may
// sit in a frontier while its children are being generated.
//
// Two nodes are always distinct, even if they hold equal states.
type Node[S, A any] struct {
	state    S
	action   A
	parent   *Node[S, A]
	pathCost float64
	depth    int
}

// NewRoot creates the root of a search tree, with no parent or action,
// zero path cost and depth 0.
func NewRoot[S, A any](state S) *Node[S, A] {
	return &Node[S, A]{state: state}
}

// NewNode creates a node with every field given.
// Unlike Expand, it does not check that pathCost and depth agree with
// parent; that is up to the caller. A nil parent makes a root,
// and action is then ignored.
func NewNode[S, A any](state S, action A, parent *Node[S, A], pathCost float64, depth int) *Node[S, A] {
	n := &Node[S, A]{
		state:    state,
		parent:   parent,
		pathCost: pathCost,
		depth:    depth,
	}
	if parent != nil {
		n.action = action
	}
	return n
}

// State returns the state held by the node.
func (n *Node[S, A]) State() S {
	return n.state
}

// Action returns the action that produced this node from its parent.
// ok is false for a root.
func (n *Node[S, A]) Action() (a A, ok bool) {
	if n.parent == nil {
		return a, false
	}
	return n.action, true
}

// Parent returns the parent node, or nil for a root.
func (n *Node[S, A]) Parent() *Node[S, A] {
	return n.parent
}

// PathCost is the total cost of the actions from the root to n.
func (n *Node[_, _]) PathCost() float64 {
	return n.pathCost
}

// Depth is the number of actions from the root to n.
func (n *Node[_, _]) Depth() int {
	return n.depth
}

func (n *Node[_, _]) IsRoot() bool {
	return n.parent == nil
}

// Expand returns an iterator over the children of n, one per successor
// of n's state in the order p generates them. Each child is only built
// when Next is called, and the iterator may be abandoned at any time.
func (n *Node[S, A]) Expand(p Problem[S, A]) *Expansion[S, A] {
	return &Expansion[S, A]{
		parent: n,
		succ:   Successors(p, n.state),
	}
}

// Children is the eager form of Expand.
func (n *Node[S, A]) Children(p Problem[S, A]) []*Node[S, A] {
	var out []*Node[S, A]
	e := n.Expand(p)
	for e.Next() {
		out = append(out, e.Item())
	}
	return out
}

// Path returns the nodes from the root to n, inclusive.
func (n *Node[S, A]) Path() []*Node[S, A] {
	path := make([]*Node[S, A], 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	reverse(path)
	return path
}

// PathActions returns the actions leading from the root to n.
// It is empty for a root.
func (n *Node[S, A]) PathActions() []A {
	actions := make([]A, 0, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		actions = append(actions, cur.action)
	}
	reverse(actions)
	return actions
}

// PathStates returns the states from the root to n, inclusive.
// The first state is always the root's.
func (n *Node[S, A]) PathStates() []S {
	states := make([]S, 0, n.depth+1)
	for cur := n; cur != nil; cur = cur.parent {
		states = append(states, cur.state)
	}
	reverse(states)
	return states
}

// String returns the node's state in the default format.
func (n *Node[_, _]) String() string {
	return fmt.Sprint(n.state)
}

// Expansion is the iterator returned by Node.Expand.
type Expansion[S, A any] struct {
	parent *Node[S, A]
	succ   Iterator[Successor[S, A]]
	cur    *Node[S, A]
}

var _ Iterator[*Node[int, int]] = (*Expansion[int, int])(nil)

// Next generates the next child. It returns false once every
// successor has been generated.
func (e *Expansion[S, A]) Next() bool {
	if !e.succ.Next() {
		e.cur = nil
		return false
	}

	s := e.succ.Item()
	e.cur = &Node[S, A]{
		state:    s.State,
		action:   s.Action,
		parent:   e.parent,
		pathCost: e.parent.pathCost + s.Cost,
		depth:    e.parent.depth + 1,
	}
	return true
}

// Item returns the child generated by the last call to Next.
func (e *Expansion[S, A]) Item() *Node[S, A] {
	return e.cur
}

func reverse[E any](s []E) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
