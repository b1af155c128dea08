package search

// Iterator is a pull iterator.
// Next must always be called before Item, even for the first item.
// If Next returns false, Item must not be called.
// The iterator may be abandoned at any time; it holds no resources.
//
// The usual usage of an Iterator is like this:
//
//	i := Successors(p, s)
//	for i.Next() {
//		succ := i.Item()
//		... do stuff with succ, or break ...
//	}
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Successor is one outgoing transition of a state.
type Successor[S, A any] struct {
	Action A
	State  S
	Cost   float64
}

// SuccessorGenerator may be implemented by a Problem that can produce
// its successors more cheaply than Actions, Result and ActionCost
// called one by one. Successors uses it when available.
type SuccessorGenerator[S, A any] interface {
	Successors(s S) Iterator[Successor[S, A]]
}

// Successors returns the successors of s, one per action in the order
// Actions returns them. Result and ActionCost are only called as the
// iterator advances. Calling Successors again yields an equivalent
// sequence for a deterministic problem.
func Successors[S, A any](p Problem[S, A], s S) Iterator[Successor[S, A]] {
	if g, ok := p.(SuccessorGenerator[S, A]); ok {
		return g.Successors(s)
	}

	return &successorIter[S, A]{
		p:       p,
		from:    s,
		actions: p.Actions(s),
		i:       -1,
	}
}

var _ Iterator[Successor[int, int]] = (*successorIter[int, int])(nil)

type successorIter[S, A any] struct {
	p       Problem[S, A]
	from    S
	actions []A
	i       int
	cur     Successor[S, A]
}

func (it *successorIter[S, A]) Next() bool {
	if it.i+1 >= len(it.actions) {
		it.i = len(it.actions)
		return false
	}

	it.i++
	a := it.actions[it.i]
	to := it.p.Result(it.from, a)
	it.cur = Successor[S, A]{
		Action: a,
		State:  to,
		Cost:   it.p.ActionCost(it.from, a, to),
	}
	return true
}

func (it *successorIter[S, A]) Item() Successor[S, A] {
	return it.cur
}
