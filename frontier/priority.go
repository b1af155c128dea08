package frontier

import (
	"fmt"
	"strings"

	"go.lepak.sg/treesearch/heap"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

var _ Frontier[int] = (*Priority[int, float64])(nil)

// Number is the set of types usable as a priority.
type Number interface {
	constraints.Integer | constraints.Float
}

// Entry is an element-priority pair, used to seed a Priority.
type Entry[E comparable, P Number] struct {
	Element  E
	Priority P
}

type item[E comparable, P Number] struct {
	elem E
	prio P
	// insertion order, breaks ties between equal priorities
	seq uint64
}

func (a *item[E, P]) less(b *item[E, P]) bool {
	if a.prio == b.prio {
		return a.seq < b.seq
	}
	return a.prio < b.prio
}

// items is a min-heap ordered by (prio, seq).
type items[E comparable, P Number] []*item[E, P]

var _ heap.Interface[*item[int, int]] = (*items[int, int])(nil)

func (h items[_, _]) Len() int {
	return len(h)
}

func (h items[_, _]) Less(i, j int) bool {
	return h[i].less(h[j])
}

func (h items[_, _]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *items[E, P]) Push(x *item[E, P]) {
	*h = append(*h, x)
}

func (h *items[E, P]) Pop() *item[E, P] {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return x
}

// Priority is a priority queue. Pop always returns the element with
// the lowest priority value; elements with equal priority come out
// in the order they were pushed.
//
// Push and Pop are O(log n). Update and HasElement scan the whole
// queue and are O(n).
type Priority[E comparable, P Number] struct {
	h    items[E, P]
	seq  uint64
	prio func(E) P
}

// NewPriority creates a priority queue. prio computes the priority used
// by Push; if it is nil, Push uses priority 0. Each seed entry is pushed
// in order.
func NewPriority[E comparable, P Number](prio func(E) P, seed ...Entry[E, P]) *Priority[E, P] {
	q := &Priority[E, P]{
		h:    make(items[E, P], 0, len(seed)),
		prio: prio,
	}
	for _, s := range seed {
		q.PushPriority(s.Element, s.Priority)
	}
	return q
}

// NewPriorityFrom is like NewPriority, but accepts a seed of unknown type.
// It returns ErrInvalidArgument if seed is neither nil nor a []Entry[E, P].
func NewPriorityFrom[E comparable, P Number](prio func(E) P, seed any) (*Priority[E, P], error) {
	s, err := seedSlice[Entry[E, P]](seed)
	if err != nil {
		return nil, err
	}
	return NewPriority(prio, s...), nil
}

// Push adds e with the priority computed by the queue's priority function.
func (q *Priority[E, P]) Push(e E) {
	var p P
	if q.prio != nil {
		p = q.prio(e)
	}
	q.PushPriority(e, p)
}

// PushPriority adds e with priority p.
func (q *Priority[E, P]) PushPriority(e E, p P) {
	heap.Push[*item[E, P]](&q.h, &item[E, P]{
		elem: e,
		prio: p,
		seq:  q.seq,
	})
	q.seq++
}

// Pop removes and returns the element with the lowest priority.
func (q *Priority[E, P]) Pop() (e E, err error) {
	e, _, err = q.PopPriority()
	return
}

// PopPriority is like Pop, but also returns the element's priority.
func (q *Priority[E, P]) PopPriority() (e E, p P, err error) {
	if q.Empty() {
		return e, p, ErrEmptyContainer
	}
	it := heap.Pop[*item[E, P]](&q.h)
	return it.elem, it.prio, nil
}

// Top is not supported on a priority queue; it always returns
// ErrUnsupported. Use Pop to observe the minimum.
func (q *Priority[E, P]) Top() (e E, err error) {
	return e, fmt.Errorf("%w: Top on a priority frontier", ErrUnsupported)
}

// Update lowers the priority of e to p. If e is queued more than once,
// only its entry with the lowest priority is considered: if that
// priority is <= p nothing happens, otherwise it is lowered to p.
// If e is not queued, it is pushed with priority p.
// Update reports whether the queue changed.
func (q *Priority[E, P]) Update(e E, p P) bool {
	best := -1
	for i, it := range q.h {
		if it.elem == e && (best == -1 || it.less(q.h[best])) {
			best = i
		}
	}

	if best == -1 {
		q.PushPriority(e, p)
		return true
	}
	if q.h[best].prio <= p {
		return false
	}
	q.h[best].prio = p
	heap.Fix[*item[E, P]](&q.h, best)
	return true
}

func (q *Priority[_, _]) Empty() bool {
	return len(q.h) == 0
}

func (q *Priority[_, _]) Len() int {
	return len(q.h)
}

// sorted returns the queued items in pop order.
func (q *Priority[E, P]) sorted() []*item[E, P] {
	s := slices.Clone(q.h)
	slices.SortFunc(s, func(a, b *item[E, P]) bool {
		return a.less(b)
	})
	return s
}

// Range visits the elements in ascending priority order.
// It sorts a copy of the queue, so it is O(n log n).
func (q *Priority[E, P]) Range(f func(E) bool) {
	for _, it := range q.sorted() {
		if !f(it.elem) {
			return
		}
	}
}

func (q *Priority[E, P]) rangeUnordered(f func(E) bool) {
	for _, it := range q.h {
		if !f(it.elem) {
			return
		}
	}
}

// Entries returns the queued element-priority pairs in pop order.
func (q *Priority[E, P]) Entries() []Entry[E, P] {
	s := q.sorted()
	out := make([]Entry[E, P], len(s))
	for i, it := range s {
		out[i] = Entry[E, P]{Element: it.elem, Priority: it.prio}
	}
	return out
}

func (q *Priority[E, P]) String() string {
	var parts []string
	for _, it := range q.sorted() {
		parts = append(parts, fmt.Sprintf("%v (%v)", it.elem, it.prio))
	}
	return strings.Join(parts, ", ")
}
