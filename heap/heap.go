// Package heap is a generic version of container/heap.
// Push and Pop on Interface use the element type instead of any,
// so callers never need a type assertion on the way out.
package heap

import "sort"

// Interface is like heap.Interface from the standard library,
// but Push and Pop carry the element type T.
// Less defines the heap order: the element at index 0 is the
// minimum according to Less.
type Interface[T any] interface {
	sort.Interface
	// Push adds x as element Len().
	Push(x T)
	// Pop removes and returns element Len()-1.
	Pop() T
}

// Init establishes the heap invariants. It is O(n).
func Init[T any](h Interface[T]) {
	n := h.Len()
	for i := n/2 - 1; i >= 0; i-- {
		down(h, i, n)
	}
}

// Push pushes x onto the heap in O(log n).
func Push[T any](h Interface[T], x T) {
	h.Push(x)
	up(h, h.Len()-1)
}

// Pop removes and returns the minimum element in O(log n).
// Pop panics if the heap is empty, like indexing an empty slice.
func Pop[T any](h Interface[T]) T {
	n := h.Len() - 1
	h.Swap(0, n)
	down(h, 0, n)
	return h.Pop()
}

// Remove removes and returns the element at index i in O(log n).
func Remove[T any](h Interface[T], i int) T {
	n := h.Len() - 1
	if n != i {
		h.Swap(i, n)
		if !down(h, i, n) {
			up(h, i)
		}
	}
	return h.Pop()
}

// Fix re-establishes the heap ordering after the element at index i
// has changed its value. It is cheaper than Remove followed by Push.
func Fix[T any](h Interface[T], i int) {
	if !down(h, i, h.Len()) {
		up(h, i)
	}
}

func up[T any](h Interface[T], j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		j = i
	}
}

// down reports whether the element at i0 moved.
func down[T any](h Interface[T], i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.Less(j2, j1) {
			j = j2 // right child
		}
		if !h.Less(j, i) {
			break
		}
		h.Swap(i, j)
		i = j
	}
	return i > i0
}
