// Package testutils holds assertions shared by the tests of the
// frontier, search and solve packages.
package testutils

import (
	"github.com/stretchr/testify/assert"
)

type TestT interface {
	Log(...any)
	Logf(string, ...any)
	Error(...any)
	Errorf(string, ...any) // also used by testify/assert
}

// Popper is the part of a frontier that Drain needs.
type Popper[T any] interface {
	Pop() (T, error)
	Empty() bool
}

// Iterator is the Next/Item pull iterator used by the search package.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// Drain expects to pop data in order from p, then expects
// p to be empty.
func Drain[T any](t TestT, data []T, p Popper[T]) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		if p.Empty() {
			t.Errorf("frontier empty early, expecting i=%d %v", i, datum)
			return
		}
		el, err := p.Pop()
		if assert.NoError(t, err, "i=%d", i) {
			assert.Equal(t, datum, el, "i=%d", i)
		}
	}

	if !p.Empty() {
		el, _ := p.Pop()
		t.Errorf("frontier should be empty, but popped: %v", el)
	}
}

// DrainMapped is like Drain, but compares f of each popped element.
// Use it when elements are pointers and only a projection of them
// is known in advance.
func DrainMapped[T, R any](t TestT, data []R, p Popper[T], f func(T) R) {
	t.Logf("draining: expecting %v", data)
	for i, datum := range data {
		if p.Empty() {
			t.Errorf("frontier empty early, expecting i=%d %v", i, datum)
			return
		}
		el, err := p.Pop()
		if assert.NoError(t, err, "i=%d", i) {
			assert.Equal(t, datum, f(el), "i=%d", i)
		}
	}

	if !p.Empty() {
		el, _ := p.Pop()
		t.Errorf("frontier should be empty, but popped: %v", f(el))
	}
}

// Collect runs the iterator to the end, applying f to every item.
func Collect[T, R any](it Iterator[T], f func(T) R) []R {
	var out []R
	for it.Next() {
		out = append(out, f(it.Item()))
	}
	return out
}
