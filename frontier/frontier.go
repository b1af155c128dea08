// Package frontier provides the containers that hold unexpanded
// search-tree nodes: a FIFO queue, a LIFO stack, and a priority queue.
// All of them are generic over the element type and none of them is
// safe for concurrent use.
package frontier

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyContainer is returned by Pop and Top on an empty frontier.
	ErrEmptyContainer = errors.New("empty container")
	// ErrUnsupported is returned by Priority.Top.
	ErrUnsupported = errors.New("operation not supported")
	// ErrInvalidArgument is returned by the *From constructors
	// when the seed has the wrong type.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Frontier is the capability set shared by FIFO, LIFO and Priority.
type Frontier[E any] interface {
	// Push adds an element.
	Push(e E)
	// Pop removes and returns the next element according to
	// the frontier's policy.
	Pop() (E, error)
	// Top returns the next element without removing it.
	Top() (E, error)
	// Empty reports whether there is nothing left to pop.
	Empty() bool
	// Len returns the number of elements in the frontier.
	Len() int
	// Range calls f on every element in traversal order until
	// f returns false. The frontier must not be modified by f.
	Range(f func(E) bool)
	// String lists the elements in traversal order.
	String() string
}

// unorderedRanger is implemented by frontiers whose Range has to do
// extra work to produce traversal order.
type unorderedRanger[E any] interface {
	rangeUnordered(f func(E) bool)
}

// HasElement reports whether any element e in f has key(e) == target.
// It is a linear scan and does not modify f.
func HasElement[E any, K comparable](f Frontier[E], target K, key func(E) K) bool {
	each := f.Range
	if u, ok := f.(unorderedRanger[E]); ok {
		each = u.rangeUnordered
	}

	found := false
	each(func(e E) bool {
		if key(e) == target {
			found = true
		}
		return !found
	})
	return found
}

// Contains is HasElement with the identity key.
func Contains[E comparable](f Frontier[E], e E) bool {
	return HasElement(f, e, func(x E) E { return x })
}

// join renders elements in traversal order.
func join[E any](f Frontier[E], format func(E) string) string {
	var sb strings.Builder
	first := true
	f.Range(func(e E) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(format(e))
		return true
	})
	return sb.String()
}

func sprint[E any](e E) string {
	return fmt.Sprint(e)
}

// seedSlice converts a dynamically typed seed into []T.
// A nil seed is an empty slice.
func seedSlice[T any](seed any) ([]T, error) {
	if seed == nil {
		return nil, nil
	}
	s, ok := seed.([]T)
	if !ok {
		var zero []T
		return nil, fmt.Errorf("%w: seed must be of type %T, got %T",
			ErrInvalidArgument, zero, seed)
	}
	return s, nil
}
