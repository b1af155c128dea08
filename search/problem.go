// Package search contains the search-tree Node and the Problem
// contract that nodes consult to generate their children.
//
// The package does tree search only: it never deduplicates states.
// Combining a Node with a frontier and a termination policy is left to
// the caller (see package solve).
package search

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is wrapped by the panics raised from Base when a
// problem leaves one of the required methods unimplemented.
var ErrNotImplemented = errors.New("not implemented")

// Problem describes a search problem over states S and actions A.
type Problem[S, A any] interface {
	// InitState is the start state.
	InitState() S
	// IsGoal reports whether s is a goal state.
	IsGoal(s S) bool
	// Actions returns the actions legal in s, possibly none.
	Actions(s S) []A
	// Result returns the state reached by applying a in s.
	// a must be one of Actions(s).
	Result(s S, a A) S
	// ActionCost is the cost of going from one state to the next via a.
	// It should not be negative; this is not checked.
	ActionCost(from S, a A, to S) float64
	// Heuristic estimates the cost from s to the nearest goal.
	Heuristic(s S) float64
}

// Base can be embedded in a problem type. It supplies a zero
// Heuristic, and panics for every other method so that a problem
// missing one fails loudly instead of searching nonsense.
type Base[S, A any] struct{}

func notImplemented(method string) error {
	return fmt.Errorf("%w: Problem.%s", ErrNotImplemented, method)
}

func (Base[S, A]) InitState() S {
	panic(notImplemented("InitState"))
}

func (Base[S, A]) IsGoal(S) bool {
	panic(notImplemented("IsGoal"))
}

func (Base[S, A]) Actions(S) []A {
	panic(notImplemented("Actions"))
}

func (Base[S, A]) Result(S, A) S {
	panic(notImplemented("Result"))
}

func (Base[S, A]) ActionCost(S, A, S) float64 {
	panic(notImplemented("ActionCost"))
}

// Heuristic returns 0, which is admissible for any problem.
func (Base[S, A]) Heuristic(S) float64 {
	return 0
}
