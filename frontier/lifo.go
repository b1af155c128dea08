package frontier

var _ Frontier[int] = (*LIFO[int])(nil)

// LIFO is a last-in-first-out stack.
type LIFO[E any] struct {
	data []E
}

// NewLIFO creates a LIFO holding seed, with the last element
// of seed on top.
func NewLIFO[E any](seed ...E) *LIFO[E] {
	data := make([]E, len(seed))
	copy(data, seed)
	return &LIFO[E]{data: data}
}

// NewLIFOFrom is like NewLIFO, but accepts a seed of unknown type.
// It returns ErrInvalidArgument if seed is neither nil nor a []E.
func NewLIFOFrom[E any](seed any) (*LIFO[E], error) {
	s, err := seedSlice[E](seed)
	if err != nil {
		return nil, err
	}
	return NewLIFO(s...), nil
}

// Push puts e on top of the stack.
func (s *LIFO[E]) Push(e E) {
	s.data = append(s.data, e)
}

// Pop removes and returns the top of the stack.
func (s *LIFO[E]) Pop() (e E, err error) {
	if s.Empty() {
		return e, ErrEmptyContainer
	}

	var zero E
	n := len(s.data) - 1
	e = s.data[n]
	s.data[n] = zero
	s.data = s.data[:n]
	return e, nil
}

// Top returns the top of the stack without removing it.
func (s *LIFO[E]) Top() (e E, err error) {
	if s.Empty() {
		return e, ErrEmptyContainer
	}
	return s.data[len(s.data)-1], nil
}

func (s *LIFO[_]) Empty() bool {
	return len(s.data) == 0
}

func (s *LIFO[_]) Len() int {
	return len(s.data)
}

// Range visits the elements from the top down.
func (s *LIFO[E]) Range(f func(E) bool) {
	for i := len(s.data) - 1; i >= 0; i-- {
		if !f(s.data[i]) {
			return
		}
	}
}

func (s *LIFO[E]) String() string {
	return join[E](s, sprint[E])
}
