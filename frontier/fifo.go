package frontier

var _ Frontier[int] = (*FIFO[int])(nil)

// FIFO is a first-in-first-out queue.
type FIFO[E any] struct {
	data []E
	// data[head] is the front
	head int
}

// NewFIFO creates a FIFO holding seed. The seed is read the way
// a queue is drawn with the front on the right: the last element of
// seed is the front and will be popped first.
func NewFIFO[E any](seed ...E) *FIFO[E] {
	data := make([]E, len(seed))
	for i, e := range seed {
		data[len(seed)-1-i] = e
	}
	return &FIFO[E]{data: data}
}

// NewFIFOFrom is like NewFIFO, but accepts a seed of unknown type.
// It returns ErrInvalidArgument if seed is neither nil nor a []E.
func NewFIFOFrom[E any](seed any) (*FIFO[E], error) {
	s, err := seedSlice[E](seed)
	if err != nil {
		return nil, err
	}
	return NewFIFO(s...), nil
}

// Push appends e at the back of the queue.
func (q *FIFO[E]) Push(e E) {
	q.data = append(q.data, e)
}

// Pop removes and returns the front of the queue.
func (q *FIFO[E]) Pop() (e E, err error) {
	if q.Empty() {
		return e, ErrEmptyContainer
	}

	var zero E
	e = q.data[q.head]
	// so a popped pointer is not kept alive by the backing array
	q.data[q.head] = zero
	q.head++

	if q.head == len(q.data) {
		q.data = q.data[:0]
		q.head = 0
	} else if q.head > len(q.data)/2 {
		n := copy(q.data, q.data[q.head:])
		for i := n; i < len(q.data); i++ {
			q.data[i] = zero
		}
		q.data = q.data[:n]
		q.head = 0
	}

	return e, nil
}

// Top returns the front of the queue without removing it.
func (q *FIFO[E]) Top() (e E, err error) {
	if q.Empty() {
		return e, ErrEmptyContainer
	}
	return q.data[q.head], nil
}

func (q *FIFO[_]) Empty() bool {
	return q.Len() == 0
}

func (q *FIFO[_]) Len() int {
	return len(q.data) - q.head
}

// Range visits the elements front to back.
func (q *FIFO[E]) Range(f func(E) bool) {
	for _, e := range q.data[q.head:] {
		if !f(e) {
			return
		}
	}
}

func (q *FIFO[E]) String() string {
	return join[E](q, sprint[E])
}
