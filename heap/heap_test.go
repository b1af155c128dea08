package heap

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ints []int

func (h ints) Len() int           { return len(h) }
func (h ints) Less(i, j int) bool { return h[i] < h[j] }
func (h ints) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *ints) Push(x int) {
	*h = append(*h, x)
}

func (h *ints) Pop() int {
	x := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return x
}

var _ Interface[int] = (*ints)(nil)

func drain(h *ints) []int {
	var out []int
	for h.Len() > 0 {
		out = append(out, Pop[int](h))
	}
	return out
}

func TestInitPop(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{
			name: "empty",
		},
		{
			name: "one",
			in:   []int{1},
			want: []int{1},
		},
		{
			name: "reversed",
			in:   []int{5, 4, 3, 2, 1},
			want: []int{1, 2, 3, 4, 5},
		},
		{
			name: "duplicates",
			in:   []int{3, 1, 3, 2, 1},
			want: []int{1, 1, 2, 3, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := ints(append([]int(nil), tt.in...))
			Init[int](&h)
			assert.Equal(t, tt.want, drain(&h))
		})
	}
}

func TestPushRandom(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	h := &ints{}
	for i := 0; i < 200; i++ {
		Push[int](h, r.Intn(50))
	}

	out := drain(h)
	require.Len(t, out, 200)
	for i := 1; i < len(out); i++ {
		assert.LessOrEqual(t, out[i-1], out[i], "index %d", i)
	}
}

func TestFix(t *testing.T) {
	h := &ints{}
	for _, x := range []int{10, 20, 30, 40} {
		Push[int](h, x)
	}

	// lower the largest element to the smallest
	for i, x := range *h {
		if x == 40 {
			(*h)[i] = 5
			Fix[int](h, i)
			break
		}
	}
	assert.Equal(t, 5, (*h)[0])

	// raise the root
	(*h)[0] = 25
	Fix[int](h, 0)
	assert.Equal(t, []int{10, 20, 25, 30}, drain(h))
}

func TestRemove(t *testing.T) {
	h := &ints{}
	for _, x := range []int{1, 2, 3, 4, 5, 6} {
		Push[int](h, x)
	}

	for i, x := range *h {
		if x == 4 {
			assert.Equal(t, 4, Remove[int](h, i))
			break
		}
	}
	last := (*h)[h.Len()-1]
	assert.Equal(t, last, Remove[int](h, h.Len()-1))
	assert.Len(t, drain(h), 4)
}
