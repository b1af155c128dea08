package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Board
		wantErr bool
	}{
		{
			name: "spaces",
			in:   "1 2 3 4 5 6 7 8 0",
			want: Goal,
		},
		{
			name: "digits",
			in:   " 123405678 ",
			want: Board{1, 2, 3, 4, 0, 5, 6, 7, 8},
		},
		{
			name:    "short",
			in:      "1 2 3",
			wantErr: true,
		},
		{
			name:    "duplicate",
			in:      "112345678",
			wantErr: true,
		},
		{
			name:    "out of range",
			in:      "1 2 3 4 5 6 7 8 9",
			wantErr: true,
		},
		{
			name:    "not a number",
			in:      "12345678x",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidBoard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoard_String(t *testing.T) {
	assert.Equal(t, "1 2 3 / 4 5 6 / 7 8 _", Goal.String())
}

func TestBoard_Legal(t *testing.T) {
	assert.Equal(t, []Move{Up, Left}, Goal.Legal())

	center := Board{1, 2, 3, 4, 0, 5, 6, 7, 8}
	assert.Equal(t, []Move{Up, Down, Left, Right}, center.Legal())

	corner := Board{0, 1, 2, 3, 4, 5, 6, 7, 8}
	assert.Equal(t, []Move{Down, Right}, corner.Legal())
}

func TestBoard_Apply(t *testing.T) {
	b := Goal.Apply(Left)
	assert.Equal(t, Board{1, 2, 3, 4, 5, 6, 7, 0, 8}, b)
	assert.Equal(t, Goal, b.Apply(Right))
	// value receiver: Goal is untouched
	assert.Equal(t, Board{1, 2, 3, 4, 5, 6, 7, 8, 0}, Goal)

	assert.Panics(t, func() { Goal.Apply(Down) })
}

func TestBoard_Manhattan(t *testing.T) {
	assert.Equal(t, 0, Goal.Manhattan())
	assert.Equal(t, 1, Goal.Apply(Left).Manhattan())
	assert.Equal(t, 2, Goal.Apply(Left).Apply(Up).Manhattan())
}

func TestBoard_Solvable(t *testing.T) {
	assert.True(t, Goal.Solvable())
	assert.True(t, Goal.Apply(Up).Apply(Left).Solvable())
	assert.False(t, Board{2, 1, 3, 4, 5, 6, 7, 8, 0}.Solvable())
}

func TestNewProblem(t *testing.T) {
	_, err := NewProblem(Board{2, 1, 3, 4, 5, 6, 7, 8, 0})
	assert.ErrorIs(t, err, ErrInvalidBoard)

	start := Goal.Apply(Left)
	p, err := NewProblem(start)
	require.NoError(t, err)
	assert.Equal(t, start, p.InitState())
	assert.False(t, p.IsGoal(start))
	assert.True(t, p.IsGoal(p.Result(start, Right)))
	assert.Equal(t, 1.0, p.ActionCost(start, Right, Goal))
	assert.Equal(t, 1.0, p.Heuristic(start))
	assert.Equal(t, []Move{Up, Left, Right}, p.Actions(start))
}

func TestMove_String(t *testing.T) {
	assert.Equal(t, "Up", Up.String())
	assert.Equal(t, "Right", Right.String())
	assert.Equal(t, "<invalid puzzle.Move>", Move(9).String())
}
