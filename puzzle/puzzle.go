// Package puzzle is the 8-puzzle as a search problem. A state is a
// 3x3 board and an action slides the blank one square.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.lepak.sg/treesearch/search"
)

const side = 3

var ErrInvalidBoard = errors.New("invalid board")

// Board holds tiles in row-major order. 0 is the blank.
type Board [side * side]uint8

// Goal is the solved board.
var Goal = Board{1, 2, 3, 4, 5, 6, 7, 8, 0}

// Parse reads a board written as nine tiles, either separated by spaces
// or as a run of digits: "1 2 3 4 5 6 7 8 0" or "123456780".
func Parse(s string) (Board, error) {
	var b Board

	fields := strings.Fields(s)
	if len(fields) == 1 {
		fields = strings.Split(fields[0], "")
	}
	if len(fields) != len(b) {
		return b, fmt.Errorf("%w: want %d tiles, got %d", ErrInvalidBoard, len(b), len(fields))
	}

	var seen [len(b)]bool
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 || n >= len(b) {
			return b, fmt.Errorf("%w: bad tile %q", ErrInvalidBoard, f)
		}
		if seen[n] {
			return b, fmt.Errorf("%w: duplicate tile %d", ErrInvalidBoard, n)
		}
		seen[n] = true
		b[i] = uint8(n)
	}

	return b, nil
}

func (b Board) blank() int {
	for i, t := range b {
		if t == 0 {
			return i
		}
	}
	panic("board has no blank")
}

// Solvable reports whether Goal can be reached from b. On a board
// of odd width that is the case iff the number of inversions is even.
func (b Board) Solvable() bool {
	inversions := 0
	for i := 0; i < len(b); i++ {
		for j := i + 1; j < len(b); j++ {
			if b[i] != 0 && b[j] != 0 && b[i] > b[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 0
}

// Manhattan is the sum over all tiles of the distance to their goal square.
func (b Board) Manhattan() int {
	d := 0
	for i, t := range b {
		if t == 0 {
			continue
		}
		goal := int(t) - 1
		d += abs(i/side-goal/side) + abs(i%side-goal%side)
	}
	return d
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func (b Board) String() string {
	var sb strings.Builder
	for i, t := range b {
		if i > 0 {
			if i%side == 0 {
				sb.WriteString(" / ")
			} else {
				sb.WriteRune(' ')
			}
		}
		if t == 0 {
			sb.WriteRune('_')
		} else {
			sb.WriteString(strconv.Itoa(int(t)))
		}
	}
	return sb.String()
}

// Move is the direction the blank slides in.
type Move int

const (
	Up Move = iota
	Down
	Left
	Right
)

var moves = [...]Move{Up, Down, Left, Right}

func (m Move) String() string {
	switch m {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "<invalid puzzle.Move>"
	}
}

// delta returns the row and column offsets of m.
func (m Move) delta() (int, int) {
	switch m {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	default:
		panic("invalid move")
	}
}

// Apply slides the blank in direction m. It panics if the blank
// would leave the board.
func (b Board) Apply(m Move) Board {
	i := b.blank()
	dr, dc := m.delta()
	r, c := i/side+dr, i%side+dc
	if r < 0 || r >= side || c < 0 || c >= side {
		panic(fmt.Sprintf("illegal move %v on %v", m, b))
	}
	j := r*side + c
	b[i], b[j] = b[j], b[i]
	return b
}

// Legal returns the moves that keep the blank on the board,
// in the order Up, Down, Left, Right.
func (b Board) Legal() []Move {
	i := b.blank()
	r, c := i/side, i%side

	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		dr, dc := m.delta()
		if nr, nc := r+dr, c+dc; nr >= 0 && nr < side && nc >= 0 && nc < side {
			out = append(out, m)
		}
	}
	return out
}

// Problem is the problem of sliding a board into Goal.
type Problem struct {
	search.Base[Board, Move]
	start Board
}

var _ search.Problem[Board, Move] = (*Problem)(nil)

// NewProblem returns the problem of solving start. Boards that cannot
// reach Goal are rejected, since a tree search on them never ends.
func NewProblem(start Board) (*Problem, error) {
	if !start.Solvable() {
		return nil, fmt.Errorf("%w: %v is not solvable", ErrInvalidBoard, start)
	}
	return &Problem{start: start}, nil
}

func (p *Problem) InitState() Board {
	return p.start
}

func (p *Problem) IsGoal(b Board) bool {
	return b == Goal
}

func (p *Problem) Actions(b Board) []Move {
	return b.Legal()
}

func (p *Problem) Result(b Board, m Move) Board {
	return b.Apply(m)
}

// ActionCost is 1 for every move.
func (p *Problem) ActionCost(Board, Move, Board) float64 {
	return 1
}

// Heuristic is the Manhattan distance, which never overestimates.
func (p *Problem) Heuristic(b Board) float64 {
	return float64(b.Manhattan())
}
