package command

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go.lepak.sg/treesearch/puzzle"
)

const (
	puzzleUse   = "puzzle --board \"1 2 3 4 5 6 7 0 8\" [--strategy s]"
	puzzleShort = "solve an 8-puzzle"
	puzzleLong  = "solves the 3x3 sliding tile puzzle. The board lists tiles row by row, with 0 for the blank; " +
		"actions name the direction the blank moves."
	puzzleBoardUse = "starting board, row by row, 0 for the blank"

	// every solvable 8-puzzle needs at most 31 moves
	puzzleMaxDepth = 31
)

type Puzzle struct {
	Board puzzle.Board
	board string
	searchOptions
}

func (p *Puzzle) Complete(args []string) (err error) {
	switch {
	case len(args) != 0:
		return fmt.Errorf("%w: got %v positional args, expected none", ErrInvalidArgs, len(args))
	case p.board == "":
		return fmt.Errorf("%w: --board is required", ErrInvalidArgs)
	}

	p.Board, err = puzzle.Parse(p.board)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgs, err)
	}
	return p.searchOptions.Complete()
}

func (p Puzzle) Run(ctx context.Context, out io.Writer) error {
	prob, err := puzzle.NewProblem(p.Board)
	if err != nil {
		return err
	}
	return runSearch[puzzle.Board, puzzle.Move](ctx, out, prob, p.searchOptions)
}

func (p *Puzzle) CobraCommand() *cobra.Command {
	p.Strategy = "astar"
	p.MaxDepth = puzzleMaxDepth

	cmd := &cobra.Command{
		Use:   puzzleUse,
		Short: puzzleShort,
		Long:  puzzleLong,
	}
	f := cmd.Flags()
	f.StringVarP(&p.board, "board", "b", "", puzzleBoardUse)
	p.searchOptions.AddFlags(f)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := p.Complete(args); err != nil {
			return err
		}
		return p.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return cmd
}
