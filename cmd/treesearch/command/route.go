package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.lepak.sg/treesearch/route"
)

const (
	routeUse     = "route --map file --from location --to location [--strategy s]"
	routeShort   = "find a route between two locations of a road map"
	routeLong    = "loads a YAML road map and searches for a route from one location to another."
	routeMapUse  = "YAML file describing the road map"
	routeFromUse = "starting location"
	routeToUse   = "destination location"
)

type Route struct {
	MapPath string
	From    string
	To      string
	searchOptions
}

func (r *Route) Complete(args []string) error {
	switch {
	case len(args) != 0:
		return fmt.Errorf("%w: got %v positional args, expected none", ErrInvalidArgs, len(args))
	case r.MapPath == "":
		return fmt.Errorf("%w: --map is required", ErrInvalidArgs)
	case r.From == "" || r.To == "":
		return fmt.Errorf("%w: --from and --to are required", ErrInvalidArgs)
	}
	return r.searchOptions.Complete()
}

func (r Route) Run(ctx context.Context, out io.Writer) error {
	f, err := os.Open(r.MapPath)
	if err != nil {
		return fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	m, err := route.LoadMap(f)
	if err != nil {
		return fmt.Errorf("load map %s: %w", r.MapPath, err)
	}

	p, err := route.NewProblem(m, r.From, r.To)
	if err != nil {
		return err
	}
	return runSearch[string, string](ctx, out, p, r.searchOptions)
}

func (r *Route) CobraCommand() *cobra.Command {
	r.Strategy = "astar"

	cmd := &cobra.Command{
		Use:   routeUse,
		Short: routeShort,
		Long:  routeLong,
	}
	f := cmd.Flags()
	f.StringVarP(&r.MapPath, "map", "m", "", routeMapUse)
	f.StringVar(&r.From, "from", "", routeFromUse)
	f.StringVar(&r.To, "to", "", routeToUse)
	r.searchOptions.AddFlags(f)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := r.Complete(args); err != nil {
			return err
		}
		return r.Run(cmd.Context(), cmd.OutOrStdout())
	}

	return cmd
}
