package cli

import (
	"fmt"
	"iter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logging"
	"github.com/katalvlaran/lvsearch/tabu"
)

// point is a lattice position for the grid command.
type point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// gridNeighbors yields the 8 surrounding points plus p itself.
func gridNeighbors(p point) iter.Seq[point] {
	return func(yield func(point) bool) {
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				if !yield(point{p.X + dx, p.Y + dy}) {
					return
				}
			}
		}
	}
}

// squaredDistance returns the cost function (x−tx)² + (y−ty)².
func squaredDistance(target point) tabu.CostFunc[point] {
	return func(p point) float64 {
		dx, dy := p.X-target.X, p.Y-target.Y
		return float64(dx*dx + dy*dy)
	}
}

func newGridCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Descend the integer grid toward a target point",
		Long: `Run tabu search on the integer lattice with moves to the 8 surrounding
points (or staying put) and squared distance to --target as the cost.
Handy for watching the engine with --log-level debug.`,
		Example: `  lvsearch grid --start 10,10 --target 5,5 --stopping-cost 0`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.setup(cmd, searchFlagKeys()); err != nil {
				return err
			}

			startFlag, _ := cmd.Flags().GetString("start")
			targetFlag, _ := cmd.Flags().GetString("target")
			start, err := parsePoint(startFlag)
			if err != nil {
				return err
			}
			target, err := parsePoint(targetFlag)
			if err != nil {
				return err
			}

			log := a.log.With().Str("command", "grid").Logger()
			res, err := tabu.Search(start, gridNeighbors, squaredDistance(target),
				a.cfg.Search.MaxIterations, a.cfg.Search.Options(logging.StepObserver(log))...)
			if err != nil {
				return err
			}
			logging.Done(log, res.Cost, res.Iterations, res.Evaluations, res.Stop)

			_, err = fmt.Fprintf(a.out, "best=(%d,%d) cost=%s iterations=%d stop=%s\n",
				res.Best.X, res.Best.Y, cost(res.Cost), res.Iterations, res.Stop)
			return err
		},
	}
	addSearchFlags(cmd)
	cmd.Flags().String("start", "0,0", "start point x,y")
	cmd.Flags().String("target", "5,5", "target point x,y")

	return cmd
}
