package cli

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/cluster"
	"github.com/katalvlaran/lvsearch/diameter"
)

// sweepRow is one k of a sweep.
type sweepRow struct {
	K          int    `json:"k"`
	Cost       cost   `json:"cost"`
	Iterations int    `json:"iterations"`
	Stop       string `json:"stop"`
	Sizes      []int  `json:"sizes"`
}

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [numbers...]",
		Short: "Cluster the same numbers for every k in a range and compare costs",
		Long: `Run the cluster search once per group count in [k-min, k-max] and report
the best largest-group diameter found for each. Runs are independent and
execute concurrently; each run is an ordinary single-threaded search.`,
		Example: `  lvsearch sweep --k-min 1 --k-max 4 1 2 3 10 11 12 30 31`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := searchFlagKeys()
			keys["cluster.k_min"] = "k-min"
			keys["cluster.k_max"] = "k-max"
			keys["cluster.output"] = "output"
			if err := a.setup(cmd, keys); err != nil {
				return err
			}

			input, _ := cmd.Flags().GetString("input")
			items, err := readItems(args, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			rows, err := a.sweep(cmd, items)
			if err != nil {
				return err
			}
			if a.cfg.Cluster.Output == "json" {
				return writeJSON(a.out, rows)
			}

			return writeSweepText(a.out, rows)
		},
	}
	addSearchFlags(cmd)
	cmd.Flags().Int("k-min", 0, "smallest group count (config: cluster.k_min)")
	cmd.Flags().Int("k-max", 0, "largest group count (config: cluster.k_max)")
	cmd.Flags().StringP("output", "o", "", "output format: text or json (config: cluster.output)")
	cmd.Flags().StringP("input", "i", "", "file with numbers, - for stdin")

	return cmd
}

// sweep runs one clustering per k, bounded by GOMAXPROCS concurrent runs.
func (a *app) sweep(cmd *cobra.Command, items []float64) ([]sweepRow, error) {
	kMin, kMax := a.cfg.Cluster.KMin, a.cfg.Cluster.KMax
	rows := make([]sweepRow, kMax-kMin+1)
	widest := cluster.MaxDiameter(diameter.AbsDiff[float64])

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k := kMin; k <= kMax; k++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log := a.log.With().Int("k", k).Logger()
			res, err := cluster.ClusterResult(items, widest, k, a.cfg.Search.MaxIterations,
				a.cfg.Search.Options(nil)...)
			if err != nil {
				return fmt.Errorf("sweep k=%d: %w", k, err)
			}
			log.Info().Float64("cost", res.Cost).Int("iterations", res.Iterations).Msg("run finished")
			rows[k-kMin] = sweepRow{
				K:          k,
				Cost:       cost(res.Cost),
				Iterations: res.Iterations,
				Stop:       res.Stop.String(),
				Sizes:      res.Partition.Sizes(),
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func writeSweepText(w io.Writer, rows []sweepRow) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "K\tCOST\tITERATIONS\tSTOP\tSIZES")
	for _, r := range rows {
		c := r.Cost.String()
		if math.IsInf(float64(r.Cost), -1) {
			c = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%v\n", r.K, c, r.Iterations, r.Stop, r.Sizes)
	}

	return tw.Flush()
}
