package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/cluster"
	"github.com/katalvlaran/lvsearch/diameter"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// searchFlagKeys maps config keys to the shared search flags.
func searchFlagKeys() map[string]string {
	return map[string]string{
		"search.max_iterations": "max-iterations",
		"search.tabu_capacity":  "tabu-capacity",
		"search.stopping_cost":  "stopping-cost",
	}
}

// addSearchFlags registers the flags every search command accepts.
func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().Int("max-iterations", 0, "maximum number of moves (config: search.max_iterations)")
	cmd.Flags().Int("tabu-capacity", 0, "number of recently left states kept tabu (config: search.tabu_capacity)")
	cmd.Flags().Float64("stopping-cost", 0, "stop once the best cost is at or below this value (config: search.stopping_cost)")
}

// clusterReport is the JSON shape of a cluster result.
type clusterReport struct {
	K           int         `json:"k"`
	Cost        cost        `json:"cost"`
	Iterations  int         `json:"iterations"`
	Evaluations int         `json:"evaluations"`
	Stop        string      `json:"stop"`
	Groups      [][]float64 `json:"groups"`
}

func newClusterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster [numbers...]",
		Short: "Partition numbers into k groups minimizing the largest group diameter",
		Long: `Partition numbers into k groups so that the widest group (largest
distance between two of its members) is as narrow as possible.

Numbers come from the arguments or, when there are none, from --input
(a file, or - for stdin) with whitespace or comma separators.`,
		Example: `  lvsearch cluster --k 2 1 2 3 10 11 12
  lvsearch cluster --k 3 --input points.txt --output json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := searchFlagKeys()
			keys["cluster.k"] = "k"
			keys["cluster.output"] = "output"
			if err := a.setup(cmd, keys); err != nil {
				return err
			}

			input, _ := cmd.Flags().GetString("input")
			items, err := readItems(args, input, cmd.InOrStdin())
			if err != nil {
				return err
			}

			return a.runCluster(items, a.cfg.Cluster.K)
		},
	}
	addSearchFlags(cmd)
	cmd.Flags().Int("k", 0, "number of groups (config: cluster.k)")
	cmd.Flags().StringP("output", "o", "", "output format: text or json (config: cluster.output)")
	cmd.Flags().StringP("input", "i", "", "file with numbers, - for stdin")

	return cmd
}

func (a *app) runCluster(items []float64, k int) error {
	log := a.log.With().Int("k", k).Int("items", len(items)).Logger()
	log.Debug().Msg("clustering")

	opts := a.cfg.Search.Options(logging.StepObserver(log))
	res, err := cluster.ClusterResult(items, cluster.MaxDiameter(diameter.AbsDiff[float64]), k,
		a.cfg.Search.MaxIterations, opts...)
	if err != nil {
		return err
	}
	logging.Done(log, res.Cost, res.Iterations, res.Evaluations, res.Stop)

	report := clusterReport{
		K:           k,
		Cost:        cost(res.Cost),
		Iterations:  res.Iterations,
		Evaluations: res.Evaluations,
		Stop:        res.Stop.String(),
		Groups:      res.Groups,
	}
	if a.cfg.Cluster.Output == "json" {
		return writeJSON(a.out, report)
	}

	return writeClusterText(a.out, report)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func writeClusterText(w io.Writer, r clusterReport) error {
	var b strings.Builder
	for g, group := range r.Groups {
		fmt.Fprintf(&b, "group %d:", g)
		for _, v := range group {
			b.WriteByte(' ')
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "cost=%s iterations=%d stop=%s\n", r.Cost, r.Iterations, r.Stop)

	_, err := io.WriteString(w, b.String())
	return err
}

// cost is a search cost as reported by the CLI. -Inf means no group has
// two members; JSON has no infinities, so it is written as null.
type cost float64

func (c cost) String() string {
	return strconv.FormatFloat(float64(c), 'g', -1, 64)
}

func (c cost) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}

	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}
