// Package cli implements the lvsearch command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/internal/config"
	"github.com/katalvlaran/lvsearch/internal/logging"
)

// app carries what every subcommand needs once configuration is loaded.
type app struct {
	v   *viper.Viper
	cfg *config.Config
	log zerolog.Logger
	out io.Writer
	err io.Writer
}

// NewRootCmd builds the lvsearch command. Results go to out, logs to errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, err: errOut}

	root := &cobra.Command{
		Use:   "lvsearch",
		Short: "Tabu search tools",
		Long: `lvsearch runs tabu search from the command line: partition numbers into
groups with the smallest possible largest-group diameter, sweep the group
count, or watch the engine descend a grid.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringP("config", "c", "", "config file (default is ./lvsearch.yaml or $HOME/.config/lvsearch/lvsearch.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: trace, debug, info, warn, error, disabled")
	root.PersistentFlags().String("log-format", "", "log format: text or json")

	root.AddCommand(
		newClusterCmd(a),
		newSweepCmd(a),
		newGridCmd(a),
	)

	return root
}

// setup binds the running command's flags to config keys, loads the
// configuration and builds the logger. Only changed flags override config.
func (a *app) setup(cmd *cobra.Command, keys map[string]string) error {
	keys["log.level"] = "log-level"
	keys["log.format"] = "log-format"
	for key, name := range keys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			return fmt.Errorf("cli: unknown flag %q for key %q", name, key)
		}
		if err := bindChanged(a.v, key, f); err != nil {
			return err
		}
	}

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(a.v, path)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = logging.New(a.err, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	return nil
}

// bindChanged binds f to key only when the user set it, so flag defaults do
// not shadow file and environment values.
func bindChanged(v *viper.Viper, key string, f *pflag.Flag) error {
	if !f.Changed {
		return nil
	}

	return v.BindPFlag(key, f)
}
