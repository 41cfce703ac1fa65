// Package logging builds the zerolog logger used by the lvsearch command and
// adapts it to the tabu search step hook.
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvsearch/tabu"
)

// Format names accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by New for a format other than text or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// New returns a logger writing to w at the given level.
// FormatText uses zerolog's console writer without colors; FormatJSON writes
// one JSON object per line. Writes are serialized so the logger can be shared
// between goroutines.
func New(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("logging: %w", err)
	}

	switch format {
	case FormatJSON:
	case FormatText:
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	default:
		return zerolog.Nop(), fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	return zerolog.New(zerolog.SyncWriter(w)).Level(lvl).With().Timestamp().Logger(), nil
}

// StepObserver returns a tabu.WithOnStep hook that logs every iteration at
// debug level and every new best cost at info level.
func StepObserver(l zerolog.Logger) func(tabu.Step) {
	return func(s tabu.Step) {
		ev := l.Debug()
		if s.Improved {
			ev = l.Info()
		}
		ev.Int("iteration", s.Iteration).
			Float64("current_cost", s.CurrentCost).
			Float64("best_cost", s.BestCost).
			Int("neighbors", s.Neighbors).
			Int("tabu", s.Tabu).
			Bool("aspirated", s.Aspirated).
			Msg(stepMessage(s))
	}
}

func stepMessage(s tabu.Step) string {
	if s.Improved {
		return "new best"
	}

	return "step"
}

// Done logs the end of a run.
func Done(l zerolog.Logger, cost float64, iterations, evaluations int, stop tabu.StopReason) {
	l.Info().
		Float64("cost", cost).
		Int("iterations", iterations).
		Int("evaluations", evaluations).
		Str("stop", stop.String()).
		Msg("search finished")
}
