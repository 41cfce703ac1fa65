package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"iter"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/tabu"
)

// decodeLines parses one JSON object per line.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	require.NoError(t, sc.Err())

	return out
}

func TestNew_InvalidInput(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud", FormatJSON)
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "WARN", FormatJSON)
	require.NoError(t, err)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "shown", lines[0]["message"])
	assert.Equal(t, "warn", lines[0]["level"])
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", FormatText)
	require.NoError(t, err)

	l.Info().Int("k", 3).Msg("hello")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "k=3")
	assert.False(t, strings.HasPrefix(out, "{"), "console output is not JSON")
}

func TestStepObserver(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "debug", FormatJSON)
	require.NoError(t, err)

	obs := StepObserver(l)
	obs(tabu.Step{Iteration: 1, CurrentCost: 4, BestCost: 4, Neighbors: 9, Improved: true})
	obs(tabu.Step{Iteration: 2, CurrentCost: 6, BestCost: 4, Neighbors: 9, Tabu: 1})

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "new best", lines[0]["message"])
	assert.Equal(t, 1.0, lines[0]["iteration"])
	assert.Equal(t, "debug", lines[1]["level"])
	assert.Equal(t, 1.0, lines[1]["tabu"])
}

func TestStepObserver_InfoKeepsImprovements(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "info", FormatJSON)
	require.NoError(t, err)

	// 0 → 1 → 2 → 3 improve on |x−3|; the two moves past 3 do not.
	neighbors := func(x int) iter.Seq[int] {
		return func(yield func(int) bool) {
			for _, v := range []int{x - 1, x + 1} {
				if v >= 0 && v <= 5 && !yield(v) {
					return
				}
			}
		}
	}
	cost := func(x int) float64 { return math.Abs(float64(x - 3)) }

	res, err := tabu.Search(0, neighbors, cost, 5, tabu.WithOnStep(StepObserver(l)))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Best)
	Done(l, res.Cost, res.Iterations, res.Evaluations, res.Stop)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 4)
	for _, line := range lines[:3] {
		assert.Equal(t, "new best", line["message"])
	}
	assert.Equal(t, "search finished", lines[3]["message"])
	assert.Equal(t, "max-iterations", lines[3]["stop"])
	assert.Equal(t, 5.0, lines[3]["iterations"])
}
