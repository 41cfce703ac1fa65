package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// errNoItems is returned when neither arguments nor an input file provide numbers.
var errNoItems = errors.New("cli: no numbers given (pass them as arguments or with --input)")

// errNotFinite rejects NaN and infinities, which have no distance.
var errNotFinite = errors.New("cli: number must be finite")

// readItems collects numbers from args, or from the file at path when args is
// empty ("-" reads stdin). Numbers may be separated by whitespace or commas.
func readItems(args []string, path string, stdin io.Reader) ([]float64, error) {
	if len(args) > 0 {
		return parseNumbers(strings.Join(args, " "))
	}
	if path == "" {
		return nil, errNoItems
	}

	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cli: open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		nums, err := parseNumbers(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, nums...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cli: read input: %w", err)
	}
	if len(items) == 0 {
		return nil, errNoItems
	}

	return items, nil
}

// parseNumbers splits s on whitespace and commas and parses each field.
func parseNumbers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cli: bad number %q: %w", f, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q", errNotFinite, f)
		}
		out = append(out, v)
	}

	return out, nil
}

// parsePoint parses "x,y" into integer coordinates.
func parsePoint(s string) (point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return point{}, fmt.Errorf("cli: point %q must look like x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return point{}, fmt.Errorf("cli: point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return point{}, fmt.Errorf("cli: point %q: %w", s, err)
	}

	return point{X: x, Y: y}, nil
}
