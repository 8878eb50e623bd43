package demo

import (
	"io"
	"strings"

	"github.com/denismitr/stldemo/console"
	"github.com/denismitr/stldemo/list"
	"github.com/denismitr/stldemo/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Point = utils.Tuple[int, int]

// ReadPairs prompts for a count and then for x and y of every pair
func ReadPairs(r *console.Reader) (*list.List[Point], error) {
	if err := r.Prompt("Enter n: "); err != nil {
		return nil, err
	}
	n := r.ReadInt()

	pairs := list.New[Point]()
	for i := 0; i < n; i++ {
		if err := r.Prompt("Enter x for pair %d: ", i+1); err != nil {
			return nil, err
		}
		x := r.ReadInt()

		if err := r.Prompt("Enter y for pair %d: ", i+1); err != nil {
			return nil, err
		}
		y := r.ReadInt()

		pairs.Append(utils.MakeTuple(x, y))
	}

	return pairs, nil
}

// WritePairs writes every pair as "(x, y) " on a single line
func WritePairs(out io.Writer, pairs *list.List[Point]) error {
	var b strings.Builder
	b.WriteString("The pairs are: ")
	pairs.ForEach(func(_ int, p Point) {
		b.WriteString(p.String())
		b.WriteByte(' ')
	})
	b.WriteByte('\n')

	if _, err := io.WriteString(out, b.String()); err != nil {
		return errors.Wrap(err, "could not write pairs")
	}

	return nil
}

func RunPairs(in io.Reader, out io.Writer, options ...Option) error {
	cfg := newConfig(options...)
	r := console.NewReader(in, out, console.WithLogger(cfg.logger))

	pairs, err := ReadPairs(r)
	if err != nil {
		return err
	}

	cfg.logger.Debug("pairs read", zap.Int("count", pairs.Len()), zap.Bool("input_failed", r.Failed()))

	return WritePairs(out, pairs)
}
