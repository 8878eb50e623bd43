package demo

import (
	"context"
	"io"
	"strconv"

	"github.com/denismitr/stldemo/console"
	"github.com/denismitr/stldemo/grid"
	"github.com/denismitr/stldemo/list"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReadGrid prompts for a row count, then for every row its column count and elements.
// A non positive count yields no rows or an empty row respectively.
func ReadGrid(r *console.Reader) (*grid.Grid[int], error) {
	g := grid.New[int]()

	if err := r.Prompt("Enter number of rows: "); err != nil {
		return nil, err
	}
	rows := r.ReadInt()

	for i := 0; i < rows; i++ {
		if err := r.Prompt("Enter number of columns for row %d: ", i+1); err != nil {
			return nil, err
		}
		cols := r.ReadInt()

		row := list.New[int]()
		if err := r.Prompt("Enter elements for row %d: ", i+1); err != nil {
			return nil, err
		}
		for j := 0; j < cols; j++ {
			row.Append(r.ReadInt())
		}

		g.AppendRow(row)
	}

	return g, nil
}

// WriteGrid writes the header and one line per row
func WriteGrid(ctx context.Context, out io.Writer, g *grid.Grid[int], options ...list.FlowOption) error {
	lines, err := g.Render(ctx, strconv.Itoa, options...)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(out, "The 2D vector is:\n"); err != nil {
		return errors.Wrap(err, "could not write header")
	}

	for _, line := range lines {
		if _, err := io.WriteString(out, line+"\n"); err != nil {
			return errors.Wrap(err, "could not write row")
		}
	}

	return nil
}

func RunGrid(ctx context.Context, in io.Reader, out io.Writer, options ...Option) error {
	cfg := newConfig(options...)
	r := console.NewReader(in, out, console.WithLogger(cfg.logger))

	g, err := ReadGrid(r)
	if err != nil {
		return err
	}

	cfg.logger.Debug("grid read",
		zap.Int("rows", g.Rows()),
		zap.Int("cells", g.Cells()),
		zap.Bool("input_failed", r.Failed()))

	return WriteGrid(ctx, out, g, cfg.flowOptions()...)
}
