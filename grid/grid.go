// Package grid provides a jagged two dimensional container:
// an ordered sequence of rows where every row may have its own length.
package grid

import (
	"context"
	"strings"

	"github.com/denismitr/stldemo/list"
	"github.com/pkg/errors"
)

type (
	Grid[T any] struct {
		rows *list.List[*list.List[T]]
	}

	ForEachRowFn[T any] func(rowIdx int, row *list.List[T])
	FormatFn[T any]     func(item T) string
)

func New[T any]() *Grid[T] {
	return &Grid[T]{rows: list.New[*list.List[T]]()}
}

// AppendRow adds a row at the bottom, a nil row is stored as an empty one
func (g *Grid[T]) AppendRow(row *list.List[T]) {
	if row == nil {
		row = list.New[T]()
	}

	g.rows.Append(row)
}

func (g *Grid[T]) Rows() int {
	return g.rows.Len()
}

func (g *Grid[T]) Row(idx int) (*list.List[T], bool) {
	return g.rows.At(idx)
}

// Cells counts all elements across all rows
func (g *Grid[T]) Cells() int {
	total := 0
	g.rows.ForEach(func(_ int, row *list.List[T]) {
		total += row.Len()
	})
	return total
}

func (g *Grid[T]) ForEach(f ForEachRowFn[T]) {
	g.rows.ForEach(func(idx int, row *list.List[T]) {
		f(idx, row)
	})
}

// Render turns every row into one line where each element is followed by a space.
// Rows are rendered concurrently and returned in row order.
func (g *Grid[T]) Render(ctx context.Context, format FormatFn[T], options ...list.FlowOption) ([]string, error) {
	rows := g.rows.Items()

	mapper := func(_ int, row *list.List[T]) (string, error) {
		var b strings.Builder
		row.ForEach(func(_ int, item T) {
			b.WriteString(format(item))
			b.WriteByte(' ')
		})
		return b.String(), nil
	}

	reducer := func(lines []string, idx int, line string) ([]string, error) {
		lines[idx] = line
		return lines, nil
	}

	lines, err := list.MapReduce(ctx, rows, mapper, reducer, make([]string, len(rows)), options...)
	if err != nil {
		return nil, errors.Wrap(err, "could not render grid")
	}

	return lines, nil
}
