package demo

import (
	"context"
	"fmt"
	"io"

	"github.com/denismitr/stldemo/orderedmap"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunOrderedMap fills an ordered map with literal entries and writes its keys
// in ascending order, each followed by a space. No newline is written.
func RunOrderedMap(ctx context.Context, out io.Writer, options ...Option) error {
	cfg := newConfig(options...)

	m := orderedmap.New[int, string]()
	m.Set(1, "abc")
	m.Set(5, "cdc")
	m.Set(3, "acd")
	m.SetNX(4, "afg")

	cfg.logger.Debug("ordered map populated", zap.Int("len", m.Len()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for p := range m.Pairs(ctx) {
		if _, err := fmt.Fprintf(out, "%d ", p.Key); err != nil {
			return errors.Wrap(err, "could not write key")
		}
	}

	return ctx.Err()
}
