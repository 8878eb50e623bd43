package list

import (
	"context"
	"sync"

	"github.com/denismitr/stldemo/utils"
	"github.com/pkg/errors"
)

// ErrSkip can be returned by a mapper to drop the item from the result
var ErrSkip = errors.New("must skip item")

type (
	flow[I, O any] struct {
		inCh        chan listItem[I]
		outCh       chan listItem[O]
		errCh       chan error
		closeCh     chan struct{}
		closeOnce   sync.Once
		mapper      Mapper[I, O]
		concurrency int
		tasks       sync.WaitGroup
	}

	listItem[V any] struct {
		idx   int
		value V
	}

	flowConfig struct {
		concurrency int
	}

	FlowOption func(fc *flowConfig)

	Mapper[I, O any]  func(idx int, item I) (O, error)
	Reducer[R, O any] func(acc R, idx int, item O) (R, error)
)

func newFlow[I, O any](c int, m Mapper[I, O]) *flow[I, O] {
	return &flow[I, O]{
		inCh:        make(chan listItem[I]),
		outCh:       make(chan listItem[O]),
		errCh:       make(chan error, c),
		closeCh:     make(chan struct{}),
		mapper:      m,
		concurrency: c,
	}
}

func (f *flow[I, O]) start(ctx context.Context) {
	for i := 0; i < f.concurrency; i++ {
		f.tasks.Add(1)

		go func() {
			defer f.tasks.Done()
			for {
				select {
				case item, ok := <-f.inCh:
					if !ok {
						return
					}

					result, err := f.mapper(item.idx, item.value)
					if err != nil {
						if errors.Is(err, ErrSkip) {
							continue
						}

						f.errCh <- errors.Wrapf(err, "mapper failed on item %d", item.idx)
						return
					}

					select {
					case f.outCh <- listItem[O]{idx: item.idx, value: result}:
					case <-f.closeCh:
						return
					case <-ctx.Done():
						return
					}
				case <-f.closeCh:
					return
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		f.tasks.Wait()
		close(f.outCh)
	}()
}

func (f *flow[I, O]) stop() {
	f.closeOnce.Do(func() {
		close(f.closeCh)
	})
}

func feed[I, O any](ctx context.Context, in []I, f *flow[I, O]) {
	defer close(f.inCh)
	for i, v := range in {
		select {
		case f.inCh <- listItem[I]{idx: i, value: v}:
			continue
		case <-f.closeCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func WithConcurrency(c int) FlowOption {
	return func(fc *flowConfig) {
		if c > 0 {
			fc.concurrency = c
		}
	}
}

// MapReduce maps every item concurrently and folds the results with the reducer.
// Items reach the reducer in completion order, the reducer gets the source index
// to restore the original order when it matters.
func MapReduce[I, O, R any](
	ctx context.Context,
	in []I,
	mapper Mapper[I, O],
	reducer Reducer[R, O],
	initial R,
	options ...FlowOption,
) (R, error) {
	cfg := flowConfig{concurrency: 1}
	for _, opt := range options {
		opt(&cfg)
	}

	f := newFlow(cfg.concurrency, mapper)
	f.start(ctx)

	go feed(ctx, in, f)

	acc, err := reduce(ctx, f, reducer, initial)
	if err != nil {
		return initial, err
	}

	return acc, nil
}

func reduce[R, O, I any](
	ctx context.Context,
	f *flow[I, O],
	r Reducer[R, O],
	initialValue R,
) (R, error) {
	defer f.stop()

	acc := initialValue
	for {
		select {
		case item, ok := <-f.outCh:
			if !ok {
				select {
				case err := <-f.errCh:
					return acc, err
				default:
				}

				if ctx.Err() != nil {
					return acc, errors.Wrap(ctx.Err(), "map reduce interrupted")
				}

				return acc, nil
			}

			var err error
			acc, err = r(acc, item.idx, item.value)
			if err != nil {
				return acc, errors.Wrapf(err, "reducer failed on item %d", item.idx)
			}
		case err := <-f.errCh:
			return acc, err
		case <-ctx.Done():
			return utils.GetZero[R](), errors.Wrap(ctx.Err(), "map reduce interrupted")
		}
	}
}
