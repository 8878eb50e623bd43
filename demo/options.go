package demo

import (
	"github.com/denismitr/stldemo/list"
	"go.uber.org/zap"
)

const DefaultConcurrency = 4

type (
	config struct {
		logger      *zap.Logger
		concurrency int
	}

	Option func(c *config)
)

func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConcurrency sets how many rows of a grid are rendered at once
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

func newConfig(options ...Option) config {
	c := config{
		logger:      zap.NewNop(),
		concurrency: DefaultConcurrency,
	}

	for _, o := range options {
		o(&c)
	}

	return c
}

func (c config) flowOptions() []list.FlowOption {
	return []list.FlowOption{list.WithConcurrency(c.concurrency)}
}
