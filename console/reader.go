package console

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrBadInput = errors.New("could not read integer from input")

type (
	// Reader reads whitespace separated integers and writes prompts.
	//
	// The first failed read puts the reader into a failed state: that read
	// and every read after it yields 0, nothing more is consumed from the input.
	Reader struct {
		in     *bufio.Reader
		out    io.Writer
		logger *zap.Logger
		err    error
	}

	Option func(r *Reader)
)

func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewReader(in io.Reader, out io.Writer, options ...Option) *Reader {
	r := &Reader{
		in:     bufio.NewReader(in),
		out:    out,
		logger: zap.NewNop(),
	}

	for _, o := range options {
		o(r)
	}

	return r
}

// Prompt writes the formatted prompt as is, no newline is appended
func (r *Reader) Prompt(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		return errors.Wrap(err, "could not write prompt")
	}

	return nil
}

func (r *Reader) ReadInt() int {
	if r.err != nil {
		return 0
	}

	var v int
	if _, err := fmt.Fscan(r.in, &v); err != nil {
		r.err = errors.Wrapf(ErrBadInput, "%v", err)
		r.logger.Warn("input read failed, all further reads yield 0", zap.Error(err))
		return 0
	}

	return v
}

// Err reports the failure that put the reader into the failed state, if any
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) Failed() bool {
	return r.err != nil
}
