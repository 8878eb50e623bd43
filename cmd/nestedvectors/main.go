package main

import (
	"context"
	"io"

	"github.com/denismitr/stldemo/demo"
	"github.com/denismitr/stldemo/internal/cli"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	cli.Execute(newCommand())
}

func newCommand() *cobra.Command {
	return cli.NewRootCommand(
		"nestedvectors",
		"Read a jagged 2D grid of integers and print it row by row",
		func(ctx context.Context, in io.Reader, out io.Writer, logger *zap.Logger) error {
			return demo.RunGrid(ctx, in, out, demo.WithLogger(logger))
		},
	)
}
