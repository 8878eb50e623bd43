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
		"sortedmap",
		"Fill an ordered map and print its keys in ascending order",
		func(ctx context.Context, _ io.Reader, out io.Writer, logger *zap.Logger) error {
			return demo.RunOrderedMap(ctx, out, demo.WithLogger(logger))
		},
	)
}
