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
		"pairvec",
		"Read a list of (x, y) pairs and print them",
		func(_ context.Context, in io.Reader, out io.Writer, logger *zap.Logger) error {
			return demo.RunPairs(in, out, demo.WithLogger(logger))
		},
	)
}
