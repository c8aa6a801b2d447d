package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emenda-labs/testprune/core/cli"
	"github.com/emenda-labs/testprune/core/pruner"
	"github.com/emenda-labs/testprune/core/report"
	"github.com/emenda-labs/testprune/core/review"
	golangdriver "github.com/emenda-labs/testprune/drivers/golang"
	"github.com/emenda-labs/testprune/pkg/gomod"
)

const version = "0.1.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cli.InitConfig()

	goDriver := golangdriver.NewDriver()

	runPrune := func(ctx context.Context, opts cli.PruneOptions) (report.Summary, error) {
		// Built after flag parsing so --write-log takes effect.
		logger := cli.NewLogger()

		if module, err := gomod.FindEnclosingModule(opts.FileA); err == nil && module != "" {
			fmt.Fprintf(opts.Out, "Module: %s\n", module)
		}

		oracle := review.NewInteractive(opts.In, opts.Out, opts.FileA, opts.FileB)
		p := pruner.New(goDriver, oracle)

		logger.Info("prune started",
			"file_a", opts.FileA,
			"file_b", opts.FileB,
			"prefix", opts.Prefix,
		)

		sum, err := p.Run(ctx, pruner.Options{
			FileA:  opts.FileA,
			FileB:  opts.FileB,
			Output: opts.Output,
			Prefix: opts.Prefix,
		})
		if err != nil {
			logger.Error("prune failed", "error", err)
			return sum, err
		}

		logger.Info("prune finished",
			"tests_a", sum.TestsA,
			"tests_b", sum.TestsB,
			"common", len(sum.Common),
			"removed", sum.Removed,
			"wrote", sum.Wrote,
		)

		return sum, nil
	}

	root := cli.NewRootCmd(version)
	root.AddCommand(cli.NewPruneCmd(runPrune))
	root.AddCommand(cli.NewVersionCmd())

	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
