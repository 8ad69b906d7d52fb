package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/bfvm"
	"github.com/reusee/bcc/cmds"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/bcc/modes"
	"github.com/reusee/dscope"
)

var files = cmds.Rest()

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if len(*files) != 1 {
		fmt.Fprintln(os.Stderr, "usage: bfrun [options] <program>")
		os.Exit(2)
	}
	path := (*files)[0]

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		maxSteps bccconfigs.MaxSteps,
	) {
		code, err := os.ReadFile(path)
		if err != nil {
			panic(err)
		}

		out := bufio.NewWriter(os.Stdout)
		vm, err := bfvm.NewVM(code, os.Stdin, out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}
		vm.MaxSteps = int(maxSteps)

		for intr, err := range vm.Run {
			if err != nil {
				out.Flush()
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				os.Exit(1)
			}
			if intr != nil && intr.Suspend {
				out.Flush()
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, fmt.Errorf("%w: %d steps", bfvm.ErrStepLimit, vm.Steps))
				os.Exit(1)
			}
		}
		if err := out.Flush(); err != nil {
			panic(err)
		}

		logger.DebugContext(ctx, "done",
			"path", path,
			"steps", vm.Steps,
			"tape", len(vm.Tape),
		)
	})
}
