package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/builders"
	"github.com/reusee/bcc/cmds"
	"github.com/reusee/bcc/debugs"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/bcc/modes"
	"github.com/reusee/bcc/scripts"
	"github.com/reusee/dscope"
)

var (
	helloFlag  = cmds.Switch("hello", "generate a program printing a banner")
	scriptFlag = cmds.Var[string]("script", "generate a program from a starlark script")
	tapFlag    = cmds.Switch("-tap", "open a repl on the builder before finishing")
	outputFlag = cmds.Var[string]("-o", "write the program to a file instead of stdout")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if !*helloFlag && *scriptFlag == "" {
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newBuilder builders.NewBuilder,
		optimize bccconfigs.Optimize,
		compile scripts.Compile,
		tap debugs.Tap,
		newSpan logs.NewSpan,
	) {
		var inspect []func(*builders.Builder)
		if *tapFlag {
			inspect = append(inspect, func(b *builders.Builder) {
				tap(ctx, "builder", b)
			})
		}

		var code string
		if *helloFlag {
			b := newBuilder()
			b.JustPrint(banner)
			for _, fn := range inspect {
				fn(b)
			}
			code = b.Finish(bool(optimize))
		} else {
			ctx, _ := newSpan(ctx, "")
			src, err := os.ReadFile(*scriptFlag)
			if err != nil {
				panic(err)
			}
			code, err = compile(ctx, *scriptFlag, src, inspect...)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}

		if *outputFlag != "" {
			if err := os.WriteFile(*outputFlag, []byte(code+"\n"), 0644); err != nil {
				panic(err)
			}
			logger.Info("written", "path", *outputFlag, "len", len(code))
			return
		}
		fmt.Println(code)
	})
}
