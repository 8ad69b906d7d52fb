package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/cmds"
	"github.com/reusee/bcc/ebf"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/bcc/modes"
	"github.com/reusee/bcc/syncs"
	"github.com/reusee/dscope"
)

var (
	files      = cmds.Rest()
	stdoutFlag = cmds.Switch("-stdout", "print programs instead of writing .bf files")
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	if len(*files) == 0 {
		fmt.Fprintln(os.Stderr, "no input files")
		os.Exit(2)
	}

	dscope.New(
		new(Module),
		modes.ForProduction(),
	).Call(func(
		logger logs.Logger,
		newSpan logs.NewSpan,
		jobs bccconfigs.Jobs,
	) {
		results := make([]string, len(*files))
		err := syncs.Each(ctx, syncs.NewSemaphore(int(jobs)), *files, func(ctx context.Context, i int, path string) error {
			ctx, _ = newSpan(ctx, "")
			logger.DebugContext(ctx, "compile", "path", path)

			content, err := os.ReadFile(path)
			if err != nil {
				return logs.WrapSpan(ctx, err)
			}
			code, err := ebf.Compile(path, string(content))
			if err != nil {
				return logs.WrapSpan(ctx, err)
			}

			if *stdoutFlag {
				results[i] = code
				return nil
			}
			target := strings.TrimSuffix(path, filepath.Ext(path)) + ".bf"
			if err := os.WriteFile(target, []byte(code+"\n"), 0644); err != nil {
				return logs.WrapSpan(ctx, err)
			}
			logger.InfoContext(ctx, "compiled", "path", path, "target", target, "len", len(code))
			return nil
		})

		if *stdoutFlag {
			for _, code := range results {
				fmt.Println(code)
			}
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	})
}
