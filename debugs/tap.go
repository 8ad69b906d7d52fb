package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/bfvm"
	"github.com/reusee/bcc/builders"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/bcc/scripts"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a REPL on the state of b. The script builtins stay bound to b,
// so the session can keep emitting code.
type Tap func(ctx context.Context, what string, b *builders.Builder)

func (Module) Tap(
	logger logs.Logger,
	maxSteps bccconfigs.MaxSteps,
	optimize bccconfigs.Optimize,
	checked bccconfigs.Checked,
) Tap {
	return func(ctx context.Context, what string, b *builders.Builder) {
		globals := tapGlobals(b, int(maxSteps), map[string]any{
			"max_steps": maxSteps,
			"optimize":  optimize,
			"checked":   checked,
		})
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
			"cursor", b.Cursor(),
			"frontier", b.Frontier(),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what,
				"emitted", b.Len(),
			)
		}()

		thread := &starlark.Thread{
			Name: "tap",
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, globals)
	}
}

func tapGlobals(b *builders.Builder, maxSteps int, settings map[string]any) starlark.StringDict {
	globals := scripts.Builtins(b)
	for name, value := range map[string]any{
		"settings": settings,
		"code": func() string {
			return string(b.Code())
		},
		"run": func(input string) (string, error) {
			_, out, err := bfvm.Exec(b.Code(), []byte(input), maxSteps)
			return string(out), err
		},
	} {
		globals[name] = toStarlarkValue(value)
	}
	return globals
}
