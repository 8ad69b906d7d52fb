package scripts

import (
	"context"
	"fmt"

	"github.com/reusee/bcc/bccconfigs"
	"github.com/reusee/bcc/builders"
	"github.com/reusee/bcc/logs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Run executes a script against b. Allocation misuse detected by a checked
// Builder is returned as an error.
func Run(ctx context.Context, logger logs.Logger, b *builders.Builder, name string, src []byte) (globals starlark.StringDict, err error) {
	defer func() {
		if p := recover(); p != nil {
			e, ok := p.(error)
			if !ok {
				panic(p)
			}
			err = fmt.Errorf("%s: %w", name, e)
		}
	}()

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			logger.InfoContext(ctx, msg, "script", name)
		},
	}
	thread.SetLocal("context", ctx)

	globals, err = starlark.ExecFileOptions(fileOptions, thread, name, src, Builtins(b))
	if err != nil {
		return nil, err
	}
	return globals, nil
}

// Compile runs a script on a fresh Builder and returns the finished program.
// Each inspect func sees the Builder after the script and before finishing.
type Compile func(ctx context.Context, name string, src []byte, inspect ...func(*builders.Builder)) (string, error)

func (Module) Compile(
	newBuilder builders.NewBuilder,
	optimize bccconfigs.Optimize,
	logger logs.Logger,
) Compile {
	return func(ctx context.Context, name string, src []byte, inspect ...func(*builders.Builder)) (string, error) {
		b := newBuilder()
		if _, err := Run(ctx, logger, b, name, src); err != nil {
			return "", logs.WrapSpan(ctx, err)
		}
		for _, fn := range inspect {
			fn(b)
		}
		return b.Finish(bool(optimize)), nil
	}
}
