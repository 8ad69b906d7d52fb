package scripts

import (
	"fmt"

	"github.com/reusee/bcc/builders"
	"github.com/reusee/bcc/tapes"
	"go.starlark.net/starlark"
)

type builtinFunc = func(
	thread *starlark.Thread,
	fn *starlark.Builtin,
	args starlark.Tuple,
	kwargs []starlark.Tuple,
) (starlark.Value, error)

func noArgs(fn func()) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		fn()
		return starlark.None, nil
	}
}

// MaxPosition is the highest tape position a script may address.
const MaxPosition = 1 << 20

func checkPosition(name string, pos int) error {
	if pos < 0 || pos > MaxPosition {
		return fmt.Errorf("%s: position %d out of range [0, %d]", name, pos, MaxPosition)
	}
	return nil
}

// positionArgs passes n tape positions to fn.
func positionArgs(n int, fn func(...int)) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		positions := make([]int, n)
		targets := make([]any, n)
		for i := range positions {
			targets[i] = &positions[i]
		}
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, n, targets...); err != nil {
			return nil, err
		}
		for _, pos := range positions {
			if err := checkPosition(b.Name(), pos); err != nil {
				return nil, err
			}
		}
		fn(positions...)
		return starlark.None, nil
	}
}

func intArg(fn func(int)) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var i int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &i); err != nil {
			return nil, err
		}
		fn(i)
		return starlark.None, nil
	}
}

func byteArg(fn func(byte)) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var i int
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &i); err != nil {
			return nil, err
		}
		if i < 0 || i > 255 {
			return nil, fmt.Errorf("%s: %d out of byte range", b.Name(), i)
		}
		fn(byte(i))
		return starlark.None, nil
	}
}

func stringArg(fn func(string)) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		s, err := textOf(b.Name(), value)
		if err != nil {
			return nil, err
		}
		fn(s)
		return starlark.None, nil
	}
}

func intResult(fn func() int) builtinFunc {
	return func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		return starlark.MakeInt(fn()), nil
	}
}

func textOf(name string, value starlark.Value) (string, error) {
	switch v := value.(type) {
	case starlark.String:
		return string(v), nil
	case starlark.Bytes:
		return string(v), nil
	}
	return "", fmt.Errorf("%s: want string or bytes, got %s", name, value.Type())
}

func cellsValue(cells tapes.Cells) starlark.Tuple {
	return starlark.Tuple{
		starlark.MakeInt(cells.Position),
		starlark.MakeInt(cells.Size),
	}
}

// Builtins exposes the operations of b to a script. Every builtin acts on
// the same Builder.
func Builtins(b *builders.Builder) starlark.StringDict {
	fns := map[string]builtinFunc{

		// positioning
		"goto":    positionArgs(1, func(p ...int) { b.Goto(p[0]) }),
		"advance": noArgs(func() { b.Advance() }),
		"back":    noArgs(func() { b.Back() }),
		"cursor":  intResult(b.Cursor),

		// cell values
		"clear":    noArgs(func() { b.Clear() }),
		"add":      byteArg(func(n byte) { b.Add(n) }),
		"sub":      byteArg(func(n byte) { b.Sub(n) }),
		"adjust":   intArg(func(delta int) { b.Adjust(delta) }),
		"override": byteArg(func(v byte) { b.OverrideByte(v) }),
		"emit":     stringArg(func(code string) { b.Emit(code) }),

		// allocation
		"new_cell":    newCell(b),
		"n_cells":     nCells(b),
		"free_last_n": freeLastN(b),
		"frontier":    intResult(b.Frontier),
		"write_bytes": writeBytes(b),

		// algorithms
		"copy":          positionArgs(2, func(p ...int) { b.Copy(p[0], p[1]) }),
		"add_to":        positionArgs(1, func(p ...int) { b.AddTo(p[0]) }),
		"sub_from":      positionArgs(1, func(p ...int) { b.SubFrom(p[0]) }),
		"mul_to":        positionArgs(1, func(p ...int) { b.MulTo(p[0]) }),
		"div_by":        noArgs(func() { b.DivBy() }),
		"mod_by":        noArgs(func() { b.ModBy() }),
		"divmod_by":     noArgs(func() { b.DivModBy() }),
		"print_as_byte": noArgs(func() { b.PrintAsByte() }),

		// I/O
		"print_byte":      noArgs(func() { b.PrintByte() }),
		"input_byte":      noArgs(func() { b.InputByte() }),
		"print_cells":     printCells(b),
		"just_print":      stringArg(func(text string) { b.JustPrint(text) }),
		"just_print_here": stringArg(func(text string) { b.JustPrintHere(text) }),

		// control
		"start_while":         noArgs(func() { b.StartWhile() }),
		"end_while":           positionArgs(1, func(p ...int) { b.EndWhile(p[0]) }),
		"end_while_unchecked": noArgs(func() { b.EndWhileUnchecked() }),
		"end_loop":            noArgs(func() { b.EndLoop() }),
		"start_if":            noArgs(func() { b.StartIf() }),
		"end_if":              noArgs(func() { b.EndIf() }),
		"constant":            constant(b),
		"reset_from_constant": positionArgs(1, func(p ...int) { b.ResetFromConstant(p[0]) }),
	}

	ret := make(starlark.StringDict, len(fns))
	for name, fn := range fns {
		ret[name] = starlark.NewBuiltin(name, fn)
	}
	return ret
}

func newCell(b *builders.Builder) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
			return nil, err
		}
		if err := checkPosition(fn.Name(), b.Frontier()+1); err != nil {
			return nil, err
		}
		b.NewCell()
		return starlark.MakeInt(b.Cursor()), nil
	}
}

func nCells(b *builders.Builder) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var size int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &size); err != nil {
			return nil, err
		}
		if size < 0 {
			return nil, fmt.Errorf("%s: negative size %d", fn.Name(), size)
		}
		if err := checkPosition(fn.Name(), b.Frontier()+size); err != nil {
			return nil, err
		}
		return cellsValue(b.NCells(size)), nil
	}
}

// freeLastN only frees cells that are allocated.
func freeLastN(b *builders.Builder) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var size int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &size); err != nil {
			return nil, err
		}
		if size < 0 || size > b.Frontier() {
			return nil, fmt.Errorf("%s: size %d out of range [0, %d]", fn.Name(), size, b.Frontier())
		}
		b.FreeLastN(size)
		return starlark.None, nil
	}
}

func writeBytes(b *builders.Builder) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var value starlark.Value
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
			return nil, err
		}
		s, err := textOf(fn.Name(), value)
		if err != nil {
			return nil, err
		}
		if err := checkPosition(fn.Name(), b.Frontier()+len(s)); err != nil {
			return nil, err
		}
		return cellsValue(b.WriteBytes([]byte(s))), nil
	}
}

func printCells(b *builders.Builder) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var pos, size int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 2, &pos, &size); err != nil {
			return nil, err
		}
		if size < 0 {
			return nil, fmt.Errorf("%s: negative size %d", fn.Name(), size)
		}
		if err := checkPosition(fn.Name(), pos); err != nil {
			return nil, err
		}
		if err := checkPosition(fn.Name(), pos+size); err != nil {
			return nil, err
		}
		b.PrintCells(tapes.Cells{Position: pos, Size: size})
		return starlark.None, nil
	}
}

func constant(b *builders.Builder) builtinFunc {
	return func(_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var v int
		if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &v); err != nil {
			return nil, err
		}
		if v < 0 || v > 255 {
			return nil, fmt.Errorf("%s: %d out of byte range", fn.Name(), v)
		}
		return starlark.MakeInt(b.Constant(byte(v)).Position), nil
	}
}
