package bfvm

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/reusee/bcc/insts"
)

var (
	ErrUnbalanced       = errors.New("unbalanced loop")
	ErrPointerUnderflow = errors.New("pointer moved below cell 0")
	ErrStepLimit        = errors.New("step limit exceeded")
)

type VM struct {
	Code    []byte
	IP      int
	Tape    []byte
	Pointer int

	// MaxSteps is the number of instructions executed between suspend
	// interrupts. Zero means no limit.
	MaxSteps int
	Steps    int

	jumps  []int
	budget int
	in     io.ByteReader
	out    io.Writer
	outBuf [1]byte
}

func NewVM(code []byte, in io.Reader, out io.Writer) (*VM, error) {
	code = insts.Filter(code)
	jumps, err := matchLoops(code)
	if err != nil {
		return nil, err
	}
	v := &VM{
		Code:  code,
		Tape:  make([]byte, 256),
		jumps: jumps,
		out:   out,
	}
	if in != nil {
		if br, ok := in.(io.ByteReader); ok {
			v.in = br
		} else {
			v.in = bufio.NewReader(in)
		}
	}
	return v, nil
}

func matchLoops(code []byte) ([]int, error) {
	jumps := make([]int, len(code))
	var stack []int
	for i, b := range code {
		switch b {
		case insts.Open:
			stack = append(stack, i)
		case insts.Close:
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: ']' at %d", ErrUnbalanced, i)
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("%w: '[' at %d", ErrUnbalanced, stack[len(stack)-1])
	}
	return jumps, nil
}

// Cell returns the value at position i. Untouched cells are 0.
func (v *VM) Cell(i int) byte {
	if i < 0 || i >= len(v.Tape) {
		return 0
	}
	return v.Tape[i]
}

func (v *VM) growTape() {
	newLen := len(v.Tape) * 2
	if newLen <= v.Pointer {
		newLen = v.Pointer + 1
	}
	tape := make([]byte, newLen)
	copy(tape, v.Tape)
	v.Tape = tape
}
