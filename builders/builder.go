package builders

import (
	"github.com/reusee/bcc/insts"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/bcc/tapes"
)

// Builder emits a program for the tape machine while tracking where the
// program's pointer will be. Methods return the Builder for chaining.
// A Builder is not safe for concurrent use.
type Builder struct {
	model    tapes.Model
	cursor   int
	result   []byte
	opens    []int
	constant *tapes.Cells
	logger   logs.Logger
}

func New() *Builder {
	return &Builder{}
}

// NewChecked returns a Builder whose allocator panics on non-LIFO frees.
func NewChecked() *Builder {
	b := New()
	b.model.Checked = true
	return b
}

// Cursor is the believed pointer position.
func (b *Builder) Cursor() int {
	return b.cursor
}

// Frontier is the first position not held by a live allocation.
func (b *Builder) Frontier() int {
	return b.model.Frontier()
}

// Code returns the instructions emitted so far, before any optimization.
func (b *Builder) Code() []byte {
	return b.result
}

// Len is the number of instructions emitted so far.
func (b *Builder) Len() int {
	return len(b.result)
}

func (b *Builder) push(inst byte) {
	b.result = append(b.result, inst)
}

func (b *Builder) pushN(inst byte, n int) {
	for range n {
		b.result = append(b.result, inst)
	}
}

// Emit appends raw primitive text. Bytes outside the instruction set are
// dropped. The cursor is not updated.
func (b *Builder) Emit(code string) *Builder {
	for i := 0; i < len(code); i++ {
		if insts.IsPrimitive(code[i]) {
			b.result = append(b.result, code[i])
		}
	}
	return b
}

/*
	Positioning
*/

func (b *Builder) Goto(target int) *Builder {
	if target < 0 {
		target = 0
	}
	if diff := target - b.cursor; diff > 0 {
		b.pushN(insts.Right, diff)
	} else if diff < 0 {
		b.pushN(insts.Left, -diff)
	}
	b.cursor = target
	return b
}

func (b *Builder) Advance() *Builder {
	b.cursor++
	b.push(insts.Right)
	return b
}

func (b *Builder) Back() *Builder {
	if b.cursor > 0 {
		b.cursor--
		b.push(insts.Left)
	}
	return b
}
