package builders

import (
	"github.com/reusee/bcc/insts"
	"github.com/reusee/bcc/tapes"
)

// StartWhile opens a loop tested on the current cell.
func (b *Builder) StartWhile() *Builder {
	b.opens = append(b.opens, b.cursor)
	b.push(insts.Open)
	return b
}

// EndWhile moves to pos and closes the innermost loop. The closing
// instruction tests whatever cell the pointer is on, so pos should be the
// cell the loop was opened on.
func (b *Builder) EndWhile(pos int) *Builder {
	b.popOpen()
	b.Goto(pos)
	b.push(insts.Close)
	return b
}

// EndWhileUnchecked closes the innermost loop wherever the cursor is.
func (b *Builder) EndWhileUnchecked() *Builder {
	b.popOpen()
	b.push(insts.Close)
	return b
}

// EndLoop closes the innermost loop on the cell it was opened on.
func (b *Builder) EndLoop() *Builder {
	pos := b.popOpen()
	b.Goto(pos)
	b.push(insts.Close)
	return b
}

func (b *Builder) popOpen() int {
	if len(b.opens) == 0 {
		return b.cursor
	}
	pos := b.opens[len(b.opens)-1]
	b.opens = b.opens[:len(b.opens)-1]
	return pos
}

// StartIf opens a body that runs at most once, when the current cell is
// nonzero. The tested cell is consumed.
func (b *Builder) StartIf() *Builder {
	return b.StartWhile()
}

// EndIf clears the tested cell and closes the body.
func (b *Builder) EndIf() *Builder {
	pos := b.popOpen()
	b.Goto(pos).Clear()
	b.push(insts.Close)
	return b
}

// Constant allocates a cell holding value the first time it is called and
// returns that cell afterwards. The cell is never freed, so it should be
// requested before any other allocation that will later be released.
func (b *Builder) Constant(value byte) tapes.Cells {
	if b.constant != nil {
		return *b.constant
	}
	cells := b.NCells(1)
	b.Add(value)
	b.constant = &cells
	return cells
}

// ResetFromConstant overwrites pos with the constant cell's value.
func (b *Builder) ResetFromConstant(pos int) *Builder {
	if b.constant == nil {
		return b.Goto(pos).Clear()
	}
	return b.Copy(b.constant.Position, pos)
}
