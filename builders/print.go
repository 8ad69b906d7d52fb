package builders

import (
	"github.com/reusee/bcc/insts"
	"github.com/reusee/bcc/tapes"
)

/*
	I/O
*/

func (b *Builder) PrintByte() *Builder {
	b.push(insts.Output)
	return b
}

func (b *Builder) InputByte() *Builder {
	b.push(insts.Input)
	return b
}

// PrintCells outputs every cell of cells in order.
func (b *Builder) PrintCells(cells tapes.Cells) *Builder {
	b.Goto(cells.Position)
	for range cells.Size {
		b.PrintByte().Advance()
	}
	return b
}

// JustPrint outputs text through a scratch cell.
func (b *Builder) JustPrint(text string) *Builder {
	b.NCells(1)
	b.printDeltas(text)
	return b.FreeLastN(1)
}

// JustPrintHere outputs text using the current cell, which must be 0, and
// clears it afterwards.
func (b *Builder) JustPrintHere(text string) *Builder {
	b.printDeltas(text)
	return b.Clear()
}

// printDeltas steps the cell from one byte of text to the next, in order.
func (b *Builder) printDeltas(text string) {
	prev := 0
	for i := 0; i < len(text); i++ {
		c := int(text[i])
		b.Adjust(c - prev).PrintByte()
		prev = c
	}
}

// PrintAsByte consumes the current cell and outputs its value in decimal,
// without leading zeros. Every cell it touches ends at 0.
func (b *Builder) PrintAsByte() *Builder {
	value := b.cursor

	ones := b.NCells(1).Position
	tens := b.NCells(1).Position
	overNine := b.NCells(1).Position
	work := b.NCells(2 + divModScratch)
	n, d := work.At(0), work.At(1)
	r, q := work.At(2), work.At(3)

	// ones = value % 10, q = value / 10
	b.Goto(value).AddTo(n)
	b.Goto(d).Add(10)
	b.Goto(n).Emit(divModTemplate)
	b.Goto(d).Clear()
	b.Goto(r).AddTo(ones)
	b.Copy(q, overNine)

	// tens = value / 10 % 10, q = value / 100
	b.Goto(q).AddTo(n)
	b.Goto(d).Add(10)
	b.Goto(n).Emit(divModTemplate)
	b.Goto(d).Clear()
	b.Goto(r).AddTo(tens)

	b.Goto(q).StartIf()
	b.Add('0').PrintByte()
	b.EndIf()

	b.Goto(overNine).StartIf()
	b.Goto(tens).Add('0').PrintByte().Clear()
	b.EndIf()

	b.Goto(ones).Add('0').PrintByte().Clear()

	b.release(work.Size)
	b.release(1)
	b.release(1)
	b.release(1)
	return b.Goto(value)
}
