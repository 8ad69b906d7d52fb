package builders

import "github.com/reusee/bcc/tapes"

// NCells allocates size cells and moves to the first one.
// Fresh cells are 0 until something writes to them.
func (b *Builder) NCells(size int) tapes.Cells {
	cells := b.model.Allocate(size)
	b.Goto(cells.Position)
	return cells
}

func (b *Builder) NewCell() *Builder {
	b.NCells(1)
	return b
}

// FreeLastN clears the topmost size cells and hands them back.
// They must be the most recently allocated block.
func (b *Builder) FreeLastN(size int) *Builder {
	top := b.model.Frontier()
	for i := 1; i <= size; i++ {
		b.Goto(top - i).Clear()
	}
	b.model.Free(size)
	return b
}

// release frees cells already known to be 0 without emitting anything.
func (b *Builder) release(size int) {
	b.model.Free(size)
}
