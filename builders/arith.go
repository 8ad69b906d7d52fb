package builders

/*
	Algorithms
	https://esolangs.org/wiki/Brainfuck_algorithms
*/

// Copy duplicates source into target through one transient cell.
// source keeps its value; target's previous value is lost.
func (b *Builder) Copy(source, target int) *Builder {
	temp := b.NCells(1).Position
	b.Goto(target).Clear()

	b.Goto(source).StartWhile()
	b.Goto(target).Add(1)
	b.Goto(temp).Add(1)
	b.Goto(source).Sub(1)
	b.EndWhile(source)

	b.Goto(temp).StartWhile()
	b.Goto(source).Add(1)
	b.Goto(temp).Sub(1)
	b.EndWhile(temp)

	b.release(1)
	return b
}

// AddTo drains the current cell into pos. The current cell ends at 0.
func (b *Builder) AddTo(pos int) *Builder {
	source := b.cursor
	b.StartWhile()
	b.Goto(pos).Add(1)
	b.Goto(source).Sub(1)
	return b.EndWhile(source)
}

// SubFrom drains the current cell, subtracting it from pos.
func (b *Builder) SubFrom(pos int) *Builder {
	source := b.cursor
	b.StartWhile()
	b.Goto(pos).Sub(1)
	b.Goto(source).Sub(1)
	return b.EndWhile(source)
}

// MulTo consumes the current cell as multiplier and multiplies pos by it in
// place, wrapping at 256.
func (b *Builder) MulTo(pos int) *Builder {
	multiplier := b.cursor
	keep := b.NCells(1).Position
	spare := b.NCells(1).Position

	// keep = multiplicand, pos = 0
	b.Goto(pos).StartWhile()
	b.Goto(keep).Add(1)
	b.Goto(pos).Sub(1)
	b.EndWhile(pos)

	b.Goto(multiplier).StartWhile()
	{
		// pos += keep, through spare
		b.Goto(keep).StartWhile()
		b.Goto(pos).Add(1)
		b.Goto(spare).Add(1)
		b.Goto(keep).Sub(1)
		b.EndWhile(keep)

		b.Goto(spare).StartWhile()
		b.Goto(keep).Add(1)
		b.Goto(spare).Sub(1)
		b.EndWhile(spare)

		b.Goto(multiplier).Sub(1)
	}
	b.EndWhile(multiplier)

	b.release(1)
	b.FreeLastN(1)
	return b.Goto(multiplier)
}
