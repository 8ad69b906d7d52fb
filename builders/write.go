package builders

import (
	"github.com/reusee/bcc/insts"
	"github.com/reusee/bcc/tapes"
)

func (b *Builder) Clear() *Builder {
	b.result = append(b.result, insts.Clear...)
	return b
}

func (b *Builder) Add(n byte) *Builder {
	b.pushN(insts.Inc, int(n))
	return b
}

func (b *Builder) Sub(n byte) *Builder {
	b.pushN(insts.Dec, int(n))
	return b
}

// Adjust adds delta when positive and subtracts -delta otherwise.
// Deltas are taken modulo 256.
func (b *Builder) Adjust(delta int) *Builder {
	if delta > 0 {
		return b.Add(byte(delta))
	}
	return b.Sub(byte(-delta))
}

func (b *Builder) OverrideByte(v byte) *Builder {
	return b.Clear().Add(v)
}

// WriteBytes allocates len(bs) cells and stores bs into them, whatever the
// cells held before. The cursor ends one past the last cell.
func (b *Builder) WriteBytes(bs []byte) tapes.Cells {
	cells := b.NCells(len(bs))
	for _, v := range bs {
		b.OverrideByte(v).Advance()
	}
	return cells
}

// WriteBytesUnchecked is WriteBytes without the clears. Only valid when the
// allocated cells are known to be 0.
func (b *Builder) WriteBytesUnchecked(bs []byte) tapes.Cells {
	cells := b.NCells(len(bs))
	for _, v := range bs {
		b.Add(v).Advance()
	}
	return cells
}
