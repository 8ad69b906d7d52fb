package tapes

import "fmt"

// Model is a bump allocator over tape positions.
// Blocks must be freed in reverse allocation order. The bare model does not
// check this; a wrong Free silently shifts every later allocation.
type Model struct {
	frontier int

	// Checked makes Free verify the LIFO discipline and panic on misuse.
	Checked bool
	blocks  []int
}

func (m *Model) Allocate(size int) Cells {
	position := m.frontier
	m.frontier += size
	if m.Checked {
		m.blocks = append(m.blocks, size)
	}
	return Cells{
		Position: position,
		Size:     size,
	}
}

func (m *Model) Free(size int) {
	if m.Checked {
		if len(m.blocks) == 0 {
			panic(fmt.Errorf("free %d cells: nothing allocated", size))
		}
		top := m.blocks[len(m.blocks)-1]
		if top != size {
			panic(fmt.Errorf("free %d cells: last block has %d cells", size, top))
		}
		m.blocks = m.blocks[:len(m.blocks)-1]
	}
	m.frontier -= size
	if m.frontier < 0 {
		m.frontier = 0
	}
}

// Frontier is the first position not reserved by a live block.
func (m *Model) Frontier() int {
	return m.frontier
}
