package tapes

import "fmt"

// Cells is a contiguous run of tape positions handed out by Model.
type Cells struct {
	Position int
	Size     int
}

func (c Cells) At(i int) int {
	return c.Position + i
}

func (c Cells) Last() int {
	return c.Position + c.Size - 1
}

func (c Cells) String() string {
	return fmt.Sprintf("cells(%d+%d)", c.Position, c.Size)
}
