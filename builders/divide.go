package builders

import "fmt"

// divModTemplate is unary long division over six cells, run from cell 0:
//
//	before: n d 0 0 0 0
//	after:  0 d-n%d n%d n/d 0 0
//
// Cells 4 and 5 are only read, as landing spots that must stay 0.
// The pointer ends on cell 0. With d = 0 the divisor wraps and the result is
// quotient 0, remainder n.
const divModTemplate = "[->->+<[>>>]>[[<+>-]>+>>]<<<<<]"

const divModScratch = 4

// divide runs the division template on the pair at the cursor. The pair must
// sit at the top of the allocated region so that the scratch cells follow it.
func (b *Builder) divide() (dividend, divisor, remainder, quotient int) {
	dividend = b.cursor
	divisor = dividend + 1
	scratch := b.model.Allocate(divModScratch)
	if b.model.Checked && scratch.Position != divisor+1 {
		panic(fmt.Errorf("division at %d: scratch starts at %d, want %d", dividend, scratch.Position, divisor+1))
	}
	b.Emit(divModTemplate)
	return dividend, divisor, dividend + 2, dividend + 3
}

// DivBy divides the cell at the cursor by the cell after it. The quotient
// replaces the dividend; the divisor cell ends at 0.
func (b *Builder) DivBy() *Builder {
	dividend, divisor, remainder, quotient := b.divide()
	b.Goto(divisor).Clear()
	b.Goto(remainder).Clear()
	b.Goto(quotient).AddTo(dividend)
	b.release(divModScratch)
	return b.Goto(dividend)
}

// ModBy replaces the dividend with the remainder; the divisor cell ends at 0.
func (b *Builder) ModBy() *Builder {
	dividend, divisor, remainder, quotient := b.divide()
	b.Goto(divisor).Clear()
	b.Goto(quotient).Clear()
	b.Goto(remainder).AddTo(dividend)
	b.release(divModScratch)
	return b.Goto(dividend)
}

// DivModBy leaves the quotient in the dividend cell and the remainder in the
// divisor cell.
func (b *Builder) DivModBy() *Builder {
	dividend, divisor, remainder, quotient := b.divide()
	b.Goto(divisor).Clear()
	b.Goto(quotient).AddTo(dividend)
	b.Goto(remainder).AddTo(divisor)
	b.release(divModScratch)
	return b.Goto(dividend)
}
