package bfvm

import (
	"fmt"
	"io"

	"github.com/reusee/bcc/insts"
)

// Run executes until the end of the code or until yield returns false.
// Errors and step limit suspensions are reported through yield; returning true
// resumes execution.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	if v.MaxSteps > 0 && v.budget == 0 {
		v.budget = v.Steps + v.MaxSteps
	}

	for {
		if v.IP < 0 || v.IP >= len(v.Code) {
			return
		}

		if v.budget > 0 && v.Steps >= v.budget {
			if !yield(InterruptSuspend, nil) {
				return
			}
			v.budget = v.Steps + v.MaxSteps
		}

		inst := v.Code[v.IP]
		v.IP++
		v.Steps++

		switch inst {

		case insts.Right:
			v.Pointer++
			if v.Pointer >= len(v.Tape) {
				v.growTape()
			}

		case insts.Left:
			if v.Pointer == 0 {
				if !yield(nil, fmt.Errorf("%w: at %d", ErrPointerUnderflow, v.IP-1)) {
					return
				}
				continue
			}
			v.Pointer--

		case insts.Inc:
			v.Tape[v.Pointer]++

		case insts.Dec:
			v.Tape[v.Pointer]--

		case insts.Open:
			if v.Tape[v.Pointer] == 0 {
				v.IP = v.jumps[v.IP-1] + 1
			}

		case insts.Close:
			if v.Tape[v.Pointer] != 0 {
				v.IP = v.jumps[v.IP-1] + 1
			}

		case insts.Output:
			if v.out == nil {
				continue
			}
			v.outBuf[0] = v.Tape[v.Pointer]
			if _, err := v.out.Write(v.outBuf[:]); err != nil {
				if !yield(nil, err) {
					return
				}
			}

		case insts.Input:
			if v.in == nil {
				v.Tape[v.Pointer] = 0
				continue
			}
			b, err := v.in.ReadByte()
			if err == io.EOF {
				v.Tape[v.Pointer] = 0
				continue
			}
			if err != nil {
				if !yield(nil, err) {
					return
				}
				continue
			}
			v.Tape[v.Pointer] = b

		}
	}
}
