package bfvm

import (
	"bytes"
)

// Exec runs code to completion against a fixed input and collects the output.
// The first error stops execution. With maxSteps > 0, exceeding the budget
// returns ErrStepLimit.
func Exec(code []byte, input []byte, maxSteps int) (vm *VM, output []byte, err error) {
	out := new(bytes.Buffer)
	vm, err = NewVM(code, bytes.NewReader(input), out)
	if err != nil {
		return nil, nil, err
	}
	vm.MaxSteps = maxSteps
	for intr, e := range vm.Run {
		if e != nil {
			err = e
			break
		}
		if intr != nil && intr.Suspend {
			err = ErrStepLimit
			break
		}
	}
	return vm, out.Bytes(), err
}
