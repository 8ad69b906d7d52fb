package optimizers

import "github.com/reusee/bcc/insts"

// TrimTail drops everything after the last top-level input or output.
// An input or output inside a loop cancels the cut until a later top-level
// one, so loop effects are never removed. Without a cut point the code is
// returned unchanged.
func TrimTail(code []byte) []byte {
	depth := 0
	cut := -1

	for i, b := range code {
		switch b {

		case insts.Open:
			depth++

		case insts.Close:
			if depth > 0 {
				depth--
			}

		case insts.Output, insts.Input:
			if depth == 0 {
				cut = i
			} else {
				cut = -1
			}

		}
	}

	if cut < 0 {
		return code
	}
	return code[:cut+1]
}
