package insts

const (
	Left   byte = '<'
	Right  byte = '>'
	Inc    byte = '+'
	Dec    byte = '-'
	Input  byte = ','
	Output byte = '.'
	Open   byte = '['
	Close  byte = ']'
)

// Clear drives the current cell to 0 whatever its value.
const Clear = "[-]"

func IsPrimitive(b byte) bool {
	switch b {
	case Left, Right, Inc, Dec, Input, Output, Open, Close:
		return true
	}
	return false
}

// Filter drops every byte that is not a primitive instruction.
func Filter(code []byte) []byte {
	ret := make([]byte, 0, len(code))
	for _, b := range code {
		if IsPrimitive(b) {
			ret = append(ret, b)
		}
	}
	return ret
}
