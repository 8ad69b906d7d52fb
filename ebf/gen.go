package ebf

import (
	"bytes"

	"github.com/reusee/bcc/insts"
)

var statementInsts = map[StatementKind]byte{
	StatementAdd:        insts.Inc,
	StatementSub:        insts.Dec,
	StatementShiftLeft:  insts.Left,
	StatementShiftRight: insts.Right,
	StatementLoopStart:  insts.Open,
	StatementLoopEnd:    insts.Close,
	StatementInput:      insts.Input,
	StatementOutput:     insts.Output,
}

// cancelling pairs, removed in this order, each until none is left
var cancellations = [][]byte{
	[]byte("+-"),
	[]byte("-+"),
	[]byte("<>"),
	[]byte("><"),
}

// Gen emits each statement as a burst of its instruction and then removes
// adjacent cancelling pairs.
func Gen(statements []Statement) string {
	var code []byte
	for _, stmt := range statements {
		inst, ok := statementInsts[stmt.Kind]
		if !ok {
			continue
		}
		for range stmt.Count {
			code = append(code, inst)
		}
	}

	for _, pair := range cancellations {
		for bytes.Contains(code, pair) {
			code = bytes.ReplaceAll(code, pair, nil)
		}
	}

	return string(code)
}

// Compile parses and generates in one step.
func Compile(name string, content string) (string, error) {
	statements, err := Parse(NewSource(name, content))
	if err != nil {
		return "", err
	}
	return Gen(statements), nil
}
