package ebf

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/reusee/bcc/insts"
)

type StatementKind uint8

const (
	StatementInvalid StatementKind = iota
	StatementAdd
	StatementSub
	StatementShiftLeft
	StatementShiftRight
	StatementLoopStart
	StatementLoopEnd
	StatementInput
	StatementOutput
)

func (k StatementKind) String() string {
	switch k {
	case StatementAdd:
		return "add"
	case StatementSub:
		return "sub"
	case StatementShiftLeft:
		return "shift left"
	case StatementShiftRight:
		return "shift right"
	case StatementLoopStart:
		return "loop start"
	case StatementLoopEnd:
		return "loop end"
	case StatementInput:
		return "input"
	case StatementOutput:
		return "output"
	}
	return "invalid"
}

// Statement is one parsed token. Count is the repeat count of the
// add, sub and shift statements, 1 for the others.
type Statement struct {
	Kind  StatementKind
	Count int
	Pos   Pos
}

// upper bound of repeat counts
const maxCount = 1 << 20

var countedKinds = map[byte]StatementKind{
	insts.Inc:   StatementAdd,
	insts.Dec:   StatementSub,
	insts.Left:  StatementShiftLeft,
	insts.Right: StatementShiftRight,
}

var singleKinds = map[string]StatementKind{
	string(insts.Open):   StatementLoopStart,
	string(insts.Close):  StatementLoopEnd,
	string(insts.Input):  StatementInput,
	string(insts.Output): StatementOutput,
}

// Parse reads the whole source. Tokens starting with # are comments.
// The first malformed token or unmatched bracket stops parsing.
func Parse(source *Source) ([]Statement, error) {
	tokenizer := NewTokenizer(source)
	var statements []Statement
	var opens []Pos

	for {
		token, err := tokenizer.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if token.Text[0] == '#' {
			continue
		}

		stmt, err := parseToken(token)
		if err != nil {
			return nil, err
		}

		switch stmt.Kind {
		case StatementLoopStart:
			opens = append(opens, stmt.Pos)
		case StatementLoopEnd:
			if len(opens) == 0 {
				return nil, WithPos(ErrUnbalanced, stmt.Pos)
			}
			opens = opens[:len(opens)-1]
		}

		statements = append(statements, stmt)
	}

	if len(opens) > 0 {
		return nil, WithPos(ErrUnbalanced, opens[len(opens)-1])
	}

	return statements, nil
}

func parseToken(token *Token) (Statement, error) {
	if kind, ok := singleKinds[token.Text]; ok {
		return Statement{
			Kind:  kind,
			Count: 1,
			Pos:   token.Pos,
		}, nil
	}

	kind, ok := countedKinds[token.Text[0]]
	if !ok {
		return Statement{}, WithPos(
			fmt.Errorf("%w: %q", ErrUnknownToken, token.Text),
			token.Pos,
		)
	}

	count := 1
	if digits := token.Text[1:]; digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil || n < 0 || n > maxCount {
			return Statement{}, WithPos(
				fmt.Errorf("%w: %q", ErrBadCount, token.Text),
				token.Pos,
			)
		}
		count = n
	}

	return Statement{
		Kind:  kind,
		Count: count,
		Pos:   token.Pos,
	}, nil
}
