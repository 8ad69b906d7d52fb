package ebf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownToken = errors.New("unknown token")
	ErrBadCount     = errors.New("bad repeat count")
	ErrUnbalanced   = errors.New("unbalanced brackets")
)

type Pos struct {
	Source *Source
	Line   int
	Column int
}

func (p Pos) String() string {
	name := "<input>"
	if p.Source != nil {
		name = p.Source.Name
	}
	return fmt.Sprintf("%s:%d:%d", name, p.Line, p.Column)
}

type PosError struct {
	Err error
	Pos Pos
}

func (p PosError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s", p.Err.Error(), p.Pos)

	if p.Pos.Source == nil {
		return sb.String()
	}
	idx := p.Pos.Line - 1
	if idx < 0 || idx >= len(p.Pos.Source.Lines) {
		return sb.String()
	}
	line := p.Pos.Source.Lines[idx]
	sb.WriteString("\n")
	sb.WriteString(line)
	sb.WriteString("\n")
	for i, r := range []rune(line) {
		if i >= p.Pos.Column-1 {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^")

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

func WithPos(err error, pos Pos) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(PosError); ok {
		return err
	}
	return PosError{
		Err: err,
		Pos: pos,
	}
}
