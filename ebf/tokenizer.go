package ebf

import (
	"io"
	"strings"
	"unicode"
)

// Token is one whitespace separated word of the source.
type Token struct {
	Text string
	Pos  Pos
}

type Tokenizer struct {
	source  *Source
	reader  *strings.Reader
	currPos Pos
	prevPos Pos
}

func NewTokenizer(source *Source) *Tokenizer {
	return &Tokenizer{
		source: source,
		reader: strings.NewReader(source.Content),
		currPos: Pos{
			Source: source,
			Line:   1,
			Column: 1,
		},
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.reader.UnreadRune()
	t.currPos = t.prevPos
}

// Next returns the next token, or io.EOF at the end of the source.
func (t *Tokenizer) Next() (*Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if unicode.IsSpace(r) {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}

	if sb.Len() == 0 {
		return nil, io.EOF
	}
	return &Token{
		Text: sb.String(),
		Pos:  startPos,
	}, nil
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if !unicode.IsSpace(r) {
			t.unreadRune()
			return
		}
	}
}
