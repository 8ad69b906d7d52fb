package bfvm

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestHello(t *testing.T) {
	code := "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++.>>.<-.<.+++.------.--------.>>+.>++."
	_, out, err := Exec([]byte(code), nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "Hello World!\n" {
		t.Fatalf("got %q", out)
	}
}

func TestWrap(t *testing.T) {
	code := "->+++[->" + strings.Repeat("+", 86) + "<]"
	vm, _, err := Exec([]byte(code), nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if vm.Cell(0) != 255 {
		t.Fatalf("got %d", vm.Cell(0))
	}
	if vm.Cell(2) != 2 {
		t.Fatalf("got %d", vm.Cell(2))
	}
}

func TestInput(t *testing.T) {
	// echo until EOF, which reads as 0
	_, out, err := Exec([]byte(",[.,]"), []byte("abc"), 0)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "abc" {
		t.Fatalf("got %q", out)
	}
}

func TestComments(t *testing.T) {
	_, out, err := Exec([]byte("add 3 +++ then print ."), nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{3}) {
		t.Fatalf("got %v", out)
	}
}

func TestUnbalanced(t *testing.T) {
	for _, code := range []string{"[", "]", "[[]", "+]["} {
		_, err := NewVM([]byte(code), nil, nil)
		if !errors.Is(err, ErrUnbalanced) {
			t.Fatalf("%q: got %v", code, err)
		}
	}
}

func TestPointerUnderflow(t *testing.T) {
	_, _, err := Exec([]byte("><<"), nil, 0)
	if !errors.Is(err, ErrPointerUnderflow) {
		t.Fatalf("got %v", err)
	}
	if !strings.Contains(err.Error(), "at 2") {
		t.Fatalf("got %v", err)
	}
}

func TestStepLimit(t *testing.T) {
	_, _, err := Exec([]byte("+[]"), nil, 1000)
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
}

func TestSuspendResume(t *testing.T) {
	vm, err := NewVM([]byte("++++++++++[-]"), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	vm.MaxSteps = 5
	suspends := 0
	for intr, err := range vm.Run {
		if err != nil {
			t.Fatal(err)
		}
		if intr.Suspend {
			suspends++
		}
	}
	if vm.Steps != 10+1+2*10 {
		t.Fatalf("got %d", vm.Steps)
	}
	if suspends != 6 {
		t.Fatalf("got %d", suspends)
	}
	if vm.Cell(0) != 0 {
		t.Fatal()
	}
}

func TestTapeGrowth(t *testing.T) {
	code := strings.Repeat(">", 1000) + "+++"
	vm, _, err := Exec([]byte(code), nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	if vm.Cell(1000) != 3 {
		t.Fatalf("got %d", vm.Cell(1000))
	}
	if vm.Cell(5000) != 0 {
		t.Fatal()
	}
}
