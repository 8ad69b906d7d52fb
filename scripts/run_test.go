package scripts

import (
	"strings"
	"testing"

	"github.com/reusee/bcc/bfvm"
	"github.com/reusee/bcc/builders"
	"github.com/reusee/bcc/configs"
	"github.com/reusee/bcc/logs"
	"github.com/reusee/bcc/modes"
	"github.com/reusee/dscope"
)

func runScript(t *testing.T, src string) string {
	t.Helper()
	var ret string
	loader := configs.NewLoader(nil, "")
	dscope.New(
		new(Module),
		&loader,
		modes.ForTest(t),
	).Call(func(
		compile Compile,
	) {
		code, err := compile(t.Context(), "test.star", []byte(src))
		if err != nil {
			t.Fatal(err)
		}
		_, out, err := bfvm.Exec([]byte(code), nil, 10_000_000)
		if err != nil {
			t.Fatal(err)
		}
		ret = string(out)
	})
	return ret
}

func TestAdd(t *testing.T) {
	out := runScript(t, `
a = new_cell()
add(35)
b = new_cell()
add(50)
add_to(a)
goto(a)
print_as_byte()
free_last_n(2)
`)
	if out != "85" {
		t.Fatalf("got %q", out)
	}
}

func TestLoops(t *testing.T) {
	out := runScript(t, `
for c in "abc":
    just_print(c)
i = 0
while i < 3:
    just_print(str(i))
    i += 1
`)
	if out != "abc012" {
		t.Fatalf("got %q", out)
	}
}

func TestCells(t *testing.T) {
	out := runScript(t, `
pos, size = write_bytes("hey")
print_cells(pos, size)
free_last_n(size)
if frontier() != 0:
    fail("frontier")
`)
	if out != "hey" {
		t.Fatalf("got %q", out)
	}
}

func TestMulDiv(t *testing.T) {
	out := runScript(t, `
pos, _ = n_cells(2)
add(6)
advance()
add(7)
mul_to(pos)
goto(pos)
print_as_byte()
just_print(" ")

n, _ = n_cells(2)
add(200)
advance()
add(7)
goto(n)
divmod_by()
print_as_byte()
free_last_n(2)
free_last_n(2)
`)
	if out != "42 28" {
		t.Fatalf("got %q", out)
	}
}

func TestByteRange(t *testing.T) {
	b := builders.New()
	_, err := Run(t.Context(), logs.Logger(nil), b, "test.star", []byte("add(256)"))
	if err == nil || !strings.Contains(err.Error(), "out of byte range") {
		t.Fatalf("got %v", err)
	}
}

func TestCheckedMisuse(t *testing.T) {
	b := builders.NewChecked()
	_, err := Run(t.Context(), logs.Logger(nil), b, "test.star", []byte(`
new_cell()
n_cells(2)
free_last_n(1)
`))
	if err == nil || !strings.Contains(err.Error(), "last block has 2 cells") {
		t.Fatalf("got %v", err)
	}
}

func TestGlobals(t *testing.T) {
	b := builders.New()
	globals, err := Run(t.Context(), logs.Logger(nil), b, "test.star", []byte(`
goto(3)
where = cursor()
`))
	if err != nil {
		t.Fatal(err)
	}
	if globals["where"].String() != "3" {
		t.Fatalf("got %v", globals["where"])
	}
}

func TestCompileInspect(t *testing.T) {
	loader := configs.NewLoader(nil, "")
	dscope.New(
		new(Module),
		&loader,
		modes.ForTest(t),
	).Call(func(
		compile Compile,
	) {
		var frontier, cursor int
		code, err := compile(t.Context(), "test.star", []byte(`
new_cell()
n_cells(2)
`), func(b *builders.Builder) {
			frontier = b.Frontier()
			cursor = b.Cursor()
			b.JustPrint("!")
		})
		if err != nil {
			t.Fatal(err)
		}
		if frontier != 3 || cursor != 1 {
			t.Fatalf("got %d %d", frontier, cursor)
		}
		_, out, err := bfvm.Exec([]byte(code), nil, 100_000)
		if err != nil {
			t.Fatal(err)
		}
		if string(out) != "!" {
			t.Fatalf("got %q", out)
		}
	})
}

func TestCompileError(t *testing.T) {
	loader := configs.NewLoader(nil, "")
	dscope.New(
		new(Module),
		&loader,
		modes.ForTest(t),
	).Call(func(
		compile Compile,
	) {
		_, err := compile(t.Context(), "test.star", []byte("new_cell()\nfree_last_n(2)\n"))
		if err == nil || !strings.Contains(err.Error(), "free 2 cells") {
			t.Fatalf("got %v", err)
		}
	})
}

func TestRejectsOutOfRange(t *testing.T) {
	for _, c := range []struct {
		src string
		msg string
	}{
		{"free_last_n(-3)", "size -3 out of range"},
		{"new_cell()\nfree_last_n(2)", "size 2 out of range"},
		{"goto(1 << 40)", "out of range"},
		{"goto(-1)", "position -1 out of range"},
		{"copy(0, 1 << 21)", "position 2097152 out of range"},
		{"n_cells(1 << 21)", "out of range"},
		{"print_cells(0, -1)", "negative size"},
	} {
		b := builders.New()
		_, err := Run(t.Context(), logs.Logger(nil), b, "test.star", []byte(c.src))
		if err == nil || !strings.Contains(err.Error(), c.msg) {
			t.Fatalf("%s: got %v", c.src, err)
		}
		if b.Frontier() > MaxPosition || b.Len() > MaxPosition {
			t.Fatalf("%s: got frontier %d len %d", c.src, b.Frontier(), b.Len())
		}
	}
}

func TestFreeLastNKeepsFrontier(t *testing.T) {
	b := builders.New()
	_, err := Run(t.Context(), logs.Logger(nil), b, "test.star", []byte(`
n_cells(2)
free_last_n(-3)
`))
	if err == nil {
		t.Fatal("should fail")
	}
	if b.Frontier() != 2 {
		t.Fatalf("got %d", b.Frontier())
	}
}
