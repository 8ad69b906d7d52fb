package optimizers

import (
	"strings"
	"testing"
)

func TestTrimTail(t *testing.T) {
	for _, c := range []struct {
		code     string
		expected string
	}{
		{"", ""},
		{"+++", "+++"},
		{"+.[-]<<", "+."},
		{"+.>+.[-]<[-]", "+.>+."},
		{"+[->+<]>", "+[->+<]>"},
		{"+.[.-]>>", "+.[.-]>>"},
		{"+[[.-]>]<<.+", "+[[.-]>]<<."},
		{"++[>.<-]+[-]", "++[>.<-]+[-]"},
		{"[.]>>", "[.]>>"},
		{"[,]>.<<", "[,]>."},
		{",[-]", ","},
		{".,[-]", ".,"},
		{"+[[-],]>", "+[[-],]>"},
		{".", "."},
	} {
		got := string(TrimTail([]byte(c.code)))
		if got != c.expected {
			t.Fatalf("%q: got %q", c.code, got)
		}
	}
}

func TestTrimTailIdempotent(t *testing.T) {
	for _, code := range []string{
		"+.[-]<<",
		"+.[.-]>>",
		"++[>.<-]+[-]",
		".,[-]",
		"[.]>>",
		"+++",
	} {
		once := TrimTail([]byte(code))
		twice := TrimTail(append([]byte(nil), once...))
		if string(once) != string(twice) {
			t.Fatalf("%q: got %q then %q", code, once, twice)
		}
	}
}

func TestTrimTailPrefix(t *testing.T) {
	code := "+++.>++[<.>-]<[-]>>>"
	got := string(TrimTail([]byte(code)))
	if !strings.HasPrefix(code, got) {
		t.Fatalf("got %q", got)
	}
}

func TestTrimTailNoTopLevelEffect(t *testing.T) {
	for _, code := range []string{
		"[.]>>",
		"+[>,<-]<<",
		"++[[.]-]+",
	} {
		if got := string(TrimTail([]byte(code))); got != code {
			t.Fatalf("%q: got %q", code, got)
		}
	}
}
