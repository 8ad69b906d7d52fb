package cmds

import (
	"bytes"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	executor := NewExecutor()
	executor.Define("demo", Sub(map[string]*Command{
		"hello": Func(func() {
		}).Desc("HELLO"),
		"run": Sub(map[string]*Command{
			"steps": Func(func(n int, input *string) {}).Desc("STEPS"),
		}).Desc("RUN"),
	}).Desc("DEMO"))
	executor.Rest()

	buf := new(bytes.Buffer)
	executor.PrintUsage(buf)
	out := buf.String()

	for _, expected := range []string{
		"--help, -h, -help, help\tprint this usage",
		"demo\tDEMO",
		"  hello\tHELLO",
		"  run\tRUN",
		"    steps <int> [string]\tSTEPS",
		"input files",
	} {
		if !strings.Contains(out, expected) {
			t.Fatalf("missing %q in\n%s", expected, out)
		}
	}
}
