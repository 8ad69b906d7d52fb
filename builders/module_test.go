package builders

import (
	"testing"

	"github.com/reusee/bcc/configs"
	"github.com/reusee/bcc/modes"
	"github.com/reusee/dscope"
)

func TestModule(t *testing.T) {
	loader := configs.NewLoader(nil, "")
	dscope.New(
		new(Module),
		&loader,
		modes.ForTest(t),
	).Call(func(
		newBuilder NewBuilder,
	) {
		b := newBuilder()
		if !b.model.Checked {
			t.Fatal("should be checked in test mode")
		}
		if b.logger == nil {
			t.Fatal()
		}
		b.NewCell()
		b.Add(7)
		b.PrintAsByte()
		b.FreeLastN(1)
		if _, got := exec(t, b.Finish(true)); got != "7" {
			t.Fatalf("got %q", got)
		}
	})
}

func TestModuleProduction(t *testing.T) {
	loader := configs.NewLoader(nil, "")
	dscope.New(
		new(Module),
		&loader,
		modes.ForProduction(),
	).Call(func(
		newBuilder NewBuilder,
	) {
		if newBuilder().model.Checked {
			t.Fatal()
		}
	})
}
