package debugs

import (
	"testing"

	"github.com/reusee/bcc/tapes"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type steps int
	type settings struct {
		MaxSteps int
		Optimize bool
		hidden   string
	}
	settingsDict := func() starlark.Value {
		d := starlark.NewDict(2)
		d.SetKey(starlark.String("MaxSteps"), starlark.MakeInt(100))
		d.SetKey(starlark.String("Optimize"), starlark.True)
		return d
	}

	cases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("+-"), starlark.Bytes("+-")},
		{"string", "[-]", starlark.String("[-]")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-3), starlark.MakeInt(-3)},
		{"uint8", uint8(255), starlark.MakeInt(255)},
		{"named int", steps(7), starlark.MakeInt(7)},
		{"float", 1.5, starlark.Float(1.5)},
		{"cells", tapes.Cells{Position: 4, Size: 3}, starlark.Tuple{starlark.MakeInt(4), starlark.MakeInt(3)}},
		{"ints", []int{1, 2}, starlark.NewList([]starlark.Value{starlark.MakeInt(1), starlark.MakeInt(2)})},
		{"struct", settings{MaxSteps: 100, Optimize: true, hidden: "x"}, settingsDict()},
		{"pointer", &settings{MaxSteps: 100, Optimize: true}, settingsDict()},
		{"nil pointer", (*settings)(nil), starlark.None},
		{"map", map[string]any{"a": 1}, func() starlark.Value {
			d := starlark.NewDict(1)
			d.SetKey(starlark.String("a"), starlark.MakeInt(1))
			return d
		}()},
		{"starlark value", starlark.String("as is"), starlark.String("as is")},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := toStarlarkValue(c.input)
			eq, err := starlark.Equal(got, c.expected)
			if err != nil {
				t.Fatal(err)
			}
			if !eq {
				t.Fatalf("got %v, want %v", got, c.expected)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if p := recover(); p == nil {
				t.Fatal("should panic")
			}
		}()
		toStarlarkValue(make(chan int))
	})
}

func TestFuncValue(t *testing.T) {
	v := toStarlarkValue(func() string { return "" })
	if _, ok := v.(starlark.Callable); !ok {
		t.Fatalf("got %T", v)
	}
}
