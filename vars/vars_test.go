package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero(0, 0, 3, 4) != 3 {
		t.Fatal()
	}
	if FirstNonZero("", "") != "" {
		t.Fatal()
	}
}

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[int](nil) != 0 {
		t.Fatal()
	}
	n := 8
	if DerefOrZero(&n) != 8 {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true": true,
		"Yes":  true,
		"on":   true,
		"1":    true,
		"no":   false,
		"0":    false,
		"":     false,
		"what": false,
	} {
		if StrToBool(str) != expected {
			t.Fatalf("%q: got %v", str, !expected)
		}
	}
}
