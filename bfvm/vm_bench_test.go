package bfvm

import (
	"io"
	"strings"
	"testing"
)

func BenchmarkVM_NestedLoops(b *testing.B) {
	code := []byte("++++++++[>++++++++[>++++[-]<-]<-]" + strings.Repeat(".", 16))
	for b.Loop() {
		vm, err := NewVM(code, nil, io.Discard)
		if err != nil {
			b.Fatal(err)
		}
		for _, err := range vm.Run {
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}
