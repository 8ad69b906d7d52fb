package tapes

import (
	"strings"
	"testing"
)

func TestAllocateFree(t *testing.T) {
	var m Model
	var live []int
	sum := func() (n int) {
		for _, size := range live {
			n += size
		}
		return
	}

	for _, size := range []int{1, 3, 2, 0, 5} {
		c := m.Allocate(size)
		if c.Position != sum() {
			t.Fatalf("got %v", c)
		}
		live = append(live, size)
		if m.Frontier() != sum() {
			t.Fatalf("got %d", m.Frontier())
		}
	}

	for len(live) > 0 {
		m.Free(live[len(live)-1])
		live = live[:len(live)-1]
		if m.Frontier() != sum() {
			t.Fatalf("got %d", m.Frontier())
		}
	}

	c := m.Allocate(2)
	if c.Position != 0 {
		t.Fatalf("got %v", c)
	}
}

func TestFreeNeverNegative(t *testing.T) {
	var m Model
	m.Allocate(1)
	m.Free(4)
	if m.Frontier() != 0 {
		t.Fatalf("got %d", m.Frontier())
	}
}

func TestUncheckedMisuse(t *testing.T) {
	var m Model
	m.Allocate(1)
	m.Allocate(3)
	// frees the wrong block without complaint
	m.Free(1)
	c := m.Allocate(1)
	if c.Position != 3 {
		t.Fatalf("got %v", c)
	}
}

func TestCheckedMisuse(t *testing.T) {
	m := Model{
		Checked: true,
	}
	m.Allocate(1)
	m.Allocate(3)
	func() {
		defer func() {
			p := recover()
			if p == nil {
				t.Fatal("should panic")
			}
			if !strings.Contains(p.(error).Error(), "last block has 3 cells") {
				t.Fatalf("got %v", p)
			}
		}()
		m.Free(1)
	}()
	m.Free(3)
	m.Free(1)
	if m.Frontier() != 0 {
		t.Fatalf("got %d", m.Frontier())
	}
}

func TestCells(t *testing.T) {
	c := Cells{Position: 4, Size: 3}
	if c.At(0) != 4 || c.At(2) != 6 {
		t.Fatal()
	}
	if c.Last() != 6 {
		t.Fatalf("got %d", c.Last())
	}
	if c.String() != "cells(4+3)" {
		t.Fatalf("got %s", c)
	}
}
