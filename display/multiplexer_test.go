// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"fmt"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"

	"github.com/kortschak/hokey/pin"
	"github.com/kortschak/hokey/pinio"
)

type board struct {
	segs    [7]*gpiotest.Pin
	enables []*gpiotest.Pin
	m       *Multiplexer
}

func newBoard(digits int) *board {
	var b board
	var segs [7]pin.Output
	for i := range b.segs {
		b.segs[i] = &gpiotest.Pin{N: fmt.Sprintf("SEG_%c", 'A'+i), Num: i}
		segs[i] = pinio.NewOutput(b.segs[i], nil)
	}
	enables := make([]pin.Output, digits)
	for i := range enables {
		p := &gpiotest.Pin{N: fmt.Sprintf("DIG_%d", i), Num: 7 + i}
		b.enables = append(b.enables, p)
		enables[i] = pinio.NewOutput(p, nil)
	}
	b.m = New(segs, enables...)
	b.m.Init()
	return &b
}

// lit returns the segment bits currently driven.
func (b *board) lit() byte {
	var v byte
	for i, p := range b.segs {
		if p.Read() == gpio.High {
			v |= 1 << i
		}
	}
	return v
}

// active returns the indexes of the enabled digits.
func (b *board) active() []int {
	var idx []int
	for i, p := range b.enables {
		if p.Read() == gpio.Low {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestInit(t *testing.T) {
	b := newBoard(2)
	if got := b.active(); len(got) != 0 {
		t.Fatalf("enabled digits after init = %v, want none", got)
	}
	if got := b.lit(); got != 0 {
		t.Fatalf("segments after init = %07b, want none", got)
	}
}

func TestSetNumberIsStaged(t *testing.T) {
	b := newBoard(2)
	b.m.SetNumber(88)
	if got := b.lit(); got != 0 {
		t.Fatalf("segments before advance = %07b, want none", got)
	}
	if v, ok := b.m.Number(); !ok || v != 88 {
		t.Fatalf("staged number = %d %t, want 88 true", v, ok)
	}
}

func TestAdvanceScansDigits(t *testing.T) {
	b := newBoard(2)
	b.m.SetNumber(42)

	want := []struct {
		digit int
		value int
	}{
		{digit: 1, value: 4},
		{digit: 0, value: 2},
		{digit: 1, value: 4},
		{digit: 0, value: 2},
	}
	for i, w := range want {
		b.m.Advance()
		if got := b.m.Digit(); got != w.digit {
			t.Fatalf("advance %d: digit = %d, want %d", i, got, w.digit)
		}
		if got := b.active(); len(got) != 1 || got[0] != w.digit {
			t.Fatalf("advance %d: enabled digits = %v, want [%d]", i, got, w.digit)
		}
		d, ok := Decode(b.lit())
		if !ok || d != w.value {
			t.Fatalf("advance %d: shows %d %t, want %d", i, d, ok, w.value)
		}
	}
}

func TestAdvanceFullCycle(t *testing.T) {
	for _, digits := range []int{1, 2, 3} {
		b := newBoard(digits)
		b.m.SetNumber(7)
		start := b.m.Digit()
		visits := make([]int, digits)
		for range 2 * digits {
			b.m.Advance()
			visits[b.m.Digit()]++
		}
		if got := b.m.Digit(); got != start {
			t.Errorf("digits=%d: digit after two cycles = %d, want %d", digits, got, start)
		}
		for i, n := range visits {
			if n != 2 {
				t.Errorf("digits=%d: digit %d visited %d times, want 2", digits, i, n)
			}
		}
	}
}

func TestLeadingZero(t *testing.T) {
	b := newBoard(2)
	b.m.SetNumber(5)
	b.m.Advance() // tens
	if d, ok := Decode(b.lit()); !ok || d != 0 {
		t.Fatalf("tens digit of 5 = %d %t, want 0", d, ok)
	}
}

func TestOutOfRangeBlanks(t *testing.T) {
	for _, v := range []int{-1, 100, 1000} {
		b := newBoard(2)
		b.m.SetNumber(12)
		b.m.Advance()
		b.m.SetNumber(v)
		if _, ok := b.m.Number(); ok {
			t.Errorf("SetNumber(%d) staged a value", v)
		}
		b.m.Advance()
		if got := b.lit(); got != 0 {
			t.Errorf("SetNumber(%d): segments = %07b, want none", v, got)
		}
	}
}

func TestErase(t *testing.T) {
	b := newBoard(2)
	b.m.SetNumber(99)
	b.m.Advance()
	if b.lit() == 0 {
		t.Fatal("expected lit segments before erase")
	}
	b.m.Erase()
	b.m.Advance()
	if got := b.lit(); got != 0 {
		t.Fatalf("segments after erase = %07b, want none", got)
	}
	if got := b.active(); len(got) != 1 {
		t.Fatalf("enabled digits after erase = %v, want one", got)
	}
}

func TestGlyphs(t *testing.T) {
	for d := range 10 {
		got, ok := Decode(Glyph(d))
		if !ok || got != d {
			t.Errorf("Decode(Glyph(%d)) = %d %t", d, got, ok)
		}
	}
	for _, d := range []int{-1, 10} {
		if g := Glyph(d); g != 0 {
			t.Errorf("Glyph(%d) = %07b, want none", d, g)
		}
	}
	if Glyph(8) != 0x7f {
		t.Errorf("Glyph(8) = %#x, want 0x7f", Glyph(8))
	}
}
