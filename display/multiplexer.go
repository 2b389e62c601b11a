// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display drives a multi-digit common cathode seven-segment display
// by scanning one digit at a time over shared segment lines.
package display

import "github.com/kortschak/hokey/pin"

// Multiplexer is a dynamically scanned seven-segment display. Segment lines
// are lit when high and digit enable lines are active when low.
//
// SetNumber and Erase only stage the value to show. Nothing reaches the pins
// until the next call to Advance, which must be made at a fixed rate fast
// enough to avoid visible flicker.
type Multiplexer struct {
	segments [7]pin.Output
	enables  []pin.Output
	limit    int

	valid bool
	value int
	digit int
}

// New returns a Multiplexer for the given segment lines, ordered A to G, and
// digit enable lines. enables[0] is the ones digit and enables[i] is the
// 10^i digit. New panics if no enable lines are provided.
func New(segments [7]pin.Output, enables ...pin.Output) *Multiplexer {
	if len(enables) == 0 {
		panic("display: no digits")
	}
	limit := 1
	for range enables {
		limit *= 10
	}
	return &Multiplexer{
		segments: segments,
		enables:  enables,
		limit:    limit,
	}
}

// Init turns every digit off and clears the segment lines.
func (m *Multiplexer) Init() {
	for _, p := range m.enables {
		p.High()
	}
	m.drive(0)
}

// Digits returns the number of digits of the display.
func (m *Multiplexer) Digits() int { return len(m.enables) }

// SetNumber stages v for display. Values that do not fit in the display
// blank it.
func (m *Multiplexer) SetNumber(v int) {
	if v < 0 || m.limit <= v {
		m.Erase()
		return
	}
	m.valid = true
	m.value = v
}

// Erase blanks the display.
func (m *Multiplexer) Erase() {
	m.valid = false
}

// Number returns the staged value and whether one is staged.
func (m *Multiplexer) Number() (v int, ok bool) {
	return m.value, m.valid
}

// Digit returns the index of the digit currently being scanned.
func (m *Multiplexer) Digit() int { return m.digit }

// Advance moves the scan to the next digit. Only one digit is enabled at any
// instant so segment data for one digit never bleeds into another.
func (m *Multiplexer) Advance() {
	m.enables[m.digit].High()
	m.digit++
	if m.digit == len(m.enables) {
		m.digit = 0
	}
	var segs byte
	if m.valid {
		segs = Glyph(m.value / pow10(m.digit) % 10)
	}
	m.drive(segs)
	m.enables[m.digit].Low()
}

func (m *Multiplexer) drive(segs byte) {
	for i, p := range m.segments {
		if segs&(1<<i) != 0 {
			p.High()
		} else {
			p.Low()
		}
	}
}

func pow10(n int) int {
	v := 1
	for range n {
		v *= 10
	}
	return v
}
