// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bar drives a row of LEDs of which at most one is lit.
package bar

import "github.com/kortschak/hokey/pin"

// Len is the number of LEDs in the bar.
const Len = 10

// none marks that no LED is lit.
const none = -1

// Bar is a row of active-low LEDs showing a single lit position.
type Bar struct {
	leds [Len]pin.Output
	pos  int
}

// New returns a Bar driving leds, with leds[0] as position 0.
func New(leds [Len]pin.Output) *Bar {
	return &Bar{leds: leds, pos: none}
}

// Init turns every LED off.
func (b *Bar) Init() {
	for _, p := range b.leds {
		p.High()
	}
	b.pos = none
}

// SetPosition lights the LED at pos and turns off the previously lit one.
// Positions outside the bar are ignored.
func (b *Bar) SetPosition(pos int) {
	if pos < 0 || Len <= pos || pos == b.pos {
		return
	}
	if b.pos != none {
		b.leds[b.pos].High()
	}
	b.pos = pos
	b.leds[pos].Low()
}

// Erase turns off the lit LED, if any.
func (b *Bar) Erase() {
	if b.pos == none {
		return
	}
	b.leds[b.pos].High()
	b.pos = none
}

// Position returns the lit position and whether any LED is lit.
func (b *Bar) Position() (pos int, ok bool) {
	return b.pos, b.pos != none
}
