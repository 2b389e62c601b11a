// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package game

import (
	"strings"

	"github.com/kortschak/hokey/pin"
)

// Buttons is the set of pressed buttons.
type Buttons uint8

const (
	PlayButton Buttons = 1 << iota
	EraseButton
	ShowButton
)

// Has returns whether all the buttons in x are pressed.
func (b Buttons) Has(x Buttons) bool { return b&x == x }

func (b Buttons) String() string {
	if b == 0 {
		return "_"
	}
	var names []string
	for i, n := range []string{"play", "erase", "show"} {
		if b&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	return strings.Join(names, "|")
}

// Sampler reads the three active-low buttons.
type Sampler struct {
	Play  pin.Input
	Erase pin.Input
	Show  pin.Input
}

// Sample returns the buttons currently held down.
func (s Sampler) Sample() Buttons {
	var b Buttons
	if !s.Play.Get() {
		b |= PlayButton
	}
	if !s.Erase.Get() {
		b |= EraseButton
	}
	if !s.Show.Get() {
		b |= ShowButton
	}
	return b
}
