// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build rp2040

package main

import (
	"time"

	"github.com/soypat/cyw43439"
)

// statusLED is the cyw43439 GPIO wired to the Pico W LED.
const statusLED = 0

// ledError is a start-up error shown as a flash sequence on the status LED.
type ledError struct {
	error
	seq ledSequence
}

// newLedError returns a ledError flashing code n, which should be unique
// within the program.
func newLedError(n byte, err error) ledError {
	return ledError{error: err, seq: errorSequence(n)}
}

func (e ledError) ledSequence() ledSequence { return e.seq }

type ledSequencer interface {
	ledSequence() ledSequence
}

var (
	// normalOperation is the game running heartbeat.
	normalOperation = ledSequence{
		{on: true, duration: 10 * time.Millisecond},
		{on: false, duration: 990 * time.Millisecond},
	}
	// uncaughtPanic is the panic termination heartbeat.
	uncaughtPanic = ledSequence{
		{on: true, duration: 990 * time.Millisecond},
		{on: false, duration: 10 * time.Millisecond},
	}
)

// errorSequence returns the flashes for n: n long flashes followed by a
// long pause. Codes above 9 are shown as tens then units, separated by a
// short pause, matching the game's two digit display.
func errorSequence(n byte) ledSequence {
	const (
		on    = 300 * time.Millisecond
		off   = 250 * time.Millisecond
		group = 750 * time.Millisecond
		pause = 2 * time.Second
	)
	if n == 0 {
		return ledSequence{{on: true, duration: on}, {on: false, duration: pause}}
	}
	seq := make(ledSequence, 0, 2*(9+9))
	digits := []byte{n % 10}
	if n >= 10 {
		digits = []byte{n / 10 % 10, n % 10}
		if n >= 100 {
			digits = []byte{n / 100, n / 10 % 10, n % 10}
		}
	}
	for _, d := range digits {
		if d == 0 {
			// Zero is a single short blink.
			seq = append(seq,
				ledState{on: true, duration: on / 3},
				ledState{on: false, duration: off},
			)
		}
		for range d {
			seq = append(seq,
				ledState{on: true, duration: on},
				ledState{on: false, duration: off},
			)
		}
		seq[len(seq)-1].duration = group
	}
	seq[len(seq)-1].duration = pause
	return seq
}

// flash shows seq on the status LED of dev.
func flash(dev *cyw43439.Device, seq ledSequence) error {
	for _, state := range seq {
		err := dev.GPIOSet(statusLED, state.on)
		if err != nil {
			return err
		}
		time.Sleep(state.duration)
	}
	return nil
}

// ledSequence is a sequence of LED states.
type ledSequence []ledState

// ledState is an LED state held for a duration.
type ledState struct {
	on       bool
	duration time.Duration
}
