// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pinio adapts periph.io GPIO pins to the game's pin capabilities.
package pinio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

var errNoPin = errors.New("no such pin")

var nolog = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(127),
}))

// Output is a pin.Output backed by a periph.io output pin. Write errors are
// logged and otherwise ignored.
type Output struct {
	pin gpio.PinOut
	log *slog.Logger
}

// NewOutput returns an Output for p. A nil log discards errors.
func NewOutput(p gpio.PinOut, log *slog.Logger) *Output {
	if log == nil {
		log = nolog
	}
	return &Output{pin: p, log: log}
}

// High drives the pin high.
func (o *Output) High() { o.out(gpio.High) }

// Low drives the pin low.
func (o *Output) Low() { o.out(gpio.Low) }

func (o *Output) out(l gpio.Level) {
	err := o.pin.Out(l)
	if err != nil {
		o.log.LogAttrs(context.Background(), slog.LevelError, "write pin", slog.String("pin", o.pin.Name()), slog.Any("err", err))
	}
}

// Input is a pin.Input backed by a periph.io input pin.
type Input struct {
	pin gpio.PinIn
}

// NewInput returns an Input for p.
func NewInput(p gpio.PinIn) Input { return Input{pin: p} }

// Get returns whether the pin reads high.
func (i Input) Get() bool { return i.pin.Read() == gpio.High }

// Outputs looks up the named pins in the periph.io registry and configures
// them as outputs driven high.
func Outputs(log *slog.Logger, names ...string) ([]*Output, error) {
	outs := make([]*Output, len(names))
	for i, n := range names {
		p := gpioreg.ByName(n)
		if p == nil {
			return nil, fmt.Errorf("%w: %s", errNoPin, n)
		}
		err := p.Out(gpio.High)
		if err != nil {
			return nil, fmt.Errorf("configure %s: %w", n, err)
		}
		outs[i] = NewOutput(p, log)
	}
	return outs, nil
}

// PullUpInput looks up the named pin in the periph.io registry and
// configures it as an input with its pull-up enabled.
func PullUpInput(name string) (Input, error) {
	p := gpioreg.ByName(name)
	if p == nil {
		return Input{}, fmt.Errorf("%w: %s", errNoPin, name)
	}
	err := p.In(gpio.PullUp, gpio.NoEdge)
	if err != nil {
		return Input{}, fmt.Errorf("configure %s: %w", name, err)
	}
	return NewInput(p), nil
}
