// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build rp2040

// The hokey firmware runs the bar sweep game on a Raspberry Pi Pico W.
package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/soypat/cyw43439"

	"github.com/kortschak/hokey/bar"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Let serial port stabilise.
	time.Sleep(time.Second)

	c := console{
		dev: cyw43439.NewPicoWDevice(),

		segments: [7]machine.Pin{ // A-G
			machine.GP0, machine.GP1, machine.GP2, machine.GP3,
			machine.GP4, machine.GP5, machine.GP6,
		},
		enables: [2]machine.Pin{machine.GP7, machine.GP8}, // ones, tens
		leds: [bar.Len]machine.Pin{
			machine.GP9, machine.GP10, machine.GP11, machine.GP12, machine.GP13,
			machine.GP14, machine.GP15, machine.GP16, machine.GP17, machine.GP18,
		},

		play:  machine.GP19,
		erase: machine.GP20,
		show:  machine.GP21,
	}
	c.level.Set(slog.LevelInfo)
	c.log = slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: &c.level,
	}))
	c.log.LogAttrs(ctx, slog.LevelInfo, "initialise pico W device")

	defer func() {
		cancel()
		r := recover()
		switch r := r.(type) {
		case nil:
		case ledSequencer:
			c.log.LogAttrs(ctx, slog.LevelError, "flatline", slog.Any("err", r))
			c.flatline(ctx, r.ledSequence())
		default:
			c.log.LogAttrs(ctx, slog.LevelError, "flatline", slog.Any("err", r))
			c.flatline(ctx, uncaughtPanic)
		}
	}()

	err := c.init(ctx)
	if err != nil {
		panic(err)
	}

	c.log.LogAttrs(ctx, slog.LevelInfo, "start game")
	go c.sched.Run(ctx)

	c.log.LogAttrs(ctx, slog.LevelInfo, "start heartbeat")
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		machine.Watchdog.Update()
		err := flash(c.dev, normalOperation)
		if err != nil {
			c.log.LogAttrs(ctx, slog.LevelError, "heartbeat", slog.Any("err", err))
		}
	}
}

// flatline shows seq on the status LED forever.
func (c *console) flatline(ctx context.Context, seq ledSequence) {
	for {
		machine.Watchdog.Update()
		err := flash(c.dev, seq)
		if err != nil {
			c.log.LogAttrs(ctx, slog.LevelError, "flatline flash", slog.Any("err", err))
		}
	}
}
