// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build rp2040

package main

import (
	"context"
	"log/slog"
	"machine"
	"time"

	"github.com/soypat/cyw43439"

	"github.com/kortschak/hokey/bar"
	"github.com/kortschak/hokey/display"
	"github.com/kortschak/hokey/game"
	"github.com/kortschak/hokey/hiscore"
	"github.com/kortschak/hokey/pin"
)

// Start-up failure codes shown on the status LED.
const (
	errDevice byte = iota + 1
	errWatchdog
)

// console is the game board.
type console struct {
	dev *cyw43439.Device

	segments [7]machine.Pin
	enables  [2]machine.Pin
	leds     [bar.Len]machine.Pin

	play  machine.Pin
	erase machine.Pin
	show  machine.Pin

	scores *display.Multiplexer
	sweep  *bar.Bar
	high   *hiscore.Store
	sched  *game.Scheduler

	log   *slog.Logger
	level slog.LevelVar
}

func (c *console) init(ctx context.Context) error {
	c.log.LogAttrs(ctx, slog.LevelInfo, "configure pico W device")
	start := time.Now()
	err := c.dev.Init(cyw43439.DefaultWifiConfig())
	if err != nil {
		return newLedError(errDevice, err)
	}
	c.log.LogAttrs(ctx, slog.LevelInfo, "cyw43439 initialised", slog.Duration("duration", time.Since(start)))

	c.log.LogAttrs(ctx, slog.LevelInfo, "configure pins")
	out := machine.PinConfig{Mode: machine.PinOutput}
	var segs [7]pin.Output
	for i, p := range c.segments {
		p.Configure(out)
		segs[i] = p
	}
	var enables [2]pin.Output
	for i, p := range c.enables {
		p.Configure(out)
		enables[i] = p
	}
	var leds [bar.Len]pin.Output
	for i, p := range c.leds {
		p.Configure(out)
		leds[i] = p
	}
	in := machine.PinConfig{Mode: machine.PinInputPullup}
	for _, p := range []machine.Pin{c.play, c.erase, c.show} {
		p.Configure(in)
	}

	c.scores = display.New(segs, enables[:]...)
	c.scores.Init()
	c.sweep = bar.New(leds)
	c.sweep.Init()

	c.log.LogAttrs(ctx, slog.LevelInfo, "load high score")
	c.high = hiscore.New(ctx, hiscore.BlockSlot{Device: machine.Flash}, c.log)

	c.log.LogAttrs(ctx, slog.LevelInfo, "set up watchdog")
	machine.Watchdog.Configure(machine.WatchdogConfig{
		TimeoutMillis: 10000,
	})
	err = machine.Watchdog.Start()
	if err != nil {
		return newLedError(errWatchdog, err)
	}

	engine := game.NewEngine(c.scores, c.sweep, c.high, c.log)
	c.sched = game.NewScheduler(c.scores, game.Sampler{
		Play:  c.play,
		Erase: c.erase,
		Show:  c.show,
	}, engine)
	return nil
}
