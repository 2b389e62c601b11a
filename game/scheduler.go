// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package game

import (
	"context"
	"time"
)

// Scanner is a multiplexed display advanced at a fixed rate.
type Scanner interface {
	Advance()
}

// ButtonSampler returns the buttons held down.
type ButtonSampler interface {
	Sample() Buttons
}

// Scheduler owns the tick counter and runs one game step per tick.
type Scheduler struct {
	tick    uint32
	scan    Scanner
	buttons ButtonSampler
	engine  *Engine
}

// NewScheduler returns a Scheduler advancing scan every ScanDivisor ticks
// and stepping engine with the buttons read from buttons on every tick.
func NewScheduler(scan Scanner, buttons ButtonSampler, engine *Engine) *Scheduler {
	return &Scheduler{scan: scan, buttons: buttons, engine: engine}
}

// Tick advances the counter and runs one step. The counter wraps.
func (s *Scheduler) Tick(ctx context.Context) {
	s.tick++
	if s.tick%ScanDivisor == 0 {
		s.scan.Advance()
	}
	s.engine.Step(ctx, s.tick, s.buttons.Sample())
}

// Ticks returns the tick counter.
func (s *Scheduler) Ticks() uint32 { return s.tick }

// Run calls Tick at FramesPerSecond until ctx is cancelled. Ticks are
// never run concurrently; a late tick is dropped by the ticker rather than
// queued.
func (s *Scheduler) Run(ctx context.Context) error {
	t := time.NewTicker(time.Second / FramesPerSecond)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			s.Tick(ctx)
		}
	}
}
