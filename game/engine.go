// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package game implements the bar sweep reflex game: a fixed rate scheduler
// driving the display scan and a five state game machine.
package game

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/kortschak/hokey/bar"
)

// Display is a numeric display.
type Display interface {
	SetNumber(int)
	Erase()
}

// Bar is a row of lights with at most one lit.
type Bar interface {
	SetPosition(int)
	Erase()
}

// HighScore is the persistent best score.
type HighScore interface {
	Get() int
	Update(score int) (bool, error)
	Erase() (bool, error)
}

// State is a game machine state.
type State int

const (
	ReadyToStart State = iota
	ShowHighScore
	Playing
	ShowScoreBlink
	ShowScore
)

func (s State) String() string {
	switch s {
	case ReadyToStart:
		return "ready"
	case ShowHighScore:
		return "show high score"
	case Playing:
		return "playing"
	case ShowScoreBlink:
		return "show score blink"
	case ShowScore:
		return "show score"
	default:
		return "unknown"
	}
}

// Engine is the game machine. It is not safe for concurrent use; all calls
// must come from the goroutine running the scheduler.
type Engine struct {
	display Display
	bar     Bar
	high    HighScore
	log     *slog.Logger

	state State

	src *rand.PCG
	rnd *rand.Rand

	score    int
	sweep    int
	dwell    int
	speed    int // Ticks per sweep position.
	cooldown int

	updated bool // The last round set a new high score.
	blink   int
}

var nolog = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(127),
}))

// NewEngine returns an Engine in the ReadyToStart state.
func NewEngine(display Display, bar Bar, high HighScore, log *slog.Logger) *Engine {
	if log == nil {
		log = nolog
	}
	src := rand.NewPCG(0, 0)
	return &Engine{
		display: display,
		bar:     bar,
		high:    high,
		log:     log,
		state:   ReadyToStart,
		src:     src,
		rnd:     rand.New(src),
		speed:   1,
	}
}

// Step runs the machine for one tick with the buttons b held down.
func (e *Engine) Step(ctx context.Context, tick uint32, b Buttons) {
	switch e.state {
	case ReadyToStart:
		e.readyToStart(ctx, tick, b)
	case ShowHighScore:
		e.showHighScore(ctx, tick, b)
	case Playing:
		e.playing(ctx, b)
	case ShowScoreBlink:
		e.showScoreBlink(ctx)
	case ShowScore:
		e.showScore(ctx, tick, b)
	}
}

func (e *Engine) readyToStart(ctx context.Context, tick uint32, b Buttons) {
	e.eraseRequest(ctx, b)
	e.display.SetNumber(0)
	e.bar.SetPosition(0)
	e.idle(ctx, tick, b)
}

func (e *Engine) showHighScore(ctx context.Context, tick uint32, b Buttons) {
	e.eraseRequest(ctx, b)
	e.display.SetNumber(e.high.Get())
	if b.Has(PlayButton) {
		e.start(ctx, tick)
	}
}

func (e *Engine) showScore(ctx context.Context, tick uint32, b Buttons) {
	e.eraseRequest(ctx, b)
	e.bar.SetPosition(0)
	e.display.SetNumber(e.score)
	e.idle(ctx, tick, b)
}

// idle handles the buttons in the states waiting for a game.
func (e *Engine) idle(ctx context.Context, tick uint32, b Buttons) {
	switch {
	case b.Has(PlayButton):
		e.start(ctx, tick)
	case b.Has(ShowButton):
		e.setState(ctx, ShowHighScore)
	}
}

func (e *Engine) eraseRequest(ctx context.Context, b Buttons) {
	if !b.Has(EraseButton) {
		return
	}
	changed, err := e.high.Erase()
	if err != nil {
		e.log.LogAttrs(ctx, slog.LevelError, "erase high score", slog.Any("err", err))
	}
	if changed {
		e.log.LogAttrs(ctx, slog.LevelInfo-1, "erased high score")
	}
}

// start begins a session, seeding the jitter source from the tick count.
func (e *Engine) start(ctx context.Context, tick uint32) {
	e.src.Seed(uint64(tick), 0)
	e.score = 0
	e.sweep = 0
	e.dwell = 0
	e.speed = e.nextSpeed()
	e.cooldown = 0
	e.setState(ctx, Playing)
}

func (e *Engine) nextSpeed() int {
	return SpeedReciprocal(e.score, e.rnd.IntN(40))
}

func (e *Engine) playing(ctx context.Context, b Buttons) {
	e.display.SetNumber(e.score)
	e.bar.SetPosition(BarPosition(e.sweep))

	e.dwell++
	if e.dwell >= e.speed {
		e.dwell = 0
		e.sweep++
		if e.sweep >= sweepEnd {
			e.endRound(ctx)
			return
		}
	}

	pressed := b.Has(PlayButton)
	if e.sweep >= sweepWindow && e.cooldown == 0 && pressed {
		e.score = min(e.score+1, MaxScore)
		e.sweep = 0
		e.dwell = 0
		e.speed = e.nextSpeed()
		e.log.LogAttrs(ctx, slog.LevelInfo-1, "hit", slog.Int("score", e.score), slog.Int("speed", e.speed))
	}
	if pressed {
		e.cooldown = cooldownTicks
	} else if e.cooldown > 0 {
		e.cooldown--
	}
}

// endRound is called exactly once per session, so the high score write
// happens at most once per round. It runs on the tick goroutine, so it logs
// below LevelInfo to keep slow log writers out of the default tick path.
func (e *Engine) endRound(ctx context.Context) {
	prev := e.high.Get()
	if e.score > prev {
		e.updated = true
		_, err := e.high.Update(e.score)
		if err != nil {
			e.log.LogAttrs(ctx, slog.LevelError, "update high score", slog.Any("err", err))
		}
	} else {
		e.updated = e.score == MaxScore
	}
	e.log.LogAttrs(ctx, slog.LevelInfo-1, "round over",
		slog.Int("score", e.score),
		slog.Int("high", prev),
		slog.Bool("new_high", e.updated),
	)
	e.blink = 0
	e.setState(ctx, ShowScoreBlink)
}

func (e *Engine) showScoreBlink(ctx context.Context) {
	if e.blink%blinkPeriod < blinkPeriod/2 {
		e.display.SetNumber(e.score)
	} else {
		e.display.Erase()
	}
	if e.blink > wildAfter && e.updated {
		if e.blink%wildInterval == 0 {
			e.bar.SetPosition(e.rnd.IntN(bar.Len))
		}
	} else {
		e.bar.Erase()
	}
	e.blink++
	if e.blink >= blinkDuration {
		e.setState(ctx, ShowScore)
	}
}

func (e *Engine) setState(ctx context.Context, s State) {
	e.log.LogAttrs(ctx, slog.LevelInfo-1, "state", slog.Any("from", e.state), slog.Any("to", s))
	e.state = s
}

// State returns the current machine state.
func (e *Engine) State() State { return e.state }

// Score returns the score of the current or last session.
func (e *Engine) Score() int { return e.score }

// Sweep returns the sweep position, in [0, 19).
func (e *Engine) Sweep() int { return e.sweep }

// Speed returns the number of ticks spent at each sweep position.
func (e *Engine) Speed() int { return e.speed }

// Cooldown returns the number of ticks before a press can score again.
func (e *Engine) Cooldown() int { return e.cooldown }

// Blink returns the number of ticks spent in the ShowScoreBlink state.
func (e *Engine) Blink() int { return e.blink }

// UpdatedHighScore returns whether the last round earned the celebration.
func (e *Engine) UpdatedHighScore() bool { return e.updated }
