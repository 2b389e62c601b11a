// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The hokey-pi command runs the bar sweep game on a Raspberry Pi using the
// board's GPIO header.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"periph.io/x/host/v3"

	"github.com/kortschak/hokey/bar"
	"github.com/kortschak/hokey/display"
	"github.com/kortschak/hokey/game"
	"github.com/kortschak/hokey/hiscore"
	"github.com/kortschak/hokey/pin"
	"github.com/kortschak/hokey/pinio"
)

// Pin assignment by BCM name.
var (
	segmentPins = [7]string{"GPIO4", "GPIO17", "GPIO27", "GPIO22", "GPIO5", "GPIO6", "GPIO13"} // A-G
	digitPins   = [2]string{"GPIO19", "GPIO26"}                                               // ones, tens
	barPins     = [bar.Len]string{"GPIO12", "GPIO16", "GPIO20", "GPIO21", "GPIO23", "GPIO24", "GPIO25", "GPIO18", "GPIO15", "GPIO14"}
)

const (
	playPin  = "GPIO9"
	erasePin = "GPIO10"
	showPin  = "GPIO11"

	highScorePath = "/var/lib/hokey/highscore"
)

func main() {
	var level slog.LevelVar
	level.Set(slog.LevelInfo)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: &level,
	}))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := run(ctx, log)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.LogAttrs(ctx, slog.LevelError, "exit", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	log.LogAttrs(ctx, slog.LevelInfo, "initialise host drivers")
	_, err := host.Init()
	if err != nil {
		return fmt.Errorf("failed to initialise host: %w", err)
	}

	log.LogAttrs(ctx, slog.LevelInfo, "configure pins")
	var segs [7]pin.Output
	outs, err := pinio.Outputs(log, segmentPins[:]...)
	if err != nil {
		return err
	}
	for i, p := range outs {
		segs[i] = p
	}
	outs, err = pinio.Outputs(log, digitPins[:]...)
	if err != nil {
		return err
	}
	enables := make([]pin.Output, len(outs))
	for i, p := range outs {
		enables[i] = p
	}
	var leds [bar.Len]pin.Output
	outs, err = pinio.Outputs(log, barPins[:]...)
	if err != nil {
		return err
	}
	for i, p := range outs {
		leds[i] = p
	}
	var buttons game.Sampler
	for _, b := range []struct {
		name string
		dst  *pin.Input
	}{
		{name: playPin, dst: &buttons.Play},
		{name: erasePin, dst: &buttons.Erase},
		{name: showPin, dst: &buttons.Show},
	} {
		in, err := pinio.PullUpInput(b.name)
		if err != nil {
			return err
		}
		*b.dst = in
	}

	scores := display.New(segs, enables...)
	scores.Init()
	defer scores.Init()
	sweep := bar.New(leds)
	sweep.Init()
	defer sweep.Init()

	err = os.MkdirAll(filepath.Dir(highScorePath), 0o755)
	if err != nil {
		return fmt.Errorf("failed to create high score directory: %w", err)
	}
	high := hiscore.New(ctx, hiscore.FileSlot{Path: highScorePath}, log)

	log.LogAttrs(ctx, slog.LevelInfo, "start game", slog.Int("fps", game.FramesPerSecond))
	engine := game.NewEngine(scores, sweep, high, log)
	return game.NewScheduler(scores, buttons, engine).Run(ctx)
}
