// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hiscore holds the best score, backed by a single persistent byte.
package hiscore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Max is the largest storable score.
const Max = 99

// maxReadyPolls bounds the wait for a busy slot before a write.
const maxReadyPolls = 10000

// ErrNotReady is returned when a slot stays busy for longer than the
// write gate allows.
var ErrNotReady = errors.New("slot not ready")

// Slot is a single persistent byte.
//
// A Slot that also implements
//
//	Busy() bool
//
// is polled before each access until it reports that it is not busy.
type Slot interface {
	Load() (byte, error)
	Store(byte) error
}

type busySlot interface {
	Busy() bool
}

// Store is the high score. It reads its slot once on creation and writes
// through only when the value changes.
type Store struct {
	slot  Slot
	value int
}

var nolog = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
	Level: slog.Level(127),
}))

// New returns a Store loaded from slot. A slot that cannot be read, or that
// holds a value that is not a score, starts the store at zero.
func New(ctx context.Context, slot Slot, log *slog.Logger) *Store {
	if log == nil {
		log = nolog
	}
	s := &Store{slot: slot}
	err := s.wait()
	if err != nil {
		log.LogAttrs(ctx, slog.LevelError, "load high score", slog.Any("err", err))
		return s
	}
	b, err := slot.Load()
	if err != nil {
		log.LogAttrs(ctx, slog.LevelError, "load high score", slog.Any("err", err))
		return s
	}
	if b > Max {
		log.LogAttrs(ctx, slog.LevelInfo, "discard invalid high score", slog.Int("stored", int(b)))
		return s
	}
	s.value = int(b)
	log.LogAttrs(ctx, slog.LevelInfo, "loaded high score", slog.Int("score", s.value))
	return s
}

// Get returns the high score.
func (s *Store) Get() int { return s.value }

// Update records score if it beats the high score, reporting whether it
// did. Scores above Max are recorded as Max. The in-memory value is
// updated even when the write fails.
func (s *Store) Update(score int) (bool, error) {
	if score <= s.value {
		return false, nil
	}
	s.value = min(score, Max)
	return true, s.write(byte(s.value))
}

// Erase resets the high score to zero, reporting whether it changed.
func (s *Store) Erase() (bool, error) {
	if s.value == 0 {
		return false, nil
	}
	s.value = 0
	return true, s.write(0)
}

func (s *Store) write(v byte) error {
	err := s.wait()
	if err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	err = s.slot.Store(v)
	if err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	return nil
}

// wait spins until the slot is ready or the poll budget is spent.
func (s *Store) wait() error {
	b, ok := s.slot.(busySlot)
	if !ok {
		return nil
	}
	for range maxReadyPolls {
		if !b.Busy() {
			return nil
		}
	}
	return ErrNotReady
}
