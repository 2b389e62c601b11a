// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hiscore

import (
	"context"
	"errors"
	"testing"
)

// memSlot is an in-memory Slot that counts writes.
type memSlot struct {
	v        byte
	loadErr  error
	storeErr error
	stores   int
}

func (s *memSlot) Load() (byte, error) { return s.v, s.loadErr }

func (s *memSlot) Store(v byte) error {
	s.stores++
	if s.storeErr != nil {
		return s.storeErr
	}
	s.v = v
	return nil
}

// busyMemSlot reports busy for a number of polls before each access.
type busyMemSlot struct {
	memSlot
	busyFor int
	polls   int
}

func (s *busyMemSlot) Busy() bool {
	s.polls++
	return s.polls <= s.busyFor
}

func TestNew(t *testing.T) {
	errRead := errors.New("read failed")
	for _, test := range []struct {
		name string
		slot *memSlot
		want int
	}{
		{name: "zero", slot: &memSlot{}, want: 0},
		{name: "stored", slot: &memSlot{v: 37}, want: 37},
		{name: "max", slot: &memSlot{v: Max}, want: Max},
		{name: "erased", slot: &memSlot{v: 0xff}, want: 0},
		{name: "invalid", slot: &memSlot{v: Max + 1}, want: 0},
		{name: "error", slot: &memSlot{v: 12, loadErr: errRead}, want: 0},
	} {
		t.Run(test.name, func(t *testing.T) {
			s := New(context.Background(), test.slot, nil)
			if got := s.Get(); got != test.want {
				t.Errorf("Get() = %d, want %d", got, test.want)
			}
			if test.slot.stores != 0 {
				t.Errorf("loading wrote %d times", test.slot.stores)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	slot := &memSlot{v: 10}
	s := New(context.Background(), slot, nil)

	for _, score := range []int{0, 5, 10} {
		ok, err := s.Update(score)
		if ok || err != nil {
			t.Fatalf("Update(%d) = %t %v, want false nil", score, ok, err)
		}
	}
	if slot.stores != 0 {
		t.Fatalf("writes for non-improving scores = %d, want 0", slot.stores)
	}

	ok, err := s.Update(42)
	if !ok || err != nil {
		t.Fatalf("Update(42) = %t %v, want true nil", ok, err)
	}
	if s.Get() != 42 || slot.v != 42 || slot.stores != 1 {
		t.Fatalf("after Update(42): get=%d stored=%d writes=%d, want 42 42 1", s.Get(), slot.v, slot.stores)
	}

	ok, _ = s.Update(150)
	if !ok || s.Get() != Max || slot.v != Max {
		t.Fatalf("Update(150): ok=%t get=%d stored=%d, want clamped to %d", ok, s.Get(), slot.v, Max)
	}
}

func TestErase(t *testing.T) {
	slot := &memSlot{v: 10}
	s := New(context.Background(), slot, nil)

	ok, err := s.Erase()
	if !ok || err != nil {
		t.Fatalf("Erase() = %t %v, want true nil", ok, err)
	}
	if s.Get() != 0 || slot.v != 0 || slot.stores != 1 {
		t.Fatalf("after erase: get=%d stored=%d writes=%d, want 0 0 1", s.Get(), slot.v, slot.stores)
	}
	for range 3 {
		ok, err = s.Erase()
		if ok || err != nil {
			t.Fatalf("repeated Erase() = %t %v, want false nil", ok, err)
		}
	}
	if slot.stores != 1 {
		t.Fatalf("writes after repeated erase = %d, want 1", slot.stores)
	}
}

func TestWriteError(t *testing.T) {
	errWrite := errors.New("write failed")
	slot := &memSlot{storeErr: errWrite}
	s := New(context.Background(), slot, nil)

	ok, err := s.Update(3)
	if !ok {
		t.Fatal("Update(3) did not report an improvement")
	}
	if !errors.Is(err, errWrite) {
		t.Fatalf("Update(3) error = %v, want %v", err, errWrite)
	}
	if s.Get() != 3 {
		t.Fatalf("Get() after failed write = %d, want 3", s.Get())
	}
}

func TestBusyGate(t *testing.T) {
	slot := &busyMemSlot{memSlot: memSlot{v: 1}, busyFor: 5}
	s := New(context.Background(), slot, nil)
	if s.Get() != 1 {
		t.Fatalf("Get() = %d, want 1", s.Get())
	}

	slot.polls = 0
	ok, err := s.Update(2)
	if !ok || err != nil {
		t.Fatalf("Update(2) = %t %v, want true nil", ok, err)
	}
	if slot.polls != 6 {
		t.Errorf("polls before write = %d, want 6", slot.polls)
	}

	slot.polls = 0
	slot.busyFor = maxReadyPolls + 1
	ok, err = s.Update(3)
	if !ok || !errors.Is(err, ErrNotReady) {
		t.Fatalf("Update(3) on stuck slot = %t %v, want true %v", ok, err, ErrNotReady)
	}
	if slot.polls != maxReadyPolls {
		t.Errorf("polls on stuck slot = %d, want %d", slot.polls, maxReadyPolls)
	}
	if slot.stores != 1 {
		t.Errorf("writes = %d, want 1", slot.stores)
	}
}
