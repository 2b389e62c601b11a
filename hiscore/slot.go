// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hiscore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// BlockDevice is an erasable block storage device such as the TinyGo
// machine.Flash device.
type BlockDevice interface {
	io.ReaderAt
	io.WriterAt
	EraseBlocks(start, len int64) error
}

// BlockSlot is a Slot held in the first byte of a block device. Erased
// flash reads as 0xff, which New treats as no high score.
type BlockSlot struct {
	Device BlockDevice
}

// Load returns the stored byte.
func (s BlockSlot) Load() (byte, error) {
	var b [1]byte
	_, err := s.Device.ReadAt(b[:], 0)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Store erases the first block and writes v. The device is responsible for
// padding the write to its write block size.
func (s BlockSlot) Store(v byte) error {
	err := s.Device.EraseBlocks(0, 1)
	if err != nil {
		return fmt.Errorf("erase block: %w", err)
	}
	b := [1]byte{v}
	_, err = s.Device.WriteAt(b[:], 0)
	return err
}

// FileSlot is a Slot held in a one byte file. A missing or empty file
// reads as zero.
type FileSlot struct {
	Path string
}

// Load returns the stored byte.
func (s FileSlot) Load() (byte, error) {
	b, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(b) == 0 {
		return 0, nil
	}
	return b[0], nil
}

// Store replaces the file with one holding v. The new file is synced and
// renamed over the old one, and the directory is synced after the rename,
// so a power loss leaves either value intact.
func (s FileSlot) Store(v byte) error {
	dir := filepath.Dir(s.Path)
	f, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	_, err = f.Write([]byte{v})
	if err != nil {
		f.Close()
		return err
	}
	err = f.Sync()
	if err != nil {
		f.Close()
		return err
	}
	err = f.Close()
	if err != nil {
		return err
	}
	err = os.Rename(f.Name(), s.Path)
	if err != nil {
		return err
	}
	return syncDir(dir)
}

// syncDir flushes the directory entry for a renamed file.
func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	err = d.Sync()
	if err != nil {
		d.Close()
		return fmt.Errorf("sync %s: %w", dir, err)
	}
	return d.Close()
}
