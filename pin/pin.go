// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pin defines the digital line capabilities the game needs from a
// board. A TinyGo machine.Pin satisfies both interfaces.
package pin

// Output is a digital output line.
type Output interface {
	High()
	Low()
}

// Input is a digital input line. Get reports whether the line is high.
type Input interface {
	Get() bool
}
