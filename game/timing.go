// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package game

import "github.com/kortschak/hokey/hiscore"

// All durations are counted in ticks of the scheduler.
const (
	// FramesPerSecond is the tick rate.
	FramesPerSecond = 500

	// ScanDivisor is the number of ticks between display digit advances.
	ScanDivisor = 4

	// cooldownTicks is how long the play button must be released
	// before another press can score.
	cooldownTicks = FramesPerSecond / 10

	blinkPeriod   = FramesPerSecond
	blinkDuration = 3 * FramesPerSecond
	wildAfter     = FramesPerSecond
	wildInterval  = FramesPerSecond / 20
)

// MaxScore is the largest score a round can reach.
const MaxScore = hiscore.Max

// Sweep geometry. The bar runs out over positions 0-9 and back over 10-18,
// which show 8 down to 0. Reaching sweepEnd ends the round.
const (
	sweepOut    = 10
	sweepWindow = 16
	sweepEnd    = 19
)

// BarPosition returns the bar position lit for the sweep position pos.
func BarPosition(pos int) int {
	switch {
	case pos < 0:
		return 0
	case pos < sweepOut:
		return pos
	case pos < sweepEnd:
		return sweepEnd - 1 - pos
	default:
		return 0
	}
}

// SpeedReciprocal returns the number of ticks the bar dwells at each
// position for the given score. jitter is expected to be in [0, 40) and
// spreads the dwell by up to half its base value. The result is never less
// than one.
func SpeedReciprocal(score, jitter int) int {
	v := ((30-score/5)*(80+jitter) + 50) / 100
	if v <= 0 {
		return 1
	}
	return v
}
