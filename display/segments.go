// Copyright ©2025 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

// Segment bits in the order of the segment lines passed to New.
const (
	SegA = 1 << iota
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

// glyphs is the mapping from decimal digits to segment bits.
//
// 7-segment display
//
//	  -A-
//	|     |
//	F     B
//	|     |
//	  -G-
//	|     |
//	E     C
//	|     |
//	  -D-
var glyphs = [10]byte{
	SegA | SegB | SegC | SegD | SegE | SegF,        // 0x3f
	SegB | SegC,                                    // 0x06
	SegA | SegB | SegD | SegE | SegG,               // 0x5b
	SegA | SegB | SegC | SegD | SegG,               // 0x4f
	SegB | SegC | SegF | SegG,                      // 0x66
	SegA | SegC | SegD | SegF | SegG,               // 0x6d
	SegA | SegC | SegD | SegE | SegF | SegG,        // 0x7d
	SegA | SegB | SegC | SegF,                      // 0x27
	SegA | SegB | SegC | SegD | SegE | SegF | SegG, // 0x7f
	SegA | SegB | SegC | SegD | SegF | SegG,        // 0x6f
}

// Glyph returns the segment bits for the decimal digit d. Values outside
// [0, 9] have no lit segments.
func Glyph(d int) byte {
	if d < 0 || len(glyphs) <= d {
		return 0
	}
	return glyphs[d]
}

// Decode returns the decimal digit drawn by the segment bits b, and whether
// b is a digit glyph.
func Decode(b byte) (digit int, ok bool) {
	for d, g := range glyphs {
		if g == b {
			return d, true
		}
	}
	return -1, false
}
