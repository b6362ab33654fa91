// Package crt2png generates bitmap font atlases that emulate the
// vector CRT character generator of a CDC 6612-style display console.
// A hardware character ROM is decoded into beam stroke data, which is
// optionally run through a simulated analog signal path (deflection
// filtering, blanking filtering, Gaussian spot accumulation) to
// reproduce CRT artifacts: corner rounding, brightness variation and
// phosphor bloom.
package crt2png

import "fmt"

// RomWord is one five-bit control word of the character ROM, one per
// hardware timing row.
type RomWord uint8

// Flag bits of a RomWord. A set magnitude bit moves the beam 1 or 2
// grid units along the current direction for that axis; both bits of
// an axis set together flip that axis's direction sign instead of
// moving. The beam bit toggles the beam on or off.
const (
	WordVert1  RomWord = 0x01 // move 1 unit vertically
	WordVert2  RomWord = 0x02 // move 2 units vertically
	WordHoriz1 RomWord = 0x04 // move 1 unit horizontally
	WordHoriz2 RomWord = 0x08 // move 2 units horizontally
	WordBeam   RomWord = 0x10 // toggle beam on/off

	wordVertFlip  = WordVert1 | WordVert2
	wordHorizFlip = WordHoriz1 | WordHoriz2
)

// GridMax is the highest addressable coordinate on either axis. The
// character generator addresses a 7x7 grid, positions 0 through 6,
// with the origin at the lower left and Y increasing upward.
const GridMax = 6

// VectorSample is one decoded beam position. On records whether the
// beam was lit while moving from the previous sample's position to
// this one; it describes the segment just traversed, not a state at a
// point. The implicit position before the first sample is (0,0) with
// the beam off.
type VectorSample struct {
	X, Y int
	On   bool
}

// Anomaly records a ROM row whose decoded position left the
// addressable grid. The offending sample is dropped and decoding
// continues; anomalies are diagnostics for the caller, not errors.
type Anomaly struct {
	Row  int
	Word RomWord
	X, Y int
}

func (a Anomaly) String() string {
	return fmt.Sprintf("rom row %d (word %#02x): position (%d,%d) outside grid",
		a.Row, uint8(a.Word), a.X, a.Y)
}

// Decode converts a sequence of ROM control words into absolute
// vector samples. The decoder keeps a running position starting at
// (0,0), a running beam state starting off, and independent direction
// signs per axis starting positive. Each word is processed in order:
// vertical flags first, then horizontal flags, then the beam toggle,
// and the resulting (x, y, beam) triple is emitted for the row.
//
// Decoding is pure: the same word sequence always yields the same
// sample sequence, and the input is never modified.
func Decode(words []RomWord) ([]VectorSample, []Anomaly) {
	samples := make([]VectorSample, 0, len(words))
	var anomalies []Anomaly

	x, y := 0, 0
	dirH, dirV := 1, 1
	on := false

	for row, w := range words {
		nx, ny := x, y

		switch w & wordVertFlip {
		case wordVertFlip:
			dirV = -dirV
		case WordVert1:
			ny += dirV
		case WordVert2:
			ny += 2 * dirV
		}

		switch w & wordHorizFlip {
		case wordHorizFlip:
			dirH = -dirH
		case WordHoriz1:
			nx += dirH
		case WordHoriz2:
			nx += 2 * dirH
		}

		if w&WordBeam != 0 {
			on = !on
		}

		if nx < 0 || nx > GridMax || ny < 0 || ny > GridMax {
			// Malformed ROM row: drop the sample, keep going. The
			// position is not advanced so a single bad row cannot
			// walk the rest of the character off the grid.
			anomalies = append(anomalies, Anomaly{Row: row, Word: w, X: nx, Y: ny})
			continue
		}

		x, y = nx, ny
		samples = append(samples, VectorSample{X: x, Y: y, On: on})
	}

	return samples, anomalies
}

// Simplify collapses runs of identical consecutive samples and trims
// any beam-off samples before the first lit sample and after the last
// lit sample. A character with no lit samples reduces to nil. The
// result preserves order and Simplify is idempotent.
//
// Simplify feeds the plain vector renderer; the physics pipeline
// consumes the raw decode because repeated samples represent real
// timing rows that the filters must see.
func Simplify(samples []VectorSample) []VectorSample {
	first, last := -1, -1
	for i, s := range samples {
		if s.On {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return nil
	}

	// Keep the sample immediately before the first lit one when it
	// exists: it is the start point of the first drawn segment.
	start := first
	if start > 0 {
		start = first - 1
	}

	out := make([]VectorSample, 0, last-start+1)
	for i := start; i <= last; i++ {
		s := samples[i]
		if len(out) > 0 && out[len(out)-1] == s {
			continue
		}
		out = append(out, s)
	}
	return out
}
