// Package dsp provides the discrete-time filters used to model the
// analog signal path of a vector CRT display: a two-pole low-pass for
// the deflection amplifiers and a one-pole low-pass for the beam
// blanking amplifier.
package dsp

import "math"

// BiquadCoeffs holds the five coefficients of a second-order IIR
// filter section, normalized so the leading denominator coefficient
// is 1.
type BiquadCoeffs struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// LowPass computes low-pass biquad coefficients using the standard
// RBJ cookbook design. cutoff is the corner frequency as a fraction
// of the sample rate and must lie in the open interval (0, 0.5);
// q controls damping and must be positive. Out-of-range values are
// the caller's contract violation: the math still runs but the
// resulting filter may be unstable.
func LowPass(cutoff, q float64) BiquadCoeffs {
	w := 2 * math.Pi * cutoff
	cosw := math.Cos(w)
	alpha := math.Sin(w) / (2 * q)

	a0 := 1 + alpha
	return BiquadCoeffs{
		B0: (1 - cosw) / 2 / a0,
		B1: (1 - cosw) / a0,
		B2: (1 - cosw) / 2 / a0,
		A1: -2 * cosw / a0,
		A2: (1 - alpha) / a0,
	}
}

// BiquadState carries the two input and two output history samples of
// a biquad section. State is a value: Apply returns the advanced
// state rather than mutating in place, which keeps state transitions
// explicit and makes resets trivial.
type BiquadState struct {
	X1, X2 float64
	Y1, Y2 float64
}

// NewBiquadState returns filter state primed to steady state at v, as
// if the input had been held at v forever. Priming avoids a settling
// transient at the start of every character trace.
func NewBiquadState(v float64) BiquadState {
	return BiquadState{X1: v, X2: v, Y1: v, Y2: v}
}

// Apply runs one step of the second-order difference equation:
//
//	y = b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
//
// and returns the output together with the shifted state.
func (c BiquadCoeffs) Apply(x float64, s BiquadState) (float64, BiquadState) {
	y := c.B0*x + c.B1*s.X1 + c.B2*s.X2 - c.A1*s.Y1 - c.A2*s.Y2
	return y, BiquadState{X1: x, X2: s.X1, Y1: y, Y2: s.Y1}
}
