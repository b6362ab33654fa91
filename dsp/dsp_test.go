package dsp

import (
	"math"
	"testing"
)

// TestLowPassDCConvergence drives a step input through the filter and
// checks that the output settles at the input level. A unity DC gain
// is what makes the deflection model hit its commanded endpoints.
func TestLowPassDCConvergence(t *testing.T) {
	cases := []struct {
		cutoff, q float64
	}{
		{0.01, 0.5},
		{0.04, 0.75},
		{0.1, 0.707},
		{0.25, 2.0},
		{0.04, 5.0},
	}
	for _, tc := range cases {
		c := LowPass(tc.cutoff, tc.q)
		s := NewBiquadState(0)

		const target = 3.0
		var out float64
		for i := 0; i < 20000; i++ {
			out, s = c.Apply(target, s)
		}
		if math.Abs(out-target) > 1e-6 {
			t.Errorf("cutoff=%.3f q=%.3f: settled at %f, want %f",
				tc.cutoff, tc.q, out, target)
		}
	}
}

// TestLowPassPrimedStateIsSteady checks that a state primed at a value
// stays exactly there while the input holds that value. This is what
// keeps character starts free of a transient from the origin.
func TestLowPassPrimedStateIsSteady(t *testing.T) {
	c := LowPass(0.04, 0.75)

	const v = 5.5
	s := NewBiquadState(v)
	for i := 0; i < 100; i++ {
		var out float64
		out, s = c.Apply(v, s)
		if math.Abs(out-v) > 1e-9 {
			t.Fatalf("sample %d: primed filter drifted to %f, want %f", i, out, v)
		}
	}
}

// TestLowPassOvershoot verifies that a high-Q filter rings past the
// step target and a low-Q one does not. The visible corner hooks of
// the deflection model come from exactly this overshoot.
func TestLowPassOvershoot(t *testing.T) {
	step := func(q float64) float64 {
		c := LowPass(0.04, q)
		s := NewBiquadState(0)
		peak := 0.0
		for i := 0; i < 2000; i++ {
			var out float64
			out, s = c.Apply(1, s)
			if out > peak {
				peak = out
			}
		}
		return peak
	}

	if peak := step(2.0); peak <= 1.001 {
		t.Errorf("q=2.0: expected overshoot, peak was %f", peak)
	}
	if peak := step(0.5); peak > 1.0001 {
		t.Errorf("q=0.5: expected no overshoot, peak was %f", peak)
	}
}

// TestLowPassBounded feeds an alternating worst-case input and checks
// the output stays finite, over the full supported parameter range.
func TestLowPassBounded(t *testing.T) {
	for _, cutoff := range []float64{0.001, 0.04, 0.25, 0.49} {
		for _, q := range []float64{0.1, 0.707, 5, 20} {
			c := LowPass(cutoff, q)
			s := NewBiquadState(0)
			in := 1.0
			for i := 0; i < 5000; i++ {
				var out float64
				out, s = c.Apply(in, s)
				in = -in
				if math.IsNaN(out) || math.Abs(out) > 1e6 {
					t.Fatalf("cutoff=%.3f q=%.2f: unstable at sample %d: %f",
						cutoff, q, i, out)
				}
			}
		}
	}
}

func TestOnePole(t *testing.T) {
	t.Run("zero retention passes input through", func(t *testing.T) {
		if got := OnePole(0.7, 0.2, 0); got != 0.7 {
			t.Errorf("got %f, want 0.7", got)
		}
	})

	t.Run("converges to held input", func(t *testing.T) {
		v := 0.0
		for i := 0; i < 200; i++ {
			v = OnePole(1, v, 0.82)
		}
		if math.Abs(v-1) > 1e-6 {
			t.Errorf("settled at %f, want 1", v)
		}
	})

	t.Run("output stays between prev and input", func(t *testing.T) {
		for _, r := range []float64{0, 0.3, 0.82, 0.99} {
			got := OnePole(1, 0, r)
			if got < 0 || got > 1 {
				t.Errorf("retention %.2f: %f outside [0,1]", r, got)
			}
			want := 1 - r
			if math.Abs(got-want) > 1e-12 {
				t.Errorf("retention %.2f: got %f, want %f", r, got, want)
			}
		}
	})
}
