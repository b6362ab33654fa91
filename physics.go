package crt2png

import "github.com/wbrown/crt2png/dsp"

// TracePoint is one filtered beam instant. X and Y are in scaled
// display units (ROM units times CharScale); Z is the filtered beam
// intensity, normally in [0, 1] but allowed to overshoot slightly,
// which models analog ringing.
type TracePoint struct {
	X, Y, Z float64
}

// Simulate runs raw decoded samples through the analog signal path
// model and returns the dense filtered trace. Per character:
//
//  1. Raw coordinates are scaled by CharScale before any filtering.
//  2. Filter state is primed from the first scaled sample, so each
//     character starts settled with no leakage from the previous one.
//  3. Every sample is replicated Subsample times, verbatim, through
//     the per-axis deflection biquads and the blanking one-pole; no
//     interpolation, matching the discrete-step hardware input.
//
// The output always holds exactly len(samples)*Subsample points.
func Simulate(samples []VectorSample, cfg RenderConfig) []TracePoint {
	cfg = cfg.Clamp()

	out := make([]TracePoint, 0, len(samples)*cfg.Subsample)
	if len(samples) == 0 {
		return out
	}

	xc := dsp.LowPass(cfg.XCutoff, cfg.XQ)
	yc := dsp.LowPass(cfg.YCutoff, cfg.YQ)

	scale := float64(cfg.CharScale)
	xs := dsp.NewBiquadState(float64(samples[0].X) * scale)
	ys := dsp.NewBiquadState(float64(samples[0].Y) * scale)
	z := beamValue(samples[0].On)

	for _, s := range samples {
		sx := float64(s.X) * scale
		sy := float64(s.Y) * scale
		sz := beamValue(s.On)

		for i := 0; i < cfg.Subsample; i++ {
			var fx, fy float64
			fx, xs = xc.Apply(sx, xs)
			fy, ys = yc.Apply(sy, ys)
			z = dsp.OnePole(sz, z, cfg.Retention)
			out = append(out, TracePoint{
				X: fx * cfg.XGain,
				Y: fy * cfg.YGain,
				Z: z,
			})
		}
	}
	return out
}

func beamValue(on bool) float64 {
	if on {
		return 1
	}
	return 0
}
