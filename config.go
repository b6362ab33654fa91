package crt2png

// RenderConfig is the flat set of parameters for one render pass.
// A config is passed by value and treated as frozen for the duration
// of a render call: nothing in the pipeline reads live settings
// mid-character, so two renders with equal configs are bit-identical.
type RenderConfig struct {
	// CharScale enlarges the base character grid (1, 2 or 4). It is
	// applied to the raw coordinates before filtering, modeling the
	// hardware bit-shift ahead of the analog stage: bigger characters
	// show proportionally bigger filter artifacts.
	CharScale int

	// PixelScale is the output-resolution multiplier, independent of
	// CharScale. One cell is BaseCellUnits*CharScale*PixelScale
	// pixels square.
	PixelScale int

	// Subsample is the number of times each ROM timing row is
	// replicated before filtering. High ratios relative to the filter
	// settling time turn the stepped input into smooth traces; low
	// ratios leave visible stair-stepping.
	Subsample int

	// Deflection filter parameters, per axis. Cutoff is a fraction of
	// the sample rate in (0, 0.5); Q controls overshoot.
	XCutoff, XQ, XGain float64
	YCutoff, YQ, YGain float64

	// Retention is the beam blanking one-pole coefficient in
	// [0, 0.99].
	Retention float64

	// BeamSigma is the Gaussian spot width in output pixels.
	BeamSigma float64

	// Brightness scales accumulated energy before the clamp to [0,1].
	Brightness float64

	// PointBrightness is the per-sample intensity scale of the
	// non-Gaussian physics renderer. It is an empirical calibration
	// against the Gaussian renderer's apparent brightness, not a
	// physically derived constant.
	PointBrightness float64

	// OriginX, OriginY offset the character inside its cell, in ROM
	// grid units.
	OriginX, OriginY float64
}

// BaseCellUnits is the cell size in ROM grid units at CharScale 1:
// seven addressable positions plus margin for spot bloom.
const BaseCellUnits = 10

// DefaultConfig returns the tuning that best matches photographs of
// the original console: gentle deflection roll-off with mild
// overshoot, heavy blanking smoothing, and a spot a little wider than
// one grid unit.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		CharScale:       2,
		PixelScale:      4,
		Subsample:       16,
		XCutoff:         0.04,
		XQ:              0.75,
		XGain:           1.0,
		YCutoff:         0.04,
		YQ:              0.75,
		YGain:           1.0,
		Retention:       0.82,
		BeamSigma:       1.6,
		Brightness:      1.0,
		PointBrightness: 0.85,
		OriginX:         1.5,
		OriginY:         1.5,
	}
}

// CellPixels returns the square cell edge in output pixels.
func (c RenderConfig) CellPixels() int {
	return BaseCellUnits * c.CharScale * c.PixelScale
}

// Clamp returns a copy of the config with every parameter forced
// into its supported range. Renderers call it on entry so that a
// hand-built config cannot drive the filters unstable.
func (c RenderConfig) Clamp() RenderConfig {
	if c.CharScale < 1 {
		c.CharScale = 1
	}
	if c.PixelScale < 1 {
		c.PixelScale = 1
	}
	if c.Subsample < 1 {
		c.Subsample = 1
	}
	c.XCutoff = clampF(c.XCutoff, 0.001, 0.49)
	c.YCutoff = clampF(c.YCutoff, 0.001, 0.49)
	c.XQ = clampF(c.XQ, 0.1, 20)
	c.YQ = clampF(c.YQ, 0.1, 20)
	c.Retention = clampF(c.Retention, 0, 0.99)
	if c.BeamSigma <= 0 {
		c.BeamSigma = 0.5
	}
	if c.Brightness < 0 {
		c.Brightness = 0
	}
	if c.PointBrightness < 0 {
		c.PointBrightness = 0
	}
	return c
}

func clampF(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
