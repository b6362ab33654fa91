package crt2png

import (
	"image"
	"image/color"
	"math"
)

// SplatThreshold is the beam intensity below which a filtered sample
// contributes no spot. It only skips numerically negligible work; at
// 0.01 the cut is invisible in 8-bit output.
const SplatThreshold = 0.01

// ReferenceSigma is the spot width at which the energy normalization
// is unity. Spots wider or narrower than the reference keep the same
// total energy, only spread differently.
const ReferenceSigma = 1.0

// CellMapper converts simulation-space coordinates (ROM units times
// CharScale) into raster coordinates for one character cell. The
// simulation has Y increasing upward; the raster has Y increasing
// downward, so the mapper inverts the Y axis. Pure value, no state.
type CellMapper struct {
	cell int
	ppu  float64
	ox   float64
	oy   float64
}

// NewCellMapper builds a mapper for a cell of cellPx square pixels at
// the given character scale. originX and originY offset the glyph
// inside the cell, in ROM grid units.
func NewCellMapper(cellPx, charScale int, originX, originY float64) CellMapper {
	ppu := float64(cellPx) / float64(BaseCellUnits*charScale)
	return CellMapper{
		cell: cellPx,
		ppu:  ppu,
		ox:   originX * float64(charScale) * ppu,
		oy:   originY * float64(charScale) * ppu,
	}
}

// ToRaster maps a simulation-space point to pixel coordinates.
func (m CellMapper) ToRaster(x, y float64) (px, py float64) {
	px = m.ox + x*m.ppu
	py = float64(m.cell) - m.oy - y*m.ppu
	return px, py
}

// FloatBuffer is a dense per-cell energy accumulator. Values are
// non-negative and unbounded during accumulation; saturation happens
// only at conversion to 8-bit output.
type FloatBuffer struct {
	W, H int
	Pix  []float64
}

// NewFloatBuffer returns a zeroed w by h buffer.
func NewFloatBuffer(w, h int) *FloatBuffer {
	return &FloatBuffer{W: w, H: h, Pix: make([]float64, w*h)}
}

// At returns the energy at (x, y); out-of-range reads return 0.
func (b *FloatBuffer) At(x, y int) float64 {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		return 0
	}
	return b.Pix[y*b.W+x]
}

// Sum returns the total accumulated energy.
func (b *FloatBuffer) Sum() float64 {
	var t float64
	for _, v := range b.Pix {
		t += v
	}
	return t
}

// SpotKernel is a precomputed Gaussian weight grid for one spot
// width. The radius is 3 sigma, covering at least 99.7% of the
// Gaussian's mass. Kernels are immutable once built and safe to share
// across characters.
type SpotKernel struct {
	Sigma   float64
	Radius  int
	Side    int
	Weights []float64
	gain    float64
}

// NewSpotKernel precomputes the weight grid for the given sigma. The
// energy gain is ReferenceSigma²/sigma²: widening the spot lowers its
// peak density in proportion, so total energy per splat stays
// approximately constant as focus changes.
func NewSpotKernel(sigma float64) *SpotKernel {
	r := int(math.Ceil(3 * sigma))
	if r < 1 {
		r = 1
	}
	side := 2*r + 1
	k := &SpotKernel{
		Sigma:   sigma,
		Radius:  r,
		Side:    side,
		Weights: make([]float64, side*side),
		gain:    ReferenceSigma * ReferenceSigma / (sigma * sigma),
	}
	inv := 1 / (2 * sigma * sigma)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d2 := float64(dx*dx + dy*dy)
			k.Weights[(dy+r)*side+(dx+r)] = math.Exp(-d2 * inv)
		}
	}
	return k
}

// KernelCache memoizes spot kernels by sigma. Kernel generation is
// the most expensive per-character step when repeated, so renderers
// hold one cache for the lifetime of a pass. The cache is plain data
// owned by its creator; there is no package-level kernel state.
type KernelCache map[float64]*SpotKernel

// Get returns the cached kernel for sigma, building it on first use.
func (kc KernelCache) Get(sigma float64) *SpotKernel {
	if k, ok := kc[sigma]; ok {
		return k
	}
	k := NewSpotKernel(sigma)
	kc[sigma] = k
	return k
}

// Splat adds one Gaussian spot of the given intensity centered at
// (cx, cy) in pixel coordinates. Kernel cells falling outside the
// buffer are skipped; there is no wraparound or edge clamping.
func (b *FloatBuffer) Splat(k *SpotKernel, cx, cy, intensity float64) {
	e := intensity * k.gain
	icx := int(math.Round(cx))
	icy := int(math.Round(cy))
	for dy := -k.Radius; dy <= k.Radius; dy++ {
		y := icy + dy
		if y < 0 || y >= b.H {
			continue
		}
		row := (dy + k.Radius) * k.Side
		for dx := -k.Radius; dx <= k.Radius; dx++ {
			x := icx + dx
			if x < 0 || x >= b.W {
				continue
			}
			b.Pix[y*b.W+x] += e * k.Weights[row+dx+k.Radius]
		}
	}
}

// ToGray converts the buffer to an 8-bit grayscale image. Values are
// clamped to [0, 1] first: the clamp models phosphor saturation and
// is deliberate, not a precision loss.
func (b *FloatBuffer) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.W, b.H))
	for i, v := range b.Pix {
		img.Pix[i] = clampUnit(v)
	}
	return img
}

// ToAlpha converts the buffer to an 8-bit alpha mask, clamping the
// same way as ToGray. The caller composites it over a background.
func (b *FloatBuffer) ToAlpha() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, b.W, b.H))
	for i, v := range b.Pix {
		img.Pix[i] = clampUnit(v)
	}
	return img
}

// Tint colorizes a grayscale cell with a phosphor color, scaling each
// channel by the pixel's intensity. Compositing and blend-mode
// selection stay with the caller.
func Tint(src *image.Gray, phosphor color.RGBA) *image.RGBA {
	bounds := src.Bounds()
	dst := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := uint32(src.GrayAt(x, y).Y)
			dst.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(phosphor.R) * v / 255),
				G: uint8(uint32(phosphor.G) * v / 255),
				B: uint8(uint32(phosphor.B) * v / 255),
				A: 255,
			})
		}
	}
	return dst
}

// clampUnit clamps a float64 to [0, 1] and converts to 8 bits.
func clampUnit(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}
