package crt2png

import (
	"image/color"
	"math"
	"testing"
)

func TestCellMapperInvertsY(t *testing.T) {
	m := NewCellMapper(80, 2, 0, 0)

	_, top := m.ToRaster(0, float64(GridMax*2))
	_, bottom := m.ToRaster(0, 0)
	if top >= bottom {
		t.Errorf("grid top maps to py=%f, bottom to py=%f; want top above bottom", top, bottom)
	}
	if bottom != 80 {
		t.Errorf("grid origin maps to py=%f, want 80", bottom)
	}
}

func TestCellMapperOrigin(t *testing.T) {
	// With a 1.5 unit margin on both axes, the glyph origin lands
	// inside the cell instead of on its edge.
	m := NewCellMapper(80, 2, 1.5, 1.5)
	px, py := m.ToRaster(0, 0)
	if px != 12 || py != 68 {
		t.Errorf("origin maps to (%f,%f), want (12,68)", px, py)
	}
}

func TestSpotKernelShape(t *testing.T) {
	k := NewSpotKernel(1.6)

	if k.Radius != 5 {
		t.Errorf("radius = %d, want ceil(3*1.6) = 5", k.Radius)
	}
	if k.Side != 11 {
		t.Errorf("side = %d, want 11", k.Side)
	}

	center := k.Weights[k.Radius*k.Side+k.Radius]
	if center != 1 {
		t.Errorf("center weight = %f, want 1", center)
	}
	for i, w := range k.Weights {
		if w < 0 || w > 1 {
			t.Fatalf("weight %d = %f outside [0,1]", i, w)
		}
	}

	// Symmetry about the center.
	n := len(k.Weights)
	for i := 0; i < n/2; i++ {
		if k.Weights[i] != k.Weights[n-1-i] {
			t.Fatalf("weights not symmetric at %d", i)
		}
	}
}

// TestSplatEnergyConservation checks the ReferenceSigma normalization:
// a wide defocused spot deposits roughly the same total energy as a
// narrow focused one.
func TestSplatEnergyConservation(t *testing.T) {
	narrow := NewFloatBuffer(64, 64)
	narrow.Splat(NewSpotKernel(1.0), 32, 32, 1)

	wide := NewFloatBuffer(64, 64)
	wide.Splat(NewSpotKernel(2.0), 32, 32, 1)

	ns, ws := narrow.Sum(), wide.Sum()
	t.Logf("energy sigma=1: %f, sigma=2: %f", ns, ws)
	if math.Abs(ns-ws)/ns > 0.02 {
		t.Errorf("energy not conserved across sigma: %f vs %f", ns, ws)
	}
}

func TestSplatAccumulates(t *testing.T) {
	buf := NewFloatBuffer(32, 32)
	k := NewSpotKernel(1.0)

	buf.Splat(k, 16, 16, 1)
	once := buf.At(16, 16)
	buf.Splat(k, 16, 16, 1)
	if got := buf.At(16, 16); math.Abs(got-2*once) > 1e-12 {
		t.Errorf("second splat: center = %f, want %f", got, 2*once)
	}
}

// TestSplatEdgeClipping splats at and beyond the buffer edge; cells
// outside are skipped, cells inside still accumulate.
func TestSplatEdgeClipping(t *testing.T) {
	buf := NewFloatBuffer(16, 16)
	k := NewSpotKernel(1.5)

	buf.Splat(k, 0, 0, 1)
	if buf.At(0, 0) == 0 {
		t.Error("corner splat deposited nothing inside the buffer")
	}

	far := NewFloatBuffer(16, 16)
	far.Splat(k, -100, -100, 1)
	if far.Sum() != 0 {
		t.Errorf("fully out-of-bounds splat deposited %f", far.Sum())
	}
}

func TestKernelCacheReuse(t *testing.T) {
	cache := make(KernelCache)
	a := cache.Get(1.6)
	b := cache.Get(1.6)
	if a != b {
		t.Error("same sigma returned different kernel instances")
	}
	if c := cache.Get(2.0); c == a {
		t.Error("different sigma returned the same kernel")
	}
}

func TestFloatBufferConversionClamps(t *testing.T) {
	buf := NewFloatBuffer(2, 1)
	buf.Pix[0] = 3.5
	buf.Pix[1] = -0.25

	gray := buf.ToGray()
	if gray.Pix[0] != 255 {
		t.Errorf("overdriven pixel = %d, want 255", gray.Pix[0])
	}
	if gray.Pix[1] != 0 {
		t.Errorf("negative pixel = %d, want 0", gray.Pix[1])
	}

	alpha := buf.ToAlpha()
	if alpha.Pix[0] != 255 || alpha.Pix[1] != 0 {
		t.Errorf("alpha conversion = %v, want [255 0]", alpha.Pix)
	}
}

func TestTint(t *testing.T) {
	buf := NewFloatBuffer(1, 1)
	buf.Pix[0] = 0.5
	gray := buf.ToGray()

	green := color.RGBA{R: 51, G: 255, B: 102, A: 255}
	tinted := Tint(gray, green)

	got := tinted.RGBAAt(0, 0)
	v := uint32(gray.Pix[0])
	want := color.RGBA{
		R: uint8(uint32(green.R) * v / 255),
		G: uint8(uint32(green.G) * v / 255),
		B: uint8(uint32(green.B) * v / 255),
		A: 255,
	}
	if got != want {
		t.Errorf("tinted pixel = %v, want %v", got, want)
	}
}
