package crt2png

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"runtime"
	"sync"
)

// AtlasCols and AtlasRows lay the 64 display codes out on a square
// grid, in display code order.
const (
	AtlasCols = 8
	AtlasRows = 8
)

// Renderer turns one display code into a grayscale cell image. The
// four variants share the interface but honor different subsets of
// the configuration, declared by Controls so a front end can expose
// only the parameters that matter for the active mode.
type Renderer interface {
	Name() string
	Controls() []string
	RenderCell(code int, cfg RenderConfig) (*image.Gray, error)
}

// VectorRenderer draws the simplified decoded strokes as one-pixel
// line segments, with no analog simulation. It is the quickest way to
// inspect the ROM contents.
type VectorRenderer struct{}

func (VectorRenderer) Name() string { return "vector" }

func (VectorRenderer) Controls() []string {
	return []string{"charscale", "pixelscale", "origin"}
}

func (VectorRenderer) RenderCell(code int, cfg RenderConfig) (*image.Gray, error) {
	cfg = cfg.Clamp()
	cell := cfg.CellPixels()
	img := image.NewGray(image.Rect(0, 0, cell, cell))

	samples, _ := Decode(RomAt(code))
	samples = Simplify(samples)
	if len(samples) == 0 {
		return img, nil
	}

	m := NewCellMapper(cell, cfg.CharScale, cfg.OriginX, cfg.OriginY)
	scale := float64(cfg.CharScale)

	px, py := m.ToRaster(float64(samples[0].X)*scale, float64(samples[0].Y)*scale)
	for _, s := range samples[1:] {
		nx, ny := m.ToRaster(float64(s.X)*scale, float64(s.Y)*scale)
		if s.On {
			drawSegment(img, px, py, nx, ny)
		}
		px, py = nx, ny
	}
	return img, nil
}

// drawSegment draws a full-intensity line using integer Bresenham.
func drawSegment(img *image.Gray, x0, y0, x1, y1 float64) {
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	err := dx + dy
	for {
		setGray(img, ix0, iy0, 255)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			ix0 += sx
		}
		if e2 <= dx {
			err += dx
			iy0 += sy
		}
	}
}

// PhysicsRenderer runs the full analog simulation but splats each
// filtered sample as a single pixel instead of a Gaussian spot. The
// PointBrightness calibration keeps its apparent brightness near the
// Gaussian renderer's.
type PhysicsRenderer struct{}

func (PhysicsRenderer) Name() string { return "physics" }

func (PhysicsRenderer) Controls() []string {
	return []string{
		"charscale", "pixelscale", "subsample", "cutoff", "q", "gain",
		"retention", "pointbrightness", "origin",
	}
}

func (PhysicsRenderer) RenderCell(code int, cfg RenderConfig) (*image.Gray, error) {
	cfg = cfg.Clamp()
	cell := cfg.CellPixels()
	buf := NewFloatBuffer(cell, cell)

	samples, _ := Decode(RomAt(code))
	trace := Simulate(samples, cfg)
	m := NewCellMapper(cell, cfg.CharScale, cfg.OriginX, cfg.OriginY)

	// Energy per splat is divided by the subsample factor so the
	// trace brightness is independent of the subsampling rate.
	gain := cfg.PointBrightness / float64(cfg.Subsample)
	for _, p := range trace {
		if p.Z <= SplatThreshold {
			continue
		}
		px, py := m.ToRaster(p.X, p.Y)
		x := int(math.Round(px))
		y := int(math.Round(py))
		if x < 0 || x >= buf.W || y < 0 || y >= buf.H {
			continue
		}
		buf.Pix[y*buf.W+x] += p.Z * gain * float64(cfg.PixelScale)
	}
	return buf.ToGray(), nil
}

// GaussianRenderer is the full pipeline: analog simulation plus
// Gaussian spot accumulation. It owns a kernel cache so that a whole
// atlas pass computes each spot width once.
type GaussianRenderer struct {
	mu    sync.Mutex
	cache KernelCache
}

// NewGaussianRenderer returns a renderer with an empty kernel cache.
func NewGaussianRenderer() *GaussianRenderer {
	return &GaussianRenderer{cache: make(KernelCache)}
}

func (*GaussianRenderer) Name() string { return "gaussian" }

func (*GaussianRenderer) Controls() []string {
	return []string{
		"charscale", "pixelscale", "subsample", "cutoff", "q", "gain",
		"retention", "beamsigma", "brightness", "origin",
	}
}

func (g *GaussianRenderer) RenderCell(code int, cfg RenderConfig) (*image.Gray, error) {
	buf, err := g.RenderBuffer(code, cfg)
	if err != nil {
		return nil, err
	}
	return buf.ToGray(), nil
}

// RenderBuffer exposes the raw accumulation buffer for callers that
// colorize or composite themselves.
func (g *GaussianRenderer) RenderBuffer(code int, cfg RenderConfig) (*FloatBuffer, error) {
	cfg = cfg.Clamp()
	cell := cfg.CellPixels()
	buf := NewFloatBuffer(cell, cell)

	samples, _ := Decode(RomAt(code))
	trace := Simulate(samples, cfg)
	m := NewCellMapper(cell, cfg.CharScale, cfg.OriginX, cfg.OriginY)
	k := g.kernel(cfg.BeamSigma)

	// A spot per subsample would scale brightness with the sampling
	// rate; normalize so total energy per timing row is constant.
	gain := cfg.Brightness / float64(cfg.Subsample) * float64(cfg.PixelScale)
	for _, p := range trace {
		if p.Z <= SplatThreshold {
			continue
		}
		px, py := m.ToRaster(p.X, p.Y)
		buf.Splat(k, px, py, p.Z*gain)
	}
	return buf, nil
}

func (g *GaussianRenderer) kernel(sigma float64) *SpotKernel {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cache.Get(sigma)
}

// RenderAtlas renders all 64 display codes into one grayscale sheet,
// eight cells by eight, in display code order.
func RenderAtlas(r Renderer, cfg RenderConfig) (*image.Gray, error) {
	cfg = cfg.Clamp()
	cell := cfg.CellPixels()
	atlas := image.NewGray(image.Rect(0, 0, AtlasCols*cell, AtlasRows*cell))

	for code := 0; code < AtlasCols*AtlasRows; code++ {
		img, err := r.RenderCell(code, cfg)
		if err != nil {
			return nil, fmt.Errorf("render code %d (%q): %w", code, DisplayRune(code), err)
		}
		blitCell(atlas, img, code, cell)
	}
	return atlas, nil
}

// RenderAtlasParallel is RenderAtlas with characters fanned out to a
// bounded worker pool. Each character render is independent: workers
// share only the immutable ROM table and the frozen config, so the
// output is identical to the serial render.
func RenderAtlasParallel(r Renderer, cfg RenderConfig, workers int) (*image.Gray, error) {
	cfg = cfg.Clamp()
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	cell := cfg.CellPixels()
	atlas := image.NewGray(image.Rect(0, 0, AtlasCols*cell, AtlasRows*cell))

	codes := make(chan int)
	errs := make([]error, AtlasCols*AtlasRows)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for code := range codes {
				img, err := r.RenderCell(code, cfg)
				if err != nil {
					errs[code] = err
					continue
				}
				// Cells never overlap, so writes to the shared
				// atlas need no lock.
				blitCell(atlas, img, code, cell)
			}
		}()
	}
	for code := 0; code < AtlasCols*AtlasRows; code++ {
		codes <- code
	}
	close(codes)
	wg.Wait()

	for code, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("render code %d (%q): %w", code, DisplayRune(code), err)
		}
	}
	return atlas, nil
}

func blitCell(atlas *image.Gray, cellImg *image.Gray, code, cell int) {
	x := (code % AtlasCols) * cell
	y := (code / AtlasCols) * cell
	rect := image.Rect(x, y, x+cell, y+cell)
	draw.Draw(atlas, rect, cellImg, image.Point{}, draw.Src)
}

func setGray(img *image.Gray, x, y int, v uint8) {
	b := img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	img.Pix[(y-b.Min.Y)*img.Stride+(x-b.Min.X)] = v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
