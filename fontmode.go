package crt2png

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FontRenderer draws the display-code character set from an ordinary
// font instead of the vector ROM. It exists for side-by-side
// comparison: render the same atlas from a modern terminal font and
// from the tube simulation, and diff them.
type FontRenderer struct {
	face font.Face
	name string
}

// LoadFontRenderer opens a .ttf or .bdf file and builds a renderer
// from it. TrueType faces are sized to the cell; BDF faces are fixed
// bitmap fonts and render at their native size.
func LoadFontRenderer(path string, cellPx int) (*FontRenderer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	var face font.Face
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf":
		ttf, err := freetype.ParseFont(data)
		if err != nil {
			return nil, fmt.Errorf("parse truetype %s: %w", path, err)
		}
		face = truetype.NewFace(ttf, &truetype.Options{
			// Size in points equals pixels at 72 DPI; leave headroom
			// so ascenders stay inside the cell.
			Size:    float64(cellPx) * 0.75,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	case ".bdf":
		bdfFont, err := bdf.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse bdf %s: %w", path, err)
		}
		face = bdfFont.NewFace()
	default:
		return nil, fmt.Errorf("unsupported font format %q", filepath.Ext(path))
	}

	return &FontRenderer{face: face, name: filepath.Base(path)}, nil
}

// NewFontRenderer wraps an already-built face, for callers that load
// or embed fonts themselves.
func NewFontRenderer(face font.Face, name string) *FontRenderer {
	return &FontRenderer{face: face, name: name}
}

func (f *FontRenderer) Name() string { return "font:" + f.name }

func (f *FontRenderer) Controls() []string {
	return []string{"charscale", "pixelscale"}
}

// RenderCell draws the display rune for code, centered in the cell.
func (f *FontRenderer) RenderCell(code int, cfg RenderConfig) (*image.Gray, error) {
	cfg = cfg.Clamp()
	cell := cfg.CellPixels()
	img := image.NewGray(image.Rect(0, 0, cell, cell))

	r := DisplayRune(code)
	if r == ' ' {
		return img, nil
	}

	s := string(r)
	adv := font.MeasureString(f.face, s)
	m := f.face.Metrics()

	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: f.face,
		Dot: fixed.Point26_6{
			X: (fixed.I(cell) - adv) / 2,
			Y: (fixed.I(cell) + m.Ascent - m.Descent) / 2,
		},
	}
	d.DrawString(s)
	return img, nil
}
